package alert

import (
	"context"
	"fmt"
	"sync"

	"github.com/atelier-lab/atelier/pkg/config"
	"github.com/atelier-lab/atelier/pkg/logutils"
)

type alertMgr struct {
	handler alertHandlerInterface
	notify  string
}

var (
	once    sync.Once
	alerter *alertMgr
)

func GetAlertMgr() AlertInterface {
	once.Do(func() {
		alerter = initAlertMgr()
	})
	return alerter
}

func initAlertMgr() *alertMgr {
	// 初始化选择具体要使用的 alert handler，支持群聊机器人 Webhook 和 SMTP
	// 两者都未配置时告警仅写入日志
	cfg := config.GetConfig()
	switch {
	case cfg.Alert.WebhookURL != "":
		return &alertMgr{handler: newWebhookAlerter(cfg.Alert.WebhookURL), notify: cfg.SMTP.Notify}
	case cfg.SMTP.Host != "":
		smtpHandler, err := newSMTPAlerter()
		if err != nil {
			panic(err)
		}
		return &alertMgr{handler: smtpHandler, notify: cfg.SMTP.Notify}
	default:
		logutils.Log.Warn("no alert channel configured, alerts go to the log only")
		return &alertMgr{handler: &logAlerter{}, notify: cfg.SMTP.Notify}
	}
}

// logAlerter 在未配置邮件服务时兜底
type logAlerter struct{}

func (*logAlerter) SendMessageTo(_ context.Context, _, subject, body string) error {
	logutils.Log.Warnf("ALERT %s: %s", subject, body)
	return nil
}

func (a *alertMgr) ReclaimFailed(ctx context.Context, key string, reason error) error {
	subject := "资源回收失败告警"
	body := fmt.Sprintf("对象 %s 的引用已被替换或删除，但对象删除失败：%v。该对象将由孤儿清扫任务重试。", key, reason)
	return a.handler.SendMessageTo(ctx, a.notify, subject, body)
}

func (a *alertMgr) SweepReport(ctx context.Context, removedObjects int, freedBytes int64, removedSessions int64) error {
	subject := "孤儿清扫结果报告"
	body := fmt.Sprintf("本次清扫删除了 %d 个未被引用的对象，释放 %d 字节；清理过期会话 %d 个。",
		removedObjects, freedBytes, removedSessions)
	return a.handler.SendMessageTo(ctx, a.notify, subject, body)
}

func (a *alertMgr) QuotaExhausted(ctx context.Context, userName string, usage, limit int64) error {
	subject := "用户配额耗尽提醒"
	body := fmt.Sprintf("用户 %s 的存储用量 %d 字节已达到上限 %d 字节，最近一次上传被拒绝。", userName, usage, limit)
	return a.handler.SendMessageTo(ctx, a.notify, subject, body)
}
