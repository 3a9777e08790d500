package alert

import (
	"context"
)

// AlertMgr 是封装好的通知组件，面向运维人员，提供：
//  1. 资源回收失败告警（对象引用已被替换或删除，但对象删除失败）
//  2. 孤儿清扫结果报告
//  3. 用户配额耗尽提醒
type AlertInterface interface {
	ReclaimFailed(ctx context.Context, key string, reason error) error
	SweepReport(ctx context.Context, removedObjects int, freedBytes int64, removedSessions int64) error
	QuotaExhausted(ctx context.Context, userName string, usage, limit int64) error
}

// alertHandlerInterface 是具体的通知组件对外部提供的接口，SMTP 或者
// 其他通知渠道都应该实现这个接口
type alertHandlerInterface interface {
	SendMessageTo(ctx context.Context, receiver, subject, body string) error
}
