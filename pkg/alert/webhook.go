package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// webhookMessage 是发送给群聊机器人的消息结构体
type webhookMessage struct {
	Msgtype string `json:"msgtype"`
	Text    struct {
		Content string `json:"content"`
	} `json:"text"`
}

type webhookAlerter struct {
	url    string
	client *http.Client
}

func newWebhookAlerter(url string) alertHandlerInterface {
	return &webhookAlerter{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// SendMessageTo 发送文本消息到群聊机器人，接收者由 Webhook 地址决定
func (w *webhookAlerter) SendMessageTo(ctx context.Context, _, subject, body string) error {
	msg := webhookMessage{Msgtype: "text"}
	msg.Text.Content = subject + "\n" + body

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
