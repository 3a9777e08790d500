package generation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	imrocreq "github.com/imroc/req/v3"

	"github.com/atelier-lab/atelier/pkg/config"
	"github.com/atelier-lab/atelier/pkg/logutils"
)

type reqGenerator struct {
	client *imrocreq.Client
	url    string
	model  string
}

func newReqGenerator() *reqGenerator {
	genConfig := config.GetConfig().Generation
	client := imrocreq.C().SetTimeout(2 * time.Minute)
	if genConfig.APIKey != "" {
		client.SetCommonBearerAuthToken(genConfig.APIKey)
	}
	return &reqGenerator{
		client: client,
		url:    genConfig.URL,
		model:  genConfig.Model,
	}
}

func (g *reqGenerator) Enabled() bool { return g.url != "" }

type generateBody struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
	TaskID string `json:"taskId"`
}

type generateResult struct {
	ImageURL string `json:"imageUrl"`
	Error    string `json:"error,omitempty"`
}

func (g *reqGenerator) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if !g.Enabled() {
		return "", ErrNotConfigured
	}

	taskID := fmt.Sprintf("gen-%s", uuid.New().String()[:8])
	var result generateResult
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(&generateBody{Model: g.model, Prompt: prompt, TaskID: taskID}).
		SetSuccessResult(&result).
		Post(g.url)
	if err != nil {
		return "", fmt.Errorf("call generation upstream: %w", err)
	}
	if resp.IsErrorState() {
		return "", fmt.Errorf("generation upstream returned %s", resp.Status)
	}
	if result.Error != "" {
		return "", fmt.Errorf("generation failed: %s", result.Error)
	}

	logutils.Log.Infof("generation task %s finished", taskID)
	return result.ImageURL, nil
}
