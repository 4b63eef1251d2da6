package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker/v2"

	"github.com/saubb/artisan/config"
	"github.com/saubb/artisan/pkg/errs"
)

type OpenAIClient struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker[string]
}

func CreateNewOpenAIClient(conf config.AIConfig) Client {
	clientConfig := openai.DefaultConfig(conf.APIKey)
	if conf.BaseURL != "" {
		clientConfig.BaseURL = conf.BaseURL
	}

	var st gobreaker.Settings
	st.Name = "ai-collaborator"
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}

	return &OpenAIClient{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   conf.Model,
		timeout: time.Duration(conf.TimeoutSeconds) * time.Second,
		breaker: gobreaker.NewCircuitBreaker[string](st),
	}
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (text string, err error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		},
	}

	return c.complete(ctx, messages)
}

func (c *OpenAIClient) GenerateFromImage(ctx context.Context, prompt string, imageData []byte, mimeType string) (text string, err error) {
	// Providers take inline images as base64 data URLs on a multimodal part.
	imageURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(imageData))

	messages := []openai.ChatCompletionMessage{
		{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type: openai.ChatMessagePartTypeText,
					Text: prompt,
				},
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL: imageURL,
					},
				},
			},
		},
	}

	return c.complete(ctx, messages)
}

func (c *OpenAIClient) complete(ctx context.Context, messages []openai.ChatCompletionMessage) (text string, err error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err = c.breaker.Execute(func() (string, error) {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    c.model,
			Messages: messages,
		})
		if err != nil {
			return "", err
		}

		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("completion returned no choices")
		}

		return resp.Choices[0].Message.Content, nil
	})

	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "complete").Msg("")
		return "", errs.ErrAiInvocation
	}

	return text, nil
}
