package ai

import "context"

// Client is the generative model boundary: hand it a prompt (and optionally one
// image) and get natural-language text back. Any OpenAI-compatible provider
// satisfies it through the base URL in config.
type Client interface {
	Generate(ctx context.Context, prompt string) (text string, err error)
	GenerateFromImage(ctx context.Context, prompt string, imageData []byte, mimeType string) (text string, err error)
}
