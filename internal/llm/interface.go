package llm

import (
	"context"

	"google.golang.org/genai"
)

// Client is the single surface through which flows reach the model.
type Client interface {
	// GenerateJSON asks for application/json constrained by schema and
	// decodes the response into out.
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema, out any) error

	// GenerateFromFile uploads a local audio/video file to the model's
	// file API and answers the prompt with the file as context.
	GenerateFromFile(ctx context.Context, prompt, path, mimeType string) (string, error)
}
