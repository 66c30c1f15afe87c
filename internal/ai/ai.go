// Package ai generates customer-facing product descriptions with Gemini.
// It is only used by the catalog seeder; the serving path never calls out.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DescriptionService wraps the Gemini client.
type DescriptionService struct {
	Client *genai.Client
	model  string
}

// NewDescriptionService initializes the Gemini client.
func NewDescriptionService(ctx context.Context, apiKey string) (*DescriptionService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &DescriptionService{Client: client, model: "gemini-1.5-flash"}, nil
}

// Close releases the underlying client.
func (s *DescriptionService) Close() error {
	return s.Client.Close()
}

// Describe returns a one-to-two sentence description for a catalog product.
func (s *DescriptionService) Describe(ctx context.Context, name, brand, productType string) (string, error) {
	model := s.Client.GenerativeModel(s.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(
			"You write short product descriptions for a veterinary supply store. " +
				"One or two sentences, plain text, no markdown, focused on what the product does for the pet.",
		)},
	}

	prompt := fmt.Sprintf("Product: %s. Brand: %s. Category: %s.", name, brand, productType)
	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("error generating description: %w", err)
	}

	var b strings.Builder
	for _, cand := range res.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}

	description := strings.TrimSpace(b.String())
	if description == "" {
		return "", fmt.Errorf("empty description for %q", name)
	}
	return description, nil
}
