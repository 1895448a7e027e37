package llm

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/anshuchowdary926-eng/visamate/internal/models"
)

// Generator is the model backend as the orchestrator sees it: the full
// history goes in on every call, chunks come back in order through onChunk,
// and the accumulated reply is returned. Cancelling ctx stops generation;
// whatever was streamed before the cancel is still returned.
type Generator interface {
	Generate(ctx context.Context, systemPrompt string, history []models.Message, onChunk func(chunk string)) (string, error)
}

type Service struct {
	llm llms.Model
}

func New(baseURL, token, model string) (*Service, error) {
	llm, err := openai.New(
		openai.WithToken(token),
		openai.WithBaseURL(baseURL),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, err
	}
	return &Service{llm: llm}, nil
}

func (s *Service) Generate(ctx context.Context, systemPrompt string, history []models.Message, onChunk func(chunk string)) (string, error) {
	content := make([]llms.MessageContent, 0, len(history)+1)
	content = append(content, llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt))
	for _, msg := range history {
		role := llms.ChatMessageTypeHuman
		if msg.Role == models.RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		content = append(content, llms.TextParts(role, msg.Content))
	}

	var reply strings.Builder
	resp, err := s.llm.GenerateContent(ctx, content,
		llms.WithStreamingFunc(func(ctx context.Context, chunk []byte) error {
			reply.Write(chunk)
			if onChunk != nil {
				onChunk(string(chunk))
			}
			return nil
		}),
	)
	if err != nil {
		return reply.String(), err
	}

	if len(resp.Choices) > 0 && resp.Choices[0].Content != "" {
		return resp.Choices[0].Content, nil
	}
	return reply.String(), nil
}
