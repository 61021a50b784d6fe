package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/yourusername/telegram-translate-bot/internal/domain/constants"
	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
	"github.com/yourusername/telegram-translate-bot/internal/domain/repository"
)

// ProviderName TRANSLATOR_PROVIDER qiymati
const ProviderName = "openai"

const systemPrompt = "You are a translation engine. Reply with the translation of the user's text into the requested language and nothing else. Keep formatting, emoji, URLs and numbers unchanged."

// Client OpenAI Chat Completions orqali tarjima
type Client struct {
	client *openai.Client
	model  string
}

var _ repository.TranslatorRepository = (*Client)(nil)

// NewOpenAIClient yangi OpenAI tarjimon. baseURL bo'sh bo'lsa standart API.
func NewOpenAIClient(apiKey, model, baseURL string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if model == "" {
		model = constants.OpenAIModelName
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

// Translate bitta urinish
func (c *Client) Translate(ctx context.Context, text, targetLang string) (entity.Translation, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Translate to %s (%s):\n%s", entity.LanguageName(targetLang), targetLang, text),
			},
		},
		Temperature: constants.AITemperature,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return entity.Translation{}, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return entity.Translation{}, fmt.Errorf("no translation returned")
	}

	translated := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translated == "" {
		return entity.Translation{}, fmt.Errorf("empty translation returned")
	}

	return entity.Translation{
		Text:       translated,
		SourceText: text,
		TargetLang: targetLang,
		Provider:   ProviderName,
		Model:      c.model,
	}, nil
}

// Name provayder nomi
func (c *Client) Name() string { return ProviderName }
