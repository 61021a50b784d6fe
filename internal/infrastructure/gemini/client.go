package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/yourusername/telegram-translate-bot/internal/domain/constants"
	"github.com/yourusername/telegram-translate-bot/internal/domain/entity"
	"github.com/yourusername/telegram-translate-bot/internal/domain/repository"
	"google.golang.org/api/option"
)

// ProviderName TRANSLATOR_PROVIDER qiymati
const ProviderName = "gemini"

// Client Gemini orqali tarjima. Retry bu yerda emas, usecase qatlamida.
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

var _ repository.TranslatorRepository = (*Client)(nil)

// NewGeminiClient yangi Gemini tarjimon yaratish
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if modelName == "" {
		modelName = constants.GeminiModelName
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	// Tarjima uchun deterministik javob kerak
	model.SetTemperature(constants.AITemperature)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(translationInstruction)},
	}

	return &Client{client: client, model: model, modelName: modelName}, nil
}

// Translate bitta urinish: xato bo'lsa darhol qaytaradi
func (g *Client) Translate(ctx context.Context, text, targetLang string) (entity.Translation, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(buildPrompt(text, targetLang)))
	if err != nil {
		return entity.Translation{}, fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return entity.Translation{}, fmt.Errorf("gemini: empty response")
	}
	if reason := resp.Candidates[0].FinishReason; reason == genai.FinishReasonSafety {
		return entity.Translation{}, fmt.Errorf("gemini: response blocked (%v)", reason)
	}

	translated := strings.TrimSpace(extractText(resp))
	if translated == "" {
		return entity.Translation{}, fmt.Errorf("gemini: empty translation")
	}

	return entity.Translation{
		Text:       translated,
		SourceText: text,
		TargetLang: targetLang,
		Provider:   ProviderName,
		Model:      g.modelName,
	}, nil
}

// Name provayder nomi
func (g *Client) Name() string { return ProviderName }

// extractText javobdan textni ajratib olish
func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				result.WriteString(string(txt))
			}
		}
		// birinchi candidate yetarli
		break
	}
	return result.String()
}

// Close client ni yopish
func (g *Client) Close() error {
	return g.client.Close()
}
