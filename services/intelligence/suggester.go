package intelligence

import (
	"context"
	"fmt"
	"strings"

	"medibook/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// knownSpecialties constrains the model's answer to specialties the doctor
// directory actually uses.
var knownSpecialties = []string{
	"General Physician",
	"Cardiologist",
	"Dermatologist",
	"Neurologist",
	"Orthopedist",
	"Pediatrician",
	"Psychiatrist",
	"Gynecologist",
	"ENT Specialist",
	"Ophthalmologist",
	"Dentist",
}

// SpecialtySuggester maps free-text symptoms to a medical specialty.
type SpecialtySuggester interface {
	SuggestSpecialty(ctx context.Context, symptoms string) (string, error)
}

// GeminiSpecialtySuggester implements SpecialtySuggester with a Gemini model
// behind a TTL'd redis cache.
type GeminiSpecialtySuggester struct {
	model *genai.GenerativeModel
	cache *SuggestionCache
}

func NewGeminiSpecialtySuggester(apiKey string, cache *SuggestionCache) (*GeminiSpecialtySuggester, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiSpecialtySuggester{
		model: client.GenerativeModel("models/gemini-1.5-pro"),
		cache: cache,
	}, nil
}

func (g *GeminiSpecialtySuggester) SuggestSpecialty(ctx context.Context, symptoms string) (string, error) {
	logger := utils.GetLogger()

	if strings.TrimSpace(symptoms) == "" {
		return "General Physician", nil
	}

	if g.cache != nil {
		if specialty, ok := g.cache.Get(ctx, symptoms); ok {
			return specialty, nil
		}
	}

	prompt := fmt.Sprintf(
		"A patient reports the following symptoms: %q. Reply with exactly one specialty from this list and nothing else: %s.",
		symptoms, strings.Join(knownSpecialties, ", "),
	)
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}

	var sb strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				sb.WriteString(string(textPart))
			}
		}
	}
	specialty := normalizeSpecialty(sb.String())

	if g.cache != nil {
		if err := g.cache.Set(ctx, symptoms, specialty); err != nil {
			logger.Warn("intelligence: failed to cache suggestion", zap.Error(err))
		}
	}
	return specialty, nil
}

// normalizeSpecialty maps the raw model output back onto the known list,
// falling back to General Physician on anything unexpected.
func normalizeSpecialty(raw string) string {
	cleaned := strings.TrimSpace(raw)
	for _, s := range knownSpecialties {
		if strings.EqualFold(cleaned, s) {
			return s
		}
	}
	for _, s := range knownSpecialties {
		if strings.Contains(strings.ToLower(cleaned), strings.ToLower(s)) {
			return s
		}
	}
	return "General Physician"
}
