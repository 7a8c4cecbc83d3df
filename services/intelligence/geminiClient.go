package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-flash"

var errEmptyCompletion = errors.New("gemini returned no candidates")

// GeminiClient requests JSON completions constrained by planSchema.
type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient builds a client for modelName. An empty apiKey is a
// configuration error; callers check for it before getting here.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrPlannerUnavailable
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.4)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = planSchema()

	return &GeminiClient{client: client, model: model}, nil
}

// Complete sends prompt and returns the concatenated text parts of the first
// candidate.
func (g *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errEmptyCompletion
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// planSchema mirrors models.PartyPlan.
func planSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"plan": {
				Type:        genai.TypeArray,
				Description: "Selected services, at most one provider per category.",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"providerId": {Type: genai.TypeString},
						"serviceId":  {Type: genai.TypeString},
					},
					Required: []string{"providerId", "serviceId"},
				},
			},
			"justification": {
				Type:        genai.TypeString,
				Description: "Short explanation of the selection.",
			},
			"totalCost": {
				Type:        genai.TypeNumber,
				Description: "Sum of the selected service prices.",
			},
		},
		Required: []string{"plan", "justification", "totalCost"},
	}
}
