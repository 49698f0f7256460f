package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiModel struct {
	client    *genai.Client
	modelName string
}

func NewGeminiModel() (IIntentModel, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiModel{
		client:    client,
		modelName: modelName,
	}, nil
}

func (g *geminiModel) ClassifyIntent(ctx context.Context, text string, session *ClassifyContext) (*ModelResponse, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.ResponseMIMEType = "application/json"

	prompt := intentSystemPrompt + "\n\nUtterance: " + text
	if session != nil {
		if ctxJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(session); err == nil {
			prompt += "\nRound context: " + ctxJSON
		}
	}

	start := time.Now()
	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBoundaryUnavailable, err)
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return nil, ErrEmptyResponse
	}

	part, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, ErrEmptyResponse
	}

	payload := strings.TrimSpace(string(part))
	payload = strings.TrimPrefix(payload, "```json")
	payload = strings.TrimPrefix(payload, "```")
	payload = strings.TrimSuffix(payload, "```")
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, ErrEmptyResponse
	}

	return &ModelResponse{
		RawPayload: []byte(payload),
		Latency:    time.Since(start),
		ModelID:    g.modelName,
		Timestamp:  time.Now(),
	}, nil
}

func (g *geminiModel) Close() {
	if g.client != nil {
		g.client.Close()
	}
}
