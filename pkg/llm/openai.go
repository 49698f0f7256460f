package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const intentSystemPrompt = `You are the intent classifier for a golf companion app.
Given a golfer's utterance and optional round context, respond with STRICT JSON only:
{"intent": "<name>", "confidence": <0.0-1.0>, "entities": {...}, "user_goal": "<short phrase>"}

Valid intent names:
start_round, end_round, score_entry, score_query, shot_recommendation, shot_record,
club_adjustment, bag_view, recovery_check, fatigue_report, pain_report, course_info,
hole_info, weather_check, stats_view, practice_plan, pattern_query, help, feedback, unknown

Entity keys (include only when present in the utterance):
club (string), yardage (number), lie (string), wind (string), fatigue (1-10),
pain (string), score_context (string), hole_number (1-18)

Confidence reflects how certain you are about BOTH the intent and the entities.
No prose, no markdown fences, JSON only.`

type openAIModel struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
	timeout time.Duration
}

func NewOpenAIModel() IIntentModel {
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_CHAT_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}

	return &openAIModel{
		client:  openai.NewClient(apiKey),
		model:   model,
		limiter: rate.NewLimiter(rate.Every(time.Second), 3),
		timeout: 10 * time.Second,
	}
}

func (m *openAIModel) ClassifyIntent(ctx context.Context, text string, session *ClassifyContext) (*ModelResponse, error) {
	if err := m.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBoundaryUnavailable, err)
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: intentSystemPrompt},
	}

	if session != nil {
		ctxJSON, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalToString(session)
		if err == nil {
			messages = append(messages, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleSystem,
				Content: "Round context: " + ctxJSON,
			})
		}
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})

	start := time.Now()
	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       m.model,
		Messages:    messages,
		Temperature: 0.1,
		MaxTokens:   200,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBoundaryUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	payload := strings.TrimSpace(resp.Choices[0].Message.Content)
	if payload == "" {
		return nil, ErrEmptyResponse
	}

	return &ModelResponse{
		RawPayload: []byte(payload),
		Latency:    time.Since(start),
		ModelID:    m.model,
		Timestamp:  time.Now(),
	}, nil
}
