package llm

import (
	"context"
	"errors"
	"time"
)

var (
	ErrBoundaryUnavailable = errors.New("language model unavailable")
	ErrEmptyResponse       = errors.New("empty response from language model")
)

// ContextMessage is one prior conversation turn handed to the model.
type ContextMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ClassifyContext carries the session state the model may use to disambiguate.
type ClassifyContext struct {
	RoundActive bool             `json:"round_active"`
	CourseName  string           `json:"course_name,omitempty"`
	HoleNumber  int              `json:"hole_number,omitempty"`
	HolePar     int              `json:"hole_par,omitempty"`
	LastClub    string           `json:"last_club,omitempty"`
	History     []ContextMessage `json:"history,omitempty"`
}

// ModelResponse is the raw structured guess; parsing and validation happen upstream.
type ModelResponse struct {
	RawPayload []byte        `json:"raw_payload"`
	Latency    time.Duration `json:"latency"`
	ModelID    string        `json:"model_id"`
	Timestamp  time.Time     `json:"timestamp"`
}

type IIntentModel interface {
	ClassifyIntent(ctx context.Context, text string, session *ClassifyContext) (*ModelResponse, error)
}
