package entity

import "time"

type MissDirection string

const (
	MissStraight MissDirection = "straight"
	MissLeft     MissDirection = "left"
	MissRight    MissDirection = "right"
	MissShort    MissDirection = "short"
	MissLong     MissDirection = "long"
)

type PressureContext struct {
	IsUserTagged bool `json:"is_user_tagged"`
	IsInferred   bool `json:"is_inferred"`
}

func (p PressureContext) HasPressure() bool {
	return p.IsUserTagged || p.IsInferred
}

// Shot is an append-only log entry; it is never mutated after creation.
type Shot struct {
	ID              string          `json:"id"`
	Timestamp       time.Time       `json:"timestamp"`
	Club            string          `json:"club"`
	MissDirection   MissDirection   `json:"miss_direction,omitempty"`
	Lie             string          `json:"lie,omitempty"`
	PressureContext PressureContext `json:"pressure_context"`
	HoleNumber      int             `json:"hole_number,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// MissPattern is derived from the shot log on demand; the log stays authoritative.
type MissPattern struct {
	Direction       MissDirection    `json:"direction"`
	Club            string           `json:"club,omitempty"`
	Frequency       int              `json:"frequency"`
	Confidence      float64          `json:"confidence"`
	PressureContext *PressureContext `json:"pressure_context,omitempty"`
	LastOccurrence  time.Time        `json:"last_occurrence"`
}
