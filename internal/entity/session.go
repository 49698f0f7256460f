package entity

import "time"

type TurnRole string

const (
	TurnRoleUser      TurnRole = "user"
	TurnRoleAssistant TurnRole = "assistant"
)

type ConversationTurn struct {
	ID        string    `json:"id"`
	Role      TurnRole  `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type RoundInfo struct {
	RoundID    string `json:"round_id"`
	CourseName string `json:"course_name"`
	TotalScore int    `json:"total_score"`
	HolesDone  int    `json:"holes_done"`
}

type HoleInfo struct {
	Number int `json:"number"`
	Par    int `json:"par"`
}

type ConditionsInfo struct {
	Wind        string  `json:"wind,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
	Summary     string  `json:"summary,omitempty"`
}

type SessionContext struct {
	SessionID           string             `json:"session_id"`
	CurrentRound        *RoundInfo         `json:"current_round,omitempty"`
	CurrentHole         *HoleInfo          `json:"current_hole,omitempty"`
	Conditions          *ConditionsInfo    `json:"conditions,omitempty"`
	LastShot            *Shot              `json:"last_shot,omitempty"`
	LastRecommendation  string             `json:"last_recommendation,omitempty"`
	ConversationHistory []ConversationTurn `json:"conversation_history"`
	LastActivity        time.Time          `json:"last_activity"`
}

// RecentTurns returns up to n of the most recent turns in insertion order.
func (s SessionContext) RecentTurns(n int) []ConversationTurn {
	if n <= 0 || len(s.ConversationHistory) == 0 {
		return nil
	}
	if n > len(s.ConversationHistory) {
		n = len(s.ConversationHistory)
	}
	out := make([]ConversationTurn, n)
	copy(out, s.ConversationHistory[len(s.ConversationHistory)-n:])
	return out
}

func (s SessionContext) RoundActive() bool {
	return s.CurrentRound != nil
}
