package session

import "ProjectCaddie/pkg/response"

// Precondition failures: these signal a caller bug, not user input, and are not
// turned into conversational replies.
var (
	ErrInvalidRound          = response.NewError(400, "round id and course name are required")
	ErrInvalidHole           = response.NewError(400, "hole number must be 1-18 and par 3-5")
	ErrInvalidScore          = response.NewError(400, "score totals must be non-negative and holes completed 0-18")
	ErrBlankRecommendation   = response.NewError(400, "recommendation text is required")
	ErrBlankConversationTurn = response.NewError(400, "both user input and assistant response are required")
)
