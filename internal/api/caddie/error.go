package caddie

import "ProjectCaddie/pkg/response"

var (
	ErrEmptyInput         = response.NewError(400, "empty input")
	ErrBoundaryFailed     = response.NewError(502, "language understanding unavailable")
	ErrMalformedPayload   = response.NewError(502, "malformed language model payload")
	ErrPrerequisiteCheck  = response.NewError(500, "prerequisite check failed")
	ErrRegistryIncomplete = response.NewError(500, "intent registry missing definition")
)
