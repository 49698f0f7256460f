package caddie

import "ProjectCaddie/internal/entity"

// ClassificationResult is a closed union; exactly one variant is produced per
// classification call. Consumers must type-switch over all four.
type ClassificationResult interface {
	classificationResult()
}

type Route struct {
	Intent entity.ParsedIntent
	Target entity.RoutingTarget
}

type Confirm struct {
	Intent  entity.ParsedIntent
	Message string
}

type Clarify struct {
	Response ClarificationResponse
}

type ClassificationError struct {
	Cause   error
	Message string
}

func (Route) classificationResult()               {}
func (Confirm) classificationResult()             {}
func (Clarify) classificationResult()             {}
func (ClassificationError) classificationResult() {}

type Suggestion struct {
	Intent      entity.IntentType `json:"intent"`
	Label       string            `json:"label"`
	Description string            `json:"description"`
}

type ClarificationResponse struct {
	Message       string       `json:"message"`
	Suggestions   []Suggestion `json:"suggestions"`
	OriginalInput string       `json:"original_input"`
}

// RoutingResult is the closed union the navigation executor consumes.
type RoutingResult interface {
	routingResult()
}

type Navigate struct {
	Target  entity.RoutingTarget
	Intent  entity.ParsedIntent
	Message string
}

type NoNavigation struct {
	Intent   entity.ParsedIntent
	Response string
}

type PrerequisiteMissing struct {
	Intent  entity.ParsedIntent
	Missing []entity.Prerequisite
	Message string
}

type ConfirmationRequired struct {
	Intent  entity.ParsedIntent
	Message string
}

func (Navigate) routingResult()             {}
func (NoNavigation) routingResult()         {}
func (PrerequisiteMissing) routingResult()  {}
func (ConfirmationRequired) routingResult() {}
