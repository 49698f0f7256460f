package caddieService

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"ProjectCaddie/internal/api/caddie"
	"ProjectCaddie/internal/entity"
	contextPkg "ProjectCaddie/pkg/context"

	"github.com/sirupsen/logrus"
)

var prerequisiteLabels = map[entity.Prerequisite]string{
	entity.PrerequisiteRecoveryData:   "recovery data",
	entity.PrerequisiteRoundActive:    "an active round",
	entity.PrerequisiteBagConfigured:  "your bag",
	entity.PrerequisiteCourseSelected: "a course",
}

// Route resolves a classification outcome into the navigation decision the UI
// layer executes. It is the single authority on no-navigation intents.
func (s *caddieService) Route(ctx context.Context, result caddie.ClassificationResult) caddie.RoutingResult {
	switch res := result.(type) {
	case caddie.Route:
		return s.routeIntent(ctx, res)

	case caddie.Confirm:
		return caddie.ConfirmationRequired{Intent: res.Intent, Message: res.Message}

	case caddie.Clarify:
		return caddie.NoNavigation{
			Intent:   s.placeholderIntent(),
			Response: clarifyReply(res.Response),
		}

	case caddie.ClassificationError:
		return caddie.NoNavigation{
			Intent:   s.placeholderIntent(),
			Response: fmt.Sprintf("Sorry about that. %s", res.Message),
		}

	default:
		s.log.WithFields(logrus.Fields{
			"result": fmt.Sprintf("%T", result),
		}).Error("Unhandled classification result variant")
		return caddie.NoNavigation{
			Intent:   s.placeholderIntent(),
			Response: "Sorry, something went wrong on my end. Please try again.",
		}
	}
}

func (s *caddieService) routeIntent(ctx context.Context, res caddie.Route) caddie.RoutingResult {
	requestID := contextPkg.GetRequestID(ctx)

	def, ok := s.registry.Definition(res.Intent.Type)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"intent":     res.Intent.Type,
		}).Error("Intent missing from registry")
		return caddie.NoNavigation{
			Intent:   res.Intent,
			Response: "Sorry, I can't handle that one yet.",
		}
	}

	if def.NoNavigation {
		reply, ok := s.registry.PersonaResponses[res.Intent.Type]
		if !ok {
			reply = "Happy to help with that."
		}
		return caddie.NoNavigation{Intent: res.Intent, Response: reply}
	}

	missing := s.collectMissing(ctx, def.Prerequisites)
	if len(missing) > 0 {
		return caddie.PrerequisiteMissing{
			Intent:  res.Intent,
			Missing: missing,
			Message: s.missingPrerequisiteMessage(missing),
		}
	}

	return caddie.Navigate{
		Target:  res.Target,
		Intent:  res.Intent,
		Message: fmt.Sprintf("On it, let's %s.", def.Description),
	}
}

// collectMissing fans the independent prerequisite reads out concurrently and
// waits for every result before deciding. A checker failure counts as missing:
// the user is never routed onto a screen whose required data may be absent.
func (s *caddieService) collectMissing(ctx context.Context, prereqs []entity.Prerequisite) []entity.Prerequisite {
	if len(prereqs) == 0 {
		return nil
	}

	satisfied := make([]bool, len(prereqs))
	var wg sync.WaitGroup
	for i, p := range prereqs {
		wg.Add(1)
		go func(i int, p entity.Prerequisite) {
			defer wg.Done()
			ok, err := s.checker.Check(ctx, p)
			if err != nil {
				s.log.WithFields(logrus.Fields{
					"request_id":   contextPkg.GetRequestID(ctx),
					"prerequisite": p,
					"error":        err.Error(),
				}).Warn("Prerequisite check failed, treating as missing")
				ok = false
			}
			satisfied[i] = ok
		}(i, p)
	}
	wg.Wait()

	var missing []entity.Prerequisite
	for i, ok := range satisfied {
		if !ok {
			missing = append(missing, prereqs[i])
		}
	}
	return missing
}

func (s *caddieService) missingPrerequisiteMessage(missing []entity.Prerequisite) string {
	if len(missing) == 1 {
		if msg, ok := s.registry.PrerequisiteMessages[missing[0]]; ok {
			return msg
		}
	}

	labels := make([]string, 0, len(missing))
	for _, p := range missing {
		label, ok := prerequisiteLabels[p]
		if !ok {
			label = string(p)
		}
		labels = append(labels, label)
	}
	return fmt.Sprintf("Before we do that, let's get set up: %s.", strings.Join(labels, ", "))
}

// placeholderIntent is the neutral intent attached to replies that carry no
// routable classification.
func (s *caddieService) placeholderIntent() entity.ParsedIntent {
	return entity.ParsedIntent{
		IntentID:   "none",
		Type:       entity.IntentHelp,
		Confidence: 0,
	}
}

func clarifyReply(response caddie.ClarificationResponse) string {
	if len(response.Suggestions) == 0 {
		return response.Message
	}

	labels := make([]string, 0, len(response.Suggestions))
	for _, suggestion := range response.Suggestions {
		labels = append(labels, suggestion.Label)
	}
	return response.Message + " " + strings.Join(labels, ", ")
}

// HandleUtterance runs one full conversational turn: classification completes
// before routing, and the turn is recorded only after routing decides the
// reply.
func (s *caddieService) HandleUtterance(ctx context.Context, rawInput string) caddie.RoutingResult {
	sctx := s.sessions.Snapshot()

	result := s.Classify(ctx, rawInput, &sctx)
	routing := s.Route(ctx, result)

	reply := ReplyText(routing)
	if strings.TrimSpace(rawInput) != "" && reply != "" {
		if err := s.sessions.AddConversationTurn(rawInput, reply); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"error":      err.Error(),
			}).Warn("Failed to record conversation turn")
		}
	}

	return routing
}

// ReplyText extracts the user-facing reply from any routing outcome.
func ReplyText(result caddie.RoutingResult) string {
	switch res := result.(type) {
	case caddie.Navigate:
		return res.Message
	case caddie.NoNavigation:
		return res.Response
	case caddie.PrerequisiteMissing:
		return res.Message
	case caddie.ConfirmationRequired:
		return res.Message
	default:
		return ""
	}
}
