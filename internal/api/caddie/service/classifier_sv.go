package caddieService

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ProjectCaddie/internal/api/caddie"
	"ProjectCaddie/internal/entity"
	contextPkg "ProjectCaddie/pkg/context"
	"ProjectCaddie/pkg/llm"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// boundaryGuess mirrors the JSON contract of the language-understanding boundary.
type boundaryGuess struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
	Entities   struct {
		Club         string  `json:"club"`
		Yardage      float64 `json:"yardage"`
		Lie          string  `json:"lie"`
		Wind         string  `json:"wind"`
		Fatigue      float64 `json:"fatigue"`
		Pain         string  `json:"pain"`
		ScoreContext string  `json:"score_context"`
		HoleNumber   float64 `json:"hole_number"`
	} `json:"entities"`
	UserGoal string `json:"user_goal"`
}

// Classify runs one utterance through normalize -> boundary -> sanitize -> gate.
// It never mutates the session; recording the turn is the caller's job after
// routing completes.
func (s *caddieService) Classify(ctx context.Context, rawInput string, sctx *entity.SessionContext) caddie.ClassificationResult {
	requestID := contextPkg.GetRequestID(ctx)

	if strings.TrimSpace(rawInput) == "" {
		return caddie.ClassificationError{
			Cause:   caddie.ErrEmptyInput,
			Message: "Please say or type something so I can help.",
		}
	}

	normalized := s.normalizer.Normalize(rawInput)

	modelResp, err := s.intentModel.ClassifyIntent(ctx, normalized.NormalizedInput, toClassifyContext(sctx, s.config.HistoryTurns))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Language model call failed")
		return caddie.ClassificationError{
			Cause:   caddie.ErrBoundaryFailed,
			Message: "I'm having trouble understanding right now. Give me a second and try again.",
		}
	}

	parsed, err := s.parseGuess(modelResp)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"model_id":   modelResp.ModelID,
			"error":      err.Error(),
		}).Error("Malformed boundary payload")
		return caddie.ClassificationError{
			Cause:   caddie.ErrMalformedPayload,
			Message: "I'm having trouble understanding right now. Give me a second and try again.",
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"intent":     parsed.Type,
		"confidence": parsed.Confidence,
		"latency_ms": modelResp.Latency.Milliseconds(),
	}).Debug("Classified utterance")

	switch {
	case parsed.Confidence >= s.config.RouteThreshold:
		if missing := s.missingRequiredEntities(parsed); len(missing) > 0 {
			return caddie.Confirm{
				Intent:  parsed,
				Message: missingEntityMessage(missing, s.registry.EntityLabels),
			}
		}
		return caddie.Route{Intent: parsed, Target: s.buildTarget(parsed)}

	case parsed.Confidence >= s.config.ConfirmThreshold:
		return caddie.Confirm{Intent: parsed, Message: s.confirmMessage(parsed)}

	default:
		return caddie.Clarify{Response: s.GenerateClarification(rawInput, &parsed, sctx)}
	}
}

func (s *caddieService) parseGuess(resp *llm.ModelResponse) (entity.ParsedIntent, error) {
	var guess boundaryGuess
	if err := json.Unmarshal(resp.RawPayload, &guess); err != nil {
		return entity.ParsedIntent{}, err
	}
	if strings.TrimSpace(guess.Intent) == "" {
		return entity.ParsedIntent{}, fmt.Errorf("payload missing intent name")
	}

	intentType := entity.IntentType(strings.ToLower(strings.TrimSpace(guess.Intent)))
	confidence := guess.Confidence
	if !intentType.Valid() {
		// Unmapped intent names degrade to help at minimal confidence.
		intentType = entity.IntentHelp
		confidence = 0.05
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return entity.ParsedIntent{}, err
	}

	parsed := entity.ParsedIntent{
		IntentID:   id,
		Type:       intentType,
		Confidence: confidence,
		Entities:   s.sanitizeEntities(guess),
		UserGoal:   strings.TrimSpace(guess.UserGoal),
		Timestamp:  resp.Timestamp,
	}

	if def, ok := s.registry.Definition(intentType); ok && def.Target != nil {
		target := s.buildTarget(parsed)
		parsed.RoutingTarget = &target
	}

	return parsed, nil
}

// sanitizeEntities normalizes invalid raw values to absent instead of failing.
func (s *caddieService) sanitizeEntities(guess boundaryGuess) entity.ExtractedEntities {
	out := entity.ExtractedEntities{
		Lie:          strings.TrimSpace(guess.Entities.Lie),
		Wind:         strings.TrimSpace(guess.Entities.Wind),
		Pain:         strings.TrimSpace(guess.Entities.Pain),
		ScoreContext: strings.TrimSpace(guess.Entities.ScoreContext),
	}

	if guess.Entities.Yardage > 0 {
		out.Yardage = int(guess.Entities.Yardage)
	}

	if guess.Entities.Fatigue > 0 {
		fatigue := int(guess.Entities.Fatigue)
		if fatigue < 1 {
			fatigue = 1
		}
		if fatigue > 10 {
			fatigue = 10
		}
		out.Fatigue = fatigue
	}

	if hole := int(guess.Entities.HoleNumber); hole >= 1 && hole <= 18 {
		out.HoleNumber = hole
	}

	club := strings.ToLower(strings.TrimSpace(guess.Entities.Club))
	club = strings.ReplaceAll(club, "-", " ")
	if _, ok := s.knownClubs[club]; ok {
		out.Club = club
	}

	return out
}

func (s *caddieService) missingRequiredEntities(parsed entity.ParsedIntent) []string {
	def, ok := s.registry.Definition(parsed.Type)
	if !ok {
		return nil
	}

	var missing []string
	for _, name := range def.RequiredEntities {
		if !entityPresent(parsed.Entities, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

func entityPresent(e entity.ExtractedEntities, name string) bool {
	switch name {
	case "club":
		return e.Club != ""
	case "yardage":
		return e.Yardage > 0
	case "lie":
		return e.Lie != ""
	case "wind":
		return e.Wind != ""
	case "fatigue":
		return e.Fatigue > 0
	case "pain":
		return e.Pain != ""
	case "score_context":
		return e.ScoreContext != ""
	case "hole_number":
		return e.HoleNumber > 0
	default:
		return true
	}
}

func missingEntityMessage(missing []string, labels map[string]string) string {
	named := make([]string, 0, len(missing))
	for _, m := range missing {
		label, ok := labels[m]
		if !ok {
			label = strings.ReplaceAll(m, "_", " ")
		}
		named = append(named, label)
	}

	if len(named) == 1 {
		return fmt.Sprintf("Which %s?", named[0])
	}
	return fmt.Sprintf("I need the %s and %s.",
		strings.Join(named[:len(named)-1], ", "), named[len(named)-1])
}

func (s *caddieService) confirmMessage(parsed entity.ParsedIntent) string {
	if def, ok := s.registry.Definition(parsed.Type); ok && def.Description != "" {
		return fmt.Sprintf("I think you want to %s. Is that right?", def.Description)
	}
	return "I think I understood, but want to be sure. Is that right?"
}

func (s *caddieService) buildTarget(parsed entity.ParsedIntent) entity.RoutingTarget {
	def, ok := s.registry.Definition(parsed.Type)
	if !ok || def.Target == nil {
		return entity.RoutingTarget{Module: entity.ModuleHome, Screen: "HomeScreen"}
	}

	target := entity.RoutingTarget{
		Module:     def.Target.Module,
		Screen:     def.Target.Screen,
		Parameters: make(map[string]string),
	}

	e := parsed.Entities
	if e.Club != "" {
		target.Parameters["clubId"] = e.Club
	}
	if e.Yardage > 0 {
		target.Parameters["yardage"] = fmt.Sprintf("%d", e.Yardage)
	}
	if e.HoleNumber > 0 {
		target.Parameters["hole"] = fmt.Sprintf("%d", e.HoleNumber)
	}
	if e.Lie != "" {
		target.Parameters["lie"] = e.Lie
	}
	if e.Wind != "" {
		target.Parameters["wind"] = e.Wind
	}
	return target
}

func toClassifyContext(sctx *entity.SessionContext, historyTurns int) *llm.ClassifyContext {
	if sctx == nil {
		return nil
	}

	out := &llm.ClassifyContext{RoundActive: sctx.RoundActive()}
	if sctx.CurrentRound != nil {
		out.CourseName = sctx.CurrentRound.CourseName
	}
	if sctx.CurrentHole != nil {
		out.HoleNumber = sctx.CurrentHole.Number
		out.HolePar = sctx.CurrentHole.Par
	}
	if sctx.LastShot != nil {
		out.LastClub = sctx.LastShot.Club
	}
	for _, turn := range sctx.RecentTurns(historyTurns) {
		out.History = append(out.History, llm.ContextMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}
	return out
}
