package sessionService

import (
	"ProjectCaddie/internal/api/session"
	"ProjectCaddie/internal/entity"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Snapshot returns the current immutable context value. The conversation slice
// is copied so callers can never reach shared backing storage.
func (s *sessionService) Snapshot() entity.SessionContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneContext(s.current)
}

// Subscribe registers a snapshot stream. Each committed mutation delivers one
// full context value; slow consumers drop intermediate snapshots rather than
// block the writer.
func (s *sessionService) Subscribe() (<-chan entity.SessionContext, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan entity.SessionContext, 1)
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *sessionService) UpdateRound(req session.UpdateRoundRequest) error {
	if err := s.validator.Struct(req); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Rejected round update")
		return session.ErrInvalidRound
	}
	if strings.TrimSpace(req.RoundID) == "" || strings.TrimSpace(req.CourseName) == "" {
		return session.ErrInvalidRound
	}

	s.mutate(func(ctx *entity.SessionContext) {
		ctx.CurrentRound = &entity.RoundInfo{
			RoundID:    req.RoundID,
			CourseName: req.CourseName,
		}
		if req.StartingHole != 0 {
			hole := &entity.HoleInfo{Number: req.StartingHole}
			if req.StartingPar != 0 {
				hole.Par = req.StartingPar
			}
			ctx.CurrentHole = hole
		}
	})
	return nil
}

func (s *sessionService) UpdateHole(req session.UpdateHoleRequest) error {
	if err := s.validator.Struct(req); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Rejected hole update")
		return session.ErrInvalidHole
	}

	s.mutate(func(ctx *entity.SessionContext) {
		ctx.CurrentHole = &entity.HoleInfo{Number: req.Number, Par: req.Par}
	})
	return nil
}

func (s *sessionService) UpdateConditions(req session.UpdateConditionsRequest) error {
	s.mutate(func(ctx *entity.SessionContext) {
		ctx.Conditions = &entity.ConditionsInfo{
			Wind:        req.Wind,
			Temperature: req.Temperature,
			Summary:     req.Summary,
		}
	})
	return nil
}

func (s *sessionService) UpdateScore(req session.UpdateScoreRequest) error {
	if err := s.validator.Struct(req); err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Rejected score update")
		return session.ErrInvalidScore
	}

	s.mutate(func(ctx *entity.SessionContext) {
		if ctx.CurrentRound == nil {
			ctx.CurrentRound = &entity.RoundInfo{}
		}
		ctx.CurrentRound.TotalScore = req.Total
		ctx.CurrentRound.HolesDone = req.Completed
	})
	return nil
}

func (s *sessionService) RecordShot(shot entity.Shot) error {
	s.mutate(func(ctx *entity.SessionContext) {
		shotCopy := shot
		ctx.LastShot = &shotCopy
	})
	return nil
}

func (s *sessionService) RecordRecommendation(text string) error {
	if strings.TrimSpace(text) == "" {
		return session.ErrBlankRecommendation
	}

	s.mutate(func(ctx *entity.SessionContext) {
		ctx.LastRecommendation = text
	})
	return nil
}

// AddConversationTurn appends the user turn then the assistant turn, truncating
// oldest-first so the history never exceeds the configured limit.
func (s *sessionService) AddConversationTurn(userInput, assistantResponse string) error {
	if strings.TrimSpace(userInput) == "" || strings.TrimSpace(assistantResponse) == "" {
		return session.ErrBlankConversationTurn
	}

	now := time.Now()
	userID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return err
	}
	assistantID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return err
	}

	s.mutate(func(ctx *entity.SessionContext) {
		ctx.ConversationHistory = append(ctx.ConversationHistory,
			entity.ConversationTurn{
				ID:        userID,
				Role:      entity.TurnRoleUser,
				Content:   userInput,
				Timestamp: now,
			},
			entity.ConversationTurn{
				ID:        assistantID,
				Role:      entity.TurnRoleAssistant,
				Content:   assistantResponse,
				Timestamp: now,
			},
		)
		if overflow := len(ctx.ConversationHistory) - s.config.HistoryLimit; overflow > 0 {
			ctx.ConversationHistory = append(
				[]entity.ConversationTurn(nil),
				ctx.ConversationHistory[overflow:]...,
			)
		}
	})
	return nil
}

func (s *sessionService) ClearSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = s.emptyContext()
	s.publishLocked(cloneContext(s.current))
	return nil
}

func (s *sessionService) ClearConversationHistory() error {
	s.mutate(func(ctx *entity.SessionContext) {
		ctx.ConversationHistory = nil
	})
	return nil
}

// mutate applies fn to a private copy under the lock, commits it as the new
// current value, then publishes the snapshot. Publishing stays inside the
// critical section so subscribers see snapshots in commit order and never a
// torn context.
func (s *sessionService) mutate(fn func(*entity.SessionContext)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := cloneContext(s.current)
	fn(&next)
	next.LastActivity = time.Now()
	s.current = next
	s.publishLocked(cloneContext(next))
}

func (s *sessionService) publishLocked(snapshot entity.SessionContext) {
	for _, ch := range s.subscribers {
		select {
		case ch <- snapshot:
		default:
			// Latest-wins: drop the stale buffered snapshot, then retry once.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}

func cloneContext(ctx entity.SessionContext) entity.SessionContext {
	out := ctx
	if ctx.CurrentRound != nil {
		round := *ctx.CurrentRound
		out.CurrentRound = &round
	}
	if ctx.CurrentHole != nil {
		hole := *ctx.CurrentHole
		out.CurrentHole = &hole
	}
	if ctx.Conditions != nil {
		cond := *ctx.Conditions
		out.Conditions = &cond
	}
	if ctx.LastShot != nil {
		shot := *ctx.LastShot
		out.LastShot = &shot
	}
	if ctx.ConversationHistory != nil {
		out.ConversationHistory = append(
			[]entity.ConversationTurn(nil),
			ctx.ConversationHistory...,
		)
	}
	return out
}
