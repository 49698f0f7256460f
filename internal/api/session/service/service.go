package sessionService

import (
	"ProjectCaddie/internal/api/session"
	"ProjectCaddie/internal/entity"
	"ProjectCaddie/pkg/utils"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type ISessionService interface {
	Snapshot() entity.SessionContext
	Subscribe() (<-chan entity.SessionContext, func())

	UpdateRound(req session.UpdateRoundRequest) error
	UpdateHole(req session.UpdateHoleRequest) error
	UpdateConditions(req session.UpdateConditionsRequest) error
	UpdateScore(req session.UpdateScoreRequest) error
	RecordShot(shot entity.Shot) error
	RecordRecommendation(text string) error
	AddConversationTurn(userInput, assistantResponse string) error
	ClearSession() error
	ClearConversationHistory() error
}

type SessionConfig struct {
	HistoryLimit int `json:"history_limit"`
}

type sessionService struct {
	log       *logrus.Logger
	validator *validator.Validate
	utils     utils.IUtils
	config    SessionConfig

	mu          sync.Mutex
	current     entity.SessionContext
	subscribers map[int]chan entity.SessionContext
	nextSubID   int
}

func NewSessionService(
	log *logrus.Logger,
	validate *validator.Validate,
	ids utils.IUtils,
	config SessionConfig,
) ISessionService {
	if config.HistoryLimit <= 0 {
		config.HistoryLimit = 10
	}

	s := &sessionService{
		log:         log,
		validator:   validate,
		utils:       ids,
		config:      config,
		subscribers: make(map[int]chan entity.SessionContext),
	}
	s.current = s.emptyContext()
	return s
}

func (s *sessionService) emptyContext() entity.SessionContext {
	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to generate session ID")
		id = "session-unknown"
	}
	return entity.SessionContext{
		SessionID:    id,
		LastActivity: time.Now(),
	}
}
