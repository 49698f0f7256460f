package caddieService

import (
	"context"

	"ProjectCaddie/internal/api/caddie"
	sessionService "ProjectCaddie/internal/api/session/service"
	"ProjectCaddie/internal/entity"
	"ProjectCaddie/pkg/llm"
	"ProjectCaddie/pkg/nlp"
	"ProjectCaddie/pkg/utils"

	"github.com/sirupsen/logrus"
)

type ICaddieService interface {
	Classify(ctx context.Context, rawInput string, sctx *entity.SessionContext) caddie.ClassificationResult
	GenerateClarification(input string, parsed *entity.ParsedIntent, sctx *entity.SessionContext) caddie.ClarificationResponse
	Route(ctx context.Context, result caddie.ClassificationResult) caddie.RoutingResult
	HandleUtterance(ctx context.Context, rawInput string) caddie.RoutingResult
}

type CaddieConfig struct {
	RouteThreshold   float64  `json:"route_threshold"`
	ConfirmThreshold float64  `json:"confirm_threshold"`
	HistoryTurns     int      `json:"history_turns"`
	KnownClubs       []string `json:"known_clubs"`
}

func DefaultCaddieConfig() CaddieConfig {
	return CaddieConfig{
		RouteThreshold:   0.75,
		ConfirmThreshold: 0.50,
		HistoryTurns:     6,
		KnownClubs: []string{
			"driver", "3 wood", "5 wood", "7 wood",
			"2 hybrid", "3 hybrid", "4 hybrid", "5 hybrid",
			"2 iron", "3 iron", "4 iron", "5 iron", "6 iron", "7 iron", "8 iron", "9 iron",
			"pitching wedge", "gap wedge", "sand wedge", "lob wedge",
			"putter",
		},
	}
}

type caddieService struct {
	log         *logrus.Logger
	normalizer  nlp.INormalizer
	intentModel llm.IIntentModel
	checker     caddie.PrerequisiteChecker
	sessions    sessionService.ISessionService
	registry    caddie.IntentRegistry
	utils       utils.IUtils
	config      CaddieConfig
	knownClubs  map[string]struct{}
}

func NewCaddieService(
	log *logrus.Logger,
	normalizer nlp.INormalizer,
	intentModel llm.IIntentModel,
	checker caddie.PrerequisiteChecker,
	sessions sessionService.ISessionService,
	registry caddie.IntentRegistry,
	ids utils.IUtils,
	config CaddieConfig,
) ICaddieService {
	if config.RouteThreshold <= 0 {
		config.RouteThreshold = 0.75
	}
	if config.ConfirmThreshold <= 0 {
		config.ConfirmThreshold = 0.50
	}
	if config.HistoryTurns <= 0 {
		config.HistoryTurns = 6
	}

	clubs := make(map[string]struct{}, len(config.KnownClubs))
	for _, club := range config.KnownClubs {
		clubs[club] = struct{}{}
	}

	return &caddieService{
		log:         log,
		normalizer:  normalizer,
		intentModel: intentModel,
		checker:     checker,
		sessions:    sessions,
		registry:    registry,
		utils:       ids,
		config:      config,
		knownClubs:  clubs,
	}
}
