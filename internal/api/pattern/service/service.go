package patternService

import (
	"context"
	"time"

	"ProjectCaddie/internal/api/pattern"
	patternRepository "ProjectCaddie/internal/api/pattern/repository"
	"ProjectCaddie/internal/entity"

	"github.com/sirupsen/logrus"
)

type IPatternService interface {
	AggregatePatterns(shots []entity.Shot, applyDecay bool) []entity.MissPattern

	GetPatternsForClub(ctx context.Context, club string) ([]entity.MissPattern, error)
	GetPatternsForDirection(ctx context.Context, direction entity.MissDirection) ([]entity.MissPattern, error)
	GetPatternsForPressure(ctx context.Context) ([]entity.MissPattern, error)

	GetStatistics(shots []entity.Shot) pattern.Statistics
}

type PatternConfig struct {
	MinFrequency  int           `json:"min_frequency"`
	MinConfidence float64       `json:"min_confidence"`
	WindowDays    int           `json:"window_days"`
	HalfLife      time.Duration `json:"half_life"`
}

func DefaultPatternConfig() PatternConfig {
	return PatternConfig{
		MinFrequency:  3,
		MinConfidence: 0.10,
		WindowDays:    30,
		HalfLife:      14 * 24 * time.Hour,
	}
}

type patternService struct {
	log    *logrus.Logger
	repo   patternRepository.Repository
	decay  DecayFunc
	config PatternConfig
}

func NewPatternService(
	log *logrus.Logger,
	repo patternRepository.Repository,
	decay DecayFunc,
	config PatternConfig,
) IPatternService {
	if config.MinFrequency <= 0 {
		config.MinFrequency = 3
	}
	if config.WindowDays <= 0 {
		config.WindowDays = 30
	}
	if decay == nil {
		decay = NewHalfLifeDecay(config.HalfLife, nil)
	}

	return &patternService{
		log:    log,
		repo:   repo,
		decay:  decay,
		config: config,
	}
}
