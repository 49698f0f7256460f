package patternService

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	patternRepository "ProjectCaddie/internal/api/pattern/repository"
	"ProjectCaddie/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newService(repo patternRepository.Repository, decay DecayFunc) IPatternService {
	return NewPatternService(testLogger(), repo, decay, DefaultPatternConfig())
}

func makeShots(count int, club string, direction entity.MissDirection, at time.Time) []entity.Shot {
	shots := make([]entity.Shot, 0, count)
	for i := 0; i < count; i++ {
		shots = append(shots, entity.Shot{
			ID:            fmt.Sprintf("s-%s-%d", club, i),
			Timestamp:     at,
			Club:          club,
			MissDirection: direction,
		})
	}
	return shots
}

func TestAggregatePatterns_MinimumEvidence(t *testing.T) {
	svc := newService(patternRepository.NewMemoryRepository(), NoDecay)
	now := time.Now()

	// Two left misses: below the frequency floor, no pattern.
	patterns := svc.AggregatePatterns(makeShots(2, "7 iron", entity.MissLeft, now), false)
	assert.Empty(t, patterns)

	// Three left misses: exactly at the floor.
	patterns = svc.AggregatePatterns(makeShots(3, "7 iron", entity.MissLeft, now), false)
	require.NotEmpty(t, patterns)
	assert.Equal(t, entity.MissLeft, patterns[0].Direction)
	assert.Equal(t, 3, patterns[0].Frequency)
	assert.InDelta(t, 0.3, patterns[0].Confidence, 1e-9)
}

func TestAggregatePatterns_StraightShotsAreNotMisses(t *testing.T) {
	svc := newService(patternRepository.NewMemoryRepository(), NoDecay)

	patterns := svc.AggregatePatterns(makeShots(5, "driver", entity.MissStraight, time.Now()), false)
	assert.Empty(t, patterns)
}

func TestAggregatePatterns_ConfidenceCapsAtOne(t *testing.T) {
	svc := newService(patternRepository.NewMemoryRepository(), NoDecay)

	patterns := svc.AggregatePatterns(makeShots(25, "driver", entity.MissRight, time.Now()), false)
	require.NotEmpty(t, patterns)
	for _, p := range patterns {
		assert.LessOrEqual(t, p.Confidence, 1.0)
	}
}

func TestAggregatePatterns_Idempotent(t *testing.T) {
	svc := newService(patternRepository.NewMemoryRepository(), NoDecay)
	now := time.Now()

	shots := append(makeShots(4, "7 iron", entity.MissLeft, now),
		makeShots(6, "driver", entity.MissRight, now.Add(-time.Hour))...)

	first := svc.AggregatePatterns(shots, true)
	second := svc.AggregatePatterns(shots, true)
	assert.Equal(t, first, second)
}

func TestAggregatePatterns_ClubSpecificGroups(t *testing.T) {
	svc := newService(patternRepository.NewMemoryRepository(), NoDecay)
	now := time.Now()

	shots := append(makeShots(3, "7 iron", entity.MissLeft, now),
		makeShots(3, "driver", entity.MissLeft, now)...)

	patterns := svc.AggregatePatterns(shots, false)

	var overall, sevenIron, driver bool
	for _, p := range patterns {
		switch {
		case p.Club == "" && p.PressureContext == nil:
			overall = p.Frequency == 6
		case p.Club == "7 iron":
			sevenIron = p.Frequency == 3
		case p.Club == "driver":
			driver = p.Frequency == 3
		}
	}
	assert.True(t, overall, "direction-wide group should count all six misses")
	assert.True(t, sevenIron)
	assert.True(t, driver)
}

func TestAggregatePatterns_PressureGroup(t *testing.T) {
	svc := newService(patternRepository.NewMemoryRepository(), NoDecay)
	now := time.Now()

	shots := makeShots(4, "wedge", entity.MissShort, now)
	for i := range shots {
		shots[i].PressureContext = entity.PressureContext{IsUserTagged: true}
	}

	patterns := svc.AggregatePatterns(shots, false)

	found := false
	for _, p := range patterns {
		if p.PressureContext != nil {
			found = true
			assert.Equal(t, entity.MissShort, p.Direction)
			assert.Equal(t, 4, p.Frequency)
		}
	}
	assert.True(t, found, "pressure-tagged misses should form their own group")
}

func TestAggregatePatterns_DecayReducesStaleConfidence(t *testing.T) {
	now := time.Now()
	decay := NewHalfLifeDecay(14*24*time.Hour, func() time.Time { return now })
	svc := newService(patternRepository.NewMemoryRepository(), decay)

	fresh := svc.AggregatePatterns(makeShots(6, "7 iron", entity.MissLeft, now), true)
	stale := svc.AggregatePatterns(makeShots(6, "7 iron", entity.MissLeft, now.Add(-14*24*time.Hour)), true)

	require.NotEmpty(t, fresh)
	require.NotEmpty(t, stale)
	assert.InDelta(t, 0.6, fresh[0].Confidence, 1e-9)
	assert.InDelta(t, 0.3, stale[0].Confidence, 1e-9)
}

func TestAggregatePatterns_DecayDropsBelowFloor(t *testing.T) {
	now := time.Now()
	decay := NewHalfLifeDecay(14*24*time.Hour, func() time.Time { return now })
	svc := newService(patternRepository.NewMemoryRepository(), decay)

	// 0.3 base confidence through three half-lives lands at 0.0375, under 0.10.
	ancient := makeShots(3, "7 iron", entity.MissLeft, now.Add(-42*24*time.Hour))
	assert.Empty(t, svc.AggregatePatterns(ancient, true))

	// Without decay the same shots qualify.
	assert.NotEmpty(t, svc.AggregatePatterns(ancient, false))
}

func TestGetPatternsForClub_FiltersByClubAndWindow(t *testing.T) {
	now := time.Now()
	repo := patternRepository.NewMemoryRepositoryWithClock(func() time.Time { return now })
	svc := newService(repo, NoDecay)
	ctx := context.Background()

	for _, shot := range makeShots(4, "7 iron", entity.MissLeft, now.Add(-time.Hour)) {
		require.NoError(t, repo.RecordShot(ctx, shot))
	}
	for _, shot := range makeShots(4, "driver", entity.MissRight, now.Add(-time.Hour)) {
		require.NoError(t, repo.RecordShot(ctx, shot))
	}
	// Outside the 30-day lookup window.
	for _, shot := range makeShots(4, "7 iron", entity.MissLong, now.Add(-40*24*time.Hour)) {
		require.NoError(t, repo.RecordShot(ctx, shot))
	}

	patterns, err := svc.GetPatternsForClub(ctx, "7 iron")
	require.NoError(t, err)
	require.NotEmpty(t, patterns)
	for _, p := range patterns {
		assert.Equal(t, entity.MissLeft, p.Direction)
		assert.NotEqual(t, entity.MissLong, p.Direction, "stale shots must stay outside the window")
	}
}

func TestGetPatternsForDirection(t *testing.T) {
	now := time.Now()
	repo := patternRepository.NewMemoryRepositoryWithClock(func() time.Time { return now })
	svc := newService(repo, NoDecay)
	ctx := context.Background()

	for _, shot := range makeShots(5, "7 iron", entity.MissLeft, now.Add(-time.Hour)) {
		require.NoError(t, repo.RecordShot(ctx, shot))
	}
	for _, shot := range makeShots(5, "driver", entity.MissRight, now.Add(-time.Hour)) {
		require.NoError(t, repo.RecordShot(ctx, shot))
	}

	patterns, err := svc.GetPatternsForDirection(ctx, entity.MissLeft)
	require.NoError(t, err)
	require.NotEmpty(t, patterns)
	for _, p := range patterns {
		assert.Equal(t, entity.MissLeft, p.Direction)
	}
}

func TestGetPatternsForPressure(t *testing.T) {
	now := time.Now()
	repo := patternRepository.NewMemoryRepositoryWithClock(func() time.Time { return now })
	svc := newService(repo, NoDecay)
	ctx := context.Background()

	pressured := makeShots(4, "wedge", entity.MissShort, now.Add(-time.Hour))
	for i := range pressured {
		pressured[i].PressureContext = entity.PressureContext{IsInferred: true}
		require.NoError(t, repo.RecordShot(ctx, pressured[i]))
	}
	for _, shot := range makeShots(4, "wedge", entity.MissShort, now.Add(-time.Hour)) {
		require.NoError(t, repo.RecordShot(ctx, shot))
	}

	patterns, err := svc.GetPatternsForPressure(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, patterns)

	foundPressure := false
	for _, p := range patterns {
		assert.Equal(t, 4, p.Frequency, "only pressured shots should feed these groups")
		if p.PressureContext != nil {
			foundPressure = true
		}
	}
	assert.True(t, foundPressure)
}

func TestGetStatistics(t *testing.T) {
	svc := newService(patternRepository.NewMemoryRepository(), NoDecay)
	now := time.Now()

	shots := append(makeShots(4, "7 iron", entity.MissLeft, now),
		makeShots(2, "driver", entity.MissStraight, now)...)

	stats := svc.GetStatistics(shots)
	assert.Equal(t, 6, stats.TotalShots)
	assert.Equal(t, 4, stats.TotalMisses)
	assert.Equal(t, entity.MissLeft, stats.TopMissDirection)
	assert.Greater(t, stats.PatternCount, 0)
	assert.Greater(t, stats.MeanConfidence, 0.0)
}

func TestGetStatistics_Empty(t *testing.T) {
	svc := newService(patternRepository.NewMemoryRepository(), NoDecay)

	stats := svc.GetStatistics(nil)
	assert.Zero(t, stats.TotalShots)
	assert.Zero(t, stats.TotalMisses)
	assert.Zero(t, stats.PatternCount)
	assert.Zero(t, stats.MeanConfidence)
}
