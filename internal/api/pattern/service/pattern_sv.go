package patternService

import (
	"context"
	"math"
	"sort"
	"time"

	"ProjectCaddie/internal/api/pattern"
	"ProjectCaddie/internal/entity"

	"github.com/sirupsen/logrus"
)

type shotGroup struct {
	direction entity.MissDirection
	club      string
	pressure  bool

	frequency      int
	lastOccurrence time.Time
}

// AggregatePatterns derives miss patterns from a shot snapshot. Pure: the same
// input and decay flag always produce the same output, and nothing is stored.
func (s *patternService) AggregatePatterns(shots []entity.Shot, applyDecay bool) []entity.MissPattern {
	groups := make(map[string]*shotGroup)

	accumulate := func(key string, direction entity.MissDirection, club string, pressure bool, shot entity.Shot) {
		g, ok := groups[key]
		if !ok {
			g = &shotGroup{direction: direction, club: club, pressure: pressure}
			groups[key] = g
		}
		g.frequency++
		if shot.Timestamp.After(g.lastOccurrence) {
			g.lastOccurrence = shot.Timestamp
		}
	}

	for _, shot := range shots {
		dir := shot.MissDirection
		if dir == "" || dir == entity.MissStraight {
			continue
		}

		accumulate("d:"+string(dir), dir, "", false, shot)
		if shot.Club != "" {
			accumulate("d:"+string(dir)+"|c:"+shot.Club, dir, shot.Club, false, shot)
		}
		if shot.PressureContext.HasPressure() {
			accumulate("d:"+string(dir)+"|p", dir, "", true, shot)
		}
	}

	var patterns []entity.MissPattern
	for _, g := range groups {
		if g.frequency < s.config.MinFrequency {
			continue
		}

		confidence := math.Min(1.0, float64(g.frequency)/10.0)
		if applyDecay {
			confidence *= s.decay(g.lastOccurrence)
		}
		if confidence < s.config.MinConfidence {
			continue
		}

		p := entity.MissPattern{
			Direction:      g.direction,
			Club:           g.club,
			Frequency:      g.frequency,
			Confidence:     confidence,
			LastOccurrence: g.lastOccurrence,
		}
		if g.pressure {
			p.PressureContext = &entity.PressureContext{IsInferred: true}
		}
		patterns = append(patterns, p)
	}

	// Deterministic order: confidence, then frequency, then identity fields.
	sort.Slice(patterns, func(i, j int) bool {
		a, b := patterns[i], patterns[j]
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		if a.Frequency != b.Frequency {
			return a.Frequency > b.Frequency
		}
		if a.Direction != b.Direction {
			return a.Direction < b.Direction
		}
		if a.Club != b.Club {
			return a.Club < b.Club
		}
		return a.PressureContext == nil && b.PressureContext != nil
	})

	return patterns
}

func (s *patternService) GetPatternsForClub(ctx context.Context, club string) ([]entity.MissPattern, error) {
	shots, err := s.recentShots(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []entity.Shot
	for _, shot := range shots {
		if shot.Club == club {
			filtered = append(filtered, shot)
		}
	}
	return s.AggregatePatterns(filtered, true), nil
}

func (s *patternService) GetPatternsForDirection(ctx context.Context, direction entity.MissDirection) ([]entity.MissPattern, error) {
	shots, err := s.recentShots(ctx)
	if err != nil {
		return nil, err
	}

	var filtered []entity.Shot
	for _, shot := range shots {
		if shot.MissDirection == direction {
			filtered = append(filtered, shot)
		}
	}
	return s.AggregatePatterns(filtered, true), nil
}

func (s *patternService) GetPatternsForPressure(ctx context.Context) ([]entity.MissPattern, error) {
	shots, err := s.repo.GetShotsWithPressure(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to load pressure shots")
		return nil, pattern.ErrStorageFailure
	}

	cutoff := time.Now().Add(-time.Duration(s.config.WindowDays) * 24 * time.Hour)
	var filtered []entity.Shot
	for _, shot := range shots {
		if !shot.Timestamp.Before(cutoff) {
			filtered = append(filtered, shot)
		}
	}
	return s.AggregatePatterns(filtered, true), nil
}

// GetStatistics summarizes a shot snapshot for display surfaces.
func (s *patternService) GetStatistics(shots []entity.Shot) pattern.Statistics {
	stats := pattern.Statistics{TotalShots: len(shots)}

	directionCounts := make(map[entity.MissDirection]int)
	for _, shot := range shots {
		if shot.MissDirection == "" || shot.MissDirection == entity.MissStraight {
			continue
		}
		stats.TotalMisses++
		directionCounts[shot.MissDirection]++
	}

	best := 0
	for dir, count := range directionCounts {
		if count > best || (count == best && dir < stats.TopMissDirection) {
			best = count
			stats.TopMissDirection = dir
		}
	}

	patterns := s.AggregatePatterns(shots, true)
	stats.PatternCount = len(patterns)
	if len(patterns) > 0 {
		sum := 0.0
		for _, p := range patterns {
			sum += p.Confidence
		}
		stats.MeanConfidence = sum / float64(len(patterns))
	}

	return stats
}

func (s *patternService) recentShots(ctx context.Context) ([]entity.Shot, error) {
	shots, err := s.repo.GetRecentShots(ctx, s.config.WindowDays)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Error("Failed to load recent shots")
		return nil, pattern.ErrStorageFailure
	}
	return shots, nil
}
