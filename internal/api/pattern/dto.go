package pattern

import "ProjectCaddie/internal/entity"

type Statistics struct {
	TotalShots       int                  `json:"total_shots"`
	TotalMisses      int                  `json:"total_misses"`
	TopMissDirection entity.MissDirection `json:"top_miss_direction,omitempty"`
	MeanConfidence   float64              `json:"mean_confidence"`
	PatternCount     int                  `json:"pattern_count"`
}
