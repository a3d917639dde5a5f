package services

import (
	"math"
	"sync"
	"time"

	"github.com/petpsych/behavior-analysis-api/internal/models"
)

// Stats tracks in-process usage counters since startup. Nothing is persisted;
// counters reset when the process restarts.
type Stats struct {
	mu           sync.Mutex
	total        int64
	succeeded    int64
	bySpecies    map[string]int64
	totalSeconds float64
}

func NewStats() *Stats {
	return &Stats{bySpecies: make(map[string]int64)}
}

// Record counts one completed analysis attempt. Processing time only
// contributes to the average on success.
func (s *Stats) Record(species string, seconds float64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	s.bySpecies[species]++
	if ok {
		s.succeeded++
		s.totalSeconds += seconds
	}
}

func (s *Stats) Snapshot(now time.Time) models.StatsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	species := make(map[string]int64, len(s.bySpecies))
	for k, v := range s.bySpecies {
		species[k] = v
	}

	avg := 0.0
	if s.succeeded > 0 {
		avg = round2(s.totalSeconds / float64(s.succeeded))
	}
	rate := 0.0
	if s.total > 0 {
		rate = round2(float64(s.succeeded) / float64(s.total) * 100)
	}

	return models.StatsResponse{
		TotalAnalyses:         s.total,
		SpeciesAnalyzed:       species,
		AverageProcessingTime: avg,
		SuccessRate:           rate,
		Timestamp:             now.Format(time.RFC3339),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
