package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/contre95/tourstats/src/features/metrics"
	"github.com/contre95/tourstats/src/tour"
)

// Service orchestrates statistics generation: it validates the overall
// input, runs the registry and assembles the final statistics object, then
// persists it through the stats store.
type Service struct {
	registry *Registry
	store    tour.StatsStore
	pipeline *metrics.Pipeline
}

// NewService creates a new stats service.
func NewService(registry *Registry, store tour.StatsStore, pipeline *metrics.Pipeline) *Service {
	return &Service{
		registry: registry,
		store:    store,
		pipeline: pipeline,
	}
}

// GenerateStats computes the full statistics object for one tour. It always
// returns a well-formed object: an empty show list short-circuits to the
// all-empty shape, and a missing or mistyped registry entry degrades to that
// field's empty value rather than failing the run.
func (s *Service) GenerateStats(shows []*tour.EnhancedShow, tourName string, sc *tour.StatsContext) *tour.TourStats {
	stats := tour.EmptyTourStats(tourName)
	if len(shows) == 0 {
		slog.Warn("No shows to compute statistics from", "tour", tourName)
		return stats
	}

	started := time.Now()
	results := s.registry.RunAll(shows, tourName, sc)

	copyResult(results, "longestSongs", &stats.LongestSongs)
	copyResult(results, "rarestSongs", &stats.RarestSongs)
	copyResult(results, "mostPlayedSongs", &stats.MostPlayedSongs)
	copyResult(results, "mostCommonSongsNotPlayed", &stats.MostCommonSongsNotPlayed)
	copyResult(results, "setSongStats", &stats.SetSongStats)
	copyResult(results, "openersClosers", &stats.OpenersClosers)
	copyResult(results, "repeats", &stats.Repeats)
	copyResult(results, "debuts", &stats.Debuts)

	if s.pipeline != nil {
		s.pipeline.ObserveRun(tourName, len(shows), time.Since(started))
	}
	slog.Info("Statistics generated",
		"tour", tourName,
		"shows", len(shows),
		"hasData", stats.HasData(),
		"duration", time.Since(started).String(),
	)
	return stats
}

// copyResult moves one registry entry into its typed field, leaving the
// field's empty shape in place when the entry is missing or mistyped.
func copyResult[T any](results map[string]any, key string, dst *T) {
	raw, ok := results[key]
	if !ok {
		slog.Warn("Registry produced no entry for statistic", "type", key)
		return
	}
	typed, ok := raw.(T)
	if !ok {
		slog.Error("Registry entry has unexpected type", "type", key, "value", fmt.Sprintf("%T", raw))
		return
	}
	*dst = typed
}

// GenerateAndStore computes the statistics for a tour and persists the
// snapshot.
func (s *Service) GenerateAndStore(ctx context.Context, shows []*tour.EnhancedShow, tourName string, sc *tour.StatsContext) (*tour.TourStats, error) {
	stats := s.GenerateStats(shows, tourName, sc)
	stats.GeneratedAt = time.Now().UTC()
	if err := s.store.SaveStats(ctx, stats); err != nil {
		return nil, fmt.Errorf("failed to persist statistics for %q: %w", tourName, err)
	}
	return stats, nil
}

// GetLatestStats returns the most recent persisted snapshot for a tour.
func (s *Service) GetLatestStats(ctx context.Context, tourName string) (*tour.TourStats, error) {
	stats, err := s.store.GetLatestStats(ctx, tourName)
	if err != nil {
		slog.Error("GetLatestStats failed", "tour", tourName, "error", err)
		return nil, err
	}
	return stats, nil
}

// ListTours returns every tour with a persisted snapshot.
func (s *Service) ListTours(ctx context.Context) ([]string, error) {
	tours, err := s.store.ListTours(ctx)
	if err != nil {
		slog.Error("ListTours failed", "error", err)
		return nil, err
	}
	return tours, nil
}
