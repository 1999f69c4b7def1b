package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/contre95/tourstats/src/features/metrics"
	"github.com/contre95/tourstats/src/tour"
)

// Service builds the enhanced show records a statistics run folds over: it
// fetches the tour's setlists (with gap and footnote data) from the catalog
// provider and overlays best-effort track durations from the audio archive.
// Missing archive coverage never blocks a show.
type Service struct {
	setlists tour.SetlistProvider
	archive  tour.ArchiveProvider
	store    tour.StatsStore
	pipeline *metrics.Pipeline
}

// NewService creates a new ingest service. archive may be nil when no
// archive source is configured.
func NewService(setlists tour.SetlistProvider, archive tour.ArchiveProvider, store tour.StatsStore, pipeline *metrics.Pipeline) *Service {
	return &Service{
		setlists: setlists,
		archive:  archive,
		store:    store,
		pipeline: pipeline,
	}
}

// BuildEnhancedShows assembles the enhanced show list and stats context for
// one tour and caches the shows in the store.
func (s *Service) BuildEnhancedShows(ctx context.Context, tourName string) ([]*tour.EnhancedShow, *tour.StatsContext, error) {
	shows, err := s.setlists.GetTourShows(ctx, tourName)
	if err != nil {
		if s.pipeline != nil {
			s.pipeline.IngestError("setlist")
		}
		return nil, nil, fmt.Errorf("failed to fetch setlists for %q: %w", tourName, err)
	}
	if len(shows) == 0 {
		slog.Warn("Catalog returned no shows for tour", "tour", tourName)
		return nil, &tour.StatsContext{}, nil
	}

	sort.SliceStable(shows, func(i, j int) bool {
		return shows[i].ShowDate < shows[j].ShowDate
	})

	s.overlayDurations(ctx, shows)
	s.fillTourPositions(shows, tourName)

	sc := &tour.StatsContext{}
	songs, err := s.setlists.GetComprehensiveSongs(ctx)
	if err != nil {
		// The catalog-dependent statistics degrade to empty, the rest of
		// the run proceeds.
		slog.Warn("Failed to fetch comprehensive song catalog", "error", err)
		if s.pipeline != nil {
			s.pipeline.IngestError("catalog")
		}
	} else {
		sc.ComprehensiveSongs = songs
	}

	if err := s.store.SaveShows(ctx, tourName, shows); err != nil {
		slog.Warn("Failed to cache enhanced shows", "tour", tourName, "error", err)
	}

	slog.Info("Enhanced shows built", "tour", tourName, "shows", len(shows), "catalogSongs", len(sc.ComprehensiveSongs))
	return shows, sc, nil
}

// overlayDurations attaches archive track durations per show where coverage
// exists.
func (s *Service) overlayDurations(ctx context.Context, shows []*tour.EnhancedShow) {
	if s.archive == nil {
		return
	}
	covered := 0
	for _, show := range shows {
		durations, err := s.archive.GetShowDurations(ctx, show.ShowDate)
		if err != nil {
			slog.Debug("No archive durations for show", "date", show.ShowDate, "error", err)
			if s.pipeline != nil {
				s.pipeline.IngestError("archive")
			}
			continue
		}
		if len(durations) > 0 {
			show.TrackDurations = durations
			covered++
		}
	}
	slog.Debug("Archive overlay complete", "covered", covered, "total", len(shows))
}

// fillTourPositions supplies ordinal tour positions for shows the catalog
// left without one. Shows are already date-sorted.
func (s *Service) fillTourPositions(shows []*tour.EnhancedShow, tourName string) {
	total := len(shows)
	for i, show := range shows {
		if show.TourPosition == nil {
			show.TourPosition = &tour.TourPosition{
				TourName:   tourName,
				ShowNumber: i + 1,
				TotalShows: total,
			}
		}
	}
}

// GetCachedShows returns the enhanced shows last cached for a tour.
func (s *Service) GetCachedShows(ctx context.Context, tourName string) ([]*tour.EnhancedShow, error) {
	shows, err := s.store.GetShows(ctx, tourName)
	if err != nil {
		slog.Error("GetCachedShows failed", "tour", tourName, "error", err)
		return nil, err
	}
	return shows, nil
}
