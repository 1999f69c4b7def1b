package tour

import "context"

// SetlistProvider is the catalog collaborator: per-show setlists with gap
// and footnote data, plus the comprehensive historical song catalog.
type SetlistProvider interface {
	GetTourShows(ctx context.Context, tourName string) ([]*EnhancedShow, error)
	GetComprehensiveSongs(ctx context.Context) ([]CatalogSong, error)
}

// ArchiveProvider is the audio-archive collaborator: best-effort track
// durations for a show date. An empty result is not an error; archive
// coverage is incomplete by nature.
type ArchiveProvider interface {
	GetShowDurations(ctx context.Context, showDate string) ([]TrackDuration, error)
}

// StatsStore persists computed statistics snapshots and caches the enhanced
// shows they were computed from.
type StatsStore interface {
	SaveStats(ctx context.Context, stats *TourStats) error
	GetLatestStats(ctx context.Context, tourName string) (*TourStats, error)
	ListTours(ctx context.Context) ([]string, error)

	SaveShows(ctx context.Context, tourName string, shows []*EnhancedShow) error
	GetShows(ctx context.Context, tourName string) ([]*EnhancedShow, error)
}
