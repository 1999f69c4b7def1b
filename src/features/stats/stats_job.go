package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/contre95/tourstats/src/features/jobs"
	"github.com/contre95/tourstats/src/tour"
)

// ShowSource provides the enhanced shows and auxiliary context a generation
// run folds over.
type ShowSource interface {
	BuildEnhancedShows(ctx context.Context, tourName string) ([]*tour.EnhancedShow, *tour.StatsContext, error)
}

// GenerateJobTask runs a full ingest-and-compute cycle for one tour as a
// background job.
type GenerateJobTask struct {
	service *Service
	source  ShowSource
}

// NewGenerateJobTask creates a new statistics generation task.
func NewGenerateJobTask(service *Service, source ShowSource) *GenerateJobTask {
	return &GenerateJobTask{service: service, source: source}
}

// MetadataKeys returns the required metadata keys for generation jobs.
func (t *GenerateJobTask) MetadataKeys() []string {
	return []string{"tour"}
}

// Execute performs the generation run.
func (t *GenerateJobTask) Execute(ctx context.Context, job *jobs.Job, progressUpdater func(int, string)) (map[string]any, error) {
	tourName, _ := job.Metadata["tour"].(string)
	if tourName == "" {
		return nil, fmt.Errorf("tour metadata is not a string")
	}

	progressUpdater(5, fmt.Sprintf("Fetching shows for %s", tourName))
	shows, sc, err := t.source.BuildEnhancedShows(ctx, tourName)
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	progressUpdater(60, fmt.Sprintf("Computing statistics over %d shows", len(shows)))
	stats, err := t.service.GenerateAndStore(ctx, shows, tourName, sc)
	if err != nil {
		return nil, err
	}

	progressUpdater(100, "Statistics stored")
	slog.Info("Statistics generation job finished", "tour", tourName, "shows", len(shows), "hasData", stats.HasData())
	return map[string]any{
		"tour":    tourName,
		"shows":   len(shows),
		"hasData": stats.HasData(),
		"msg":     fmt.Sprintf("Statistics for %s generated from %d shows", tourName, len(shows)),
	}, nil
}

// Cleanup has nothing to release; runs hold no resources past Execute.
func (t *GenerateJobTask) Cleanup(job *jobs.Job) error {
	return nil
}
