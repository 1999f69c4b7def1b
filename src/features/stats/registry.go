package stats

import (
	"log/slog"
	"sort"

	"github.com/contre95/tourstats/src/features/metrics"
	"github.com/contre95/tourstats/src/tour"
)

// Limits configures per-calculator result caps. Zero values fall back to the
// calculator defaults.
type Limits struct {
	LongestSongs    int `yaml:"longest_songs"`
	RarestSongs     int `yaml:"rarest_songs"`
	MostPlayedSongs int `yaml:"most_played_songs"`
	SongsNotPlayed  int `yaml:"songs_not_played"`
}

// Registry owns the calculator set. Calculators share no state, so execution
// order only affects logging, never results.
type Registry struct {
	calculators []Calculator
	pipeline    *metrics.Pipeline
}

// NewRegistry instantiates every calculator with run configuration. pipeline
// may be nil when instrumentation is not wanted.
func NewRegistry(limits Limits, pipeline *metrics.Pipeline) *Registry {
	return &Registry{
		pipeline: pipeline,
		calculators: []Calculator{
			NewLongestSongs(limits.LongestSongs),
			NewRarestSongs(limits.RarestSongs),
			NewMostPlayedSongs(limits.MostPlayedSongs),
			NewMostCommonNotPlayed(limits.SongsNotPlayed),
			NewSetSongs(),
			NewPositions(),
			NewRepeats(),
			NewDebuts(),
		},
	}
}

// Calculators returns the registered calculators ordered by display priority.
func (r *Registry) Calculators() []Calculator {
	ordered := make([]Calculator, len(r.calculators))
	copy(ordered, r.calculators)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Meta().Priority < ordered[j].Meta().Priority
	})
	return ordered
}

// RunAll executes every enabled calculator over the same show list and
// assembles the combined result map keyed by statistic type. A panicking
// calculator is isolated: its entry becomes the empty shape and the others
// still run.
func (r *Registry) RunAll(shows []*tour.EnhancedShow, tourName string, sc *tour.StatsContext) map[string]any {
	results := make(map[string]any, len(r.calculators))
	for _, calc := range r.Calculators() {
		meta := calc.Meta()
		if !meta.Enabled {
			slog.Debug("Calculator disabled, skipping", "type", meta.Type)
			results[meta.Type] = calc.EmptyResult()
			continue
		}
		results[meta.Type] = r.runOne(calc, shows, tourName, sc)
	}
	return results
}

func (r *Registry) runOne(calc Calculator, shows []*tour.EnhancedShow, tourName string, sc *tour.StatsContext) (result any) {
	meta := calc.Meta()
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("Calculator panicked, using empty result", "type", meta.Type, "panic", rec)
			if r.pipeline != nil {
				r.pipeline.CalculatorFailure(meta.Type)
			}
			result = calc.EmptyResult()
		}
	}()
	slog.Debug("Running calculator", "type", meta.Type, "shows", len(shows))
	return calc.Calculate(shows, tourName, sc)
}
