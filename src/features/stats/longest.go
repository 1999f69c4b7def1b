package stats

import (
	"sort"

	"github.com/contre95/tourstats/src/tour"
)

// LongestSongs ranks every archived track of the tour by duration.
type LongestSongs struct {
	limit int
}

// NewLongestSongs creates the longest-songs calculator.
func NewLongestSongs(limit int) *LongestSongs {
	if limit == 0 {
		limit = DefaultLimit
	}
	return &LongestSongs{limit: limit}
}

func (c *LongestSongs) Meta() Metadata {
	return Metadata{
		Type:       "longestSongs",
		Name:       "Longest Songs",
		DataSource: "audio archive track durations",
		Enabled:    true,
		Priority:   1,
	}
}

func (c *LongestSongs) Calculate(shows []*tour.EnhancedShow, tourName string, sc *tour.StatsContext) any {
	return runPipeline[*longestAcc, []tour.TrackDuration](c, shows, tourName, sc)
}

func (c *LongestSongs) EmptyResult() any { return c.emptyResult() }

type longestAcc struct {
	durations []tour.TrackDuration
}

// validateInput requires at least one show with archive coverage.
func (c *LongestSongs) validateInput(shows []*tour.EnhancedShow) bool {
	for _, show := range shows {
		if show != nil && len(show.TrackDurations) > 0 {
			return true
		}
	}
	return false
}

func (c *LongestSongs) initAccumulator() *longestAcc {
	return &longestAcc{}
}

func (c *LongestSongs) processShow(show *tour.EnhancedShow, acc *longestAcc) {
	acc.durations = append(acc.durations, show.TrackDurations...)
}

func (c *LongestSongs) generateResults(acc *longestAcc, tourName string, sc *tour.StatsContext) []tour.TrackDuration {
	sort.SliceStable(acc.durations, func(i, j int) bool {
		return acc.durations[i].DurationSeconds > acc.durations[j].DurationSeconds
	})
	return limitResults(acc.durations, c.limit)
}

func (c *LongestSongs) emptyResult() []tour.TrackDuration {
	return []tour.TrackDuration{}
}
