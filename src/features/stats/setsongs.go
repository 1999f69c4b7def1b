package stats

import (
	"sort"
	"strings"

	"github.com/contre95/tourstats/src/tour"
)

// SetSongs computes, per set label, the minimum and maximum song count
// across all shows that had that set. Ties are never broken: every show at
// an extreme is returned. The natural output is a keyed map, so no result
// limit applies.
type SetSongs struct{}

// NewSetSongs creates the songs-per-set calculator.
func NewSetSongs() *SetSongs {
	return &SetSongs{}
}

func (c *SetSongs) Meta() Metadata {
	return Metadata{
		Type:       "setSongStats",
		Name:       "Songs Per Set",
		DataSource: "setlist items",
		Enabled:    true,
		Priority:   5,
	}
}

func (c *SetSongs) Calculate(shows []*tour.EnhancedShow, tourName string, sc *tour.StatsContext) any {
	return runPipeline[*setSongsAcc, map[string]tour.SetSongStats](c, shows, tourName, sc)
}

func (c *SetSongs) EmptyResult() any { return c.emptyResult() }

type setCount struct {
	count int
	show  tour.SetSongShow
}

type setSongsAcc struct {
	// normalized set label -> one count per show that had the set
	bySet map[string][]setCount
}

func (c *SetSongs) validateInput(shows []*tour.EnhancedShow) bool {
	for _, show := range shows {
		if show != nil && len(show.SetlistItems) > 0 {
			return true
		}
	}
	return false
}

func (c *SetSongs) initAccumulator() *setSongsAcc {
	return &setSongsAcc{bySet: make(map[string][]setCount)}
}

func (c *SetSongs) processShow(show *tour.EnhancedShow, acc *setSongsAcc) {
	counts := make(map[string]int)
	for _, item := range show.SetlistItems {
		label := strings.ToLower(strings.TrimSpace(item.SetLabel))
		if label == "" {
			continue
		}
		counts[label]++
	}
	showData := tour.SetSongShow{
		Date:     show.ShowDate,
		Venue:    show.Venue(),
		City:     show.City(),
		State:    show.State(),
		VenueRun: show.VenueRun,
	}
	for label, count := range counts {
		acc.bySet[label] = append(acc.bySet[label], setCount{count: count, show: showData})
	}
}

func (c *SetSongs) generateResults(acc *setSongsAcc, tourName string, sc *tour.StatsContext) map[string]tour.SetSongStats {
	results := make(map[string]tour.SetSongStats, len(acc.bySet))
	for label, counts := range acc.bySet {
		min, max := counts[0].count, counts[0].count
		for _, sc := range counts {
			if sc.count < min {
				min = sc.count
			}
			if sc.count > max {
				max = sc.count
			}
		}
		stats := tour.SetSongStats{
			Min: tour.SetSongExtreme{Count: min, Shows: []tour.SetSongShow{}},
			Max: tour.SetSongExtreme{Count: max, Shows: []tour.SetSongShow{}},
		}
		for _, sc := range counts {
			if sc.count == min {
				stats.Min.Shows = append(stats.Min.Shows, sc.show)
			}
			if sc.count == max {
				stats.Max.Shows = append(stats.Max.Shows, sc.show)
			}
		}
		sortSetSongShows(stats.Min.Shows)
		sortSetSongShows(stats.Max.Shows)
		results[label] = stats
	}
	return results
}

func sortSetSongShows(shows []tour.SetSongShow) {
	sort.SliceStable(shows, func(i, j int) bool {
		return shows[i].Date < shows[j].Date
	})
}

func (c *SetSongs) emptyResult() map[string]tour.SetSongStats {
	return map[string]tour.SetSongStats{}
}
