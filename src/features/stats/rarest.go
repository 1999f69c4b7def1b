package stats

import (
	"sort"

	"github.com/contre95/tourstats/src/tour"
)

// RarestSongs ranks songs by their historical gap at the moment they were
// played this tour. A song played several times in one tour is represented
// once, by its single rarest occurrence: the fold keeps, per song, the
// maximum gap seen so far (progressive-maximum tracking), so the result
// reflects the most surprising moment rather than an average or a duplicate
// entry per play.
type RarestSongs struct {
	limit int
}

// NewRarestSongs creates the rarest-songs calculator.
func NewRarestSongs(limit int) *RarestSongs {
	if limit == 0 {
		limit = DefaultLimit
	}
	return &RarestSongs{limit: limit}
}

func (c *RarestSongs) Meta() Metadata {
	return Metadata{
		Type:       "rarestSongs",
		Name:       "Rarest Songs",
		DataSource: "setlist gap data",
		Enabled:    true,
		Priority:   2,
	}
}

func (c *RarestSongs) Calculate(shows []*tour.EnhancedShow, tourName string, sc *tour.StatsContext) any {
	return runPipeline[*rarestAcc, []tour.SongGapInfo](c, shows, tourName, sc)
}

func (c *RarestSongs) EmptyResult() any { return c.emptyResult() }

type rarestAcc struct {
	// canonical song name -> rarest-so-far occurrence
	bySong map[string]tour.SongGapInfo
}

// validateInput requires at least one setlist item carrying gap data.
func (c *RarestSongs) validateInput(shows []*tour.EnhancedShow) bool {
	for _, show := range shows {
		if show == nil {
			continue
		}
		for _, item := range show.SetlistItems {
			if item.Gap > 0 {
				return true
			}
		}
	}
	return false
}

func (c *RarestSongs) initAccumulator() *rarestAcc {
	return &rarestAcc{bySong: make(map[string]tour.SongGapInfo)}
}

func (c *RarestSongs) processShow(show *tour.EnhancedShow, acc *rarestAcc) {
	for _, item := range show.SetlistItems {
		if item.SongName == "" || item.Gap <= 0 {
			continue
		}
		key := canonicalKey(item.SongName)
		existing, seen := acc.bySong[key]
		// Strictly greater only: on equal gaps the first-seen entry wins.
		if seen && item.Gap <= existing.Gap {
			continue
		}
		acc.bySong[key] = tour.SongGapInfo{
			SongID:       songID(item.SongID, item.SongName),
			SongName:     item.SongName,
			Gap:          item.Gap,
			TourVenue:    show.Venue(),
			TourVenueRun: show.VenueRun,
			TourDate:     show.ShowDate,
			TourCity:     show.City(),
			TourState:    show.State(),
			TourPosition: show.TourPosition,
		}
	}
}

func (c *RarestSongs) generateResults(acc *rarestAcc, tourName string, sc *tour.StatsContext) []tour.SongGapInfo {
	results := make([]tour.SongGapInfo, 0, len(acc.bySong))
	for _, info := range acc.bySong {
		results = append(results, info)
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Gap != results[j].Gap {
			return results[i].Gap > results[j].Gap
		}
		return results[i].SongName < results[j].SongName
	})
	return limitResults(results, c.limit)
}

func (c *RarestSongs) emptyResult() []tour.SongGapInfo {
	return []tour.SongGapInfo{}
}
