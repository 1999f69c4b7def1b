package stats

import (
	"sort"

	"github.com/contre95/tourstats/src/tour"
)

// MostCommonNotPlayed lists commonly-played catalog songs the tour skipped.
// It needs the comprehensive historical catalog from the stats context; the
// tour's own shows only tell us what *was* played.
type MostCommonNotPlayed struct {
	limit     int
	threshold int
}

// NewMostCommonNotPlayed creates the not-played calculator.
func NewMostCommonNotPlayed(limit int) *MostCommonNotPlayed {
	if limit == 0 {
		limit = DefaultDeepListLimit
	}
	return &MostCommonNotPlayed{limit: limit, threshold: CommonlyPlayedThreshold}
}

func (c *MostCommonNotPlayed) Meta() Metadata {
	return Metadata{
		Type:       "mostCommonSongsNotPlayed",
		Name:       "Most Common Songs Not Played",
		DataSource: "setlist items + comprehensive song catalog",
		Enabled:    true,
		Priority:   4,
	}
}

func (c *MostCommonNotPlayed) Calculate(shows []*tour.EnhancedShow, tourName string, sc *tour.StatsContext) any {
	return runPipeline[*notPlayedAcc, []tour.MostCommonSongNotPlayed](c, shows, tourName, sc)
}

func (c *MostCommonNotPlayed) EmptyResult() any { return c.emptyResult() }

type notPlayedAcc struct {
	played map[string]struct{}
}

func (c *MostCommonNotPlayed) validateInput(shows []*tour.EnhancedShow) bool {
	for _, show := range shows {
		if show != nil && len(show.SetlistItems) > 0 {
			return true
		}
	}
	return false
}

func (c *MostCommonNotPlayed) initAccumulator() *notPlayedAcc {
	return &notPlayedAcc{played: make(map[string]struct{})}
}

func (c *MostCommonNotPlayed) processShow(show *tour.EnhancedShow, acc *notPlayedAcc) {
	for _, item := range show.SetlistItems {
		if item.SongName != "" {
			acc.played[canonicalKey(item.SongName)] = struct{}{}
		}
	}
}

func (c *MostCommonNotPlayed) generateResults(acc *notPlayedAcc, tourName string, sc *tour.StatsContext) []tour.MostCommonSongNotPlayed {
	if sc == nil || len(sc.ComprehensiveSongs) == 0 || len(acc.played) == 0 {
		return c.emptyResult()
	}
	results := []tour.MostCommonSongNotPlayed{}
	for _, song := range sc.ComprehensiveSongs {
		if song.TimesPlayed < c.threshold || song.Song == "" {
			continue
		}
		if _, wasPlayed := acc.played[canonicalKey(song.Song)]; wasPlayed {
			continue
		}
		results = append(results, tour.MostCommonSongNotPlayed{
			SongID:              songID(song.SongID, song.Song),
			SongName:            song.Song,
			HistoricalPlayCount: song.TimesPlayed,
			OriginalArtist:      song.Artist,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].HistoricalPlayCount != results[j].HistoricalPlayCount {
			return results[i].HistoricalPlayCount > results[j].HistoricalPlayCount
		}
		return results[i].SongName < results[j].SongName
	})
	return limitResults(results, c.limit)
}

func (c *MostCommonNotPlayed) emptyResult() []tour.MostCommonSongNotPlayed {
	return []tour.MostCommonSongNotPlayed{}
}
