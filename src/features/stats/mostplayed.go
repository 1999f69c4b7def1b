package stats

import (
	"sort"

	"github.com/contre95/tourstats/src/tour"
)

// MostPlayedSongs counts setlist occurrences per song across the tour.
// Multiple sets and encores each contribute independently.
type MostPlayedSongs struct {
	limit int
}

// NewMostPlayedSongs creates the most-played calculator.
func NewMostPlayedSongs(limit int) *MostPlayedSongs {
	if limit == 0 {
		limit = DefaultLimit
	}
	return &MostPlayedSongs{limit: limit}
}

func (c *MostPlayedSongs) Meta() Metadata {
	return Metadata{
		Type:       "mostPlayedSongs",
		Name:       "Most Played Songs",
		DataSource: "setlist items",
		Enabled:    true,
		Priority:   3,
	}
}

func (c *MostPlayedSongs) Calculate(shows []*tour.EnhancedShow, tourName string, sc *tour.StatsContext) any {
	return runPipeline[*mostPlayedAcc, []tour.MostPlayedSong](c, shows, tourName, sc)
}

func (c *MostPlayedSongs) EmptyResult() any { return c.emptyResult() }

type playTally struct {
	count          int
	songID         int
	songName       string // original case from first occurrence
	mostRecentShow string
}

type mostPlayedAcc struct {
	bySong map[string]*playTally
}

func (c *MostPlayedSongs) validateInput(shows []*tour.EnhancedShow) bool {
	for _, show := range shows {
		if show != nil && len(show.SetlistItems) > 0 {
			return true
		}
	}
	return false
}

func (c *MostPlayedSongs) initAccumulator() *mostPlayedAcc {
	return &mostPlayedAcc{bySong: make(map[string]*playTally)}
}

func (c *MostPlayedSongs) processShow(show *tour.EnhancedShow, acc *mostPlayedAcc) {
	for _, item := range show.SetlistItems {
		if item.SongName == "" {
			continue
		}
		key := canonicalKey(item.SongName)
		tally, ok := acc.bySong[key]
		if !ok {
			tally = &playTally{songID: item.SongID, songName: item.SongName}
			acc.bySong[key] = tally
		}
		tally.count++
		if tally.songID == 0 && item.SongID != 0 {
			tally.songID = item.SongID
		}
		if show.ShowDate > tally.mostRecentShow {
			tally.mostRecentShow = show.ShowDate
		}
	}
}

func (c *MostPlayedSongs) generateResults(acc *mostPlayedAcc, tourName string, sc *tour.StatsContext) []tour.MostPlayedSong {
	results := make([]tour.MostPlayedSong, 0, len(acc.bySong))
	for _, tally := range acc.bySong {
		results = append(results, tour.MostPlayedSong{
			SongID:    songID(tally.songID, tally.songName),
			SongName:  titleCaseSong(tally.songName),
			PlayCount: tally.count,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].PlayCount != results[j].PlayCount {
			return results[i].PlayCount > results[j].PlayCount
		}
		return results[i].SongName < results[j].SongName
	})
	return limitResults(results, c.limit)
}

func (c *MostPlayedSongs) emptyResult() []tour.MostPlayedSong {
	return []tour.MostPlayedSong{}
}
