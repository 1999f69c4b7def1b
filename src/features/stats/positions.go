package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/contre95/tourstats/src/tour"
)

// Positions counts openers, closers and encore appearances per set. For a
// regular set the first song is its opener and the last its closer; a
// one-song set is both. Encore sets have no opener/closer distinction, every
// encore song counts toward the "<label>_all" bucket. The full list per
// position key is returned; display limits belong to the consumer.
type Positions struct{}

// NewPositions creates the openers/closers/encores calculator.
func NewPositions() *Positions {
	return &Positions{}
}

func (c *Positions) Meta() Metadata {
	return Metadata{
		Type:       "openersClosers",
		Name:       "Openers, Closers & Encores",
		DataSource: "setlist items",
		Enabled:    true,
		Priority:   6,
	}
}

func (c *Positions) Calculate(shows []*tour.EnhancedShow, tourName string, sc *tour.StatsContext) any {
	return runPipeline[*positionsAcc, map[string][]tour.PositionSong](c, shows, tourName, sc)
}

func (c *Positions) EmptyResult() any { return c.emptyResult() }

type positionsAcc struct {
	// position key ("1_opener", "e_all", ...) -> canonical song -> tally
	byPosition map[string]map[string]*tour.PositionSong
}

func (c *Positions) validateInput(shows []*tour.EnhancedShow) bool {
	for _, show := range shows {
		if show != nil && len(show.SetlistItems) > 0 {
			return true
		}
	}
	return false
}

func (c *Positions) initAccumulator() *positionsAcc {
	return &positionsAcc{byPosition: make(map[string]map[string]*tour.PositionSong)}
}

func (c *Positions) processShow(show *tour.EnhancedShow, acc *positionsAcc) {
	// Group items per set, preserving performance order within each set.
	sets := make(map[string][]tour.SetlistItem)
	var order []string
	for _, item := range show.SetlistItems {
		label := strings.ToLower(strings.TrimSpace(item.SetLabel))
		if label == "" || item.SongName == "" {
			continue
		}
		if _, seen := sets[label]; !seen {
			order = append(order, label)
		}
		sets[label] = append(sets[label], item)
	}
	for _, label := range order {
		items := sets[label]
		if tour.IsEncoreLabel(label) {
			for _, item := range items {
				acc.count(fmt.Sprintf("%s_all", label), item)
			}
			continue
		}
		acc.count(fmt.Sprintf("%s_opener", label), items[0])
		acc.count(fmt.Sprintf("%s_closer", label), items[len(items)-1])
	}
}

func (acc *positionsAcc) count(positionKey string, item tour.SetlistItem) {
	bucket, ok := acc.byPosition[positionKey]
	if !ok {
		bucket = make(map[string]*tour.PositionSong)
		acc.byPosition[positionKey] = bucket
	}
	key := canonicalKey(item.SongName)
	entry, ok := bucket[key]
	if !ok {
		entry = &tour.PositionSong{
			SongName: item.SongName,
			SongID:   songID(item.SongID, item.SongName),
		}
		bucket[key] = entry
	}
	entry.Count++
}

func (c *Positions) generateResults(acc *positionsAcc, tourName string, sc *tour.StatsContext) map[string][]tour.PositionSong {
	results := make(map[string][]tour.PositionSong, len(acc.byPosition))
	for positionKey, bucket := range acc.byPosition {
		songs := make([]tour.PositionSong, 0, len(bucket))
		for _, entry := range bucket {
			songs = append(songs, tour.PositionSong{
				SongName: titleCaseSong(entry.SongName),
				SongID:   entry.SongID,
				Count:    entry.Count,
			})
		}
		sort.SliceStable(songs, func(i, j int) bool {
			if songs[i].Count != songs[j].Count {
				return songs[i].Count > songs[j].Count
			}
			return songs[i].SongName < songs[j].SongName
		})
		results[positionKey] = songs
	}
	return results
}

func (c *Positions) emptyResult() map[string][]tour.PositionSong {
	return map[string][]tour.PositionSong{}
}
