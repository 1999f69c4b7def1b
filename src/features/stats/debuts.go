package stats

import (
	"sort"
	"strings"

	"github.com/contre95/tourstats/src/tour"
	"github.com/google/uuid"
)

const actName = "Phish"

// Debuts detects first-ever performances via the upstream footnote
// annotation. The prefix heuristic ("debut" / "phish debut",
// case-insensitive) is preserved exactly as the catalog consumers rely on
// it; "improving" the match would change published output. Cover debuts are
// annotated with their original artist from the comprehensive catalog.
type Debuts struct{}

// NewDebuts creates the debuts calculator.
func NewDebuts() *Debuts {
	return &Debuts{}
}

func (c *Debuts) Meta() Metadata {
	return Metadata{
		Type:       "debuts",
		Name:       "Debuts",
		DataSource: "setlist footnotes + comprehensive song catalog",
		Enabled:    true,
		Priority:   8,
	}
}

func (c *Debuts) Calculate(shows []*tour.EnhancedShow, tourName string, sc *tour.StatsContext) any {
	return runPipeline[*debutsAcc, tour.DebutsResult](c, sortShowsByDate(shows), tourName, sc)
}

func (c *Debuts) EmptyResult() any { return c.emptyResult() }

type debutsAcc struct {
	debuts         []tour.DebutInfo
	latestShowDate string
}

func (c *Debuts) validateInput(shows []*tour.EnhancedShow) bool {
	for _, show := range shows {
		if show != nil && len(show.SetlistItems) > 0 {
			return true
		}
	}
	return false
}

func (c *Debuts) initAccumulator() *debutsAcc {
	return &debutsAcc{}
}

// isDebutFootnote applies the documented prefix heuristic.
func isDebutFootnote(footnote string) bool {
	note := strings.ToLower(strings.TrimSpace(footnote))
	return strings.HasPrefix(note, "debut") || strings.HasPrefix(note, "phish debut")
}

// Debut ids are name-based rather than random: the pipeline must produce
// identical snapshots for identical input.
var debutIDNamespace = uuid.MustParse("8f4b2a6e-1d3c-4f5a-9b7e-0c2d4e6f8a1b")

// debutID derives a stable record id from the show date and the canonical
// song name.
func debutID(showDate, songName string) string {
	return uuid.NewSHA1(debutIDNamespace, []byte(showDate+"|"+canonicalKey(songName))).String()
}

func (c *Debuts) processShow(show *tour.EnhancedShow, acc *debutsAcc) {
	if show.ShowDate > acc.latestShowDate {
		acc.latestShowDate = show.ShowDate
	}
	for _, item := range show.SetlistItems {
		if item.SongName == "" || !isDebutFootnote(item.Footnote) {
			continue
		}
		acc.debuts = append(acc.debuts, tour.DebutInfo{
			ID:           debutID(show.ShowDate, item.SongName),
			SongID:       songID(item.SongID, item.SongName),
			SongName:     item.SongName,
			Footnote:     item.Footnote,
			ShowDate:     show.ShowDate,
			Venue:        show.Venue(),
			VenueRun:     show.VenueRun,
			City:         show.City(),
			State:        show.State(),
			TourPosition: show.TourPosition,
		})
	}
}

func (c *Debuts) generateResults(acc *debutsAcc, tourName string, sc *tour.StatsContext) tour.DebutsResult {
	artists := sc.ArtistBySongID()
	for i := range acc.debuts {
		artist := artists[acc.debuts[i].SongID]
		// Songs attributed to the act itself are originals, not covers.
		if artist != "" && !strings.EqualFold(artist, actName) {
			acc.debuts[i].OriginalArtist = artist
		}
	}
	sort.SliceStable(acc.debuts, func(i, j int) bool {
		if acc.debuts[i].ShowDate != acc.debuts[j].ShowDate {
			return acc.debuts[i].ShowDate > acc.debuts[j].ShowDate
		}
		return acc.debuts[i].SongName < acc.debuts[j].SongName
	})
	result := tour.DebutsResult{
		Debuts:         acc.debuts,
		LatestShowDate: acc.latestShowDate,
	}
	if result.Debuts == nil {
		result.Debuts = []tour.DebutInfo{}
	}
	return result
}

func (c *Debuts) emptyResult() tour.DebutsResult {
	return tour.DebutsResult{Debuts: []tour.DebutInfo{}}
}
