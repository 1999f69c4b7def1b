package stats

import "github.com/contre95/tourstats/src/tour"

// Repeats builds the per-show repeat series: how much of each show was
// already played earlier in the tour, plus the average historical gap of its
// setlist. The only calculator where show order matters; it sorts a copy of
// the input by date before folding instead of trusting the caller.
//
// Invariant: the repeat count deduplicates songs within a show (playing a
// song twice in one show is never a repeat) while the percentage denominator
// is the raw setlist length. The asymmetry is deliberate.
type Repeats struct{}

// NewRepeats creates the repeats-and-average-gap calculator.
func NewRepeats() *Repeats {
	return &Repeats{}
}

func (c *Repeats) Meta() Metadata {
	return Metadata{
		Type:       "repeats",
		Name:       "Repeats & Average Gap",
		DataSource: "setlist items, chronological",
		Enabled:    true,
		Priority:   7,
	}
}

func (c *Repeats) Calculate(shows []*tour.EnhancedShow, tourName string, sc *tour.StatsContext) any {
	return runPipeline[*repeatsAcc, tour.RepeatsResult](c, sortShowsByDate(shows), tourName, sc)
}

func (c *Repeats) EmptyResult() any { return c.emptyResult() }

type repeatsAcc struct {
	playedSoFar map[string]struct{} // songs played in any strictly earlier show
	shows       []tour.RepeatShowData
	showNumber  int
}

func (c *Repeats) validateInput(shows []*tour.EnhancedShow) bool {
	for _, show := range shows {
		if show != nil && len(show.SetlistItems) > 0 {
			return true
		}
	}
	return false
}

func (c *Repeats) initAccumulator() *repeatsAcc {
	return &repeatsAcc{playedSoFar: make(map[string]struct{})}
}

func (c *Repeats) processShow(show *tour.EnhancedShow, acc *repeatsAcc) {
	acc.showNumber++

	totalSongs := 0
	distinct := make(map[string]struct{})
	gapSum, gapCount := 0, 0
	for _, item := range show.SetlistItems {
		if item.SongName == "" {
			continue
		}
		totalSongs++
		distinct[canonicalKey(item.SongName)] = struct{}{}
		// Gap 0 marks debuts and unknown gaps; both stay out of the average.
		if item.Gap > 0 {
			gapSum += item.Gap
			gapCount++
		}
	}

	repeats := 0
	for song := range distinct {
		if _, played := acc.playedSoFar[song]; played {
			repeats++
		}
	}

	percentage := 0.0
	if totalSongs > 0 {
		percentage = round1(float64(repeats) / float64(totalSongs) * 100)
	}
	averageGap := 0.0
	if gapCount > 0 {
		averageGap = round1(float64(gapSum) / float64(gapCount))
	}

	record := tour.RepeatShowData{
		Date:             show.ShowDate,
		Venue:            show.Venue(),
		City:             show.City(),
		State:            show.State(),
		VenueRun:         show.VenueRun,
		TotalSongs:       totalSongs,
		Repeats:          repeats,
		RepeatPercentage: percentage,
		AverageGap:       averageGap,
		ShowNumber:       acc.showNumber,
	}
	if show.TourPosition != nil {
		record.ShowNumber = show.TourPosition.ShowNumber
		record.TotalTourShows = show.TourPosition.TotalShows
	}
	acc.shows = append(acc.shows, record)

	// Union this show's songs in only after its own record is computed, so
	// the next show's repeat check includes it but this one's did not.
	for song := range distinct {
		acc.playedSoFar[song] = struct{}{}
	}
}

func (c *Repeats) generateResults(acc *repeatsAcc, tourName string, sc *tour.StatsContext) tour.RepeatsResult {
	result := tour.RepeatsResult{
		Shows:      acc.shows,
		TotalShows: len(acc.shows),
	}
	if result.Shows == nil {
		result.Shows = []tour.RepeatShowData{}
	}
	for _, show := range acc.shows {
		if show.Repeats > 0 {
			result.HasRepeats = true
		}
		if show.RepeatPercentage > result.MaxPercentage {
			result.MaxPercentage = show.RepeatPercentage
		}
		if show.AverageGap > result.MaxAverageGap {
			result.MaxAverageGap = show.AverageGap
		}
	}
	return result
}

func (c *Repeats) emptyResult() tour.RepeatsResult {
	return tour.RepeatsResult{Shows: []tour.RepeatShowData{}}
}
