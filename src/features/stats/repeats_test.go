package stats

import (
	"testing"

	"github.com/contre95/tourstats/src/tour"
)

func TestRepeats_AccumulateAcrossShows(t *testing.T) {
	calc := NewRepeats()
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14", setItem("Tweezer", "1", 3), setItem("Sand", "2", 2)),
		testShow("2023-07-15", setItem("Tweezer", "1", 0), setItem("Ghost", "2", 4)),
		testShow("2023-07-16", setItem("Sand", "1", 0), setItem("Ghost", "1", 0), setItem("Wilson", "2", 1)),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).(tour.RepeatsResult)
	if len(result.Shows) != 3 {
		t.Fatalf("expected 3 show records, got %d", len(result.Shows))
	}
	if result.Shows[0].Repeats != 0 {
		t.Errorf("first show can have no repeats, got %d", result.Shows[0].Repeats)
	}
	if result.Shows[1].Repeats != 1 {
		t.Errorf("second show repeats Tweezer, expected 1, got %d", result.Shows[1].Repeats)
	}
	if result.Shows[2].Repeats != 2 {
		t.Errorf("third show repeats Sand and Ghost, expected 2, got %d", result.Shows[2].Repeats)
	}
	if !result.HasRepeats {
		t.Error("expected HasRepeats")
	}
	if result.TotalShows != 3 {
		t.Errorf("expected TotalShows 3, got %d", result.TotalShows)
	}
}

func TestRepeats_WithinShowDuplicatesAreNotRepeats(t *testing.T) {
	calc := NewRepeats()
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14", setItem("Tweezer", "1", 0), setItem("Tweezer", "e", 0)),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).(tour.RepeatsResult)
	record := result.Shows[0]
	if record.Repeats != 0 {
		t.Errorf("a reprise within the same show is not a repeat, got %d", record.Repeats)
	}
	// The percentage denominator stays the raw setlist length.
	if record.TotalSongs != 2 {
		t.Errorf("expected raw total of 2, got %d", record.TotalSongs)
	}
}

func TestRepeats_PercentageUsesRawSetlistLength(t *testing.T) {
	calc := NewRepeats()
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14", setItem("Tweezer", "1", 0)),
		testShow("2023-07-15", setItem("Tweezer", "1", 0), setItem("Tweezer", "e", 0)),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).(tour.RepeatsResult)
	record := result.Shows[1]
	if record.Repeats != 1 {
		t.Fatalf("expected 1 distinct repeat, got %d", record.Repeats)
	}
	if record.RepeatPercentage != 50.0 {
		t.Errorf("expected 1/2 = 50.0%%, got %v", record.RepeatPercentage)
	}
}

func TestRepeats_AverageGapExcludesUnknowns(t *testing.T) {
	calc := NewRepeats()
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14",
			setItem("Tweezer", "1", 10),
			setItem("Debut Song", "1", 0),
			setItem("Sand", "2", 20),
		),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).(tour.RepeatsResult)
	if got := result.Shows[0].AverageGap; got != 15.0 {
		t.Errorf("gap 0 stays out of the average, expected 15.0, got %v", got)
	}
}

func TestRepeats_SortsUnorderedInput(t *testing.T) {
	calc := NewRepeats()
	shows := []*tour.EnhancedShow{
		testShow("2023-07-16", setItem("Tweezer", "1", 0)),
		testShow("2023-07-14", setItem("Tweezer", "1", 0)),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).(tour.RepeatsResult)
	if result.Shows[0].Date != "2023-07-14" {
		t.Fatalf("series must be chronological, got %s first", result.Shows[0].Date)
	}
	if result.Shows[1].Repeats != 1 {
		t.Errorf("the later show carries the repeat regardless of input order, got %d", result.Shows[1].Repeats)
	}
	// The caller's slice keeps its order.
	if shows[0].ShowDate != "2023-07-16" {
		t.Error("input slice was reordered")
	}
}

func TestRepeats_TourPositionOverridesOrdinal(t *testing.T) {
	calc := NewRepeats()
	show := testShow("2023-07-14", setItem("Tweezer", "1", 0))
	show.TourPosition = &tour.TourPosition{TourName: "Summer Tour 2023", ShowNumber: 12, TotalShows: 23}

	result := calc.Calculate([]*tour.EnhancedShow{show}, "Summer Tour 2023", nil).(tour.RepeatsResult)
	record := result.Shows[0]
	if record.ShowNumber != 12 || record.TotalTourShows != 23 {
		t.Errorf("expected catalog position 12/23, got %d/%d", record.ShowNumber, record.TotalTourShows)
	}
}

func TestRepeats_Maxima(t *testing.T) {
	calc := NewRepeats()
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14", setItem("Tweezer", "1", 100), setItem("Sand", "1", 10)),
		testShow("2023-07-15", setItem("Tweezer", "1", 1), setItem("Sand", "1", 1), setItem("Ghost", "1", 1), setItem("Wilson", "1", 1)),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).(tour.RepeatsResult)
	if result.MaxPercentage != 50.0 {
		t.Errorf("expected max percentage 50.0 (2 of 4), got %v", result.MaxPercentage)
	}
	if result.MaxAverageGap != 55.0 {
		t.Errorf("expected max average gap 55.0, got %v", result.MaxAverageGap)
	}
}
