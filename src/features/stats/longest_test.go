package stats

import (
	"testing"

	"github.com/contre95/tourstats/src/tour"
)

func durShow(date string, durations ...tour.TrackDuration) *tour.EnhancedShow {
	show := testShow(date)
	show.TrackDurations = durations
	return show
}

func dur(name string, seconds int, date string) tour.TrackDuration {
	return tour.TrackDuration{SongName: name, DurationSeconds: seconds, ShowDate: date}
}

func TestLongestSongs_RanksByDuration(t *testing.T) {
	calc := NewLongestSongs(3)
	shows := []*tour.EnhancedShow{
		durShow("2023-07-14", dur("Sand", 947, "2023-07-14"), dur("Ghost", 623, "2023-07-14")),
		durShow("2023-07-15", dur("Tweezer", 1383, "2023-07-15"), dur("Wilson", 201, "2023-07-15")),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).([]tour.TrackDuration)
	if len(result) != 3 {
		t.Fatalf("expected 3 results, got %d", len(result))
	}
	want := []string{"Tweezer", "Sand", "Ghost"}
	for i, name := range want {
		if result[i].SongName != name {
			t.Errorf("position %d: expected %s, got %s", i, name, result[i].SongName)
		}
	}
	if result[0].DurationSeconds != 1383 {
		t.Errorf("expected Tweezer at 1383s, got %d", result[0].DurationSeconds)
	}
}

func TestLongestSongs_NoArchiveCoverageIsEmpty(t *testing.T) {
	calc := NewLongestSongs(0)
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14", setItem("Tweezer", "1", 3)),
	}
	result := calc.Calculate(shows, "Summer Tour 2023", nil).([]tour.TrackDuration)
	if result == nil {
		t.Fatal("empty result must be an empty slice, not nil")
	}
	if len(result) != 0 {
		t.Fatalf("expected no results, got %d", len(result))
	}
}

func TestLongestSongs_ZeroLimitFallsBackToDefault(t *testing.T) {
	calc := NewLongestSongs(0)
	var durations []tour.TrackDuration
	for i := 0; i < 10; i++ {
		durations = append(durations, dur("Jam", 100+i, "2023-07-14"))
	}
	shows := []*tour.EnhancedShow{durShow("2023-07-14", durations...)}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).([]tour.TrackDuration)
	if len(result) != DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultLimit, len(result))
	}
}
