package stats

import (
	"testing"

	"github.com/contre95/tourstats/src/tour"
)

func TestMostPlayedSongs_CountsAcrossShows(t *testing.T) {
	calc := NewMostPlayedSongs(10)
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14", setItem("Tweezer", "1", 3), setItem("Sand", "2", 2)),
		testShow("2023-07-15", setItem("Tweezer", "2", 0), setItem("Ghost", "1", 4)),
		testShow("2023-07-16", setItem("Tweezer", "e", 0)),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).([]tour.MostPlayedSong)
	if len(result) != 3 {
		t.Fatalf("expected 3 songs, got %d", len(result))
	}
	if result[0].SongName != "Tweezer" || result[0].PlayCount != 3 {
		t.Errorf("expected Tweezer with 3 plays first, got %+v", result[0])
	}
}

func TestMostPlayedSongs_TiesBreakAlphabetically(t *testing.T) {
	calc := NewMostPlayedSongs(10)
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14", setItem("ghost", "1", 0), setItem("bathtub gin", "2", 0)),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).([]tour.MostPlayedSong)
	if len(result) != 2 {
		t.Fatalf("expected 2 songs, got %d", len(result))
	}
	if result[0].SongName != "Bathtub Gin" || result[1].SongName != "Ghost" {
		t.Errorf("expected Bathtub Gin before Ghost on equal counts, got %s then %s",
			result[0].SongName, result[1].SongName)
	}
}

func TestMostPlayedSongs_CaseVariantsCountTogether(t *testing.T) {
	calc := NewMostPlayedSongs(10)
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14", setItem("Tweezer", "1", 0)),
		testShow("2023-07-15", setItem("tweezer", "1", 0)),
		testShow("2023-07-16", setItem("  TWEEZER ", "1", 0)),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).([]tour.MostPlayedSong)
	if len(result) != 1 {
		t.Fatalf("case variants must deduplicate, got %d entries", len(result))
	}
	if result[0].PlayCount != 3 {
		t.Errorf("expected 3 plays, got %d", result[0].PlayCount)
	}
}

func TestMostPlayedSongs_SyntheticIDForUncataloguedSongs(t *testing.T) {
	calc := NewMostPlayedSongs(10)
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14",
			tour.SetlistItem{SongName: "Secret Jam", SetLabel: "1"},
			tour.SetlistItem{SongName: "Tweezer", SongID: 77, SetLabel: "1"},
		),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).([]tour.MostPlayedSong)
	for _, song := range result {
		if song.SongID <= 0 {
			t.Errorf("song %q has non-positive id %d", song.SongName, song.SongID)
		}
		if song.SongName == "Tweezer" && song.SongID != 77 {
			t.Errorf("catalog id must be preserved, got %d", song.SongID)
		}
	}
}

func TestMostPlayedSongs_AppliesLimit(t *testing.T) {
	calc := NewMostPlayedSongs(2)
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14",
			setItem("Tweezer", "1", 0),
			setItem("Sand", "1", 0),
			setItem("Ghost", "2", 0),
		),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).([]tour.MostPlayedSong)
	if len(result) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(result))
	}
}
