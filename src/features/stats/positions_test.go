package stats

import (
	"testing"

	"github.com/contre95/tourstats/src/tour"
)

func TestPositions_OpenersAndClosers(t *testing.T) {
	calc := NewPositions()
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14",
			setItem("Wilson", "1", 0),
			setItem("Tweezer", "1", 0),
			setItem("Antelope", "1", 0),
		),
		testShow("2023-07-15",
			setItem("Wilson", "1", 0),
			setItem("Sand", "1", 0),
		),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).(map[string][]tour.PositionSong)
	openers := result["1_opener"]
	if len(openers) != 1 || openers[0].SongName != "Wilson" || openers[0].Count != 2 {
		t.Fatalf("expected Wilson opening twice, got %+v", openers)
	}
	closers := result["1_closer"]
	if len(closers) != 2 {
		t.Fatalf("expected two distinct closers, got %+v", closers)
	}
	// Equal counts break alphabetically.
	if closers[0].SongName != "Antelope" || closers[1].SongName != "Sand" {
		t.Errorf("closers out of order: %s, %s", closers[0].SongName, closers[1].SongName)
	}
}

func TestPositions_SingleSongSetIsOpenerAndCloser(t *testing.T) {
	calc := NewPositions()
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14", setItem("Fluffhead", "2", 0)),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).(map[string][]tour.PositionSong)
	if len(result["2_opener"]) != 1 || result["2_opener"][0].SongName != "Fluffhead" {
		t.Errorf("expected Fluffhead as opener, got %+v", result["2_opener"])
	}
	if len(result["2_closer"]) != 1 || result["2_closer"][0].SongName != "Fluffhead" {
		t.Errorf("expected Fluffhead as closer, got %+v", result["2_closer"])
	}
}

func TestPositions_EncoreSongsAllCount(t *testing.T) {
	calc := NewPositions()
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14",
			setItem("Wilson", "1", 0),
			setItem("Character Zero", "e", 0),
			setItem("Tweezer Reprise", "e", 0),
		),
		testShow("2023-07-15",
			setItem("Loving Cup", "e2", 0),
		),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).(map[string][]tour.PositionSong)
	if len(result["e_all"]) != 2 {
		t.Fatalf("every encore song counts, got %+v", result["e_all"])
	}
	if _, ok := result["e_opener"]; ok {
		t.Error("encore sets must not produce opener buckets")
	}
	if _, ok := result["e_closer"]; ok {
		t.Error("encore sets must not produce closer buckets")
	}
	if len(result["e2_all"]) != 1 || result["e2_all"][0].SongName != "Loving Cup" {
		t.Errorf("second encores keep their own bucket, got %+v", result["e2_all"])
	}
}

func TestPositions_DisplayNamesAreTitleCased(t *testing.T) {
	calc := NewPositions()
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14", setItem("bathtub gin", "1", 0)),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).(map[string][]tour.PositionSong)
	if result["1_opener"][0].SongName != "Bathtub Gin" {
		t.Errorf("expected title-cased name, got %s", result["1_opener"][0].SongName)
	}
}
