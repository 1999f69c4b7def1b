package stats

import (
	"testing"

	"github.com/contre95/tourstats/src/tour"
)

func TestRarestSongs_KeepsSingleRarestOccurrence(t *testing.T) {
	calc := NewRarestSongs(10)
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14", setItem("Icculus", "2", 30)),
		testShow("2023-07-20", setItem("Icculus", "e", 250)),
		testShow("2023-07-22", setItem("Icculus", "1", 5)),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).([]tour.SongGapInfo)
	if len(result) != 1 {
		t.Fatalf("expected a single entry per song, got %d", len(result))
	}
	if result[0].Gap != 250 {
		t.Errorf("expected the maximum gap 250, got %d", result[0].Gap)
	}
	if result[0].TourDate != "2023-07-20" {
		t.Errorf("entry must carry the context of the rarest occurrence, got %s", result[0].TourDate)
	}
}

func TestRarestSongs_EqualGapKeepsFirstSeen(t *testing.T) {
	calc := NewRarestSongs(10)
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14", setItem("Destiny Unbound", "1", 80)),
		testShow("2023-07-18", setItem("Destiny Unbound", "2", 80)),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).([]tour.SongGapInfo)
	if len(result) != 1 {
		t.Fatalf("expected a single entry, got %d", len(result))
	}
	if result[0].TourDate != "2023-07-14" {
		t.Errorf("on equal gaps the first occurrence wins, got %s", result[0].TourDate)
	}
}

func TestRarestSongs_IgnoresZeroAndNegativeGaps(t *testing.T) {
	calc := NewRarestSongs(10)
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14",
			setItem("Tweezer", "1", 0),
			setItem("Mystery Jam", "1", -4),
			setItem("Fluffhead", "2", 12),
		),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).([]tour.SongGapInfo)
	if len(result) != 1 || result[0].SongName != "Fluffhead" {
		t.Fatalf("expected only Fluffhead, got %+v", result)
	}
}

func TestRarestSongs_SortsByGapThenName(t *testing.T) {
	calc := NewRarestSongs(10)
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14",
			setItem("Ghost", "1", 40),
			setItem("Bathtub Gin", "1", 40),
			setItem("Icculus", "2", 200),
		),
	}

	result := calc.Calculate(shows, "Summer Tour 2023", nil).([]tour.SongGapInfo)
	want := []string{"Icculus", "Bathtub Gin", "Ghost"}
	if len(result) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(result))
	}
	for i, name := range want {
		if result[i].SongName != name {
			t.Errorf("position %d: expected %s, got %s", i, name, result[i].SongName)
		}
	}
}

func TestRarestSongs_DeterministicAcrossInputOrder(t *testing.T) {
	a := testShow("2023-07-14", setItem("Ghost", "1", 40), setItem("Icculus", "2", 200))
	b := testShow("2023-07-15", setItem("Sand", "1", 15), setItem("Camel Walk", "e", 120))

	calc := NewRarestSongs(10)
	first := calc.Calculate([]*tour.EnhancedShow{a, b}, "Summer Tour 2023", nil).([]tour.SongGapInfo)
	second := calc.Calculate([]*tour.EnhancedShow{b, a}, "Summer Tour 2023", nil).([]tour.SongGapInfo)

	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].SongName != second[i].SongName || first[i].Gap != second[i].Gap {
			t.Errorf("position %d differs across input orders: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestRarestSongs_NoGapDataIsEmpty(t *testing.T) {
	calc := NewRarestSongs(10)
	shows := []*tour.EnhancedShow{
		testShow("2023-07-14", setItem("Tweezer", "1", 0)),
	}
	result := calc.Calculate(shows, "Summer Tour 2023", nil).([]tour.SongGapInfo)
	if result == nil || len(result) != 0 {
		t.Fatalf("expected the empty shape, got %+v", result)
	}
}
