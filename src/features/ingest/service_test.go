package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/contre95/tourstats/src/tour"
)

// MockSetlistProvider serves canned shows and catalog entries.
type MockSetlistProvider struct {
	shows      []*tour.EnhancedShow
	songs      []tour.CatalogSong
	showsErr   error
	catalogErr error
}

func (m *MockSetlistProvider) GetTourShows(ctx context.Context, tourName string) ([]*tour.EnhancedShow, error) {
	return m.shows, m.showsErr
}

func (m *MockSetlistProvider) GetComprehensiveSongs(ctx context.Context) ([]tour.CatalogSong, error) {
	return m.songs, m.catalogErr
}

// MockArchiveProvider serves durations per show date.
type MockArchiveProvider struct {
	byDate map[string][]tour.TrackDuration
	errFor map[string]error
}

func (m *MockArchiveProvider) GetShowDurations(ctx context.Context, showDate string) ([]tour.TrackDuration, error) {
	if err := m.errFor[showDate]; err != nil {
		return nil, err
	}
	return m.byDate[showDate], nil
}

// MockShowStore records SaveShows calls.
type MockShowStore struct {
	tour.StatsStore
	savedTour  string
	savedShows []*tour.EnhancedShow
	saveErr    error
}

func (m *MockShowStore) SaveShows(ctx context.Context, tourName string, shows []*tour.EnhancedShow) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.savedTour = tourName
	m.savedShows = shows
	return nil
}

func (m *MockShowStore) GetShows(ctx context.Context, tourName string) ([]*tour.EnhancedShow, error) {
	if tourName == m.savedTour {
		return m.savedShows, nil
	}
	return nil, nil
}

func ingestShow(date string) *tour.EnhancedShow {
	return &tour.EnhancedShow{
		ShowDate: date,
		SetlistItems: []tour.SetlistItem{
			{SongName: "Tweezer", SetLabel: "1", Gap: 3},
		},
	}
}

func TestBuildEnhancedShows_SortsAndPositions(t *testing.T) {
	setlists := &MockSetlistProvider{
		shows: []*tour.EnhancedShow{ingestShow("2023-07-16"), ingestShow("2023-07-14"), ingestShow("2023-07-15")},
	}
	store := &MockShowStore{}
	service := NewService(setlists, nil, store, nil)

	shows, sc, err := service.BuildEnhancedShows(context.Background(), "Summer Tour 2023")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sc == nil {
		t.Fatal("expected a stats context")
	}
	if shows[0].ShowDate != "2023-07-14" || shows[2].ShowDate != "2023-07-16" {
		t.Errorf("shows out of order: %s, %s, %s", shows[0].ShowDate, shows[1].ShowDate, shows[2].ShowDate)
	}
	for i, show := range shows {
		if show.TourPosition == nil {
			t.Fatalf("show %s missing tour position", show.ShowDate)
		}
		if show.TourPosition.ShowNumber != i+1 || show.TourPosition.TotalShows != 3 {
			t.Errorf("show %s: expected position %d/3, got %d/%d",
				show.ShowDate, i+1, show.TourPosition.ShowNumber, show.TourPosition.TotalShows)
		}
	}
	if store.savedTour != "Summer Tour 2023" || len(store.savedShows) != 3 {
		t.Errorf("enhanced shows were not cached: %q, %d", store.savedTour, len(store.savedShows))
	}
}

func TestBuildEnhancedShows_ArchiveGapsDoNotBlock(t *testing.T) {
	setlists := &MockSetlistProvider{
		shows: []*tour.EnhancedShow{ingestShow("2023-07-14"), ingestShow("2023-07-15")},
	}
	archive := &MockArchiveProvider{
		byDate: map[string][]tour.TrackDuration{
			"2023-07-14": {{SongName: "Tweezer", DurationSeconds: 1383, ShowDate: "2023-07-14"}},
		},
		errFor: map[string]error{
			"2023-07-15": errors.New("archive timeout"),
		},
	}
	service := NewService(setlists, archive, &MockShowStore{}, nil)

	shows, _, err := service.BuildEnhancedShows(context.Background(), "Summer Tour 2023")
	if err != nil {
		t.Fatalf("archive failures must not fail the run, got %v", err)
	}
	if len(shows[0].TrackDurations) != 1 {
		t.Errorf("covered show should carry durations, got %d", len(shows[0].TrackDurations))
	}
	if len(shows[1].TrackDurations) != 0 {
		t.Errorf("uncovered show should carry none, got %d", len(shows[1].TrackDurations))
	}
}

func TestBuildEnhancedShows_CatalogFailureDegrades(t *testing.T) {
	setlists := &MockSetlistProvider{
		shows:      []*tour.EnhancedShow{ingestShow("2023-07-14")},
		catalogErr: errors.New("api down"),
	}
	service := NewService(setlists, nil, &MockShowStore{}, nil)

	_, sc, err := service.BuildEnhancedShows(context.Background(), "Summer Tour 2023")
	if err != nil {
		t.Fatalf("catalog failures must not fail the run, got %v", err)
	}
	if len(sc.ComprehensiveSongs) != 0 {
		t.Errorf("expected an empty catalog, got %d songs", len(sc.ComprehensiveSongs))
	}
}

func TestBuildEnhancedShows_SetlistFailureFails(t *testing.T) {
	setlists := &MockSetlistProvider{showsErr: errors.New("api down")}
	service := NewService(setlists, nil, &MockShowStore{}, nil)

	if _, _, err := service.BuildEnhancedShows(context.Background(), "Summer Tour 2023"); err == nil {
		t.Fatal("setlist failures are fatal to the run")
	}
}

func TestBuildEnhancedShows_NoShowsIsNotAnError(t *testing.T) {
	setlists := &MockSetlistProvider{}
	service := NewService(setlists, nil, &MockShowStore{}, nil)

	shows, sc, err := service.BuildEnhancedShows(context.Background(), "Fall Tour 1996")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(shows) != 0 || sc == nil {
		t.Errorf("expected no shows and an empty context, got %d shows", len(shows))
	}
}
