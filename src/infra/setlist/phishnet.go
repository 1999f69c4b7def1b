package setlist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/contre95/tourstats/src/tour"
)

// Phish.net v5 API response structures
type phishnetResponse[T any] struct {
	Error        bool   `json:"error"`
	ErrorMessage string `json:"error_message"`
	Data         []T    `json:"data"`
}

type phishnetSetlistRow struct {
	ShowDate string `json:"showdate"`
	SongID   int    `json:"songid"`
	Song     string `json:"song"`
	Set      string `json:"set"`
	Position int    `json:"position"`
	Footnote string `json:"footnote"`
	Gap      int    `json:"gap"`
	Venue    string `json:"venue"`
	City     string `json:"city"`
	State    string `json:"state"`
	TourName string `json:"tourname"`
}

type phishnetSongRow struct {
	SongID      int    `json:"songid"`
	Song        string `json:"song"`
	Artist      string `json:"artist"`
	TimesPlayed int    `json:"times_played"`
}

// PhishNetProvider implements tour.SetlistProvider against the phish.net
// v5 API.
type PhishNetProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewPhishNetProvider creates a new phish.net provider.
func NewPhishNetProvider(baseURL string, apiKey *string) *PhishNetProvider {
	key := ""
	if apiKey != nil {
		key = *apiKey
	}
	return &PhishNetProvider{
		baseURL: baseURL,
		apiKey:  key,
		client:  &http.Client{},
	}
}

// GetTourShows fetches every setlist row of a tour and groups them into
// enhanced shows with venue-run context.
func (p *PhishNetProvider) GetTourShows(ctx context.Context, tourName string) ([]*tour.EnhancedShow, error) {
	endpoint := fmt.Sprintf("%s/setlists/tourname/%s.json?apikey=%s",
		p.baseURL, url.PathEscape(tourName), url.QueryEscape(p.apiKey))

	rows, err := fetch[phishnetSetlistRow](ctx, p.client, endpoint)
	if err != nil {
		return nil, err
	}

	// Group rows per show, preserving setlist position order.
	byDate := make(map[string][]phishnetSetlistRow)
	var dates []string
	for _, row := range rows {
		if row.ShowDate == "" || row.Song == "" {
			continue
		}
		if _, seen := byDate[row.ShowDate]; !seen {
			dates = append(dates, row.ShowDate)
		}
		byDate[row.ShowDate] = append(byDate[row.ShowDate], row)
	}
	sort.Strings(dates)

	shows := make([]*tour.EnhancedShow, 0, len(dates))
	for _, date := range dates {
		showRows := byDate[date]
		sort.SliceStable(showRows, func(i, j int) bool {
			return showRows[i].Position < showRows[j].Position
		})
		show := &tour.EnhancedShow{
			ShowDate: date,
			ShowVenueInfo: &tour.ShowVenueInfo{
				Venue: showRows[0].Venue,
				City:  showRows[0].City,
				State: showRows[0].State,
			},
		}
		for _, row := range showRows {
			show.SetlistItems = append(show.SetlistItems, tour.SetlistItem{
				SongName: row.Song,
				SongID:   row.SongID,
				SetLabel: row.Set,
				Footnote: row.Footnote,
				Gap:      row.Gap,
			})
		}
		shows = append(shows, show)
	}

	attachVenueRuns(shows)
	return shows, nil
}

// attachVenueRuns marks multi-night stands at a single venue.
func attachVenueRuns(shows []*tour.EnhancedShow) {
	byVenue := make(map[string][]*tour.EnhancedShow)
	for _, show := range shows {
		venue := show.Venue()
		if venue != "" {
			byVenue[venue] = append(byVenue[venue], show)
		}
	}
	for venue, venueShows := range byVenue {
		if len(venueShows) < 2 {
			continue
		}
		dates := make([]string, len(venueShows))
		for i, show := range venueShows {
			dates[i] = show.ShowDate
		}
		for i, show := range venueShows {
			show.VenueRun = &tour.VenueRun{
				Venue:       venue,
				City:        show.City(),
				State:       show.State(),
				NightNumber: i + 1,
				TotalNights: len(venueShows),
				ShowDates:   dates,
			}
		}
	}
}

// GetComprehensiveSongs fetches the full historical song catalog with
// lifetime play counts and original-artist attribution.
func (p *PhishNetProvider) GetComprehensiveSongs(ctx context.Context) ([]tour.CatalogSong, error) {
	endpoint := fmt.Sprintf("%s/songs.json?apikey=%s", p.baseURL, url.QueryEscape(p.apiKey))

	rows, err := fetch[phishnetSongRow](ctx, p.client, endpoint)
	if err != nil {
		return nil, err
	}

	songs := make([]tour.CatalogSong, 0, len(rows))
	for _, row := range rows {
		if row.Song == "" {
			continue
		}
		songs = append(songs, tour.CatalogSong{
			SongID:      row.SongID,
			Song:        row.Song,
			Artist:      row.Artist,
			TimesPlayed: row.TimesPlayed,
		})
	}
	return songs, nil
}

// fetch performs a GET and unwraps the phish.net response envelope.
func fetch[T any](ctx context.Context, client *http.Client, endpoint string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Tourstats/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("phish.net API request failed with status %d", resp.StatusCode)
	}

	var envelope phishnetResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if envelope.Error {
		return nil, fmt.Errorf("phish.net API error: %s", envelope.ErrorMessage)
	}
	return envelope.Data, nil
}
