package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/contre95/tourstats/src/tour"
)

// Phish.in v2 API response structures
type phishinShow struct {
	Date   string `json:"date"`
	Venue  *struct {
		Name string `json:"name"`
	} `json:"venue"`
	Tracks []phishinTrack `json:"tracks"`
}

type phishinTrack struct {
	Title    string `json:"title"`
	Duration int    `json:"duration"` // milliseconds
	Set      string `json:"set_name"`
	SongIDs  []int  `json:"song_ids"`
}

// PhishInProvider implements tour.ArchiveProvider against the phish.in
// audio archive API.
type PhishInProvider struct {
	baseURL string
	client  *http.Client
}

// NewPhishInProvider creates a new phish.in provider.
func NewPhishInProvider(baseURL string) *PhishInProvider {
	return &PhishInProvider{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// GetShowDurations returns the archived track durations for one show date.
// A 404 means the archive has no recording of the show; that is an empty
// result, not an error.
func (p *PhishInProvider) GetShowDurations(ctx context.Context, showDate string) ([]tour.TrackDuration, error) {
	endpoint := fmt.Sprintf("%s/shows/%s", p.baseURL, showDate)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Tourstats/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("phish.in API request failed with status %d", resp.StatusCode)
	}

	var show phishinShow
	if err := json.NewDecoder(resp.Body).Decode(&show); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	venue := ""
	if show.Venue != nil {
		venue = show.Venue.Name
	}
	durations := make([]tour.TrackDuration, 0, len(show.Tracks))
	for _, track := range show.Tracks {
		if track.Title == "" || track.Duration <= 0 {
			continue
		}
		songID := 0
		if len(track.SongIDs) > 0 {
			songID = track.SongIDs[0]
		}
		durations = append(durations, tour.TrackDuration{
			SongName:        track.Title,
			SongID:          songID,
			DurationSeconds: track.Duration / 1000,
			Venue:           venue,
			ShowDate:        show.Date,
			SetNumber:       track.Set,
		})
	}
	return durations, nil
}
