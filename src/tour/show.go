package tour

import "strings"

// EnhancedShow is a single performance event enriched with setlist, gap,
// duration and tour-context data merged from the catalog and audio-archive
// providers. Once built by the ingest service it is never mutated.
type EnhancedShow struct {
	ShowDate       string          `json:"showDate"`
	SetlistItems   []SetlistItem   `json:"setlistItems"`
	TrackDurations []TrackDuration `json:"trackDurations,omitempty"`
	VenueRun       *VenueRun       `json:"venueRun,omitempty"`
	TourPosition   *TourPosition   `json:"tourPosition,omitempty"`
	ShowVenueInfo  *ShowVenueInfo  `json:"showVenueInfo,omitempty"`
}

// SetlistItem is one performed song within a show. SetlistItems is the
// authoritative record of what was played and in which order; everything
// else on the show is a best-effort overlay.
type SetlistItem struct {
	SongName string `json:"songName"`
	SongID   int    `json:"songId,omitempty"`
	SetLabel string `json:"setLabel"`
	Footnote string `json:"footnote,omitempty"`
	// Gap is the number of shows elapsed since the song was last performed
	// anywhere, as recorded at the time of this performance. 0 means the
	// gap is unknown or the song is a debut.
	Gap int `json:"gap,omitempty"`
}

// TrackDuration is one recorded track from the audio archive. Shows without
// archive coverage carry none.
type TrackDuration struct {
	SongName        string `json:"songName"`
	SongID          int    `json:"songId,omitempty"`
	DurationSeconds int    `json:"durationSeconds"`
	Venue           string `json:"venue,omitempty"`
	ShowDate        string `json:"showDate"`
	SetNumber       string `json:"setNumber,omitempty"`
}

// VenueRun describes a contiguous multi-night stand at a single venue.
type VenueRun struct {
	Venue       string   `json:"venue"`
	City        string   `json:"city,omitempty"`
	State       string   `json:"state,omitempty"`
	NightNumber int      `json:"nightNumber"`
	TotalNights int      `json:"totalNights"`
	ShowDates   []string `json:"showDates,omitempty"`
}

// TourPosition is a show's ordinal index within its tour.
type TourPosition struct {
	TourName   string `json:"tourName"`
	ShowNumber int    `json:"showNumber"`
	TotalShows int    `json:"totalShows"`
	TourYear   string `json:"tourYear,omitempty"`
}

// ShowVenueInfo is the authoritative venue/location source for a show.
type ShowVenueInfo struct {
	Venue string `json:"venue"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`
}

// Venue returns the show's venue name, preferring the authoritative venue
// info over the venue-run record.
func (s *EnhancedShow) Venue() string {
	if s.ShowVenueInfo != nil && s.ShowVenueInfo.Venue != "" {
		return s.ShowVenueInfo.Venue
	}
	if s.VenueRun != nil {
		return s.VenueRun.Venue
	}
	return ""
}

// City returns the show's city, falling back from venue info to venue run.
func (s *EnhancedShow) City() string {
	if s.ShowVenueInfo != nil && s.ShowVenueInfo.City != "" {
		return s.ShowVenueInfo.City
	}
	if s.VenueRun != nil {
		return s.VenueRun.City
	}
	return ""
}

// State returns the show's state, falling back from venue info to venue run.
func (s *EnhancedShow) State() string {
	if s.ShowVenueInfo != nil && s.ShowVenueInfo.State != "" {
		return s.ShowVenueInfo.State
	}
	if s.VenueRun != nil {
		return s.VenueRun.State
	}
	return ""
}

// IsEncoreLabel reports whether a set label names an encore ("e", "e2", ...).
func IsEncoreLabel(label string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(label)), "e")
}
