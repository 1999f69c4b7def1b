package tour

import "time"

// SongGapInfo is the rarest-songs result unit: the single rarest occurrence
// of a song within the tour, with the context of where it happened. The
// Tour* fields come from the show being folded; LastPlayed, TimesPlayed and
// the Historical* fields belong to the published record shape and are filled
// only when the setlist feed carries that historical context, so a feed
// exposing just the gap leaves them empty (omitempty drops them from JSON).
type SongGapInfo struct {
	SongID               int           `json:"songId"`
	SongName             string        `json:"songName"`
	Gap                  int           `json:"gap"`
	LastPlayed           string        `json:"lastPlayed,omitempty"`
	TimesPlayed          int           `json:"timesPlayed,omitempty"`
	TourVenue            string        `json:"tourVenue,omitempty"`
	TourVenueRun         *VenueRun     `json:"tourVenueRun,omitempty"`
	TourDate             string        `json:"tourDate,omitempty"`
	TourCity             string        `json:"tourCity,omitempty"`
	TourState            string        `json:"tourState,omitempty"`
	TourPosition         *TourPosition `json:"tourPosition,omitempty"`
	HistoricalVenue      string        `json:"historicalVenue,omitempty"`
	HistoricalCity       string        `json:"historicalCity,omitempty"`
	HistoricalState      string        `json:"historicalState,omitempty"`
	HistoricalLastPlayed string        `json:"historicalLastPlayed,omitempty"`
}

// MostPlayedSong is one ranked entry of the most-played list.
type MostPlayedSong struct {
	SongID   int    `json:"songId"`
	SongName string `json:"songName"`
	PlayCount int   `json:"playCount"`
}

// MostCommonSongNotPlayed is a commonly-played catalog song the tour skipped.
type MostCommonSongNotPlayed struct {
	SongID              int    `json:"songId"`
	SongName            string `json:"songName"`
	HistoricalPlayCount int    `json:"historicalPlayCount"`
	OriginalArtist      string `json:"originalArtist,omitempty"`
}

// PositionSong is a song counted at a set position (opener, closer, encore).
type PositionSong struct {
	SongName string `json:"songName"`
	SongID   int    `json:"songId"`
	Count    int    `json:"count"`
}

// SetSongShow is the show context attached to a songs-per-set extreme.
type SetSongShow struct {
	Date     string    `json:"date"`
	Venue    string    `json:"venue,omitempty"`
	City     string    `json:"city,omitempty"`
	State    string    `json:"state,omitempty"`
	VenueRun *VenueRun `json:"venueRun,omitempty"`
}

// SetSongExtreme is a min or max song count with every show that ties at it.
type SetSongExtreme struct {
	Count int           `json:"count"`
	Shows []SetSongShow `json:"shows"`
}

// SetSongStats is the min/max pair for one set label.
type SetSongStats struct {
	Min SetSongExtreme `json:"min"`
	Max SetSongExtreme `json:"max"`
}

// RepeatShowData is one show's repeat/gap record in chronological order.
type RepeatShowData struct {
	Date             string    `json:"date"`
	Venue            string    `json:"venue,omitempty"`
	City             string    `json:"city,omitempty"`
	State            string    `json:"state,omitempty"`
	VenueRun         *VenueRun `json:"venueRun,omitempty"`
	TotalSongs       int       `json:"totalSongs"`
	Repeats          int       `json:"repeats"`
	RepeatPercentage float64   `json:"repeatPercentage"`
	AverageGap       float64   `json:"averageGap"`
	ShowNumber       int       `json:"showNumber"`
	TotalTourShows   int       `json:"totalTourShows"`
}

// RepeatsResult is the full repeats series plus the maxima a consumer needs
// for chart scaling.
type RepeatsResult struct {
	Shows         []RepeatShowData `json:"shows"`
	HasRepeats    bool             `json:"hasRepeats"`
	MaxPercentage float64          `json:"maxPercentage"`
	MaxAverageGap float64          `json:"maxAverageGap"`
	TotalShows    int              `json:"totalShows"`
}

// DebutInfo is one detected debut performance.
type DebutInfo struct {
	ID             string        `json:"id"`
	SongID         int           `json:"songId"`
	SongName       string        `json:"songName"`
	Footnote       string        `json:"footnote"`
	ShowDate       string        `json:"showDate"`
	Venue          string        `json:"venue,omitempty"`
	VenueRun       *VenueRun     `json:"venueRun,omitempty"`
	City           string        `json:"city,omitempty"`
	State          string        `json:"state,omitempty"`
	TourPosition   *TourPosition `json:"tourPosition,omitempty"`
	OriginalArtist string        `json:"originalArtist,omitempty"`
}

// DebutsResult carries the debuts plus the latest show date seen, which the
// dashboard uses for its empty-state message when a tour had no debuts.
type DebutsResult struct {
	Debuts         []DebutInfo `json:"debuts"`
	LatestShowDate string      `json:"latestShowDate,omitempty"`
}

// TourStats is the assembled statistics object for one tour, serialized
// as-is by the persistence layer. Every field is always present; a failed
// or skipped calculator leaves its documented empty shape, never null.
type TourStats struct {
	TourName                 string                    `json:"tourName"`
	LongestSongs             []TrackDuration           `json:"longestSongs"`
	RarestSongs              []SongGapInfo             `json:"rarestSongs"`
	MostPlayedSongs          []MostPlayedSong          `json:"mostPlayedSongs"`
	MostCommonSongsNotPlayed []MostCommonSongNotPlayed `json:"mostCommonSongsNotPlayed"`
	SetSongStats             map[string]SetSongStats   `json:"setSongStats"`
	OpenersClosers           map[string][]PositionSong `json:"openersClosers"`
	Repeats                  RepeatsResult             `json:"repeats"`
	Debuts                   DebutsResult              `json:"debuts"`
	GeneratedAt              time.Time                 `json:"generatedAt"`
}

// EmptyTourStats returns a fully-shaped statistics object where every field
// holds its empty value.
func EmptyTourStats(tourName string) *TourStats {
	return &TourStats{
		TourName:                 tourName,
		LongestSongs:             []TrackDuration{},
		RarestSongs:              []SongGapInfo{},
		MostPlayedSongs:          []MostPlayedSong{},
		MostCommonSongsNotPlayed: []MostCommonSongNotPlayed{},
		SetSongStats:             map[string]SetSongStats{},
		OpenersClosers:           map[string][]PositionSong{},
		Repeats:                  RepeatsResult{Shows: []RepeatShowData{}},
		Debuts:                   DebutsResult{Debuts: []DebutInfo{}},
	}
}

// HasData reports whether any calculator produced a non-empty result.
func (s *TourStats) HasData() bool {
	if s == nil {
		return false
	}
	return len(s.LongestSongs) > 0 ||
		len(s.RarestSongs) > 0 ||
		len(s.MostPlayedSongs) > 0 ||
		len(s.MostCommonSongsNotPlayed) > 0 ||
		len(s.SetSongStats) > 0 ||
		len(s.OpenersClosers) > 0 ||
		len(s.Repeats.Shows) > 0 ||
		len(s.Debuts.Debuts) > 0
}
