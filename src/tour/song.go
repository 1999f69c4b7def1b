package tour

// CatalogSong is one entry of the comprehensive historical song catalog:
// lifetime play counts and original-artist attribution for every song the
// act has ever performed. Supplied by the catalog provider, not derivable
// from a single tour's shows.
type CatalogSong struct {
	SongID      int    `json:"songid"`
	Song        string `json:"song"`
	Artist      string `json:"artist"`
	TimesPlayed int    `json:"times_played"`
}

// StatsContext carries the auxiliary inputs some calculators need beyond
// the show list itself.
type StatsContext struct {
	ComprehensiveSongs []CatalogSong
}

// ArtistBySongID builds a song-id to original-artist lookup from the
// comprehensive catalog. Returns an empty map when the catalog is absent.
func (c *StatsContext) ArtistBySongID() map[int]string {
	lookup := make(map[int]string)
	if c == nil {
		return lookup
	}
	for _, song := range c.ComprehensiveSongs {
		if song.SongID != 0 && song.Artist != "" {
			lookup[song.SongID] = song.Artist
		}
	}
	return lookup
}
