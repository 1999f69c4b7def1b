package archive

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/contre95/tourstats/src/tour"
	"github.com/dhowden/tag"
	goflac "github.com/go-flac/go-flac"
)

// LocalArchiveProvider implements tour.ArchiveProvider over a local
// recordings directory. Recordings are laid out one directory per show date
// (e.g. recordings/2023-07-14/), optionally with one subdirectory per set.
// Durations come from the FLAC STREAMINFO block; titles come from the file
// tags, falling back to the file name.
type LocalArchiveProvider struct {
	path string
}

// NewLocalArchiveProvider creates a new local recordings scanner.
func NewLocalArchiveProvider(path string) *LocalArchiveProvider {
	return &LocalArchiveProvider{path: path}
}

// GetShowDurations scans the show-date directory for FLAC files. A missing
// directory means the archive has no recording of the show; that is an empty
// result, not an error.
func (p *LocalArchiveProvider) GetShowDurations(ctx context.Context, showDate string) ([]tour.TrackDuration, error) {
	showDir := filepath.Join(p.path, showDate)
	if _, err := os.Stat(showDir); os.IsNotExist(err) {
		return nil, nil
	}

	var durations []tour.TrackDuration
	err := filepath.WalkDir(showDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() || strings.ToLower(filepath.Ext(path)) != ".flac" {
			return nil
		}

		seconds, err := flacDurationSeconds(path)
		if err != nil {
			slog.Warn("Skipping unreadable recording", "file", path, "error", err)
			return nil
		}

		setLabel := ""
		if parent := filepath.Base(filepath.Dir(path)); parent != showDate {
			setLabel = parent
		}
		durations = append(durations, tour.TrackDuration{
			SongName:        trackTitle(path),
			DurationSeconds: seconds,
			ShowDate:        showDate,
			SetNumber:       setLabel,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan recordings for %s: %w", showDate, err)
	}
	return durations, nil
}

// flacDurationSeconds derives a track length from the STREAMINFO block.
func flacDurationSeconds(path string) (int, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to parse FLAC file: %w", err)
	}
	info, err := f.GetStreamInfo()
	if err != nil {
		return 0, fmt.Errorf("failed to read STREAMINFO: %w", err)
	}
	if info.SampleRate <= 0 {
		return 0, fmt.Errorf("invalid sample rate in %s", path)
	}
	return int(info.SampleCount / int64(info.SampleRate)), nil
}

// trackTitle reads the title tag, falling back to the file name without its
// extension or a leading track number.
func trackTitle(path string) string {
	if file, err := os.Open(path); err == nil {
		defer file.Close()
		if meta, err := tag.ReadFrom(file); err == nil && strings.TrimSpace(meta.Title()) != "" {
			return strings.TrimSpace(meta.Title())
		}
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name = strings.TrimLeft(name, "0123456789")
	name = strings.TrimLeft(name, " -_.")
	return name
}
