package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/contre95/tourstats/src/tour"
	_ "github.com/mattn/go-sqlite3"
)

// SqliteStore is a SQLite implementation of the StatsStore interface.
// Snapshots and cached shows are stored as JSON payloads; the serving layer
// returns them as-is, so there is nothing relational to gain from exploding
// the records into columns.
type SqliteStore struct {
	db *sql.DB
}

// NewSqliteStore creates a new SqliteStore.
func NewSqliteStore(path string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := createTables(db); err != nil {
		return nil, err
	}

	return &SqliteStore{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS tour_stats (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tour_name TEXT NOT NULL,
			generated_at TEXT NOT NULL,
			payload TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tour_stats_tour ON tour_stats(tour_name, generated_at);

		CREATE TABLE IF NOT EXISTS tour_shows (
			tour_name TEXT NOT NULL,
			show_date TEXT NOT NULL,
			payload TEXT NOT NULL,
			PRIMARY KEY (tour_name, show_date)
		);
	`)
	return err
}

// SaveStats appends a new statistics snapshot for the tour.
func (s *SqliteStore) SaveStats(ctx context.Context, stats *tour.TourStats) error {
	if stats == nil {
		return fmt.Errorf("stats cannot be nil")
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO tour_stats (tour_name, generated_at, payload) VALUES (?, ?, ?)`,
		stats.TourName, stats.GeneratedAt.Format("2006-01-02T15:04:05.000Z07:00"), string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to insert stats: %w", err)
	}
	return nil
}

// GetLatestStats returns the most recent snapshot for a tour, or nil when
// none exists.
func (s *SqliteStore) GetLatestStats(ctx context.Context, tourName string) (*tour.TourStats, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT payload FROM tour_stats WHERE tour_name = ? ORDER BY generated_at DESC, id DESC LIMIT 1`,
		tourName,
	)
	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	var stats tour.TourStats
	if err := json.Unmarshal([]byte(payload), &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %w", err)
	}
	return &stats, nil
}

// ListTours returns every tour with at least one snapshot.
func (s *SqliteStore) ListTours(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT tour_name FROM tour_stats ORDER BY tour_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tours: %w", err)
	}
	defer rows.Close()

	var tours []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tours = append(tours, name)
	}
	return tours, rows.Err()
}

// SaveShows replaces the cached enhanced shows for a tour.
func (s *SqliteStore) SaveShows(ctx context.Context, tourName string, shows []*tour.EnhancedShow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tour_shows WHERE tour_name = ?`, tourName); err != nil {
		return fmt.Errorf("failed to clear cached shows: %w", err)
	}
	for _, show := range shows {
		payload, err := json.Marshal(show)
		if err != nil {
			return fmt.Errorf("failed to marshal show %s: %w", show.ShowDate, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tour_shows (tour_name, show_date, payload) VALUES (?, ?, ?)`,
			tourName, show.ShowDate, string(payload),
		); err != nil {
			return fmt.Errorf("failed to insert show %s: %w", show.ShowDate, err)
		}
	}
	return tx.Commit()
}

// GetShows returns the cached enhanced shows for a tour, ordered by date.
func (s *SqliteStore) GetShows(ctx context.Context, tourName string) ([]*tour.EnhancedShow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM tour_shows WHERE tour_name = ? ORDER BY show_date`,
		tourName,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query shows: %w", err)
	}
	defer rows.Close()

	var shows []*tour.EnhancedShow
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var show tour.EnhancedShow
		if err := json.Unmarshal([]byte(payload), &show); err != nil {
			return nil, fmt.Errorf("failed to unmarshal show: %w", err)
		}
		shows = append(shows, &show)
	}
	return shows, rows.Err()
}

// Close closes the underlying database handle.
func (s *SqliteStore) Close() error {
	return s.db.Close()
}
