// Package store keeps labelled recordings in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	gestures "github.com/tphakala/go-photodiode-gestures"
	"github.com/tphakala/go-photodiode-gestures/internal/monitoring"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	driverName    = "sqlite"
	migrationsDir = "migrations"
	bytesPerValue = 8
)

// ErrCorruptRecord indicates a stored blob that does not match its shape.
var ErrCorruptRecord = errors.New("corrupt recording")

// Store is a SQLite-backed recording store.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies pending
// migrations. Use ":memory:" for a private in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases shared across queries.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.migrateUp(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrateUp() error {
	src, err := iofs.New(migrationsFS, migrationsDir)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create sqlite driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driverName, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	m.Log = migrateLogger{}

	// m is not closed: that would close the shared database handle.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts rec under a new random id.
func (s *Store) Save(ctx context.Context, rec gestures.Recording) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("failed to generate id: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO recordings (id, candidate, gesture, hand, time_steps, channels, data, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), rec.Candidate, rec.Gesture.String(), rec.Hand.String(),
		rec.Sample.Steps(), rec.Sample.Channels(), encodeData(rec.Sample),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save recording: %w", err)
	}
	return nil
}

// Load returns every recording of gesture performed with hand in insertion
// order.
func (s *Store) Load(ctx context.Context, gesture gestures.Gesture, hand gestures.Hand) ([]gestures.Recording, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, candidate, time_steps, channels, data
		FROM recordings
		WHERE gesture = ? AND hand = ?
		ORDER BY rowid`,
		gesture.String(), hand.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recordings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []gestures.Recording
	for rows.Next() {
		var (
			id, candidate   string
			steps, channels int
			blob            []byte
		)
		if err := rows.Scan(&id, &candidate, &steps, &channels, &blob); err != nil {
			return nil, fmt.Errorf("failed to scan recording: %w", err)
		}

		sample, err := decodeData(blob, steps, channels)
		if err != nil {
			return nil, fmt.Errorf("recording %s: %w", id, err)
		}
		out = append(out, gestures.Recording{
			Candidate: candidate,
			Gesture:   gesture,
			Hand:      hand,
			Sample:    sample,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	monitoring.Logf("store: loaded %d recordings for %s/%s", len(out), gesture, hand)
	return out, nil
}

// Candidates returns the distinct candidate ids in sorted order.
func (s *Store) Candidates(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT candidate FROM recordings ORDER BY candidate`)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Count returns the number of stored recordings.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recordings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count recordings: %w", err)
	}
	return n, nil
}

// encodeData packs the sample row-major as little-endian float64.
func encodeData(s gestures.Sample) []byte {
	flat := s.Flatten()
	buf := make([]byte, 0, len(flat)*bytesPerValue)
	for _, v := range flat {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	return buf
}

func decodeData(blob []byte, steps, channels int) (gestures.Sample, error) {
	if steps <= 0 || channels <= 0 || len(blob) != steps*channels*bytesPerValue {
		return gestures.Sample{}, fmt.Errorf("%w: %d bytes for shape (%d, %d)",
			ErrCorruptRecord, len(blob), steps, channels)
	}

	rows := make([][]float64, steps)
	for t := range rows {
		rows[t] = make([]float64, channels)
		for c := range rows[t] {
			off := (t*channels + c) * bytesPerValue
			rows[t][c] = math.Float64frombits(binary.LittleEndian.Uint64(blob[off:]))
		}
	}
	return gestures.SampleFromRows(rows)
}

// migrateLogger routes migration progress to the package logger.
type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...any) {
	monitoring.Logf("[migrate] "+format, v...)
}

func (migrateLogger) Verbose() bool {
	return false
}
