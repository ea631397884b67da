package data

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id       VARCHAR PRIMARY KEY,
	taken_at TIMESTAMP NOT NULL,
	endpoint VARCHAR
);
CREATE TABLE IF NOT EXISTS characters (
	snapshot_id  VARCHAR NOT NULL,
	pos          INTEGER NOT NULL,
	character_id INTEGER,
	name         VARCHAR,
	image        VARCHAR,
	status       VARCHAR,
	gender       VARCHAR,
	char_type    VARCHAR,
	PRIMARY KEY (snapshot_id, pos)
);`

// InitDuckDB opens the database at path, creating parent directories and the
// schema when missing.
func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// Repository stores fetched listings as snapshots.
type Repository struct {
	db *sql.DB
}

// NewDuckDBRepository opens (or creates) the snapshot store at path.
func NewDuckDBRepository(path string) (*Repository, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// SaveSnapshot writes the snapshot and its characters in one transaction.
// Saving an existing id replaces it.
func (r *Repository) SaveSnapshot(snapshot *Snapshot) error {
	if snapshot == nil {
		return errors.New("snapshot cannot be nil")
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM characters WHERE snapshot_id = ?`, snapshot.ID); err != nil {
		return fmt.Errorf("failed to clear characters: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM snapshots WHERE id = ?`, snapshot.ID); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO snapshots (id, taken_at, endpoint) VALUES (?, ?, ?)`,
		snapshot.ID, snapshot.TakenAt.UTC(), snapshot.Endpoint,
	); err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	for i, c := range snapshot.Characters {
		if _, err := tx.Exec(
			`INSERT INTO characters (snapshot_id, pos, character_id, name, image, status, gender, char_type)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			snapshot.ID, i, c.ID, c.Name, c.Image, c.Status, c.Gender, c.Type,
		); err != nil {
			return fmt.Errorf("failed to insert character %d: %w", c.ID, err)
		}
	}

	return tx.Commit()
}

// GetSnapshot returns the snapshot with id, or nil when there is none.
func (r *Repository) GetSnapshot(id string) (*Snapshot, error) {
	snapshot := &Snapshot{}
	err := r.db.QueryRow(
		`SELECT id, taken_at, endpoint FROM snapshots WHERE id = ?`, id,
	).Scan(&snapshot.ID, &snapshot.TakenAt, &snapshot.Endpoint)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(
		`SELECT character_id, name, image, status, gender, char_type
		 FROM characters WHERE snapshot_id = ? ORDER BY pos`, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c Character
		if err := rows.Scan(&c.ID, &c.Name, &c.Image, &c.Status, &c.Gender, &c.Type); err != nil {
			return nil, err
		}
		snapshot.Characters = append(snapshot.Characters, c)
	}

	return snapshot, rows.Err()
}

// LatestSnapshot returns the most recent snapshot, or nil when the store is empty.
func (r *Repository) LatestSnapshot() (*Snapshot, error) {
	var id string
	err := r.db.QueryRow(`SELECT id FROM snapshots ORDER BY taken_at DESC LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.GetSnapshot(id)
}

// ListSnapshots returns snapshot headers, newest first. Characters are not loaded.
func (r *Repository) ListSnapshots() ([]*Snapshot, error) {
	rows, err := r.db.Query(`SELECT id, taken_at, endpoint FROM snapshots ORDER BY taken_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*Snapshot
	for rows.Next() {
		s := &Snapshot{}
		if err := rows.Scan(&s.ID, &s.TakenAt, &s.Endpoint); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

// CountCharacters returns how many characters the snapshot holds.
func (r *Repository) CountCharacters(snapshotID string) (int, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM characters WHERE snapshot_id = ?`, snapshotID,
	).Scan(&count)
	return count, err
}

// DeleteSnapshot removes a snapshot and its characters.
func (r *Repository) DeleteSnapshot(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM characters WHERE snapshot_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM snapshots WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}
