package lexicon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrEmptyRecord is returned when saving a record without an ARPABET spelling
var ErrEmptyRecord = errors.New("record has no ARPABET transcription")

// Record is one stored pronunciation
type Record struct {
	Word    string    `json:"word,omitempty" yaml:"word,omitempty"`
	ARPABET string    `json:"arpabet" yaml:"arpabet"`
	XSAMPA  string    `json:"xsampa" yaml:"xsampa"`
	IPA     string    `json:"ipa" yaml:"ipa"`
	Updated time.Time `json:"updated" yaml:"updated"`
}

// Store is a SQLite backed pronunciation lexicon
type Store struct {
	db *sql.DB
}

// Open opens or creates the lexicon database at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	// sqlite3 allows a single writer
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return s, nil
}

// Close releases the database handle
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS pronunciations (
			id integer PRIMARY KEY AUTOINCREMENT,
			word text NOT NULL,
			arpabet text NOT NULL,
			xsampa text NOT NULL,
			ipa text NOT NULL,
			updated integer NOT NULL,
			UNIQUE (word, arpabet)
		)`,
		`CREATE INDEX IF NOT EXISTS ix_pronunciations_word ON pronunciations (word)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// Save inserts rec, replacing the spellings of an existing record with the
// same word and ARPABET transcription
func (s *Store) Save(ctx context.Context, rec Record) error {
	if rec.ARPABET == "" {
		return ErrEmptyRecord
	}
	if rec.Updated.IsZero() {
		rec.Updated = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pronunciations (word, arpabet, xsampa, ipa, updated)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (word, arpabet) DO UPDATE SET
			xsampa = excluded.xsampa,
			ipa = excluded.ipa,
			updated = excluded.updated`,
		rec.Word, rec.ARPABET, rec.XSAMPA, rec.IPA, rec.Updated.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", rec.ARPABET, err)
	}
	return nil
}

// Lookup returns every stored pronunciation of word in insertion order
func (s *Store) Lookup(ctx context.Context, word string) ([]Record, error) {
	return s.query(ctx, `
		SELECT word, arpabet, xsampa, ipa, updated FROM pronunciations
		WHERE word = ? ORDER BY id`, word)
}

// All returns every stored pronunciation ordered by word
func (s *Store) All(ctx context.Context) ([]Record, error) {
	return s.query(ctx, `
		SELECT word, arpabet, xsampa, ipa, updated FROM pronunciations
		ORDER BY word, id`)
}

// Count returns the number of stored pronunciations
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pronunciations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count pronunciations: %w", err)
	}
	return n, nil
}

func (s *Store) query(ctx context.Context, query string, args ...interface{}) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lexicon: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec     Record
			updated int64
		)
		if err := rows.Scan(&rec.Word, &rec.ARPABET, &rec.XSAMPA, &rec.IPA, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		rec.Updated = time.UnixMilli(updated)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return records, nil
}
