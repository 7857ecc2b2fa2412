package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/roach88/unscramble/internal/index"
	"github.com/roach88/unscramble/internal/ir"
)

// ErrNoDictionary is returned when no word list has been saved yet.
var ErrNoDictionary = errors.New("no dictionary in store")

// Dictionary returns information about the cached word list.
// Returns ErrNoDictionary if none has been saved.
func (s *Store) Dictionary(ctx context.Context) (DictionaryInfo, error) {
	var info DictionaryInfo
	err := s.db.QueryRowContext(ctx, `
		SELECT source, word_count, encoding, normalized FROM dictionary WHERE id = 1
	`).Scan(&info.Source, &info.WordCount, &info.Encoding, &info.Normalized)
	if errors.Is(err, sql.ErrNoRows) {
		return DictionaryInfo{}, ErrNoDictionary
	}
	if err != nil {
		return DictionaryInfo{}, fmt.Errorf("read dictionary info: %w", err)
	}
	return info, nil
}

// LoadDictionary returns the cached words in dictionary order.
// Returns ErrNoDictionary if none has been saved.
func (s *Store) LoadDictionary(ctx context.Context) ([]ir.Word, error) {
	info, err := s.Dictionary(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT word FROM words ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer rows.Close()

	words := make([]ir.Word, 0, info.WordCount)
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		words = append(words, ir.Word(w))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}
	return words, nil
}

// BucketStats computes index.Stats over the cached words without loading
// them. The result matches index.Build(words).Stats().
func (s *Store) BucketStats(ctx context.Context) (index.Stats, error) {
	var st index.Stats
	var minB, maxB sql.NullInt64
	var avgB sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(n), 0), COUNT(*), MIN(n), MAX(n), AVG(n)
		FROM (SELECT COUNT(*) AS n FROM words GROUP BY fingerprint)
	`).Scan(&st.Words, &st.Buckets, &minB, &maxB, &avgB)
	if err != nil {
		return index.Stats{}, fmt.Errorf("query bucket stats: %w", err)
	}
	st.MinBucket = int(minB.Int64)
	st.MaxBucket = int(maxB.Int64)
	st.AvgBucket = avgB.Float64
	return st, nil
}

// Runs returns up to limit run records, newest first.
// A limit of zero or less returns all runs.
func (s *Store) Runs(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, input, lines, tokens, resolved, ambiguous, unresolved, created_at
		FROM runs
		ORDER BY id COLLATE BINARY DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []RunRecord{}
	for rows.Next() {
		var rec RunRecord
		var created string
		if err := rows.Scan(
			&rec.ID, &rec.Input, &rec.Lines, &rec.Tokens,
			&rec.Resolved, &rec.Ambiguous, &rec.Unresolved, &created,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse run time %q: %w", created, err)
		}
		runs = append(runs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
