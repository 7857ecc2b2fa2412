package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/unscramble/internal/ir"
)

// DictionaryInfo describes the cached word list.
type DictionaryInfo struct {
	Source     string `json:"source"`
	WordCount  int    `json:"word_count"`
	Encoding   string `json:"encoding"`
	Normalized bool   `json:"normalized"`
}

// SaveDictionary replaces the cached word list with words.
//
// The previous contents are removed and the new words inserted in one
// transaction, so readers never observe a partial dictionary. Word order
// is kept in the seq column.
func (s *Store) SaveDictionary(ctx context.Context, info DictionaryInfo, words []ir.Word) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save dictionary: begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return fmt.Errorf("save dictionary: clear words: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words (seq, word, fingerprint) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("save dictionary: prepare: %w", err)
	}
	defer stmt.Close()

	for i, w := range words {
		// go-sqlite3 rejects uint64 values with the high bit set; byte sums
		// of real words never get there.
		fp := int64(ir.FingerprintOf(string(w)))
		if _, err := stmt.ExecContext(ctx, i+1, string(w), fp); err != nil {
			return fmt.Errorf("save dictionary: insert %q: %w", w, err)
		}
	}

	encoding := info.Encoding
	if encoding == "" {
		encoding = "utf-8"
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO dictionary (id, source, word_count, encoding, normalized)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source = excluded.source,
			word_count = excluded.word_count,
			encoding = excluded.encoding,
			normalized = excluded.normalized
	`, info.Source, len(words), encoding, info.Normalized)
	if err != nil {
		return fmt.Errorf("save dictionary: write info: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save dictionary: commit: %w", err)
	}
	return nil
}

// RunRecord summarizes one unscrambling run.
type RunRecord struct {
	ID         string    `json:"id"`
	Input      string    `json:"input"`
	Lines      int       `json:"lines"`
	Tokens     int       `json:"tokens"`
	Resolved   int       `json:"resolved"`
	Ambiguous  int       `json:"ambiguous"`
	Unresolved int       `json:"unresolved"`
	CreatedAt  time.Time `json:"created_at"`
}

// RecordRun stores rec and returns its id.
//
// An empty rec.ID is replaced by a fresh UUIDv7 and a zero CreatedAt by the
// current time.
func (s *Store) RecordRun(ctx context.Context, rec RunRecord) (string, error) {
	if rec.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("record run: generate id: %w", err)
		}
		rec.ID = id.String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, input, lines, tokens, resolved, ambiguous, unresolved, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.Input,
		rec.Lines,
		rec.Tokens,
		rec.Resolved,
		rec.Ambiguous,
		rec.Unresolved,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return rec.ID, nil
}
