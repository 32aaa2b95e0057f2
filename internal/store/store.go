// Package store handles SQLite persistence of custom word packs.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/spellace/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for word pack data.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS pack_words (
			tier TEXT NOT NULL,
			word TEXT NOT NULL,
			source TEXT NOT NULL,
			added_at TEXT NOT NULL,
			PRIMARY KEY (tier, word)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_pack_words_added_at ON pack_words(added_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// AddWords stores words for a tier and returns how many were new.
func (s *Store) AddWords(ctx context.Context, tier string, words []string, source string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO pack_words (tier, word, source, added_at) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	addedAt := s.now().Format(time.RFC3339Nano)
	added := 0
	for _, word := range words {
		var res sql.Result
		res, err = stmt.ExecContext(ctx, tier, word, source, addedAt)
		if err != nil {
			return 0, err
		}
		var n int64
		n, err = res.RowsAffected()
		if err != nil {
			return 0, err
		}
		added += int(n)
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// ListWords returns the custom words of a tier in insertion order.
func (s *Store) ListWords(ctx context.Context, tier string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word FROM pack_words WHERE tier = ? ORDER BY added_at ASC, rowid ASC`, tier)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// ListAll returns every custom word grouped by tier.
func (s *Store) ListAll(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tier, word FROM pack_words ORDER BY tier ASC, added_at ASC, rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	result := map[string][]string{}
	for rows.Next() {
		var tier, word string
		if err := rows.Scan(&tier, &word); err != nil {
			return nil, err
		}
		result[tier] = append(result[tier], word)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Summaries counts custom words per tier.
func (s *Store) Summaries(ctx context.Context) ([]model.PackSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tier, COUNT(*) FROM pack_words GROUP BY tier ORDER BY tier ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.PackSummary
	for rows.Next() {
		var summary model.PackSummary
		if err := rows.Scan(&summary.Tier, &summary.Words); err != nil {
			return nil, err
		}
		result = append(result, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ClearTier deletes the custom words of a tier and returns how many were removed.
func (s *Store) ClearTier(ctx context.Context, tier string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM pack_words WHERE tier = ?`, tier)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
