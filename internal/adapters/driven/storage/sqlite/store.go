// Package sqlite implements the offline document index on SQLite.
package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"embed"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/codexr-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/codexr-cli/internal/core/domain"
	"github.com/custodia-labs/codexr-cli/internal/core/ports/driven"
	"github.com/custodia-labs/codexr-cli/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.DocumentIndex = (*Store)(nil)

// Store is the SQLite-backed offline document index with a
// content-addressed retrieval cache.
type Store struct {
	db      *sql.DB
	path    string
	writeMu sync.Mutex // serialises document insertion
}

// NewStore creates a SQLite index at the specified data directory.
// If dataDir is empty, defaults to ~/.codexr/data/index.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".codexr", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "index.db")

	// WAL keeps concurrent reads safe while a batch insert runs.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// IndexDocuments appends a batch of documents in one transaction.
// Insertion is append-only and never dedupes: indexing the same
// batch twice yields two retrievable copies. A successful write
// invalidates the retrieval cache, since cached results may no
// longer reflect the newest documents.
func (s *Store) IndexDocuments(ctx context.Context, docs []domain.IndexedDocument) error {
	if len(docs) == 0 {
		return nil
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().UTC()
	for _, doc := range docs {
		createdAt := doc.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO documents (title, content, source, category, url, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, doc.Title, doc.Content, doc.Source, string(doc.Category), doc.URL, createdAt)
		if err != nil {
			return fmt.Errorf("inserting document %q: %w", doc.Title, err)
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM retrieval_cache"); err != nil {
		return fmt.Errorf("invalidating retrieval cache: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing documents: %w", err)
	}

	logger.Debug("Indexed %d documents into %s", len(docs), s.path)
	return nil
}

// Retrieve returns up to topK documents whose title or content
// contains the query (SQLite LIKE, case-insensitive for ASCII),
// most-recently-indexed first. Results are served from the retrieval
// cache when present and cached after a miss.
func (s *Store) Retrieve(ctx context.Context, query string, category domain.Category, topK int) ([]domain.IndexedDocument, error) {
	if topK <= 0 {
		return []domain.IndexedDocument{}, nil
	}

	key := cacheKey(query, category, topK)
	if cached, ok := s.cachedResults(ctx, key); ok {
		logger.Debug("Retrieval cache hit for %q", query)
		return cached, nil
	}

	pattern := "%" + query + "%"
	var (
		rows *sql.Rows
		err  error
	)
	if category != "" {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, title, content, source, category, url, created_at
			FROM documents
			WHERE category = ? AND (content LIKE ? OR title LIKE ?)
			ORDER BY id DESC LIMIT ?
		`, string(category), pattern, pattern, topK)
	} else {
		rows, err = s.db.QueryContext(ctx, `
			SELECT id, title, content, source, category, url, created_at
			FROM documents
			WHERE content LIKE ? OR title LIKE ?
			ORDER BY id DESC LIMIT ?
		`, pattern, pattern, topK)
	}
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	docs := []domain.IndexedDocument{}
	for rows.Next() {
		var (
			doc domain.IndexedDocument
			cat string
			url sql.NullString
		)
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Content, &doc.Source, &cat, &url, &doc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		doc.Category = domain.Category(cat)
		doc.URL = url.String
		doc.Similarity = domain.PlaceholderSimilarity
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	s.storeCachedResults(ctx, key, docs)
	return docs, nil
}

// cachedResults looks up a retrieval cache entry.
func (s *Store) cachedResults(ctx context.Context, key string) ([]domain.IndexedDocument, bool) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT results FROM retrieval_cache WHERE query_hash = ?", key).Scan(&blob)
	if err != nil {
		return nil, false
	}

	var docs []domain.IndexedDocument
	if err := json.Unmarshal(blob, &docs); err != nil {
		logger.Warn("Discarding corrupt cache entry %s: %v", key, err)
		return nil, false
	}
	return docs, true
}

// storeCachedResults writes a retrieval cache entry. Cache failures
// are logged and swallowed: caching must never fail a retrieval.
func (s *Store) storeCachedResults(ctx context.Context, key string, docs []domain.IndexedDocument) {
	blob, err := json.Marshal(docs)
	if err != nil {
		logger.Warn("Marshalling cache entry failed: %v", err)
		return
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO retrieval_cache (query_hash, results, created_at)
		VALUES (?, ?, ?)
	`, key, blob, time.Now().UTC())
	if err != nil {
		logger.Warn("Writing cache entry failed: %v", err)
	}
}

// cacheKey hashes the full retrieval parameters so different category
// filters or limits never collide.
func cacheKey(query string, category domain.Category, topK int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d", query, category, topK)))
	return hex.EncodeToString(sum[:])
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}
		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
