// Package tutorials stores registered tutorials grouped by category.
package tutorials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aidanlsb/didact/internal/slugs"
	"github.com/aidanlsb/didact/internal/sqlutil"
)

// ErrTutorialNotFound indicates no tutorial is registered under a name and category.
var ErrTutorialNotFound = errors.New("tutorial not found")

// Tutorial is a registered tutorial.
type Tutorial struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	URI          string    `json:"uri"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Store is the SQLite-backed tutorial registry.
type Store struct {
	db *sql.DB
}

// DBFileName is the registry file inside the data directory.
const DBFileName = "tutorials.db"

// Open opens or creates the registry in dataDir.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps the pragmas in effect for every statement.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS tutorials (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			uri TEXT NOT NULL,
			registered_at INTEGER NOT NULL,
			UNIQUE (category, name)
		);

		CREATE INDEX IF NOT EXISTS idx_tutorials_category ON tutorials(category);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Register adds a tutorial, or replaces the URI of one already registered with
// the same name and category.
func (s *Store) Register(name, category, uri string) (*Tutorial, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	uri = strings.TrimSpace(uri)
	if name == "" || category == "" || uri == "" {
		return nil, fmt.Errorf("name, category and uri are required")
	}

	t := &Tutorial{
		ID:           slugs.TutorialID(category, name),
		Name:         name,
		Category:     category,
		URI:          uri,
		RegisteredAt: time.Now().UTC().Truncate(time.Second),
	}
	_, err := s.db.Exec(`
		INSERT INTO tutorials (id, name, category, uri, registered_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (category, name) DO UPDATE SET uri = excluded.uri, registered_at = excluded.registered_at
	`, t.ID, t.Name, t.Category, t.URI, t.RegisteredAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to register tutorial %q: %w", name, err)
	}
	return t, nil
}

// Categories returns the distinct categories, sorted.
func (s *Store) Categories() ([]string, error) {
	categories, err := sqlutil.QueryAll(context.Background(), s.db,
		`SELECT DISTINCT category FROM tutorials ORDER BY category`,
		func(rows *sql.Rows) (string, error) {
			var category string
			err := rows.Scan(&category)
			return category, err
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// TutorialsForCategory returns the tutorials in category, sorted by name.
func (s *Store) TutorialsForCategory(category string) ([]Tutorial, error) {
	return s.query(`
		SELECT id, name, category, uri, registered_at FROM tutorials
		WHERE category = ? ORDER BY name
	`, strings.TrimSpace(category))
}

// All returns every tutorial sorted by category and name.
func (s *Store) All() ([]Tutorial, error) {
	return s.query(`
		SELECT id, name, category, uri, registered_at FROM tutorials
		ORDER BY category, name
	`)
}

func (s *Store) query(q string, args ...any) ([]Tutorial, error) {
	out, err := sqlutil.QueryAll(context.Background(), s.db, q, scanTutorial, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tutorials: %w", err)
	}
	return out, nil
}

func scanTutorial(rows *sql.Rows) (Tutorial, error) {
	var t Tutorial
	var registeredAt int64
	if err := rows.Scan(&t.ID, &t.Name, &t.Category, &t.URI, &registeredAt); err != nil {
		return Tutorial{}, err
	}
	t.RegisteredAt = time.Unix(registeredAt, 0).UTC()
	return t, nil
}

// URIFor returns the URI registered for name in category.
func (s *Store) URIFor(name, category string) (string, error) {
	var uri string
	err := s.db.QueryRow(
		`SELECT uri FROM tutorials WHERE category = ? AND name = ?`,
		strings.TrimSpace(category), strings.TrimSpace(name),
	).Scan(&uri)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s/%s", ErrTutorialNotFound, category, name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up tutorial: %w", err)
	}
	return uri, nil
}

// Remove unregisters a tutorial.
func (s *Store) Remove(name, category string) error {
	res, err := s.db.Exec(
		`DELETE FROM tutorials WHERE category = ? AND name = ?`,
		strings.TrimSpace(category), strings.TrimSpace(name),
	)
	if err != nil {
		return fmt.Errorf("failed to remove tutorial: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s/%s", ErrTutorialNotFound, category, name)
	}
	return nil
}
