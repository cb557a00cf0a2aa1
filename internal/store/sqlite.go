package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/privatetick/privatetick/internal/model"
)

// Collection keys in the key-value table.
const (
	keyTasks  = "tasks"
	keyLists  = "lists"
	keyGroups = "groups"
)

// SQLiteStore implements Store on top of a local SQLite database. Each
// collection is a single JSON blob keyed by name, so load/save is a
// whole-collection swap.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath, enables
// WAL mode, and runs any pending schema migrations. Parent directories
// are created as needed; ":memory:" is accepted for tests.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.version); err != nil {
			return fmt.Errorf("recording migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS collections (
	key        TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);`,
	},
}

// GenerateID returns a fresh random UUID string.
func (s *SQLiteStore) GenerateID() string {
	return uuid.New().String()
}

// loadBlob unmarshals the collection stored under key into dest. It
// reports whether a stored blob was found.
func (s *SQLiteStore) loadBlob(key string, dest interface{}) (bool, error) {
	var data string
	err := s.db.Get(&data, "SELECT data FROM collections WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("parsing %s: %w", key, err)
	}
	return true, nil
}

// saveBlob marshals value and stores it under key, replacing any
// previous blob.
func (s *SQLiteStore) saveBlob(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}
	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO collections (key, data, updated_at) VALUES (?, ?, ?)",
		key, string(data), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// LoadTasks returns the stored task collection, or the seed tasks when
// nothing has been stored yet.
func (s *SQLiteStore) LoadTasks() ([]model.Task, error) {
	var tasks []model.Task
	found, err := s.loadBlob(keyTasks, &tasks)
	if err != nil {
		return nil, err
	}
	if !found {
		return seedTasks(), nil
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}

// SaveTasks replaces the stored task collection.
func (s *SQLiteStore) SaveTasks(tasks []model.Task) error {
	return s.saveBlob(keyTasks, tasks)
}

// LoadLists returns the stored list collection, or the seed lists when
// nothing has been stored yet.
func (s *SQLiteStore) LoadLists() ([]model.TaskList, error) {
	var lists []model.TaskList
	found, err := s.loadBlob(keyLists, &lists)
	if err != nil {
		return nil, err
	}
	if !found {
		return seedLists(), nil
	}
	if lists == nil {
		lists = []model.TaskList{}
	}
	return lists, nil
}

// SaveLists replaces the stored list collection.
func (s *SQLiteStore) SaveLists(lists []model.TaskList) error {
	return s.saveBlob(keyLists, lists)
}

// LoadGroups returns the stored group collection, or the seed groups when
// nothing has been stored yet.
func (s *SQLiteStore) LoadGroups() ([]model.ListGroup, error) {
	var groups []model.ListGroup
	found, err := s.loadBlob(keyGroups, &groups)
	if err != nil {
		return nil, err
	}
	if !found {
		return seedGroups(), nil
	}
	if groups == nil {
		groups = []model.ListGroup{}
	}
	return groups, nil
}

// SaveGroups replaces the stored group collection.
func (s *SQLiteStore) SaveGroups(groups []model.ListGroup) error {
	return s.saveBlob(keyGroups, groups)
}
