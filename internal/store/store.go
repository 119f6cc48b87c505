package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/asymptotix/foundation/core/error"
	"github.com/msto63/asymptotix/foundation/core/errors"
	mdwlog "github.com/msto63/asymptotix/foundation/core/log"
	"github.com/msto63/asymptotix/foundation/expr"
)

// Definition is a named expression
type Definition struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Expression string    `json:"expression"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HistoryEntry is one evaluated input of an interactive session
type HistoryEntry struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Input     string    `json:"input"`
	Result    string    `json:"result"`
	Failed    bool      `json:"failed"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines the interface for definition persistence
type Store interface {
	// Definition operations
	Put(ctx context.Context, name, expression, note string) (*Definition, error)
	Get(ctx context.Context, name string) (*Definition, error)
	List(ctx context.Context) ([]*Definition, error)
	Delete(ctx context.Context, name string) error

	// History operations
	AddHistory(ctx context.Context, entry *HistoryEntry) error
	History(ctx context.Context, limit int) ([]*HistoryEntry, error)

	// Utility
	Statistics(ctx context.Context) (map[string]interface{}, error)
	Close() error
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	logger *mdwlog.Logger
}

// Config holds configuration for the SQLite store
type Config struct {
	Path   string
	Logger *mdwlog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Path: "./data/asymp.db",
	}
}

// NewSQLiteStore opens (and if needed creates) the database at cfg.Path
func NewSQLiteStore(cfg Config) (*SQLiteStore, error) {
	if cfg.Logger == nil {
		cfg.Logger = mdwlog.GetDefault()
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.InvalidInput(errors.ModuleStore, "open", cfg.Path, "database path")
	}

	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, dbError("open", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, dbError("open", err)
	}

	s := &SQLiteStore{db: db, logger: cfg.Logger.WithComponent("store")}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, dbError("init_schema", err)
	}

	s.logger.Debug("Store opened", mdwlog.Fields{"path": cfg.Path})
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Named expressions
	CREATE TABLE IF NOT EXISTS definitions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		expression TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Interactive session history
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		input TEXT NOT NULL,
		result TEXT NOT NULL,
		failed INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_definitions_name ON definitions(name);
	CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_history_session ON history(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Put creates or replaces the definition of name. The expression must parse
// and must not refer to name itself.
func (s *SQLiteStore) Put(ctx context.Context, name, expression, note string) (*Definition, error) {
	if err := validateDefinition(name, expression); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	def := &Definition{
		ID:         uuid.New().String(),
		Name:       name,
		Expression: expression,
		Note:       note,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO definitions (id, name, expression, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			expression = excluded.expression,
			note = excluded.note,
			updated_at = excluded.updated_at
	`, def.ID, def.Name, def.Expression, def.Note, def.CreatedAt, def.UpdatedAt)
	if err != nil {
		return nil, dbError("put", err)
	}

	// The row keeps its original id and creation time on update
	row := s.db.QueryRowContext(ctx, `SELECT id, created_at FROM definitions WHERE name = ?`, name)
	if err := row.Scan(&def.ID, &def.CreatedAt); err != nil {
		return nil, dbError("put", err)
	}

	s.logger.Info("Definition stored", mdwlog.Fields{"name": name, "id": def.ID})
	return def, nil
}

func validateDefinition(name, expression string) error {
	if !expr.IsValidIdentifier(name) {
		return errors.InvalidInput(errors.ModuleStore, "put", name, "identifier")
	}
	if expr.IsReserved(name) {
		return errors.InvalidInput(errors.ModuleStore, "put", name, "a name that is not a builtin")
	}
	node, err := expr.Parse(expression)
	if err != nil {
		return err
	}
	for _, ref := range expr.FreeNames(node) {
		if ref == name {
			return cycleError([]string{name, name})
		}
	}
	return nil
}

// Get retrieves a definition by name. A missing name yields (nil, nil).
func (s *SQLiteStore) Get(ctx context.Context, name string) (*Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, expression, note, created_at, updated_at
		FROM definitions WHERE name = ?
	`, name)

	var def Definition
	err := row.Scan(&def.ID, &def.Name, &def.Expression, &def.Note, &def.CreatedAt, &def.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, dbError("get", err)
	}
	return &def, nil
}

// List returns all definitions ordered by name
func (s *SQLiteStore) List(ctx context.Context) ([]*Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, expression, note, created_at, updated_at
		FROM definitions
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, dbError("list", err)
	}
	defer rows.Close()

	var defs []*Definition
	for rows.Next() {
		var def Definition
		if err := rows.Scan(&def.ID, &def.Name, &def.Expression, &def.Note, &def.CreatedAt, &def.UpdatedAt); err != nil {
			return nil, dbError("list", err)
		}
		defs = append(defs, &def)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list", err)
	}
	return defs, nil
}

// Delete removes a definition. Deleting a missing name is a NotFound error.
func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM definitions WHERE name = ?`, name)
	if err != nil {
		return dbError("delete", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return errors.NotFound(errors.ModuleStore, "delete", name)
	}

	s.logger.Info("Definition deleted", mdwlog.Fields{"name": name})
	return nil
}

// AddHistory appends an entry to the session history
func (s *SQLiteStore) AddHistory(ctx context.Context, entry *HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (id, session_id, input, result, failed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.SessionID, entry.Input, entry.Result, entry.Failed, entry.CreatedAt)
	if err != nil {
		return dbError("add_history", err)
	}
	return nil
}

// History returns the last limit entries across sessions, oldest first.
// A limit of zero or less returns everything.
func (s *SQLiteStore) History(ctx context.Context, limit int) ([]*HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, session_id, input, result, failed, created_at
		FROM history
		ORDER BY created_at DESC, rowid DESC
	`
	var args []interface{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError("history", err)
	}
	defer rows.Close()

	var entries []*HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Input, &e.Result, &e.Failed, &e.CreatedAt); err != nil {
			return nil, dbError("history", err)
		}
		entries = append(entries, &e)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Statistics returns store statistics
func (s *SQLiteStore) Statistics(ctx context.Context) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make(map[string]interface{})

	var definitions, history, sessions int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM definitions`).Scan(&definitions); err != nil {
		return nil, dbError("statistics", err)
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*), COUNT(DISTINCT session_id) FROM history`).Scan(&history, &sessions); err != nil {
		return nil, dbError("statistics", err)
	}

	stats["total_definitions"] = definitions
	stats["total_history"] = history
	stats["total_sessions"] = sessions
	return stats, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func dbError(op string, cause error) error {
	return errors.OperationFailed(errors.ModuleStore, op, mdwerror.CodeDatabaseError, cause)
}
