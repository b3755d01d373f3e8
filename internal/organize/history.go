package organize

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Operation types for history records.
const (
	OpCopy   = "copy"
	OpMove   = "move"
	OpRename = "rename"
	OpSkip   = "skip"
)

// HistoryEntry is one journaled file operation.
type HistoryEntry struct {
	ID          int64
	OperationID string // uuid shared by all entries of one batch
	Op          string
	Source      string
	Destination string
	Success     bool
	ErrorKind   string
	CreatedAt   time.Time
}

// HistoryFilter narrows a history listing.
type HistoryFilter struct {
	OperationID *string
	Op          *string
	FailedOnly  bool
	Limit       int
}

// HistoryStore journals file operations in sqlite so an organize run can
// be audited after the fact.
type HistoryStore struct {
	db *sql.DB
}

// NewHistoryStore creates a history store.
func NewHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// Init creates the history table if it doesn't exist.
func (s *HistoryStore) Init() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS file_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			operation_id TEXT NOT NULL,
			op TEXT NOT NULL,
			source TEXT NOT NULL,
			destination TEXT NOT NULL,
			success INTEGER NOT NULL,
			error_kind TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create history table: %w", err)
	}
	return nil
}

// NewOperationID returns a fresh batch identifier.
func NewOperationID() string {
	return uuid.NewString()
}

// Add inserts a new history entry, filling ID and CreatedAt.
func (s *HistoryStore) Add(h *HistoryEntry) error {
	now := time.Now()
	result, err := s.db.Exec(`
		INSERT INTO file_history (operation_id, op, source, destination, success, error_kind, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		h.OperationID, h.Op, h.Source, h.Destination, h.Success, h.ErrorKind, now,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	h.ID = id
	h.CreatedAt = now
	return nil
}

// Record journals a mover Result under the given batch id.
func (s *HistoryStore) Record(operationID, op string, res Result) error {
	return s.Add(&HistoryEntry{
		OperationID: operationID,
		Op:          op,
		Source:      res.SourcePath,
		Destination: res.Destination,
		Success:     res.Success,
		ErrorKind:   string(res.Kind),
	})
}

// List returns history entries matching the filter, most recent first.
func (s *HistoryStore) List(f HistoryFilter) ([]*HistoryEntry, error) {
	var conditions []string
	var args []any

	if f.OperationID != nil {
		conditions = append(conditions, "operation_id = ?")
		args = append(args, *f.OperationID)
	}
	if f.Op != nil {
		conditions = append(conditions, "op = ?")
		args = append(args, *f.Op)
	}
	if f.FailedOnly {
		conditions = append(conditions, "success = 0")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := `SELECT id, operation_id, op, source, destination, success, error_kind, created_at
		FROM file_history ` + whereClause + ` ORDER BY created_at DESC, id DESC`

	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*HistoryEntry
	for rows.Next() {
		h := &HistoryEntry{}
		if err := rows.Scan(&h.ID, &h.OperationID, &h.Op, &h.Source, &h.Destination, &h.Success, &h.ErrorKind, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		results = append(results, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return results, nil
}
