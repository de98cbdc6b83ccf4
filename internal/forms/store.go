package forms

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elisdimitrova/psysite/internal/db"
)

// Store persists submissions.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts a submission. An empty ID is replaced with a UUID and an
// empty status with StatusReceived; the stored values are written back.
func (s *Store) Create(ctx context.Context, sub *Submission) error {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	if sub.Status == "" {
		sub.Status = StatusReceived
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO submissions (id, kind, name, email, phone, service, message, remote_addr, status, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, string(sub.Kind), sub.Name, sub.Email, sub.Phone, sub.Service,
		sub.Message, sub.RemoteAddr, string(sub.Status), sub.Error,
		sub.CreatedAt.UTC().Format(time.DateTime),
	)
	if err != nil {
		return fmt.Errorf("inserting submission: %w", err)
	}
	return nil
}

// GetByID retrieves a single submission. It returns nil, nil when no
// submission has the ID.
func (s *Store) GetByID(ctx context.Context, id string) (*Submission, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+columns+" FROM submissions WHERE id = ?", id)
	sub, err := scanInto(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning submission: %w", err)
	}
	return sub, nil
}

// List returns submissions matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Submission, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.Kind != "" {
		clauses = append(clauses, "kind = ?")
		args = append(args, string(filter.Kind))
	}
	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, string(filter.Status))
	}
	if !filter.Since.IsZero() {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format(time.DateTime))
	}

	query := "SELECT " + columns + " FROM submissions"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC, rowid DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying submissions: %w", err)
	}
	defer rows.Close()

	var result []Submission
	for rows.Next() {
		sub, err := scanInto(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning submission: %w", err)
		}
		result = append(result, *sub)
	}
	return result, rows.Err()
}

// MarkStatus records the outcome of processing a submission.
func (s *Store) MarkStatus(ctx context.Context, id string, status Status, errMsg string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE submissions SET status = ?, error = ?, processed_at = datetime('now') WHERE id = ?",
		string(status), errMsg, id)
	if err != nil {
		return fmt.Errorf("updating submission status: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("submission %s not found", id)
	}
	return nil
}

// Count returns the number of stored submissions per kind.
func (s *Store) Count(ctx context.Context) (map[Kind]int, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT kind, COUNT(*) FROM submissions GROUP BY kind")
	if err != nil {
		return nil, fmt.Errorf("counting submissions: %w", err)
	}
	defer rows.Close()

	counts := map[Kind]int{}
	for rows.Next() {
		var (
			kind string
			n    int
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[Kind(kind)] = n
	}
	return counts, rows.Err()
}

const columns = "id, kind, name, email, phone, service, message, remote_addr, status, error, created_at, processed_at"

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanInto(sc scanner) (*Submission, error) {
	var (
		sub          Submission
		kind, status string
		created      string
		processed    sql.NullString
	)
	err := sc.Scan(&sub.ID, &kind, &sub.Name, &sub.Email, &sub.Phone, &sub.Service,
		&sub.Message, &sub.RemoteAddr, &status, &sub.Error, &created, &processed)
	if err != nil {
		return nil, err
	}
	sub.Kind = Kind(kind)
	sub.Status = Status(status)
	sub.CreatedAt = parseTime(created)
	if processed.Valid {
		t := parseTime(processed.String)
		sub.ProcessedAt = &t
	}
	return &sub, nil
}

// parseTime accepts the layouts SQLite hands back for DATETIME columns.
func parseTime(s string) time.Time {
	for _, layout := range []string{time.DateTime, time.RFC3339, "2006-01-02T15:04:05Z"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
