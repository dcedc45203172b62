package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_file_store.go -package=mocks file-organizer-ai/internal/storage FileStore,FileBatch

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// FileStore defines the interface for file metadata storage operations.
type FileStore interface {
	// Begin starts a batch of inserts. Nothing is visible to readers until
	// the batch is committed.
	Begin(ctx context.Context) (FileBatch, error)
	// ListAll returns every stored record, in no particular order.
	ListAll(ctx context.Context) ([]FileRecord, error)
	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}

// FileBatch is a group of inserts committed or rolled back together.
type FileBatch interface {
	// Insert stores record and sets its ID and UploadDate.
	Insert(ctx context.Context, record *FileRecord) error
	// Commit makes all inserts of the batch durable.
	Commit() error
	// Rollback discards the batch. It is a no-op after Commit.
	Rollback() error
}

// FileRepo provides methods for file metadata operations on SQLite.
// It implements the FileStore interface.
type FileRepo struct {
	db *sql.DB
}

// NewFileRepo creates a new FileRepo.
func NewFileRepo(db *sql.DB) *FileRepo {
	return &FileRepo{db: db}
}

// Begin starts a transaction-backed batch.
func (r *FileRepo) Begin(ctx context.Context) (FileBatch, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin batch: %w", err)
	}
	return &fileTx{tx: tx}, nil
}

// ListAll returns all file records. The scan is unordered.
func (r *FileRepo) ListAll(ctx context.Context) ([]FileRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, category, path, size, upload_date FROM files",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	records := []FileRecord{}
	for rows.Next() {
		var rec FileRecord
		var uploadDateStr string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Category, &rec.Path, &rec.Size, &uploadDateStr); err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		if rec.UploadDate, err = parseTimestamp(uploadDateStr); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate files: %w", err)
	}

	return records, nil
}

// Ping checks the database connection.
func (r *FileRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// fileTx implements FileBatch on a SQL transaction.
type fileTx struct {
	tx *sql.Tx
}

func (b *fileTx) Insert(ctx context.Context, record *FileRecord) error {
	result, err := b.tx.ExecContext(ctx,
		"INSERT INTO files (name, category, path, size) VALUES (?, ?, ?, ?)",
		record.Name, record.Category, record.Path, record.Size,
	)
	if err != nil {
		return fmt.Errorf("failed to insert file: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted file id: %w", err)
	}

	// Read back the default upload_date assigned by the database
	var uploadDateStr string
	err = b.tx.QueryRowContext(ctx, "SELECT upload_date FROM files WHERE id = ?", id).Scan(&uploadDateStr)
	if err != nil {
		return fmt.Errorf("failed to read inserted file: %w", err)
	}
	uploadDate, err := parseTimestamp(uploadDateStr)
	if err != nil {
		return err
	}

	record.ID = id
	record.UploadDate = uploadDate
	return nil
}

func (b *fileTx) Commit() error {
	if err := b.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

func (b *fileTx) Rollback() error {
	if err := b.tx.Rollback(); err != nil && err != sql.ErrTxDone {
		return fmt.Errorf("failed to roll back batch: %w", err)
	}
	return nil
}

// parseTimestamp parses a TIMESTAMP column. The driver hands back either the
// raw "2006-01-02 15:04:05" text or an RFC 3339 rendering of a time.Time.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t, nil
}
