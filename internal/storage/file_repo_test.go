package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func newTestRepo(t *testing.T) (*FileRepo, *sql.DB) {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	return NewFileRepo(db), db
}

func insertBatch(t *testing.T, repo *FileRepo, records ...*FileRecord) {
	t.Helper()
	ctx := context.Background()

	batch, err := repo.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	for _, rec := range records {
		if err := batch.Insert(ctx, rec); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}
	if err := batch.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
}

func TestNewFileRepo(t *testing.T) {
	repo, _ := newTestRepo(t)
	if repo == nil {
		t.Fatal("NewFileRepo() returned nil")
	}
}

func TestFileRepo_ListAll_Empty(t *testing.T) {
	repo, _ := newTestRepo(t)

	records, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if records == nil {
		t.Error("ListAll() returned nil, want empty slice")
	}
	if len(records) != 0 {
		t.Errorf("ListAll() len = %v, want 0", len(records))
	}
}

func TestFileRepo_Insert(t *testing.T) {
	repo, _ := newTestRepo(t)
	before := time.Now().UTC().Add(-time.Minute)

	first := &FileRecord{Name: "report.txt", Category: "Documents", Path: "uploads/Documents/report.txt", Size: 5}
	second := &FileRecord{Name: "cat.jpg", Category: "Images", Path: "uploads/cat.jpg", Size: 1024}
	insertBatch(t, repo, first, second)

	if first.ID == 0 || second.ID == 0 {
		t.Fatalf("Insert() did not assign IDs: %d, %d", first.ID, second.ID)
	}
	if second.ID <= first.ID {
		t.Errorf("Insert() IDs not increasing: %d then %d", first.ID, second.ID)
	}
	if first.UploadDate.Before(before) {
		t.Errorf("Insert() UploadDate = %v, want after %v", first.UploadDate, before)
	}

	records, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("ListAll() len = %v, want 2", len(records))
	}

	byID := make(map[int64]FileRecord)
	for _, rec := range records {
		byID[rec.ID] = rec
	}
	got, ok := byID[first.ID]
	if !ok {
		t.Fatalf("ListAll() missing record %d", first.ID)
	}
	if got.Name != "report.txt" || got.Category != "Documents" || got.Path != "uploads/Documents/report.txt" || got.Size != 5 {
		t.Errorf("ListAll() record = %+v", got)
	}
	if !got.UploadDate.Equal(first.UploadDate) {
		t.Errorf("ListAll() UploadDate = %v, want %v", got.UploadDate, first.UploadDate)
	}
}

func TestFileRepo_IDsNotReusedAcrossBatches(t *testing.T) {
	repo, db := newTestRepo(t)

	first := &FileRecord{Name: "a.txt"}
	insertBatch(t, repo, first)

	// AUTOINCREMENT must not hand out the same id again even if the
	// highest row disappears.
	if _, err := db.Exec("DELETE FROM files WHERE id = ?", first.ID); err != nil {
		t.Fatalf("delete error = %v", err)
	}

	second := &FileRecord{Name: "b.txt"}
	insertBatch(t, repo, second)

	if second.ID <= first.ID {
		t.Errorf("second ID = %d, want > %d", second.ID, first.ID)
	}
}

func TestFileRepo_RollbackDiscardsBatch(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	batch, err := repo.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if err := batch.Insert(ctx, &FileRecord{Name: "a.txt"}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := batch.Rollback(); err != nil {
		t.Fatalf("Rollback() error = %v", err)
	}

	records, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("ListAll() after rollback len = %v, want 0", len(records))
	}
}

func TestFileRepo_RollbackAfterCommitIsNoop(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	batch, err := repo.Begin(ctx)
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if err := batch.Insert(ctx, &FileRecord{Name: "a.txt"}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := batch.Commit(); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if err := batch.Rollback(); err != nil {
		t.Errorf("Rollback() after Commit() error = %v, want nil", err)
	}

	records, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("ListAll() len = %v, want 1", len(records))
	}
}

func TestFileRepo_Ping(t *testing.T) {
	repo, db := newTestRepo(t)

	if err := repo.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}

	_ = db.Close()
	if err := repo.Ping(context.Background()); err == nil {
		t.Error("Ping() on closed database expected error")
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "sqlite text", input: "2024-03-01 12:30:45"},
		{name: "rfc3339", input: "2024-03-01T12:30:45Z"},
		{name: "garbage", input: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimestamp(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTimestamp() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(want) {
				t.Errorf("parseTimestamp() = %v, want %v", got, want)
			}
		})
	}
}
