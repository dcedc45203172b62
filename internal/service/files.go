package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_classifier.go -package=mocks file-organizer-ai/internal/service Classifier
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_file_service.go -package=mocks -mock_names=FileService=MockFileService file-organizer-ai/internal/service FileService

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"file-organizer-ai/internal/contextutil"
	"file-organizer-ai/internal/folder"
	"file-organizer-ai/internal/organizer"
	"file-organizer-ai/internal/sanitize"
	"file-organizer-ai/internal/storage"
)

// Classifier predicts a category for a filename.
// This interface is defined from the service layer's perspective (consumer-first).
type Classifier interface {
	Classify(ctx context.Context, filename string) (string, error)
}

// Organizer moves a saved file into its category folder under root.
type Organizer interface {
	Organize(ctx context.Context, root, sourcePath, category string) organizer.Result
}

// UploadFile is one file of an upload batch.
type UploadFile struct {
	// Name is the filename as sent by the client, before sanitizing.
	Name string
	// Open returns the file content. It is called once.
	Open func() (io.ReadCloser, error)
}

// FileSummary describes where one uploaded file ended up.
type FileSummary struct {
	Name      string
	Category  string
	Path      string
	Organized bool
}

// UploadResult is the outcome of an upload batch, one summary per file in
// request order.
type UploadResult struct {
	Files []FileSummary
}

// FileService provides the upload, folder configuration and listing operations.
type FileService interface {
	// UploadBatch saves, classifies, organizes and records every file under
	// root. Either all records are committed or none are.
	UploadBatch(ctx context.Context, root string, files []UploadFile) (UploadResult, error)
	// UploadFolder returns the active upload folder.
	UploadFolder() string
	// SetUploadFolder creates path if needed and makes it the active upload
	// folder. It returns the path that was set.
	SetUploadFolder(ctx context.Context, path string) (string, error)
	// CheckUploadFolder reports whether the active upload folder is a usable directory.
	CheckUploadFolder(ctx context.Context) error
	// ListFiles returns every stored file record.
	ListFiles(ctx context.Context) ([]storage.FileRecord, error)
}

// fileService implements FileService.
type fileService struct {
	fs         afero.Fs
	classifier Classifier
	organizer  Organizer
	store      storage.FileStore
	folder     *folder.Setting
}

// NewFileService creates a new FileService.
func NewFileService(fs afero.Fs, classifier Classifier, org Organizer, store storage.FileStore, uploadFolder *folder.Setting) FileService {
	return &fileService{
		fs:         fs,
		classifier: classifier,
		organizer:  org,
		store:      store,
		folder:     uploadFolder,
	}
}

// UploadBatch processes files in order. Filenames are validated before
// anything touches the disk; after that, the first unhandled error aborts the
// batch and rolls back every record inserted so far. Files already written
// stay on disk.
func (s *fileService) UploadBatch(ctx context.Context, root string, files []UploadFile) (UploadResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if len(files) == 0 {
		logger.WarnContext(ctx, "empty upload batch")
		return UploadResult{}, &ValidationError{Field: "files", Message: "No files provided"}
	}

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = sanitize.Filename(f.Name)
		if names[i] == "" {
			logger.WarnContext(ctx, "filename sanitized to nothing", "filename", f.Name)
			return UploadResult{}, &ValidationError{
				Field:   "files",
				Message: fmt.Sprintf("Invalid filename: %q", f.Name),
			}
		}
	}

	logger = logger.With("batch_id", uuid.NewString(), "folder", root)
	ctx = contextutil.WithLogger(ctx, logger)

	batch, err := s.store.Begin(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "failed to start upload batch", "error", err)
		return UploadResult{}, WrapError(err, "failed to start upload batch")
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if err := batch.Rollback(); err != nil {
			logger.ErrorContext(ctx, "failed to roll back upload batch", "error", err)
		}
	}()

	result := UploadResult{Files: make([]FileSummary, 0, len(files))}
	for i, f := range files {
		summary, err := s.processFile(ctx, batch, root, names[i], f)
		if err != nil {
			logger.ErrorContext(ctx, "upload batch aborted", "file", names[i], "error", err)
			return UploadResult{}, err
		}
		result.Files = append(result.Files, summary)
	}

	if err := batch.Commit(); err != nil {
		logger.ErrorContext(ctx, "failed to commit upload batch", "error", err)
		return UploadResult{}, WrapError(err, "failed to commit upload batch")
	}
	committed = true

	logger.InfoContext(ctx, "upload batch processed", "files", len(result.Files))
	return result, nil
}

func (s *fileService) processFile(ctx context.Context, batch storage.FileBatch, root, name string, f UploadFile) (FileSummary, error) {
	savedPath := filepath.Join(root, name)
	size, err := s.save(savedPath, f)
	if err != nil {
		return FileSummary{}, WrapError(err, fmt.Sprintf("failed to save %s", name))
	}

	category, err := s.classifier.Classify(ctx, name)
	if err != nil {
		return FileSummary{}, WrapError(err, fmt.Sprintf("failed to classify %s", name))
	}

	res := s.organizer.Organize(ctx, root, savedPath, category)

	record := &storage.FileRecord{
		Name:     name,
		Category: category,
		Path:     res.Path,
		Size:     size,
	}
	if err := batch.Insert(ctx, record); err != nil {
		return FileSummary{}, WrapError(err, fmt.Sprintf("failed to record %s", name))
	}

	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "file processed",
		"file", name,
		"category", category,
		"path", res.Path,
		"organized", res.Organized,
		"size", size,
	)

	return FileSummary{
		Name:      name,
		Category:  category,
		Path:      res.Path,
		Organized: res.Organized,
	}, nil
}

// save writes the upload to path, replacing any existing file, and returns the
// size of the file on disk.
func (s *fileService) save(path string, f UploadFile) (int64, error) {
	in, err := f.Open()
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := s.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return 0, err
	}
	if err := out.Close(); err != nil {
		return 0, err
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// UploadFolder returns the active upload folder.
func (s *fileService) UploadFolder() string {
	return s.folder.Get()
}

// SetUploadFolder validates and applies a new upload folder. On any error the
// active folder is left unchanged.
func (s *fileService) SetUploadFolder(ctx context.Context, path string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	path = strings.TrimSpace(path)
	if path == "" {
		logger.WarnContext(ctx, "empty folder path in set upload folder request")
		return "", &ValidationError{Field: "folder_path", Message: "Folder path is required"}
	}

	if err := s.fs.MkdirAll(path, 0o755); err != nil {
		logger.ErrorContext(ctx, "failed to create upload folder", "path", path, "error", err)
		return "", WrapError(err, "failed to create upload folder")
	}

	previous := s.folder.Get()
	s.folder.Set(path)
	logger.InfoContext(ctx, "upload folder changed", slog.String("from", previous), slog.String("to", path))
	return path, nil
}

// CheckUploadFolder stats the active upload folder.
func (s *fileService) CheckUploadFolder(_ context.Context) error {
	path := s.folder.Get()
	info, err := s.fs.Stat(path)
	if err != nil {
		return WrapError(err, "upload folder not accessible")
	}
	if !info.IsDir() {
		return fmt.Errorf("upload folder %s is not a directory", path)
	}
	return nil
}

// ListFiles returns all stored file records.
func (s *fileService) ListFiles(ctx context.Context) ([]storage.FileRecord, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to list files", "error", err)
		return nil, WrapError(err, "failed to list files")
	}
	return records, nil
}
