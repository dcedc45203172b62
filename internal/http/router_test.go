package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/mock/gomock"

	"file-organizer-ai/internal/classifier"
	"file-organizer-ai/internal/folder"
	"file-organizer-ai/internal/handlers"
	"file-organizer-ai/internal/organizer"
	"file-organizer-ai/internal/service"
	"file-organizer-ai/internal/service/mocks"
	"file-organizer-ai/internal/storage"
)

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileService := mocks.NewMockFileService(ctrl)

	deps := &Deps{
		FileService: mockFileService,
	}

	router := NewRouter(deps)

	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileService := mocks.NewMockFileService(ctrl)
	mockFileService.EXPECT().ListFiles(gomock.Any()).Return([]storage.FileRecord{}, nil).AnyTimes()

	deps := &Deps{
		FileService: mockFileService,
		HealthChecks: map[string]handlers.HealthCheck{
			"database": func(context.Context) error { return nil },
		},
	}

	router := NewRouter(deps)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{
			name:       "GET root serves liveness text",
			method:     http.MethodGet,
			path:       "/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "POST /set_upload_folder exists",
			method:     http.MethodPost,
			path:       "/set_upload_folder",
			wantStatus: http.StatusBadRequest, // Bad request due to empty body, but route exists
		},
		{
			name:       "GET /set_upload_folder method not allowed",
			method:     http.MethodGet,
			path:       "/set_upload_folder",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "POST /upload exists",
			method:     http.MethodPost,
			path:       "/upload",
			wantStatus: http.StatusBadRequest, // Not multipart, but route exists
		},
		{
			name:       "GET /upload method not allowed",
			method:     http.MethodGet,
			path:       "/upload",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "GET /files",
			method:     http.MethodGet,
			path:       "/files",
			wantStatus: http.StatusOK,
		},
		{
			name:       "DELETE /files method not allowed",
			method:     http.MethodDelete,
			path:       "/files",
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "GET /api/health",
			method:     http.MethodGet,
			path:       "/api/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "OPTIONS preflight",
			method:     http.MethodOptions,
			path:       "/upload",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "unknown path",
			method:     http.MethodGet,
			path:       "/nope",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileService := mocks.NewMockFileService(ctrl)
	mockFileService.EXPECT().ListFiles(gomock.Any()).DoAndReturn(func(context.Context) ([]storage.FileRecord, error) {
		panic("boom")
	})

	router := NewRouter(&Deps{FileService: mockFileService})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %v, want %v", w.Code, http.StatusInternalServerError)
	}
}

func TestRouter_UnhealthyDependency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := NewRouter(&Deps{
		FileService: mocks.NewMockFileService(ctrl),
		HealthChecks: map[string]handlers.HealthCheck{
			"database":      func(context.Context) error { return errors.New("closed") },
			"upload_folder": func(context.Context) error { return nil },
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %v, want %v", w.Code, http.StatusServiceUnavailable)
	}
}

// newIntegrationRouter wires the real service stack on disk.
func newIntegrationRouter(t *testing.T) (http.Handler, string) {
	t.Helper()

	model, err := classifier.Load(filepath.Join("..", "..", "file_classifier.yaml"))
	if err != nil {
		t.Fatalf("classifier.Load() error = %v", err)
	}

	db, err := storage.New(filepath.Join(t.TempDir(), "files.db"))
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if err := storage.Migrate(db); err != nil {
		t.Fatalf("storage.Migrate() error = %v", err)
	}
	store := storage.NewFileRepo(db)

	fs := afero.NewOsFs()
	uploads := filepath.Join(t.TempDir(), "uploads")
	if err := fs.MkdirAll(uploads, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	setting := folder.NewSetting(uploads)

	svc := service.NewFileService(fs, model, organizer.New(fs, organizer.PolicyOverwrite), store, setting)
	router := NewRouter(&Deps{
		FileService: svc,
		HealthChecks: map[string]handlers.HealthCheck{
			"database":      store.Ping,
			"upload_folder": svc.CheckUploadFolder,
		},
	})
	return router, uploads
}

func uploadRequest(t *testing.T, files map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, content := range files {
		part, err := mw.CreateFormFile("files", name)
		if err != nil {
			t.Fatalf("CreateFormFile() error = %v", err)
		}
		if _, err := io.WriteString(part, content); err != nil {
			t.Fatalf("WriteString() error = %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("multipart Close() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestRouter_UploadFlow(t *testing.T) {
	router, _ := newIntegrationRouter(t)

	// Point uploads somewhere new first.
	dir := filepath.Join(t.TempDir(), "x")
	folderBody, err := json.Marshal(map[string]string{"folder_path": dir})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/set_upload_folder", bytes.NewReader(folderBody)))
	if w.Code != http.StatusOK {
		t.Fatalf("set_upload_folder status = %v, want %v (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var folderResp handlers.SetFolderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &folderResp); err != nil {
		t.Fatalf("decode folder response: %v", err)
	}
	if want := "Upload folder set to: " + dir; folderResp.Message != want {
		t.Errorf("folder message = %q, want %q", folderResp.Message, want)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, map[string]string{
		"report.txt": "hello",
		"cat.jpg":    "not really a jpeg",
	}))
	if w.Code != http.StatusOK {
		t.Fatalf("upload status = %v, want %v (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var uploadResp handlers.UploadResponse
	if err := json.Unmarshal(w.Body.Bytes(), &uploadResp); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	if uploadResp.Message != "Files uploaded successfully" {
		t.Errorf("upload message = %q, want %q", uploadResp.Message, "Files uploaded successfully")
	}
	if len(uploadResp.Files) != 2 {
		t.Fatalf("upload files = %d, want 2", len(uploadResp.Files))
	}

	paths := make(map[string]string)
	for _, f := range uploadResp.Files {
		if !f.Organized {
			t.Errorf("%s not organized", f.Name)
		}
		paths[f.Name] = f.Path
	}
	if want := filepath.Join(dir, "Documents", "report.txt"); paths["report.txt"] != want {
		t.Errorf("report.txt path = %q, want %q", paths["report.txt"], want)
	}
	if want := filepath.Join(dir, "Images", "cat.jpg"); paths["cat.jpg"] != want {
		t.Errorf("cat.jpg path = %q, want %q", paths["cat.jpg"], want)
	}
	if _, err := os.Stat(filepath.Join(dir, "Documents", "report.txt")); err != nil {
		t.Errorf("organized file missing: %v", err)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("files status = %v, want %v", w.Code, http.StatusOK)
	}

	var records []storage.FileRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode files response: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	for _, rec := range records {
		if rec.Name == "report.txt" && (rec.Size != 5 || rec.Category != "Documents") {
			t.Errorf("report.txt record = %+v, want size 5 in Documents", rec)
		}
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("health status = %v, want %v (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
}

func TestRouter_BlankFolderLeavesStateUnchanged(t *testing.T) {
	router, uploads := newIntegrationRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/set_upload_folder", strings.NewReader(`{"folder_path": ""}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %v, want %v", w.Code, http.StatusBadRequest)
	}
	var errResp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp["error"] != "Folder path is required" {
		t.Errorf("error = %q, want %q", errResp["error"], "Folder path is required")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, map[string]string{"report.txt": "hello"}))
	if w.Code != http.StatusOK {
		t.Fatalf("upload status = %v, want %v (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if _, err := os.Stat(filepath.Join(uploads, "Documents", "report.txt")); err != nil {
		t.Errorf("file not organized into the original folder: %v", err)
	}
}

func TestRouter_ListFilesEmpty(t *testing.T) {
	router, _ := newIntegrationRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want %v", w.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}
