package main

import (
	"io"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"github.com/spf13/afero"

	"file-organizer-ai/internal/classifier"
	"file-organizer-ai/internal/config"
	"file-organizer-ai/internal/folder"
	"file-organizer-ai/internal/handlers"
	"file-organizer-ai/internal/http"
	"file-organizer-ai/internal/llm"
	"file-organizer-ai/internal/organizer"
	"file-organizer-ai/internal/service"
	"file-organizer-ai/internal/storage"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API stores uploaded files and sorts them into category folders predicted from their names.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: AI-Powered File Organizer API
//   description: |
//     Upload files, have each one classified by filename and moved into a
//     category folder of the active upload folder, and list what has been stored.
//   version: 1.0.0
// schemes:
//   - http
// consumes:
//   - application/json
//   - multipart/form-data
// produces:
//   - application/json

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize metadata store
	store, closer, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = closer.Close()
	}()

	// Initialize classifier
	fileClassifier, err := newClassifier(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize classifier: %v", err)
	}

	// Prepare the initial upload folder
	fs := afero.NewOsFs()
	if err := fs.MkdirAll(cfg.UploadFolder, 0o755); err != nil {
		log.Fatalf("Failed to create upload folder: %v", err)
	}
	uploadFolder := folder.NewSetting(cfg.UploadFolder)
	slog.Info("Upload folder ready", "path", cfg.UploadFolder, "conflict_policy", cfg.ConflictPolicy)

	fileService := service.NewFileService(
		fs,
		fileClassifier,
		organizer.New(fs, cfg.ConflictPolicy),
		store,
		uploadFolder,
	)

	// Create router with dependencies
	deps := &http.Deps{
		FileService: fileService,
		HealthChecks: map[string]handlers.HealthCheck{
			"database":      store.Ping,
			"upload_folder": fileService.CheckUploadFolder,
		},
		MaxUploadMemory: cfg.MaxUploadMemory,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}

// openStore opens the configured metadata store. The returned closer releases
// its connection pool.
func openStore(cfg *config.Config) (storage.FileStore, io.Closer, error) {
	if cfg.DBDriver == config.DBDriverMySQL {
		db, err := storage.OpenMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		repo := storage.NewGormFileRepo(db)
		slog.Info("Database initialized", "driver", cfg.DBDriver)
		return repo, repo, nil
	}

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	slog.Info("Database initialized", "driver", cfg.DBDriver, "path", cfg.DBPath)
	return storage.NewFileRepo(db), db, nil
}

// newClassifier builds the configured classifier backend.
func newClassifier(cfg *config.Config) (service.Classifier, error) {
	if cfg.ClassifierBackend == config.BackendLLM {
		client := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)
		slog.Info("Using LLM classifier", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName, "categories", cfg.LLMCategories)
		return classifier.NewLLMClassifier(client, cfg.LLMCategories), nil
	}

	model, err := classifier.Load(cfg.ModelPath)
	if err != nil {
		return nil, err
	}
	slog.Info("Classifier model loaded", "path", cfg.ModelPath, "labels", model.Labels())
	return model, nil
}
