package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"file-organizer-ai/internal/handlers"
	"file-organizer-ai/internal/service"
)

// DefaultMaxUploadMemory is used when Deps.MaxUploadMemory is not set.
const DefaultMaxUploadMemory = 32 << 20

// Deps holds dependencies for the HTTP router.
type Deps struct {
	FileService service.FileService
	// HealthChecks are run by GET /api/health, keyed by check name.
	HealthChecks map[string]handlers.HealthCheck
	// MaxUploadMemory is the multipart memory limit in bytes.
	MaxUploadMemory int64
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Logger first so every later middleware and handler sees it.
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	// Add CORS middleware
	r.Use(CORS)

	maxMemory := deps.MaxUploadMemory
	if maxMemory <= 0 {
		maxMemory = DefaultMaxUploadMemory
	}

	r.Get("/", handlers.HomeHandler)
	r.Method(http.MethodPost, "/set_upload_folder", handlers.NewFolderHandler(deps.FileService))
	r.Method(http.MethodPost, "/upload", handlers.NewUploadHandler(deps.FileService, maxMemory))
	r.Method(http.MethodGet, "/files", handlers.NewFilesHandler(deps.FileService))

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.HealthChecks))
	})

	return r
}
