package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"file-organizer-ai/internal/contextutil"
	"file-organizer-ai/internal/service"
)

// uploadField is the multipart field carrying the files.
const uploadField = "files"

// UploadHandler handles HTTP requests for file uploads.
type UploadHandler struct {
	fileService service.FileService
	maxMemory   int64
}

// NewUploadHandler creates a new UploadHandler. maxMemory bounds how much of
// the multipart body is held in memory; the rest is buffered to temp files.
func NewUploadHandler(fileService service.FileService, maxMemory int64) *UploadHandler {
	return &UploadHandler{
		fileService: fileService,
		maxMemory:   maxMemory,
	}
}

// UploadedFile describes one file of a processed upload.
//
// swagger:model UploadedFile
type UploadedFile struct {
	// Sanitized filename
	Name string `json:"name"`
	// Predicted category
	Category string `json:"category"`
	// Where the file is stored now
	Path string `json:"path"`
	// False when the file could not be moved into its category folder
	Organized bool `json:"organized"`
}

// UploadResponse represents the HTTP response payload for uploads.
//
// swagger:model UploadResponse
type UploadResponse struct {
	Message string         `json:"message"`
	Files   []UploadedFile `json:"files"`
}

// ServeHTTP handles HTTP requests for file uploads.
//
// swagger:route POST /upload uploadFiles
//
// # Upload files
//
// Saves every file of the repeated "files" field into the active upload
// folder, classifies it by name and moves it into its category folder.
//
// ---
// consumes:
// - multipart/form-data
// produces:
// - application/json
// responses:
//
//	'200':
//	  description: Files uploaded
//	  schema:
//	    "$ref": "#/definitions/UploadResponse"
//	'400':
//	  description: No files provided or invalid filename
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'500':
//	  description: Upload failed
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if err := r.ParseMultipartForm(h.maxMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			logger.WarnContext(ctx, "upload request is not multipart", "content_type", r.Header.Get("Content-Type"))
			writeError(w, http.StatusBadRequest, "No files provided")
			return
		}
		logger.WarnContext(ctx, "invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logger.WarnContext(ctx, "failed to remove multipart temp files", "error", err)
		}
	}()

	headers := r.MultipartForm.File[uploadField]
	if len(headers) == 0 {
		logger.WarnContext(ctx, "upload request without files")
		writeError(w, http.StatusBadRequest, "No files provided")
		return
	}

	files := make([]service.UploadFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, uploadFileFromHeader(fh))
	}

	// One root for the whole batch, even if the folder changes meanwhile.
	root := h.fileService.UploadFolder()

	result, err := h.fileService.UploadBatch(ctx, root, files)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to upload files")
		return
	}

	resp := UploadResponse{
		Message: "Files uploaded successfully",
		Files:   make([]UploadedFile, 0, len(result.Files)),
	}
	for _, f := range result.Files {
		resp.Files = append(resp.Files, UploadedFile{
			Name:      f.Name,
			Category:  f.Category,
			Path:      f.Path,
			Organized: f.Organized,
		})
	}

	writeJSON(ctx, w, http.StatusOK, resp)
}

func uploadFileFromHeader(fh *multipart.FileHeader) service.UploadFile {
	return service.UploadFile{
		Name: fh.Filename,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
