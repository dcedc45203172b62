package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"file-organizer-ai/internal/contextutil"
	"file-organizer-ai/internal/service"
)

// FolderHandler handles HTTP requests that change the upload folder.
type FolderHandler struct {
	fileService service.FileService
}

// NewFolderHandler creates a new FolderHandler.
func NewFolderHandler(fileService service.FileService) *FolderHandler {
	return &FolderHandler{
		fileService: fileService,
	}
}

// SetFolderRequest represents the HTTP request payload for changing the upload folder.
//
// swagger:model SetFolderRequest
type SetFolderRequest struct {
	// Folder to store uploads in. Created if it does not exist.
	// required: true
	FolderPath string `json:"folder_path"`
}

// SetFolderResponse represents the HTTP response payload for changing the upload folder.
//
// swagger:model SetFolderResponse
type SetFolderResponse struct {
	Message    string `json:"message"`
	FolderPath string `json:"folder_path"`
}

// ServeHTTP handles HTTP requests for changing the upload folder.
//
// swagger:route POST /set_upload_folder setUploadFolder
//
// # Set the upload folder
//
// Later uploads are saved and organized under the new folder.
//
// ---
// consumes:
// - application/json
// produces:
// - application/json
// responses:
//
//	'200':
//	  description: Folder changed
//	  schema:
//	    "$ref": "#/definitions/SetFolderResponse"
//	'400':
//	  description: Missing folder path
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'500':
//	  description: Folder could not be created
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *FolderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req SetFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// A body we cannot read carries no folder path.
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Folder path is required")
		return
	}

	path, err := h.fileService.SetUploadFolder(ctx, req.FolderPath)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to set upload folder")
		return
	}

	writeJSON(ctx, w, http.StatusOK, SetFolderResponse{
		Message:    fmt.Sprintf("Upload folder set to: %s", path),
		FolderPath: path,
	})
}
