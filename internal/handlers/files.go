package handlers

import (
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"file-organizer-ai/internal/contextutil"
	"file-organizer-ai/internal/service"
)

// ContentTypeMsgpack is the media type of MessagePack responses.
const ContentTypeMsgpack = "application/msgpack"

// FilesHandler handles HTTP requests for listing stored files.
type FilesHandler struct {
	fileService service.FileService
}

// NewFilesHandler creates a new FilesHandler.
func NewFilesHandler(fileService service.FileService) *FilesHandler {
	return &FilesHandler{
		fileService: fileService,
	}
}

// ServeHTTP handles HTTP requests for listing stored files.
//
// swagger:route GET /files listFiles
//
// # List files
//
// Returns every stored file record as an array, in no particular order.
// Clients sending "Accept: application/msgpack" get the same array as MessagePack.
//
// ---
// produces:
// - application/json
// - application/msgpack
// responses:
//
//	'200':
//	  description: Stored files
//	'500':
//	  description: Listing failed
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *FilesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	records, err := h.fileService.ListFiles(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list files")
		return
	}

	if !acceptsMsgpack(r.Header.Get("Accept")) {
		writeJSON(ctx, w, http.StatusOK, records)
		return
	}

	body, err := msgpack.Marshal(records)
	if err != nil {
		logger.ErrorContext(ctx, "failed to encode msgpack response", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to encode response")
		return
	}
	w.Header().Set("Content-Type", ContentTypeMsgpack)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logger.ErrorContext(ctx, "failed to write response", "error", err)
	}
}

// acceptsMsgpack reports whether the Accept header lists the msgpack media type
// with a non-zero quality.
func acceptsMsgpack(accept string) bool {
	for _, part := range strings.Split(accept, ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if mediaType != ContentTypeMsgpack && mediaType != "application/x-msgpack" {
			continue
		}
		if acceptableQuality(params["q"]) {
			return true
		}
	}
	return false
}

// acceptableQuality reports whether an Accept q value allows the media type.
// A missing q means 1; a malformed one is treated as a refusal.
func acceptableQuality(q string) bool {
	if q == "" {
		return true
	}
	weight, err := strconv.ParseFloat(q, 64)
	return err == nil && weight > 0
}
