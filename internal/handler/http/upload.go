package http

import (
	"log/slog"
	"net/http"

	"github.com/iajwork/smart-attendance-platform/internal/domain/ingest"
	"github.com/iajwork/smart-attendance-platform/internal/handler/http/response"
)

type UploadHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
}

type uploadHandlerImpl struct {
	ingestService ingest.IngestService
}

func NewUploadHandler(ingestService ingest.IngestService) UploadHandler {
	return &uploadHandlerImpl{
		ingestService: ingestService,
	}
}

// Upload implements UploadHandler. Accepts a CSV/XLSX punch export as the
// multipart "file" field.
func (h *uploadHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 20MB)
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.HandleError(w, ingest.ErrNoFile)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	result, err := h.ingestService.ProcessUpload(r.Context(), fileHeader.Filename, file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "File processed successfully", result)
}
