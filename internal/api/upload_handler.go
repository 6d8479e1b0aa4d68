package api

import (
	"log/slog"
	"net/http"

	"github.com/MartaCamacho/fit-project-server/internal/api/shared"
	"github.com/MartaCamacho/fit-project-server/internal/domain"
	"github.com/MartaCamacho/fit-project-server/internal/service"
)

// UploadHandler handles direct image uploads.
type UploadHandler struct {
	uploader service.ImageUploader
	logger   *slog.Logger
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploader service.ImageUploader, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		logger:   logger.With(slog.String("component", "upload_handler")),
	}
}

// Upload handles POST /upload requests: a multipart form with an "image"
// file part. The response carries the stable retrieval URL.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		HandleAPIError(w, r,
			domain.NewValidationError("body", "is not valid multipart form data", domain.ErrValidation), "")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		HandleAPIError(w, r,
			domain.NewValidationError("image", "file is required", domain.ErrValidation), "")
		return
	}

	image, name, err := readImageFile(file, header)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	url, err := h.uploader.Upload(r.Context(), image, name)
	if err != nil {
		HandleAPIError(w, r, err, "Image upload failed")
		return
	}

	h.logger.Debug("image uploaded", "name", name, "url", url)
	shared.RespondWithJSON(w, r, http.StatusOK, UploadResponse{URL: url})
}
