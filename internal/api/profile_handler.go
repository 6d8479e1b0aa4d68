package api

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/MartaCamacho/fit-project-server/internal/api/shared"
	"github.com/MartaCamacho/fit-project-server/internal/domain"
	"github.com/MartaCamacho/fit-project-server/internal/service"
)

// maxAvatarBytes caps the in-memory size of an uploaded avatar image.
const maxAvatarBytes = 10 << 20 // 10 MiB

// ProfileHandler handles profile-related HTTP requests.
type ProfileHandler struct {
	profileService service.ProfileService
	logger         *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger.With(slog.String("component", "profile_handler")),
	}
}

// GetProfile handles GET /profile/{id} requests. The favourite and
// exerciseCreated sets come back expanded to full exercise records.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	profile, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve profile")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{
		User:            profile.User,
		Favourite:       profile.Favourite,
		ExerciseCreated: profile.ExerciseCreated,
	})
}

// UpdateProfile handles PUT /profile/{id} requests. The body is either JSON
// or, when an avatar image travels with the edit, multipart form data with
// the same field names plus an "image" file part.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var update service.ProfileUpdate
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		update, err = h.parseMultipartUpdate(r)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	} else {
		var req UpdateProfileRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		update = service.ProfileUpdate{
			Username: req.Username,
			Weight:   req.Weight,
			Goal:     req.Goal,
			ImgPath:  req.ImgPath,
		}
	}

	if err := h.profileService.UpdateProfile(r.Context(), userID, update); err != nil {
		HandleAPIError(w, r, err, "Failed to update profile")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "User updated successfully"})
}

func (h *ProfileHandler) parseMultipartUpdate(r *http.Request) (service.ProfileUpdate, error) {
	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		return service.ProfileUpdate{}, domain.NewValidationError("body", "is not valid multipart form data", domain.ErrValidation)
	}

	var update service.ProfileUpdate
	if v := r.FormValue("username"); v != "" {
		update.Username = &v
	}
	if v := r.FormValue("goal"); v != "" {
		update.Goal = &v
	}
	if v := r.FormValue("weight"); v != "" {
		weight, err := strconv.ParseFloat(v, 64)
		if err != nil || weight <= 0 {
			return service.ProfileUpdate{}, domain.NewValidationError("weight", "must be a positive number", domain.ErrValidation)
		}
		update.Weight = &weight
	}

	file, header, err := r.FormFile("image")
	switch err {
	case nil:
		image, name, readErr := readImageFile(file, header)
		if readErr != nil {
			return service.ProfileUpdate{}, readErr
		}
		update.Image = image
		update.ImageName = name
	case http.ErrMissingFile:
		// Edit without a new avatar.
	default:
		return service.ProfileUpdate{}, domain.NewValidationError("image", "could not be read", domain.ErrValidation)
	}

	return update, nil
}

func readImageFile(file multipart.File, header *multipart.FileHeader) ([]byte, string, error) {
	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("failed to close uploaded file", "error", err)
		}
	}()

	image, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
	if err != nil {
		return nil, "", domain.NewValidationError("image", "could not be read", domain.ErrValidation)
	}
	if len(image) > maxAvatarBytes {
		return nil, "", domain.NewValidationError("image", "is too large", domain.ErrValidation)
	}

	return image, header.Filename, nil
}
