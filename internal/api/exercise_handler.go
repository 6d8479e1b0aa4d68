package api

import (
	"log/slog"
	"net/http"

	"github.com/MartaCamacho/fit-project-server/internal/api/shared"
	"github.com/MartaCamacho/fit-project-server/internal/domain"
	"github.com/MartaCamacho/fit-project-server/internal/service"
	"github.com/MartaCamacho/fit-project-server/internal/store"
)

// ExerciseHandler handles exercise catalog HTTP requests.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	logger          *slog.Logger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, logger *slog.Logger) *ExerciseHandler {
	return &ExerciseHandler{
		exerciseService: exerciseService,
		logger:          logger.With(slog.String("component", "exercise_handler")),
	}
}

// Create handles POST /profile/{id}/videos requests. The path ID must match
// the authenticated caller; the new exercise lands in their exerciseCreated
// set.
func (h *ExerciseHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, pathID, ok := handleUserIDAndPathObjectID(w, r, "id", h.logger)
	if !ok {
		return
	}
	if pathID != callerID {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	var req CreateExerciseRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	exercise, err := h.exerciseService.Create(r.Context(), callerID, service.CreateExerciseInput{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Intensity:   req.Intensity,
		Muscle:      req.Muscle,
		Duration:    req.Duration,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create exercise")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, exercise)
}

// List handles GET /videos requests.
func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.exerciseService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list exercises")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, exercises)
}

// Get handles GET /videos/{id} requests.
func (h *ExerciseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	exercise, err := h.exerciseService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve exercise")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, exercise)
}

// Update handles PUT /videos/{id} requests with a partial update body.
func (h *ExerciseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateExerciseRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	update := store.ExerciseUpdate{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Intensity:   req.Intensity,
		Muscle:      req.Muscle,
		Duration:    req.Duration,
	}

	if err := h.exerciseService.Update(r.Context(), id, update); err != nil {
		HandleAPIError(w, r, err, "Failed to update exercise")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Exercise updated successfully"})
}

// Delete handles DELETE /videos/{id} requests. The record disappears from
// the catalog and from every user's relation sets.
func (h *ExerciseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathObjectID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.exerciseService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete exercise")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Exercise deleted successfully"})
}

// ListMine handles GET /profile/{id}/my-exercises requests.
func (h *ExerciseHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	callerID, pathID, ok := handleUserIDAndPathObjectID(w, r, "id", h.logger)
	if !ok {
		return
	}
	if pathID != callerID {
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	exercises, err := h.exerciseService.ListMine(r.Context(), callerID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list exercises")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, exercises)
}

// DeleteMine handles DELETE /my-exercises/{id} requests: the exercise leaves
// the caller's exerciseCreated set and the catalog in one operation.
func (h *ExerciseHandler) DeleteMine(w http.ResponseWriter, r *http.Request) {
	callerID, exerciseID, ok := handleUserIDAndPathObjectID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.exerciseService.DeleteMine(r.Context(), callerID, exerciseID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete exercise")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Exercise deleted successfully"})
}
