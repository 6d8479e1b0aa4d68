package api

import (
	"log/slog"
	"net/http"

	"github.com/MartaCamacho/fit-project-server/internal/api/shared"
	"github.com/MartaCamacho/fit-project-server/internal/domain"
	"github.com/MartaCamacho/fit-project-server/internal/service"
)

// FavoritesHandler handles favourite and completion tracking HTTP requests.
type FavoritesHandler struct {
	favoritesService service.FavoritesService
	logger           *slog.Logger
}

// NewFavoritesHandler creates a new FavoritesHandler.
func NewFavoritesHandler(favoritesService service.FavoritesService, logger *slog.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		favoritesService: favoritesService,
		logger:           logger.With(slog.String("component", "favorites_handler")),
	}
}

// AddFavourite handles POST /videos/{id}/favourite requests. Re-adding an
// existing favourite succeeds without duplicating it.
func (h *FavoritesHandler) AddFavourite(w http.ResponseWriter, r *http.Request) {
	callerID, exerciseID, ok := handleUserIDAndPathObjectID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.favoritesService.AddFavourite(r.Context(), callerID, exerciseID); err != nil {
		HandleAPIError(w, r, err, "Failed to add favourite")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Favourite added"})
}

// RemoveFavourite handles DELETE /videos/{id}/favourite requests. Removing a
// non-member succeeds.
func (h *FavoritesHandler) RemoveFavourite(w http.ResponseWriter, r *http.Request) {
	callerID, exerciseID, ok := handleUserIDAndPathObjectID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.favoritesService.RemoveFavourite(r.Context(), callerID, exerciseID); err != nil {
		HandleAPIError(w, r, err, "Failed to remove favourite")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Favourite removed"})
}

// ListFavourites handles GET /favourites requests for the authenticated
// caller, expanded to full exercise records.
func (h *FavoritesHandler) ListFavourites(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getUserIDFromContext(r)
	if !ok {
		h.logger.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return
	}

	exercises, err := h.favoritesService.ListFavourites(r.Context(), callerID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list favourites")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, exercises)
}

// MarkCompleted handles POST /videos/{id}/completed requests.
func (h *FavoritesHandler) MarkCompleted(w http.ResponseWriter, r *http.Request) {
	callerID, exerciseID, ok := handleUserIDAndPathObjectID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.favoritesService.MarkCompleted(r.Context(), callerID, exerciseID); err != nil {
		HandleAPIError(w, r, err, "Failed to mark exercise completed")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Exercise marked as completed"})
}
