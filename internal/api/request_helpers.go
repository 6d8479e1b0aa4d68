package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MartaCamacho/fit-project-server/internal/api/shared"
	"github.com/MartaCamacho/fit-project-server/internal/domain"
)

// requestValidator checks the validation tags on request payloads. One
// instance serves the whole package; validator.Validate is concurrency safe.
var requestValidator = validator.New()

// decodeRequest parses the JSON body into dst and checks its validation
// tags. On failure it writes the 400 response itself and reports false, so
// the caller just returns.
func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}

	if err := requestValidator.Struct(dst); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return false
	}

	return true
}

// getUserIDFromContext extracts the authenticated user's ID from the request
// context. The auth middleware is responsible for putting it there.
func getUserIDFromContext(r *http.Request) (primitive.ObjectID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(primitive.ObjectID)
	if !ok || userID.IsZero() {
		return primitive.NilObjectID, false
	}
	return userID, true
}

// getPathObjectID extracts an ObjectID from the URL path parameters. A
// malformed identifier fails here, before any store access.
func getPathObjectID(r *http.Request, paramName string) (primitive.ObjectID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return primitive.NilObjectID, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := domain.ParseID(pathParam)
	if err != nil {
		return primitive.NilObjectID, err
	}

	return id, nil
}

// handleUserIDAndPathObjectID extracts both the caller's ID from the context
// and an ObjectID from the path. It writes an error response and returns
// false when either extraction fails.
func handleUserIDAndPathObjectID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
	log *slog.Logger,
) (primitive.ObjectID, primitive.ObjectID, bool) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}

	pathID, err := getPathObjectID(r, paramName)
	if err != nil {
		log.Warn("invalid path parameter",
			slog.String("param_name", paramName),
			slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err, "")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}

	return userID, pathID, true
}
