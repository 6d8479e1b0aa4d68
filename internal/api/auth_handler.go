package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/MartaCamacho/fit-project-server/internal/api/shared"
	"github.com/MartaCamacho/fit-project-server/internal/domain"
	"github.com/MartaCamacho/fit-project-server/internal/service/auth"
	"github.com/MartaCamacho/fit-project-server/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore        store.UserStore
	sessionService   auth.SessionService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	sessionService auth.SessionService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		sessionService:   sessionService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles the /auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	user, err := domain.NewUser(req.Username, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, domain.NewValidationError("user", err.Error(), domain.ErrValidation), "")
		return
	}

	hashed, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		h.logger.Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user.HashedPassword = hashed
	// The plaintext never leaves the registration path.
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Email already registered")
			return
		}
		h.logger.Error("failed to create user", "error", err, "email", req.Email)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := h.sessionService.IssueToken(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to issue session token", "error", err, "user_id", user.ID.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to issue session token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		UserID: user.ID.Hex(),
		Token:  token,
	})
}

// Login handles the /auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same response as a wrong password so the endpoint cannot be
			// used to probe for registered emails.
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error("failed to get user by email", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.sessionService.IssueToken(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to issue session token", "error", err, "user_id", user.ID.Hex())
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to issue session token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID: user.ID.Hex(),
		Token:  token,
	})
}
