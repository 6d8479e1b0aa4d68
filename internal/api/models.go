package api

import (
	"github.com/MartaCamacho/fit-project-server/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=2,max=40"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the hex identifier of the authenticated user
	UserID string `json:"user_id"`

	// Token is the session token used for API authorization
	Token string `json:"token"`
}

// CreateExerciseRequest defines the payload for creating an exercise.
type CreateExerciseRequest struct {
	Title       string `json:"title"       validate:"required,min=1,max=120"`
	Description string `json:"description" validate:"max=2000"`
	URL         string `json:"url"         validate:"required,url"`
	Intensity   string `json:"intensity"   validate:"required"`
	Muscle      string `json:"muscle"      validate:"required"`
	Duration    int    `json:"duration"    validate:"required,min=1"`
}

// UpdateExerciseRequest defines the payload for a partial exercise update.
// Omitted fields are left untouched.
type UpdateExerciseRequest struct {
	Title       *string `json:"title,omitempty"       validate:"omitempty,min=1,max=120"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	URL         *string `json:"url,omitempty"         validate:"omitempty,url"`
	Intensity   *string `json:"intensity,omitempty"`
	Muscle      *string `json:"muscle,omitempty"`
	Duration    *int    `json:"duration,omitempty"    validate:"omitempty,min=1"`
}

// UpdateProfileRequest defines the JSON payload for a partial profile update.
// The same fields are also accepted as multipart form values when the request
// carries an avatar image.
type UpdateProfileRequest struct {
	Username *string  `json:"username,omitempty" validate:"omitempty,min=2,max=40"`
	Weight   *float64 `json:"weight,omitempty"   validate:"omitempty,gt=0"`
	Goal     *string  `json:"goal,omitempty"     validate:"omitempty,max=200"`
	ImgPath  *string  `json:"imgPath,omitempty"  validate:"omitempty,url"`
}

// ProfileResponse carries a user together with their favourite and created
// exercises expanded into full records. The domain types carry the JSON
// serialization rules, including hiding the password hash.
type ProfileResponse struct {
	User            *domain.User       `json:"user"`
	Favourite       []*domain.Exercise `json:"favourite"`
	ExerciseCreated []*domain.Exercise `json:"exerciseCreated"`
}

// MessageResponse is a plain acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadResponse carries the retrieval URL of an uploaded image.
type UploadResponse struct {
	URL string `json:"url"`
}
