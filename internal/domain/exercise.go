package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise validation errors
var (
	ErrEmptyExerciseID    = errors.New("exercise ID cannot be empty")
	ErrEmptyExerciseTitle = errors.New("exercise title cannot be empty")
	ErrEmptyExerciseURL   = errors.New("exercise URL cannot be empty")
)

// Exercise represents a single exercise video record in the catalog.
// Exercises are top-level entities; users reference them by identifier from
// their relation sets, so this document stays the single source of truth for
// its own attributes.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"         json:"id"`
	Title       string             `bson:"title"                 json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	URL         string             `bson:"url"                   json:"url"`
	Intensity   string             `bson:"intensity,omitempty"   json:"intensity,omitempty"`
	Muscle      string             `bson:"muscle,omitempty"      json:"muscle,omitempty"`
	Duration    int                `bson:"duration,omitempty"    json:"duration,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"             json:"created_at"`
	UpdatedAt   time.Time          `bson:"updatedAt"             json:"updated_at"`
}

// NewExercise creates a new Exercise with a fresh identifier and timestamps.
// Returns an error if validation fails. The source URL's uniqueness across
// the catalog is enforced by the store, not here.
func NewExercise(title, description, url, intensity, muscle string, duration int) (*Exercise, error) {
	now := time.Now().UTC()
	exercise := &Exercise{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: description,
		URL:         url,
		Intensity:   intensity,
		Muscle:      muscle,
		Duration:    duration,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := exercise.Validate(); err != nil {
		return nil, err
	}

	return exercise, nil
}

// Validate checks if the Exercise has valid data.
func (e *Exercise) Validate() error {
	if e.ID.IsZero() {
		return ErrEmptyExerciseID
	}

	if e.Title == "" {
		return ErrEmptyExerciseTitle
	}

	if e.URL == "" {
		return ErrEmptyExerciseURL
	}

	return nil
}

// ParseID converts an opaque identifier string into an ObjectID.
// Returns ErrInvalidID if the string is not a well-formed 24-character hex
// identifier. Format validity is checkable independent of existence, so this
// is a caller-side precondition, not a store lookup.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, NewValidationError("id", "is not a valid identifier", ErrInvalidID)
	}
	return oid, nil
}
