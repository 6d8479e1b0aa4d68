package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MartaCamacho/fit-project-server/internal/domain"
)

// ExerciseUpdate describes a partial update of an exercise's attributes.
// Nil fields are left untouched.
type ExerciseUpdate struct {
	Title       *string
	Description *string
	URL         *string
	Intensity   *string
	Muscle      *string
	Duration    *int
}

// IsEmpty reports whether the update would change nothing.
func (u ExerciseUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.URL == nil &&
		u.Intensity == nil && u.Muscle == nil && u.Duration == nil
}

// ExerciseStore defines the interface for exercise data persistence.
type ExerciseStore interface {
	// Create saves a new exercise to the store.
	// Returns ErrURLExists if an exercise with the same source URL already
	// exists; in that case no record is created.
	Create(ctx context.Context, exercise *domain.Exercise) error

	// GetByID retrieves an exercise by its unique ID.
	// Returns ErrExerciseNotFound if the exercise does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)

	// GetByIDs retrieves the exercises for the given identifiers, used to
	// expand a user's relation sets into full records. Identifiers without a
	// backing document are silently skipped rather than failing the whole
	// expansion.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Exercise, error)

	// List returns all exercise records. No pagination, no filtering.
	List(ctx context.Context) ([]*domain.Exercise, error)

	// Update applies a partial update to an exercise by identifier.
	// Returns ErrExerciseNotFound if the exercise does not exist.
	Update(ctx context.Context, id primitive.ObjectID, update ExerciseUpdate) error

	// Delete removes the exercise record.
	// Returns ErrExerciseNotFound if the exercise does not exist.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
