package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MartaCamacho/fit-project-server/internal/domain"
)

// RelationSet names one of the user-owned sets of exercise identifiers.
type RelationSet string

// The three relation sets a user document carries. Each is a deduplicated
// collection of Exercise identifiers maintained with set-add semantics.
const (
	RelationFavourite       RelationSet = "favourite"
	RelationExerciseCreated RelationSet = "exerciseCreated"
	RelationCompleted       RelationSet = "completed"
)

// UserUpdate describes a partial update of a user's profile attributes.
// Nil fields are left untouched, so callers only change what they supply.
type UserUpdate struct {
	Username *string
	Weight   *float64
	Goal     *string
	ImgPath  *string
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Weight == nil && u.Goal == nil && u.ImgPath == nil
}

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateProfile applies a partial update to the user's profile
	// attributes. Returns ErrUserNotFound if the user does not exist.
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update UserUpdate) error

	// AddToSet adds an exercise identifier to one of the user's relation
	// sets. Adding an identifier that is already a member is a no-op, never
	// an error. Returns ErrUserNotFound if the user does not exist.
	AddToSet(ctx context.Context, id primitive.ObjectID, set RelationSet, exerciseID primitive.ObjectID) error

	// RemoveFromSet removes an exercise identifier from one of the user's
	// relation sets. Removing a non-member is a no-op, never an error.
	// Returns ErrUserNotFound if the user does not exist.
	RemoveFromSet(ctx context.Context, id primitive.ObjectID, set RelationSet, exerciseID primitive.ObjectID) error

	// RemoveExerciseFromAllSets retracts an exercise identifier from every
	// user's favourite, exerciseCreated and completed sets. Used as the
	// eager referential-cleanup step when an exercise is deleted.
	RemoveExerciseFromAllSets(ctx context.Context, exerciseID primitive.ObjectID) error
}
