package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MartaCamacho/fit-project-server/internal/domain"
	"github.com/MartaCamacho/fit-project-server/internal/store"
)

// FavoritesService maintains the favourite and completed relation sets.
// Adds and removes are idempotent: re-adding a member or removing a
// non-member is a no-op, never an error.
type FavoritesService interface {
	// AddFavourite adds the exercise to the user's favourite set.
	// Returns store.ErrExerciseNotFound if the exercise does not exist.
	AddFavourite(ctx context.Context, userID, exerciseID primitive.ObjectID) error

	// RemoveFavourite removes the exercise from the user's favourite set.
	RemoveFavourite(ctx context.Context, userID, exerciseID primitive.ObjectID) error

	// ListFavourites returns the user's favourite set expanded to full
	// exercise records.
	ListFavourites(ctx context.Context, userID primitive.ObjectID) ([]*domain.Exercise, error)

	// MarkCompleted adds the exercise to the user's completed set.
	// Returns store.ErrExerciseNotFound if the exercise does not exist.
	MarkCompleted(ctx context.Context, userID, exerciseID primitive.ObjectID) error
}

// FavoritesServiceImpl implements the FavoritesService interface.
type FavoritesServiceImpl struct {
	userStore     store.UserStore
	exerciseStore store.ExerciseStore
	logger        *slog.Logger
}

// Ensure FavoritesServiceImpl implements FavoritesService interface
var _ FavoritesService = (*FavoritesServiceImpl)(nil)

// NewFavoritesService creates a new FavoritesService.
func NewFavoritesService(
	userStore store.UserStore,
	exerciseStore store.ExerciseStore,
	logger *slog.Logger,
) *FavoritesServiceImpl {
	return &FavoritesServiceImpl{
		userStore:     userStore,
		exerciseStore: exerciseStore,
		logger:        logger.With("component", "favorites_service"),
	}
}

// AddFavourite verifies the exercise exists, then adds it to the favourite
// set. Verifying first keeps dangling identifiers out of the relation sets.
func (s *FavoritesServiceImpl) AddFavourite(ctx context.Context, userID, exerciseID primitive.ObjectID) error {
	return s.addToSet(ctx, userID, exerciseID, store.RelationFavourite)
}

// RemoveFavourite removes the exercise from the favourite set. Removing a
// non-member leaves the set unchanged and succeeds.
func (s *FavoritesServiceImpl) RemoveFavourite(ctx context.Context, userID, exerciseID primitive.ObjectID) error {
	if err := s.userStore.RemoveFromSet(ctx, userID, store.RelationFavourite, exerciseID); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to remove favourite",
				"error", err,
				"user_id", userID.Hex(),
				"exercise_id", exerciseID.Hex())
		}
		return fmt.Errorf("failed to remove favourite: %w", err)
	}

	s.logger.Debug("favourite removed",
		"user_id", userID.Hex(),
		"exercise_id", exerciseID.Hex())
	return nil
}

// ListFavourites returns the favourite set expanded to full records.
func (s *FavoritesServiceImpl) ListFavourites(ctx context.Context, userID primitive.ObjectID) ([]*domain.Exercise, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", userID.Hex())
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	exercises, err := s.exerciseStore.GetByIDs(ctx, user.Favourite)
	if err != nil {
		s.logger.Error("failed to expand favourite set",
			"error", err,
			"user_id", userID.Hex())
		return nil, fmt.Errorf("failed to expand favourite set: %w", err)
	}

	return exercises, nil
}

// MarkCompleted verifies the exercise exists, then adds it to the completed
// set.
func (s *FavoritesServiceImpl) MarkCompleted(ctx context.Context, userID, exerciseID primitive.ObjectID) error {
	return s.addToSet(ctx, userID, exerciseID, store.RelationCompleted)
}

func (s *FavoritesServiceImpl) addToSet(
	ctx context.Context,
	userID, exerciseID primitive.ObjectID,
	set store.RelationSet,
) error {
	if _, err := s.exerciseStore.GetByID(ctx, exerciseID); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to verify exercise",
				"error", err,
				"exercise_id", exerciseID.Hex())
		}
		return fmt.Errorf("failed to verify exercise: %w", err)
	}

	if err := s.userStore.AddToSet(ctx, userID, set, exerciseID); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to add exercise to relation set",
				"error", err,
				"user_id", userID.Hex(),
				"exercise_id", exerciseID.Hex(),
				"set", string(set))
		}
		return fmt.Errorf("failed to add exercise to %s set: %w", set, err)
	}

	s.logger.Debug("exercise added to relation set",
		"user_id", userID.Hex(),
		"exercise_id", exerciseID.Hex(),
		"set", string(set))
	return nil
}
