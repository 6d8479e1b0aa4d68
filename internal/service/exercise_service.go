package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MartaCamacho/fit-project-server/internal/domain"
	"github.com/MartaCamacho/fit-project-server/internal/store"
)

// CreateExerciseInput carries the attributes for a new exercise record.
type CreateExerciseInput struct {
	Title       string
	Description string
	URL         string
	Intensity   string
	Muscle      string
	Duration    int
}

// ExerciseService provides the exercise catalog operations.
type ExerciseService interface {
	// Create creates a new exercise on behalf of the authenticated caller
	// and records it in the caller's exerciseCreated set. Returns
	// store.ErrURLExists if an exercise with the same source URL exists.
	Create(ctx context.Context, callerID primitive.ObjectID, input CreateExerciseInput) (*domain.Exercise, error)

	// List returns all exercise records. No pagination, no filtering.
	List(ctx context.Context) ([]*domain.Exercise, error)

	// Get retrieves an exercise by identifier.
	// Returns store.ErrExerciseNotFound if absent.
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)

	// Update applies a partial update by identifier.
	// Returns store.ErrExerciseNotFound if absent.
	Update(ctx context.Context, id primitive.ObjectID, update store.ExerciseUpdate) error

	// Delete removes the exercise record and retracts its identifier from
	// every user's relation sets.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// ListMine returns the caller's exerciseCreated set expanded to full
	// exercise records.
	ListMine(ctx context.Context, userID primitive.ObjectID) ([]*domain.Exercise, error)

	// DeleteMine removes the exercise from the caller's exerciseCreated set
	// and deletes the underlying record, then cleans up remaining
	// references held by other users.
	DeleteMine(ctx context.Context, userID, exerciseID primitive.ObjectID) error
}

// ExerciseServiceImpl implements the ExerciseService interface.
type ExerciseServiceImpl struct {
	userStore     store.UserStore
	exerciseStore store.ExerciseStore
	logger        *slog.Logger
}

// Ensure ExerciseServiceImpl implements ExerciseService interface
var _ ExerciseService = (*ExerciseServiceImpl)(nil)

// NewExerciseService creates a new ExerciseService.
func NewExerciseService(
	userStore store.UserStore,
	exerciseStore store.ExerciseStore,
	logger *slog.Logger,
) *ExerciseServiceImpl {
	return &ExerciseServiceImpl{
		userStore:     userStore,
		exerciseStore: exerciseStore,
		logger:        logger.With("component", "exercise_service"),
	}
}

// Create creates the exercise and attributes it to the caller. The two
// writes form one logical operation: when the attribution write fails, the
// freshly created record is deleted again so no orphaned exercise survives a
// partial failure.
func (s *ExerciseServiceImpl) Create(
	ctx context.Context,
	callerID primitive.ObjectID,
	input CreateExerciseInput,
) (*domain.Exercise, error) {
	exercise, err := domain.NewExercise(
		input.Title,
		input.Description,
		input.URL,
		input.Intensity,
		input.Muscle,
		input.Duration,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if err := s.exerciseStore.Create(ctx, exercise); err != nil {
		if store.IsDuplicateError(err) {
			s.logger.Debug("duplicate exercise url rejected",
				"url", input.URL,
				"caller_id", callerID.Hex())
		} else {
			s.logger.Error("failed to create exercise",
				"error", err,
				"caller_id", callerID.Hex())
		}
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	if err := s.userStore.AddToSet(ctx, callerID, store.RelationExerciseCreated, exercise.ID); err != nil {
		s.logger.Error("failed to attribute exercise to creator, removing orphaned record",
			"error", err,
			"caller_id", callerID.Hex(),
			"exercise_id", exercise.ID.Hex())

		// Compensating action: without it the exercise would exist but
		// belong to no one.
		if delErr := s.exerciseStore.Delete(ctx, exercise.ID); delErr != nil {
			s.logger.Error("compensating delete failed, exercise is orphaned",
				"error", delErr,
				"exercise_id", exercise.ID.Hex())
		}
		return nil, fmt.Errorf("failed to attribute exercise to creator: %w", err)
	}

	s.logger.Debug("exercise created",
		"exercise_id", exercise.ID.Hex(),
		"caller_id", callerID.Hex())
	return exercise, nil
}

// List returns all exercise records.
func (s *ExerciseServiceImpl) List(ctx context.Context) ([]*domain.Exercise, error) {
	exercises, err := s.exerciseStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list exercises", "error", err)
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	return exercises, nil
}

// Get retrieves an exercise by identifier.
func (s *ExerciseServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseStore.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve exercise",
				"error", err,
				"exercise_id", id.Hex())
		}
		return nil, fmt.Errorf("failed to retrieve exercise: %w", err)
	}
	return exercise, nil
}

// Update applies a partial update by identifier.
func (s *ExerciseServiceImpl) Update(ctx context.Context, id primitive.ObjectID, update store.ExerciseUpdate) error {
	if update.IsEmpty() {
		// Verify existence so an empty edit of a missing record still 404s.
		if _, err := s.exerciseStore.GetByID(ctx, id); err != nil {
			return fmt.Errorf("failed to retrieve exercise: %w", err)
		}
		return nil
	}

	if err := s.exerciseStore.Update(ctx, id, update); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to update exercise",
				"error", err,
				"exercise_id", id.Hex())
		}
		return fmt.Errorf("failed to update exercise: %w", err)
	}

	s.logger.Debug("exercise updated", "exercise_id", id.Hex())
	return nil
}

// Delete removes the record, then eagerly retracts the identifier from every
// user's favourite, exerciseCreated and completed sets so no dangling
// references survive.
func (s *ExerciseServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.exerciseStore.Delete(ctx, id); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to delete exercise",
				"error", err,
				"exercise_id", id.Hex())
		}
		return fmt.Errorf("failed to delete exercise: %w", err)
	}

	if err := s.userStore.RemoveExerciseFromAllSets(ctx, id); err != nil {
		s.logger.Error("failed to clean up relation sets after delete",
			"error", err,
			"exercise_id", id.Hex())
		return fmt.Errorf("failed to clean up relation sets: %w", err)
	}

	s.logger.Debug("exercise deleted", "exercise_id", id.Hex())
	return nil
}

// ListMine returns the caller's exerciseCreated set expanded to full records.
func (s *ExerciseServiceImpl) ListMine(ctx context.Context, userID primitive.ObjectID) ([]*domain.Exercise, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", userID.Hex())
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	exercises, err := s.exerciseStore.GetByIDs(ctx, user.ExerciseCreated)
	if err != nil {
		s.logger.Error("failed to expand exerciseCreated set",
			"error", err,
			"user_id", userID.Hex())
		return nil, fmt.Errorf("failed to expand exerciseCreated set: %w", err)
	}

	return exercises, nil
}

// DeleteMine removes the exercise from the caller's exerciseCreated set AND
// deletes the underlying record. Removing only the relation would leave the
// exercise orphaned but still globally listed, so both effects are required;
// the final cleanup pass also retracts references held by other users.
func (s *ExerciseServiceImpl) DeleteMine(ctx context.Context, userID, exerciseID primitive.ObjectID) error {
	if err := s.userStore.RemoveFromSet(ctx, userID, store.RelationExerciseCreated, exerciseID); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to remove exercise from creator set",
				"error", err,
				"user_id", userID.Hex(),
				"exercise_id", exerciseID.Hex())
		}
		return fmt.Errorf("failed to remove exercise from creator set: %w", err)
	}

	if err := s.exerciseStore.Delete(ctx, exerciseID); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to delete exercise",
				"error", err,
				"exercise_id", exerciseID.Hex())
		}
		return fmt.Errorf("failed to delete exercise: %w", err)
	}

	if err := s.userStore.RemoveExerciseFromAllSets(ctx, exerciseID); err != nil {
		s.logger.Error("failed to clean up relation sets after delete",
			"error", err,
			"exercise_id", exerciseID.Hex())
		return fmt.Errorf("failed to clean up relation sets: %w", err)
	}

	s.logger.Debug("own exercise deleted",
		"user_id", userID.Hex(),
		"exercise_id", exerciseID.Hex())
	return nil
}
