package service

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MartaCamacho/fit-project-server/internal/domain"
	"github.com/MartaCamacho/fit-project-server/internal/store"
)

// ImageUploader sends raw image bytes to the blob store and returns a stable
// retrieval URL.
type ImageUploader interface {
	Upload(ctx context.Context, image []byte, name string) (string, error)
}

// Profile is a user together with their favourite and created exercises
// expanded into full records.
type Profile struct {
	User            *domain.User
	Favourite       []*domain.Exercise
	ExerciseCreated []*domain.Exercise
}

// ProfileUpdate describes a partial profile edit. Nil attribute fields are
// left untouched. When Image is non-empty it is uploaded and its URL becomes
// the new avatar, overriding any supplied ImgPath.
type ProfileUpdate struct {
	Username  *string
	Weight    *float64
	Goal      *string
	ImgPath   *string
	Image     []byte
	ImageName string
}

// ProfileService provides read and update access to user profiles.
type ProfileService interface {
	// GetProfile retrieves a user with the favourite and exerciseCreated
	// sets expanded. Returns store.ErrUserNotFound if no such user exists.
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*Profile, error)

	// UpdateProfile applies a partial update to the user's profile,
	// uploading the new avatar image first when one was supplied.
	// Returns store.ErrUserNotFound if no such user exists.
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, update ProfileUpdate) error
}

// ProfileServiceImpl implements the ProfileService interface.
type ProfileServiceImpl struct {
	userStore     store.UserStore
	exerciseStore store.ExerciseStore
	uploader      ImageUploader
	logger        *slog.Logger
}

// Ensure ProfileServiceImpl implements ProfileService interface
var _ ProfileService = (*ProfileServiceImpl)(nil)

// NewProfileService creates a new ProfileService.
func NewProfileService(
	userStore store.UserStore,
	exerciseStore store.ExerciseStore,
	uploader ImageUploader,
	logger *slog.Logger,
) *ProfileServiceImpl {
	return &ProfileServiceImpl{
		userStore:     userStore,
		exerciseStore: exerciseStore,
		uploader:      uploader,
		logger:        logger.With("component", "profile_service"),
	}
}

// GetProfile retrieves the user and expands the favourite and
// exerciseCreated relation sets into full exercise records.
func (s *ProfileServiceImpl) GetProfile(ctx context.Context, userID primitive.ObjectID) (*Profile, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", userID.Hex())
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	favourite, err := s.exerciseStore.GetByIDs(ctx, user.Favourite)
	if err != nil {
		s.logger.Error("failed to expand favourite set",
			"error", err,
			"user_id", userID.Hex())
		return nil, fmt.Errorf("failed to expand favourite set: %w", err)
	}

	created, err := s.exerciseStore.GetByIDs(ctx, user.ExerciseCreated)
	if err != nil {
		s.logger.Error("failed to expand exerciseCreated set",
			"error", err,
			"user_id", userID.Hex())
		return nil, fmt.Errorf("failed to expand exerciseCreated set: %w", err)
	}

	return &Profile{
		User:            user,
		Favourite:       favourite,
		ExerciseCreated: created,
	}, nil
}

// UpdateProfile uploads the new avatar image when one was supplied, then
// applies a partial update of the supplied fields. The existing avatar URL
// is retained unless the caller supplied an image or an explicit ImgPath.
func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, userID primitive.ObjectID, update ProfileUpdate) error {
	storeUpdate := store.UserUpdate{
		Username: update.Username,
		Weight:   update.Weight,
		Goal:     update.Goal,
		ImgPath:  update.ImgPath,
	}

	if len(update.Image) > 0 {
		url, err := s.uploader.Upload(ctx, update.Image, update.ImageName)
		if err != nil {
			s.logger.Error("failed to upload avatar image",
				"error", err,
				"user_id", userID.Hex())
			return fmt.Errorf("failed to upload avatar image: %w", err)
		}
		storeUpdate.ImgPath = &url
	}

	if storeUpdate.IsEmpty() {
		// Nothing to change; still verify the user exists so the caller
		// gets NotFound rather than a silent success.
		if _, err := s.userStore.GetByID(ctx, userID); err != nil {
			return fmt.Errorf("failed to retrieve user: %w", err)
		}
		return nil
	}

	if err := s.userStore.UpdateProfile(ctx, userID, storeUpdate); err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to update profile",
				"error", err,
				"user_id", userID.Hex())
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Debug("profile updated", "user_id", userID.Hex())
	return nil
}
