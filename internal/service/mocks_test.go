package service

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MartaCamacho/fit-project-server/internal/domain"
	"github.com/MartaCamacho/fit-project-server/internal/store"
)

// testLogger returns a logger that swallows all output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockUserStore is a function-field mock implementation of store.UserStore.
type mockUserStore struct {
	CreateFn                    func(ctx context.Context, user *domain.User) error
	GetByIDFn                   func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByEmailFn                func(ctx context.Context, email string) (*domain.User, error)
	UpdateProfileFn             func(ctx context.Context, id primitive.ObjectID, update store.UserUpdate) error
	AddToSetFn                  func(ctx context.Context, id primitive.ObjectID, set store.RelationSet, exerciseID primitive.ObjectID) error
	RemoveFromSetFn             func(ctx context.Context, id primitive.ObjectID, set store.RelationSet, exerciseID primitive.ObjectID) error
	RemoveExerciseFromAllSetsFn func(ctx context.Context, exerciseID primitive.ObjectID) error
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) UpdateProfile(ctx context.Context, id primitive.ObjectID, update store.UserUpdate) error {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, id, update)
	}
	return nil
}

func (m *mockUserStore) AddToSet(
	ctx context.Context,
	id primitive.ObjectID,
	set store.RelationSet,
	exerciseID primitive.ObjectID,
) error {
	if m.AddToSetFn != nil {
		return m.AddToSetFn(ctx, id, set, exerciseID)
	}
	return nil
}

func (m *mockUserStore) RemoveFromSet(
	ctx context.Context,
	id primitive.ObjectID,
	set store.RelationSet,
	exerciseID primitive.ObjectID,
) error {
	if m.RemoveFromSetFn != nil {
		return m.RemoveFromSetFn(ctx, id, set, exerciseID)
	}
	return nil
}

func (m *mockUserStore) RemoveExerciseFromAllSets(ctx context.Context, exerciseID primitive.ObjectID) error {
	if m.RemoveExerciseFromAllSetsFn != nil {
		return m.RemoveExerciseFromAllSetsFn(ctx, exerciseID)
	}
	return nil
}

// mockExerciseStore is a function-field mock implementation of store.ExerciseStore.
type mockExerciseStore struct {
	CreateFn   func(ctx context.Context, exercise *domain.Exercise) error
	GetByIDFn  func(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	GetByIDsFn func(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Exercise, error)
	ListFn     func(ctx context.Context) ([]*domain.Exercise, error)
	UpdateFn   func(ctx context.Context, id primitive.ObjectID, update store.ExerciseUpdate) error
	DeleteFn   func(ctx context.Context, id primitive.ObjectID) error
}

func (m *mockExerciseStore) Create(ctx context.Context, exercise *domain.Exercise) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, exercise)
	}
	return nil
}

func (m *mockExerciseStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrExerciseNotFound
}

func (m *mockExerciseStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Exercise, error) {
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}
	return []*domain.Exercise{}, nil
}

func (m *mockExerciseStore) List(ctx context.Context) ([]*domain.Exercise, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*domain.Exercise{}, nil
}

func (m *mockExerciseStore) Update(ctx context.Context, id primitive.ObjectID, update store.ExerciseUpdate) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	return nil
}

func (m *mockExerciseStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// mockUploader is a function-field mock implementation of ImageUploader.
type mockUploader struct {
	UploadFn func(ctx context.Context, image []byte, name string) (string, error)
}

func (m *mockUploader) Upload(ctx context.Context, image []byte, name string) (string, error) {
	if m.UploadFn != nil {
		return m.UploadFn(ctx, image, name)
	}
	return "https://res.example.com/image.jpg", nil
}

// fakeUserStore and fakeExerciseStore are in-memory store implementations
// with the real set semantics ($addToSet / $pull behavior), used by the
// scenario tests where the interplay of both stores matters.

type fakeUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[primitive.ObjectID]*domain.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (f *fakeUserStore) UpdateProfile(ctx context.Context, id primitive.ObjectID, update store.UserUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return store.ErrUserNotFound
	}
	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Weight != nil {
		user.Weight = *update.Weight
	}
	if update.Goal != nil {
		user.Goal = *update.Goal
	}
	if update.ImgPath != nil {
		user.ImgPath = *update.ImgPath
	}
	return nil
}

func (f *fakeUserStore) relationSet(user *domain.User, set store.RelationSet) *[]primitive.ObjectID {
	switch set {
	case store.RelationFavourite:
		return &user.Favourite
	case store.RelationExerciseCreated:
		return &user.ExerciseCreated
	default:
		return &user.Completed
	}
}

func (f *fakeUserStore) AddToSet(
	ctx context.Context,
	id primitive.ObjectID,
	set store.RelationSet,
	exerciseID primitive.ObjectID,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return store.ErrUserNotFound
	}
	ids := f.relationSet(user, set)
	for _, existing := range *ids {
		if existing == exerciseID {
			return nil // already a member, no-op
		}
	}
	*ids = append(*ids, exerciseID)
	return nil
}

func (f *fakeUserStore) RemoveFromSet(
	ctx context.Context,
	id primitive.ObjectID,
	set store.RelationSet,
	exerciseID primitive.ObjectID,
) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return store.ErrUserNotFound
	}
	ids := f.relationSet(user, set)
	filtered := (*ids)[:0]
	for _, existing := range *ids {
		if existing != exerciseID {
			filtered = append(filtered, existing)
		}
	}
	*ids = filtered
	return nil
}

func (f *fakeUserStore) RemoveExerciseFromAllSets(ctx context.Context, exerciseID primitive.ObjectID) error {
	f.mu.Lock()
	ids := make([]primitive.ObjectID, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	f.mu.Unlock()

	for _, id := range ids {
		for _, set := range []store.RelationSet{
			store.RelationFavourite,
			store.RelationExerciseCreated,
			store.RelationCompleted,
		} {
			if err := f.RemoveFromSet(ctx, id, set, exerciseID); err != nil {
				return err
			}
		}
	}
	return nil
}

type fakeExerciseStore struct {
	mu        sync.Mutex
	exercises map[primitive.ObjectID]*domain.Exercise
}

func newFakeExerciseStore() *fakeExerciseStore {
	return &fakeExerciseStore{exercises: map[primitive.ObjectID]*domain.Exercise{}}
}

func (f *fakeExerciseStore) Create(ctx context.Context, exercise *domain.Exercise) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.exercises {
		if existing.URL == exercise.URL {
			return store.ErrURLExists
		}
	}
	copied := *exercise
	f.exercises[exercise.ID] = &copied
	return nil
}

func (f *fakeExerciseStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	exercise, ok := f.exercises[id]
	if !ok {
		return nil, store.ErrExerciseNotFound
	}
	copied := *exercise
	return &copied, nil
}

func (f *fakeExerciseStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []*domain.Exercise{}
	for _, id := range ids {
		if exercise, ok := f.exercises[id]; ok {
			copied := *exercise
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeExerciseStore) List(ctx context.Context) ([]*domain.Exercise, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := []*domain.Exercise{}
	for _, exercise := range f.exercises {
		copied := *exercise
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeExerciseStore) Update(ctx context.Context, id primitive.ObjectID, update store.ExerciseUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	exercise, ok := f.exercises[id]
	if !ok {
		return store.ErrExerciseNotFound
	}
	if update.Title != nil {
		exercise.Title = *update.Title
	}
	if update.Description != nil {
		exercise.Description = *update.Description
	}
	if update.URL != nil {
		exercise.URL = *update.URL
	}
	if update.Intensity != nil {
		exercise.Intensity = *update.Intensity
	}
	if update.Muscle != nil {
		exercise.Muscle = *update.Muscle
	}
	if update.Duration != nil {
		exercise.Duration = *update.Duration
	}
	return nil
}

func (f *fakeExerciseStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.exercises[id]; !ok {
		return store.ErrExerciseNotFound
	}
	delete(f.exercises, id)
	return nil
}
