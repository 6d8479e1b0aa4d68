package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MartaCamacho/fit-project-server/internal/api/shared"
	"github.com/MartaCamacho/fit-project-server/internal/domain"
	"github.com/MartaCamacho/fit-project-server/internal/service"
	"github.com/MartaCamacho/fit-project-server/internal/service/auth"
	"github.com/MartaCamacho/fit-project-server/internal/store"
)

// testLogger returns a logger that swallows all output.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newAuthedRequest builds a request carrying the given user ID in its context
// and the given value for the {id} path parameter, the way the auth
// middleware and chi router would.
func newAuthedRequest(method, target string, body io.Reader, userID primitive.ObjectID, pathID string) *http.Request {
	r := httptest.NewRequest(method, target, body)

	ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)

	if pathID != "" {
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", pathID)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, routeCtx)
	}

	return r.WithContext(ctx)
}

// newPathRequest builds an unauthenticated request with the given value for
// the {id} path parameter.
func newPathRequest(method, target string, body io.Reader, pathID string) *http.Request {
	r := httptest.NewRequest(method, target, body)

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("id", pathID)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx)

	return r.WithContext(ctx)
}

// mockProfileService is a function-field mock implementation of service.ProfileService.
type mockProfileService struct {
	GetProfileFn    func(ctx context.Context, userID primitive.ObjectID) (*service.Profile, error)
	UpdateProfileFn func(ctx context.Context, userID primitive.ObjectID, update service.ProfileUpdate) error
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*service.Profile, error) {
	if m.GetProfileFn != nil {
		return m.GetProfileFn(ctx, userID)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, update service.ProfileUpdate) error {
	if m.UpdateProfileFn != nil {
		return m.UpdateProfileFn(ctx, userID, update)
	}
	return nil
}

// mockExerciseService is a function-field mock implementation of service.ExerciseService.
type mockExerciseService struct {
	CreateFn     func(ctx context.Context, callerID primitive.ObjectID, input service.CreateExerciseInput) (*domain.Exercise, error)
	ListFn       func(ctx context.Context) ([]*domain.Exercise, error)
	GetFn        func(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	UpdateFn     func(ctx context.Context, id primitive.ObjectID, update store.ExerciseUpdate) error
	DeleteFn     func(ctx context.Context, id primitive.ObjectID) error
	ListMineFn   func(ctx context.Context, userID primitive.ObjectID) ([]*domain.Exercise, error)
	DeleteMineFn func(ctx context.Context, userID, exerciseID primitive.ObjectID) error
}

func (m *mockExerciseService) Create(
	ctx context.Context,
	callerID primitive.ObjectID,
	input service.CreateExerciseInput,
) (*domain.Exercise, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, callerID, input)
	}
	return nil, store.ErrExerciseNotFound
}

func (m *mockExerciseService) List(ctx context.Context) ([]*domain.Exercise, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []*domain.Exercise{}, nil
}

func (m *mockExerciseService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, store.ErrExerciseNotFound
}

func (m *mockExerciseService) Update(ctx context.Context, id primitive.ObjectID, update store.ExerciseUpdate) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, update)
	}
	return nil
}

func (m *mockExerciseService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *mockExerciseService) ListMine(ctx context.Context, userID primitive.ObjectID) ([]*domain.Exercise, error) {
	if m.ListMineFn != nil {
		return m.ListMineFn(ctx, userID)
	}
	return []*domain.Exercise{}, nil
}

func (m *mockExerciseService) DeleteMine(ctx context.Context, userID, exerciseID primitive.ObjectID) error {
	if m.DeleteMineFn != nil {
		return m.DeleteMineFn(ctx, userID, exerciseID)
	}
	return nil
}

// mockFavoritesService is a function-field mock implementation of service.FavoritesService.
type mockFavoritesService struct {
	AddFavouriteFn    func(ctx context.Context, userID, exerciseID primitive.ObjectID) error
	RemoveFavouriteFn func(ctx context.Context, userID, exerciseID primitive.ObjectID) error
	ListFavouritesFn  func(ctx context.Context, userID primitive.ObjectID) ([]*domain.Exercise, error)
	MarkCompletedFn   func(ctx context.Context, userID, exerciseID primitive.ObjectID) error
}

func (m *mockFavoritesService) AddFavourite(ctx context.Context, userID, exerciseID primitive.ObjectID) error {
	if m.AddFavouriteFn != nil {
		return m.AddFavouriteFn(ctx, userID, exerciseID)
	}
	return nil
}

func (m *mockFavoritesService) RemoveFavourite(ctx context.Context, userID, exerciseID primitive.ObjectID) error {
	if m.RemoveFavouriteFn != nil {
		return m.RemoveFavouriteFn(ctx, userID, exerciseID)
	}
	return nil
}

func (m *mockFavoritesService) ListFavourites(ctx context.Context, userID primitive.ObjectID) ([]*domain.Exercise, error) {
	if m.ListFavouritesFn != nil {
		return m.ListFavouritesFn(ctx, userID)
	}
	return []*domain.Exercise{}, nil
}

func (m *mockFavoritesService) MarkCompleted(ctx context.Context, userID, exerciseID primitive.ObjectID) error {
	if m.MarkCompletedFn != nil {
		return m.MarkCompletedFn(ctx, userID, exerciseID)
	}
	return nil
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

// mockSessionService is a function-field mock implementation of auth.SessionService.
type mockSessionService struct {
	IssueTokenFn    func(ctx context.Context, userID primitive.ObjectID) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

func (m *mockSessionService) IssueToken(ctx context.Context, userID primitive.ObjectID) (string, error) {
	if m.IssueTokenFn != nil {
		return m.IssueTokenFn(ctx, userID)
	}
	return "session-token", nil
}

func (m *mockSessionService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return nil, auth.ErrInvalidToken
}

// mockPasswordHasher is a function-field mock implementation of
// auth.PasswordHasher and auth.PasswordVerifier.
type mockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	return nil
}

// mockUploader is a function-field mock implementation of service.ImageUploader.
type mockUploader struct {
	UploadFn func(ctx context.Context, image []byte, name string) (string, error)
}

func (m *mockUploader) Upload(ctx context.Context, image []byte, name string) (string, error) {
	if m.UploadFn != nil {
		return m.UploadFn(ctx, image, name)
	}
	return "https://res.example.com/image.jpg", nil
}
