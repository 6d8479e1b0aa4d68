package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MartaCamacho/fit-project-server/internal/api"
	apiMiddleware "github.com/MartaCamacho/fit-project-server/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.sessionService,
		app.passwordHasher,
		app.passwordHasher,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.sessionService)

	profileHandler := api.NewProfileHandler(app.profileService, app.logger)
	exerciseHandler := api.NewExerciseHandler(app.exerciseService, app.logger)
	favoritesHandler := api.NewFavoritesHandler(app.favoritesService, app.logger)
	uploadHandler := api.NewUploadHandler(app.uploader, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Profile endpoints
			r.Get("/profile/{id}", profileHandler.GetProfile)
			r.Put("/profile/{id}", profileHandler.UpdateProfile)
			r.Post("/upload", uploadHandler.Upload)

			// Exercise catalog endpoints
			r.Post("/profile/{id}/videos", exerciseHandler.Create)
			r.Get("/profile/{id}/my-exercises", exerciseHandler.ListMine)
			r.Delete("/my-exercises/{id}", exerciseHandler.DeleteMine)
			r.Get("/videos", exerciseHandler.List)
			r.Get("/videos/{id}", exerciseHandler.Get)
			r.Put("/videos/{id}", exerciseHandler.Update)
			r.Delete("/videos/{id}", exerciseHandler.Delete)

			// Favourite and completion endpoints
			r.Post("/videos/{id}/favourite", favoritesHandler.AddFavourite)
			r.Delete("/videos/{id}/favourite", favoritesHandler.RemoveFavourite)
			r.Get("/favourites", favoritesHandler.ListFavourites)
			r.Post("/videos/{id}/completed", favoritesHandler.MarkCompleted)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
