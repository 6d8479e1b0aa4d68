package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MartaCamacho/fit-project-server/internal/config"
	"github.com/MartaCamacho/fit-project-server/internal/platform/cloudinary"
	"github.com/MartaCamacho/fit-project-server/internal/platform/mongodb"
	"github.com/MartaCamacho/fit-project-server/internal/service"
	"github.com/MartaCamacho/fit-project-server/internal/service/auth"
	"github.com/MartaCamacho/fit-project-server/internal/store"
)

// application holds the wired dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	mongoClient *mongo.Client

	userStore     store.UserStore
	exerciseStore store.ExerciseStore

	sessionService   auth.SessionService
	passwordHasher   *auth.BcryptHasher
	profileService   service.ProfileService
	exerciseService  service.ExerciseService
	favoritesService service.FavoritesService
	uploader         service.ImageUploader
}

// newApplication connects the backing services and wires the stores and
// services together. The returned application owns the MongoDB client and
// must be cleaned up via cleanup().
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	client, db, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	sessionService, err := auth.NewSessionService(cfg.Auth)
	if err != nil {
		disconnect(client, logger)
		return nil, fmt.Errorf("failed to create session service: %w", err)
	}

	uploader, err := cloudinary.New(cfg.Cloudinary)
	if err != nil {
		disconnect(client, logger)
		return nil, fmt.Errorf("failed to create cloudinary uploader: %w", err)
	}

	userStore := mongodb.NewMongoUserStore(db)
	exerciseStore := mongodb.NewMongoExerciseStore(db)

	return &application{
		config:           cfg,
		logger:           logger,
		mongoClient:      client,
		userStore:        userStore,
		exerciseStore:    exerciseStore,
		sessionService:   sessionService,
		passwordHasher:   auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		profileService:   service.NewProfileService(userStore, exerciseStore, uploader, logger),
		exerciseService:  service.NewExerciseService(userStore, exerciseStore, logger),
		favoritesService: service.NewFavoritesService(userStore, exerciseStore, logger),
		uploader:         uploader,
	}, nil
}

// cleanup releases the application's external resources.
func (app *application) cleanup() {
	disconnect(app.mongoClient, app.logger)
}

func disconnect(client *mongo.Client, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.Error("failed to disconnect from mongodb", "error", err)
	}
}
