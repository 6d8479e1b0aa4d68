package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MartaCamacho/fit-project-server/internal/domain"
	"github.com/MartaCamacho/fit-project-server/internal/store"
)

// MongoExerciseStore implements the store.ExerciseStore interface using a
// MongoDB collection as the storage backend.
type MongoExerciseStore struct {
	collection *mongo.Collection
}

// NewMongoExerciseStore creates a new MongoDB implementation of the
// ExerciseStore interface.
func NewMongoExerciseStore(db *mongo.Database) *MongoExerciseStore {
	return &MongoExerciseStore{
		collection: db.Collection(exercisesCollection),
	}
}

// Ensure MongoExerciseStore implements store.ExerciseStore interface
var _ store.ExerciseStore = (*MongoExerciseStore)(nil)

// Create implements store.ExerciseStore.Create.
// The unique index on url backs the duplicate check, so a concurrent create
// with the same URL cannot slip through between a lookup and the insert.
func (s *MongoExerciseStore) Create(ctx context.Context, exercise *domain.Exercise) error {
	if err := exercise.Validate(); err != nil {
		return err
	}

	if _, err := s.collection.InsertOne(ctx, exercise); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrURLExists
		}
		return store.NewStoreError("exercise", "create", "insert failed", err)
	}

	return nil
}

// GetByID implements store.ExerciseStore.GetByID
func (s *MongoExerciseStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	var exercise domain.Exercise
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&exercise)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrExerciseNotFound
		}
		return nil, store.NewStoreError("exercise", "get", "lookup by id failed", err)
	}

	return &exercise, nil
}

// GetByIDs implements store.ExerciseStore.GetByIDs.
// Identifiers with no backing document are skipped; the caller gets whatever
// subset still exists.
func (s *MongoExerciseStore) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Exercise, error) {
	if len(ids) == 0 {
		return []*domain.Exercise{}, nil
	}

	cursor, err := s.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, store.NewStoreError("exercise", "list", "lookup by ids failed", err)
	}

	exercises := []*domain.Exercise{}
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, store.NewStoreError("exercise", "list", "cursor decode failed", err)
	}

	return exercises, nil
}

// List implements store.ExerciseStore.List
func (s *MongoExerciseStore) List(ctx context.Context) ([]*domain.Exercise, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, store.NewStoreError("exercise", "list", "find failed", err)
	}

	exercises := []*domain.Exercise{}
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, store.NewStoreError("exercise", "list", "cursor decode failed", err)
	}

	return exercises, nil
}

// Update implements store.ExerciseStore.Update.
// Only the supplied fields are written. URL changes are not re-checked for
// uniqueness beyond the index itself.
func (s *MongoExerciseStore) Update(ctx context.Context, id primitive.ObjectID, update store.ExerciseUpdate) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.URL != nil {
		set["url"] = *update.URL
	}
	if update.Intensity != nil {
		set["intensity"] = *update.Intensity
	}
	if update.Muscle != nil {
		set["muscle"] = *update.Muscle
	}
	if update.Duration != nil {
		set["duration"] = *update.Duration
	}

	result, err := s.collection.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrURLExists
		}
		return store.NewStoreError("exercise", "update", "update failed", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrExerciseNotFound
	}

	return nil
}

// Delete implements store.ExerciseStore.Delete
func (s *MongoExerciseStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return store.NewStoreError("exercise", "delete", "delete failed", err)
	}
	if result.DeletedCount == 0 {
		return store.ErrExerciseNotFound
	}

	return nil
}
