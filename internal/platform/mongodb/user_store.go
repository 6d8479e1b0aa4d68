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

// MongoUserStore implements the store.UserStore interface using a MongoDB
// collection as the storage backend.
type MongoUserStore struct {
	collection *mongo.Collection
}

// NewMongoUserStore creates a new MongoDB implementation of the UserStore
// interface. It accepts a database handle that should be initialized and
// managed by the caller.
func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{
		collection: db.Collection(usersCollection),
	}
}

// Ensure MongoUserStore implements store.UserStore interface
var _ store.UserStore = (*MongoUserStore)(nil)

// Create implements store.UserStore.Create
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.ErrEmailExists
		}
		return store.NewStoreError("user", "create", "insert failed", err)
	}

	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *MongoUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	var user domain.User
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get", "lookup by id failed", err)
	}

	return &user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get", "lookup by email failed", err)
	}

	return &user, nil
}

// UpdateProfile implements store.UserStore.UpdateProfile.
// Only the supplied fields are written; everything else is left as-is.
func (s *MongoUserStore) UpdateProfile(ctx context.Context, id primitive.ObjectID, update store.UserUpdate) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Username != nil {
		set["username"] = *update.Username
	}
	if update.Weight != nil {
		set["weight"] = *update.Weight
	}
	if update.Goal != nil {
		set["goal"] = *update.Goal
	}
	if update.ImgPath != nil {
		set["imgPath"] = *update.ImgPath
	}

	result, err := s.collection.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return store.NewStoreError("user", "update", "profile update failed", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrUserNotFound
	}

	return nil
}

// AddToSet implements store.UserStore.AddToSet.
// $addToSet gives the idempotent set-add semantics: re-adding a member
// matches the document but modifies nothing.
func (s *MongoUserStore) AddToSet(
	ctx context.Context,
	id primitive.ObjectID,
	set store.RelationSet,
	exerciseID primitive.ObjectID,
) error {
	result, err := s.collection.UpdateByID(ctx, id, bson.M{
		"$addToSet": bson.M{string(set): exerciseID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return store.NewStoreError("user", "update", "set add failed", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrUserNotFound
	}

	return nil
}

// RemoveFromSet implements store.UserStore.RemoveFromSet.
// $pull of a non-member matches the document but modifies nothing, which is
// exactly the no-op contract.
func (s *MongoUserStore) RemoveFromSet(
	ctx context.Context,
	id primitive.ObjectID,
	set store.RelationSet,
	exerciseID primitive.ObjectID,
) error {
	result, err := s.collection.UpdateByID(ctx, id, bson.M{
		"$pull": bson.M{string(set): exerciseID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return store.NewStoreError("user", "update", "set remove failed", err)
	}
	if result.MatchedCount == 0 {
		return store.ErrUserNotFound
	}

	return nil
}

// RemoveExerciseFromAllSets implements store.UserStore.RemoveExerciseFromAllSets.
// One UpdateMany pulls the identifier out of all three relation sets of every
// user that references it.
func (s *MongoUserStore) RemoveExerciseFromAllSets(ctx context.Context, exerciseID primitive.ObjectID) error {
	filter := bson.M{"$or": []bson.M{
		{string(store.RelationFavourite): exerciseID},
		{string(store.RelationExerciseCreated): exerciseID},
		{string(store.RelationCompleted): exerciseID},
	}}
	update := bson.M{
		"$pull": bson.M{
			string(store.RelationFavourite):       exerciseID,
			string(store.RelationExerciseCreated): exerciseID,
			string(store.RelationCompleted):       exerciseID,
		},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}

	if _, err := s.collection.UpdateMany(ctx, filter, update); err != nil {
		return store.NewStoreError("user", "update", "relation cleanup failed", err)
	}

	return nil
}
