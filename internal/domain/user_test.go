package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MartaCamacho/fit-project-server/internal/domain"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		email       string
		password    string
		expectedErr error
	}{
		{
			name:     "valid_user",
			username: "marta",
			email:    "marta@example.com",
			password: "correct-horse",
		},
		{
			name:        "empty_username",
			username:    "",
			email:       "marta@example.com",
			password:    "correct-horse",
			expectedErr: domain.ErrEmptyUsername,
		},
		{
			name:        "empty_email",
			username:    "marta",
			email:       "",
			password:    "correct-horse",
			expectedErr: domain.ErrEmptyEmail,
		},
		{
			name:        "malformed_email",
			username:    "marta",
			email:       "marta.example.com",
			password:    "correct-horse",
			expectedErr: domain.ErrInvalidEmail,
		},
		{
			name:        "email_with_dotless_domain",
			username:    "marta",
			email:       "marta@example",
			password:    "correct-horse",
			expectedErr: domain.ErrInvalidEmail,
		},
		{
			name:        "password_too_short",
			username:    "marta",
			email:       "marta@example.com",
			password:    "short",
			expectedErr: domain.ErrPasswordTooShort,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user, err := domain.NewUser(tc.username, tc.email, tc.password)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.False(t, user.ID.IsZero())
			assert.Equal(t, tc.username, user.Username)
			assert.Equal(t, tc.email, user.Email)

			// Relation sets must start empty, not nil, so they serialize
			// as arrays.
			assert.NotNil(t, user.Favourite)
			assert.NotNil(t, user.ExerciseCreated)
			assert.NotNil(t, user.Completed)
			assert.Empty(t, user.Favourite)
		})
	}
}

func TestUser_RelationSetMembership(t *testing.T) {
	exerciseID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	user, err := domain.NewUser("marta", "marta@example.com", "correct-horse")
	require.NoError(t, err)

	assert.False(t, user.HasFavourite(exerciseID))
	assert.False(t, user.HasCreated(exerciseID))
	assert.False(t, user.HasCompleted(exerciseID))

	user.Favourite = append(user.Favourite, exerciseID)
	user.ExerciseCreated = append(user.ExerciseCreated, exerciseID)
	user.Completed = append(user.Completed, exerciseID)

	assert.True(t, user.HasFavourite(exerciseID))
	assert.True(t, user.HasCreated(exerciseID))
	assert.True(t, user.HasCompleted(exerciseID))
	assert.False(t, user.HasFavourite(otherID))
}

func TestUser_ValidateStoredUser(t *testing.T) {
	// A user loaded from the store has a hash but no plaintext password.
	user := &domain.User{
		ID:             primitive.NewObjectID(),
		Username:       "marta",
		Email:          "marta@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), domain.ErrEmptyPassword)
}
