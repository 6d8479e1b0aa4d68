package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User represents a registered user of the fitness application.
//
// The three relation sets (Favourite, ExerciseCreated, Completed) hold
// Exercise identifiers only, never embedded copies, and are maintained with
// set semantics: membership is added with $addToSet and removed with $pull,
// so a set never contains the same exercise twice.
type User struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty"     json:"id"`
	Username        string               `bson:"username"          json:"username"`
	Email           string               `bson:"email"             json:"email"`
	Password        string               `bson:"-"                 json:"-"` // Plaintext, only set transiently during registration
	HashedPassword  string               `bson:"password"          json:"-"` // Never expose password hash in JSON
	Weight          float64              `bson:"weight,omitempty"  json:"weight,omitempty"`
	Goal            string               `bson:"goal,omitempty"    json:"goal,omitempty"`
	ImgPath         string               `bson:"imgPath,omitempty" json:"imgPath,omitempty"`
	Favourite       []primitive.ObjectID `bson:"favourite"         json:"favourite"`
	ExerciseCreated []primitive.ObjectID `bson:"exerciseCreated"   json:"exerciseCreated"`
	Completed       []primitive.ObjectID `bson:"completed"         json:"completed"`
	CreatedAt       time.Time            `bson:"createdAt"         json:"created_at"`
	UpdatedAt       time.Time            `bson:"updatedAt"         json:"updated_at"`
}

// NewUser creates a new User with the given username, email and plaintext
// password. The caller is responsible for hashing the password before the
// user is stored. Relation sets start empty, never nil, so bson
// serialization always writes arrays.
func NewUser(username, email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:              primitive.NewObjectID(),
		Username:        username,
		Email:           email,
		Password:        password,
		Favourite:       []primitive.ObjectID{},
		ExerciseCreated: []primitive.ObjectID{},
		Completed:       []primitive.ObjectID{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID.IsZero() {
		return ErrEmptyUserID
	}

	if u.Username == "" {
		return ErrEmptyUsername
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
		// bcrypt's practical input limit
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		// Existing users loaded from the store carry only the hash.
		return ErrEmptyPassword
	}

	return nil
}

// HasFavourite reports whether the exercise is a member of the favourite set.
func (u *User) HasFavourite(exerciseID primitive.ObjectID) bool {
	return containsID(u.Favourite, exerciseID)
}

// HasCreated reports whether the exercise is a member of the exerciseCreated set.
func (u *User) HasCreated(exerciseID primitive.ObjectID) bool {
	return containsID(u.ExerciseCreated, exerciseID)
}

// HasCompleted reports whether the exercise is a member of the completed set.
func (u *User) HasCompleted(exerciseID primitive.ObjectID) bool {
	return containsID(u.Completed, exerciseID)
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// validEmailFormat performs basic validation of email format: an @ with a
// dotted domain after it. Full RFC 5322 checking is left to the request
// validator at the API boundary.
func validEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	dotIndex := -1
	for i, char := range domainPart {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	return dotIndex > 0 && dotIndex < len(domainPart)-1
}
