package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common user validation errors. All wrap ErrValidation so callers can match
// the whole class with a single errors.Is check.
var (
	ErrEmptyUserID       = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyName         = fmt.Errorf("%w: name cannot be empty", ErrValidation)
	ErrEmptyEmail        = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrInvalidEmail      = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrNegativeAge       = fmt.Errorf("%w: age must be a non-negative number", ErrValidation)
	ErrEmptyPassword     = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrPasswordTooShort  = fmt.Errorf("%w: password must be at least 7 characters long", ErrValidation)
	ErrPasswordTooLong   = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)
	ErrPasswordForbidden = fmt.Errorf("%w: password cannot contain the word %q", ErrValidation, "password")
)

// User represents a registered account. A user owns zero or more tasks and
// holds zero or more active session tokens (persisted separately, see
// store.TokenStore).
//
// Password carries the plaintext only transiently during registration and
// profile updates; it must be hashed before the user is stored. Neither
// the plaintext nor the hash is ever serialized.
type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Age            *int      `json:"age,omitempty"`
	Password       string    `json:"-"` // plaintext, transient
	HashedPassword string    `json:"-"` // bcrypt hash, never exposed
	Avatar         []byte    `json:"-"` // raw image bytes, served separately
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User from registration input. Name, email, and password
// are trimmed; email is lowercased so uniqueness checks are case-insensitive.
// The plaintext password is kept on the struct for the caller to hash before
// storage. Returns a validation error if any field is invalid.
func NewUser(name, email, password string, age *int) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Age:       age,
		Password:  strings.TrimSpace(password),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that the User holds valid data. A plaintext password, when
// present, is validated against the password policy; otherwise the user must
// already carry a hash (the case for users loaded from the store).
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Name == "" {
		return ErrEmptyName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if _, err := mail.ParseAddress(u.Email); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, u.Email)
	}

	if u.Age != nil && *u.Age < 0 {
		return ErrNegativeAge
	}

	if u.Password != "" {
		return ValidatePassword(u.Password)
	}
	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// ValidatePassword checks a plaintext password against the account password
// policy: 7 to 72 characters (the upper bound is bcrypt's input limit) and
// not containing the word "password" in any casing.
func ValidatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < 7 {
		return ErrPasswordTooShort
	}
	if len(password) > 72 {
		return ErrPasswordTooLong
	}
	if strings.Contains(strings.ToLower(password), "password") {
		return ErrPasswordForbidden
	}
	return nil
}
