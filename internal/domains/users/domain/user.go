package domain

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrInvalidEmail  = errors.New("email must contain '@'")
	ErrWeakPassword  = errors.New("password must be at least 6 characters")
)

// User is a locally registered shopper account.
type User struct {
	ID           int64
	Username     string
	DisplayName  string
	Email        string
	PasswordHash string
}

// NewUser builds a user ensuring required invariants. The password is
// hashed immediately; the plaintext is never stored.
func NewUser(username, displayName, email, password string) (*User, error) {
	user := &User{}
	if err := user.SetUsername(username); err != nil {
		return nil, err
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if err := user.UpdateProfile(displayName, email); err != nil {
		return nil, err
	}
	return user, nil
}

// SetUsername trims and validates the username.
func (u *User) SetUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	u.Username = username
	return nil
}

// SetPassword validates basic password strength and stores a bcrypt hash.
func (u *User) SetPassword(password string) error {
	password = strings.TrimSpace(password)
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < 6 {
		return ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// UpdateProfile applies optional profile fields and validates email if present.
func (u *User) UpdateProfile(displayName, email string) error {
	u.DisplayName = strings.TrimSpace(displayName)
	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	u.Email = email
	return nil
}

// CheckPassword compares the stored hash with the supplied credentials.
func (u *User) CheckPassword(password string) bool {
	password = strings.TrimSpace(password)
	if password == "" || u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Validate re-applies core invariants for persistence.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}
	if u.PasswordHash == "" {
		return ErrEmptyPassword
	}
	return u.UpdateProfile(u.DisplayName, u.Email)
}

// Identity exposes the user as the authenticated principal seen by the
// rest of the application.
func (u *User) Identity() Identity {
	return Identity{
		Nickname:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
	}
}
