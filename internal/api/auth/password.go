package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/storage"
)

// ErrUserExists is returned when creating a user whose username is taken.
var ErrUserExists = errors.New("username already exists")

// bcryptCost matches the cost the original admin accounts were created with.
const bcryptCost = 10

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword verifies a plaintext password against a stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CreateUser hashes the password and stores a new user, refusing duplicates.
func CreateUser(ctx context.Context, store storage.Storage, username, password string) (*storage.User, error) {
	existing, err := store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return store.CreateUser(ctx, username, hash)
}

// Bootstrap provisions the admin account on startup when it doesn't exist yet.
func Bootstrap(ctx context.Context, store storage.Storage, username, password string) error {
	_, err := CreateUser(ctx, store, username, password)
	if errors.Is(err, ErrUserExists) {
		return nil
	}
	return err
}
