package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrWrongPassword is returned for a failed admin login. Its message is shown
// inline on the login form.
var ErrWrongPassword = errors.New("رمز عبور اشتباه است.")

// ErrNoPassword is returned when neither a hash nor a plain password is configured.
var ErrNoPassword = errors.New("admin password is not configured")

// HashPassword creates a bcrypt hash of the admin password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword checks password against hash.
func VerifyPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// ResolveHash returns the configured hash, or hashes plain when no hash is set.
func ResolveHash(hash, plain string) (string, error) {
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return "", fmt.Errorf("invalid admin password hash: %w", err)
		}
		return hash, nil
	}
	return HashPassword(plain)
}
