package services

import (
	"golang.org/x/crypto/bcrypt"

	"bookkeeper/internal/auth"
)

func ptr[T any](v T) *T { return &v }

// fastHasher keeps bcrypt cheap in tests.
func fastHasher() auth.PasswordHasher {
	return &auth.BcryptHasher{Cost: bcrypt.MinCost}
}
