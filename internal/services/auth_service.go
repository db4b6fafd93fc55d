package services

import (
	"errors"
	"strings"

	"bookkeeper/internal/auth"
	apperrors "bookkeeper/internal/errors"
	"bookkeeper/internal/models"
)

// authService registers users and exchanges credentials for tokens.
type authService struct {
	users  UserServicer
	hasher auth.PasswordHasher
	tokens auth.TokenManager
}

// NewAuthService creates a new AuthServicer.
func NewAuthService(users UserServicer, hasher auth.PasswordHasher, tokens auth.TokenManager) AuthServicer {
	return &authService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a user with default settings and signs a token for it.
func (s *authService) Register(email, password string, companyName *string) (*AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email and password are required")
	}
	if companyName != nil && strings.TrimSpace(*companyName) == "" {
		companyName = nil
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user, err := s.users.CreateUser(email, digest, companyName)
	if err != nil {
		return nil, err
	}

	return s.issue(user)
}

// Login verifies credentials. An unknown email and a wrong password produce
// the same error so callers cannot probe which emails are registered.
func (s *authService) Login(email, password string) (*AuthResult, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *authService) issue(user *models.User) (*AuthResult, error) {
	token, err := s.tokens.Sign(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &AuthResult{Token: token, User: user}, nil
}
