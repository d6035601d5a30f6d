// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alimenta/alimenta/internal/auth"
	"github.com/alimenta/alimenta/internal/metrics"
	"github.com/alimenta/alimenta/internal/model"
	"github.com/alimenta/alimenta/internal/repository"
)

// Service errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

// minLoginDuration is the response-time floor for login attempts.
// Unknown emails fail in microseconds while wrong passwords pay for an
// argon2id verification, so both paths are held at the same floor.
const minLoginDuration = 200 * time.Millisecond

// UserStore is the persistence surface AccountService depends on.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// TokenIssuer signs bearer tokens for authenticated identities.
type TokenIssuer interface {
	Issue(identity model.Identity) (string, error)
}

// AccountService handles registration and login.
type AccountService struct {
	store   UserStore
	issuer  TokenIssuer
	metrics metrics.Recorder

	// loginFloor pads the fast login failure paths; tests set it to zero.
	loginFloor time.Duration
}

// NewAccountService creates a new AccountService.
func NewAccountService(store UserStore, issuer TokenIssuer, recorder metrics.Recorder) *AccountService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AccountService{
		store:      store,
		issuer:     issuer,
		metrics:    recorder,
		loginFloor: minLoginDuration,
	}
}

// RegisterInput defines input for registering a user.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register hashes the password and stores a new user.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.metrics.IncRegistration()

	return user, nil
}

// Login verifies credentials and returns a signed token.
// Unknown emails and wrong passwords fail with the same error.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	start := time.Now()
	defer func() {
		if elapsed := time.Since(start); elapsed < s.loginFloor {
			time.Sleep(s.loginFloor - elapsed)
		}
	}()

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLoginFailure()
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("look up user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.metrics.IncLoginFailure()
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.Identity())
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.metrics.IncLoginSuccess()

	return token, nil
}
