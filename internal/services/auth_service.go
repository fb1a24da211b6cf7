package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailInUse         = errors.New("email already in use")
	ErrMissingFields      = errors.New("missing required fields")
)

// UserStore is the credential store the auth service reads and writes.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	GenerateAccessToken(user *models.User) (string, error)
}

type AuthService struct {
	users     UserStore
	tokens    TokenIssuer
	expiresIn int
	hashCost  int
}

// NewAuthService wires the service. expiresIn is the token lifetime reported
// to clients, in seconds.
func NewAuthService(users UserStore, tokens TokenIssuer, expiresIn int) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		expiresIn: expiresIn,
		hashCost:  bcrypt.DefaultCost,
	}
}

// Register creates a user after checking that the email is free. The password
// is stored as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, in models.RegisterUserInput) (*models.UserProfile, error) {
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: Email and Password", ErrMissingFields)
	}

	existing, err := s.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil && existing != nil:
		return nil, ErrEmailInUse
	case err != nil && !errors.Is(err, repositories.ErrNotFound):
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := HashPassword(in.Password, s.hashCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:       in.Email,
		Password:    hash,
		Role:        in.Role,
		Department:  in.Department,
		Firstname:   in.Firstname,
		Lastname:    in.Lastname,
		ReferenceID: in.ReferenceID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration.
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	profile := user.ToProfile()
	return &profile, nil
}

// Login verifies the credentials and issues an access token. Department is
// accepted from the form but not checked against the stored user.
func (s *AuthService) Login(ctx context.Context, in models.LoginInput) (*models.LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := VerifyPassword(user.Password, in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &models.LoginResult{
		Token: models.AccessToken{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			ExpiresIn:   s.expiresIn,
		},
		User: user.ToProfile(),
	}, nil
}

// GetUser returns the profile for a hex id.
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.UserProfile, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	profile := user.ToProfile()
	return &profile, nil
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string, cost int) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// VerifyPassword verifies a password against a hash
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
