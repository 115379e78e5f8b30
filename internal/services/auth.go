package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/notedrop/internal/auth"
	"github.com/rohits-web03/notedrop/internal/logger"
	"github.com/rohits-web03/notedrop/internal/models"
	"github.com/rohits-web03/notedrop/internal/repositories"
	"github.com/rohits-web03/notedrop/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService owns signup, login and profile operations. Tokens it mints are
// stateless; Authenticate re-checks the store so deactivating an account
// invalidates outstanding tokens on their next use.
type AuthService struct {
	users  repositories.UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users repositories.UserRepository, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, ttl: ttl}
}

type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// AuthResult is returned by signup and login.
type AuthResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return nil, NewValidationError("Email is required")
	}
	if len(in.Password) < 8 {
		return nil, NewValidationError("Password must be at least 8 characters")
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return nil, NewValidationError("First name and last name are required")
	}

	if _, err := s.users.ByEmail(ctx, email); err == nil {
		logger.Log.Warn("Signup attempt with existing email: ", email)
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Email:     email,
		Password:  string(hash),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		IsActive:  true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	logger.Log.Info("New user registered: ", user.Email)
	return s.authResult(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)

	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Warn("Login attempt with non-existent email: ", email)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if !user.IsActive {
		logger.Log.Warn("Login attempt with deactivated account: ", email)
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Warn("Failed login attempt for: ", email)
		return nil, ErrInvalidCredentials
	}

	logger.Log.Info("User logged in: ", user.Email)
	return s.authResult(user)
}

func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.PublicUser, error) {
	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	view := user.Public()
	return &view, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*models.PublicUser, error) {
	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if update.FirstName != nil {
		if strings.TrimSpace(*update.FirstName) == "" {
			return nil, NewValidationError("First name cannot be empty")
		}
		user.FirstName = strings.TrimSpace(*update.FirstName)
	}
	if update.LastName != nil {
		if strings.TrimSpace(*update.LastName) == "" {
			return nil, NewValidationError("Last name cannot be empty")
		}
		user.LastName = strings.TrimSpace(*update.LastName)
	}
	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		if email == "" {
			return nil, NewValidationError("Email cannot be empty")
		}
		existing, err := s.users.ByEmail(ctx, email)
		switch {
		case err == nil && existing.ID != user.ID:
			return nil, ErrEmailTaken
		case err != nil && !errors.Is(err, repositories.ErrNotFound):
			return nil, fmt.Errorf("checking email: %w", err)
		}
		user.Email = email
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	logger.Log.Info("User profile updated: ", user.Email)
	view := user.Public()
	return &view, nil
}

// Authenticate runs the per-request validation chain: verify the token, then
// confirm the account still exists and is active.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := auth.ParseToken(tokenString, s.secret)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	user, err := s.users.ByID(ctx, id)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GoogleSignup registers an account from a verified Google profile. The
// password column gets a random placeholder hash so password login for the
// account behaves like any wrong password.
func (s *AuthService) GoogleSignup(ctx context.Context, email, firstName, lastName string) (*AuthResult, error) {
	placeholder, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, fmt.Errorf("generating placeholder password: %w", err)
	}
	return s.Signup(ctx, SignupInput{
		Email:     email,
		Password:  placeholder,
		FirstName: firstName,
		LastName:  lastName,
	})
}

// GoogleLogin issues a token for an existing account identified by a verified
// Google email.
func (s *AuthService) GoogleLogin(ctx context.Context, email string) (*AuthResult, error) {
	user, err := s.users.ByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	logger.Log.Info("User logged in via Google: ", user.Email)
	return s.authResult(user)
}

func (s *AuthService) authResult(user *models.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(user.ID.String(), user.Email, s.secret, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &AuthResult{Token: token, User: user.Public()}, nil
}
