package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pcosapi/internal/auth"
	"pcosapi/internal/cache"
	apperrors "pcosapi/internal/errors"
	"pcosapi/internal/model"
	"pcosapi/internal/repository"
)

const bcryptCost = 10

const profileCacheTTL = 5 * time.Minute

// AuthService handles registration, login and profile lookup.
type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	Profile(ctx context.Context, userID uint) (*model.User, error)
}

type authService struct {
	userRepo        repository.UserRepository
	jwtService      *auth.JWTService
	cache           *cache.Client
	updateLastLogin bool
}

// NewAuthService creates a new authentication service. updateLastLogin
// controls whether successful logins stamp the user record.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, cache *cache.Client, updateLastLogin bool) AuthService {
	return &authService{
		userRepo:        userRepo,
		jwtService:      jwtService,
		cache:           cache,
		updateLastLogin: updateLastLogin,
	}
}

func (s *authService) profileCacheKey(id uint) string {
	return fmt.Sprintf("profile:%d", id)
}

// Register creates a new user with a hashed password and returns the user
// together with a freshly issued token.
func (s *authService) Register(ctx context.Context, email, password, fullName string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", apperrors.ErrMissingCredentials
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		FullName:     fullName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and returns a token. Unknown email and wrong
// password yield the same error.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", apperrors.ErrMissingCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if s.updateLastLogin {
		now := time.Now()
		if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
			logger.Warn().Err(err).Uint("user_id", user.ID).Msg("failed to update last login")
		} else {
			user.LastLogin = &now
			_ = s.cache.Delete(ctx, s.profileCacheKey(user.ID))
		}
	}

	token, err := s.jwtService.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}

	return user, token, nil
}

// Profile returns the user's profile, served from cache when possible.
func (s *authService) Profile(ctx context.Context, userID uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.profileCacheKey(userID)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.profileCacheKey(userID), payload, profileCacheTTL)
	}
	return user, nil
}
