package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/rakibhasan/coursehub/internal/pkg/jwt"
	"github.com/rakibhasan/coursehub/internal/pkg/logger"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/internal/utils"
	"github.com/rakibhasan/coursehub/services/account"
)

const minPasswordLength = 6

// Register creates a new account and returns a signed token for it.
func (u *AccountUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", account.ErrValidation)
	}
	isValid, email := utils.ValidateEmail(req.Email)
	if !isValid {
		return nil, fmt.Errorf("%w: invalid email address", account.ErrValidation)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", account.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("email", email))

	return u.buildAuthResponse(user)
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password are indistinguishable to the caller.
func (u *AccountUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	isValid, email := utils.ValidateEmail(req.Email)
	if !isValid || req.Password == "" {
		return nil, account.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrUserNotFound) {
			return nil, account.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, account.ErrInvalidCredentials
	}

	courses, err := u.userRepo.GetUserCourses(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Courses = courses

	return u.buildAuthResponse(user)
}

// GetUserCourses returns the course IDs granted to the account with the
// given email.
func (u *AccountUC) GetUserCourses(ctx context.Context, email string) ([]string, error) {
	isValid, normalized := utils.ValidateEmail(email)
	if !isValid {
		return nil, fmt.Errorf("%w: invalid email address", account.ErrValidation)
	}

	user, err := u.userRepo.GetUserByEmail(ctx, normalized)
	if err != nil {
		return nil, err
	}
	return u.userRepo.GetUserCourses(ctx, user.ID)
}

func (u *AccountUC) buildAuthResponse(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		User:      user.Summary(),
		ExpiresAt: expiresAt,
	}, nil
}
