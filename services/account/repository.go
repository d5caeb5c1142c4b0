package account

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/rakibhasan/coursehub/services/account UserRepo,OTPRepo

// UserRepo defines persistence for registered accounts and their course access.
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserCourses(ctx context.Context, userID uuid.UUID) ([]string, error)

	// OTP challenge stored on the account row
	SetOTP(ctx context.Context, email, code string, expiresAt time.Time) error
	ClearOTP(ctx context.Context, email string) error

	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// OTPRepo defines the ephemeral challenge tier used before an account exists.
// Entries expire on their own; a successful verification deletes them early.
type OTPRepo interface {
	StoreOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) error
	GetOTP(ctx context.Context, email string) (*models.OTP, error)
	DeleteOTP(ctx context.Context, email string) error
}
