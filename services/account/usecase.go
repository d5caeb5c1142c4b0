package account

import (
	"context"

	"github.com/rakibhasan/coursehub/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rakibhasan/coursehub/services/account AccountUC

// AccountUC represents the account usecase interface
type AccountUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)

	// handle OTP
	IssueOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error

	// handle password reset
	IssueResetOTP(ctx context.Context, email string) error
	VerifyResetOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error

	// course access
	GetUserCourses(ctx context.Context, email string) ([]string, error)
}
