package usecase

import (
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/account"
)

type AccountUC struct {
	userRepo account.UserRepo
	otpRepo  account.OTPRepo
	notifier account.Notifier
	cfg      *models.Config
}

// NewAccountUC creates a new account usecase instance
func NewAccountUC(
	userRepo account.UserRepo,
	otpRepo account.OTPRepo,
	notifier account.Notifier,
	cfg *models.Config,
) *AccountUC {
	return &AccountUC{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		notifier: notifier,
		cfg:      cfg,
	}
}
