package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rakibhasan/coursehub/internal/pkg/logger"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/internal/utils"
	"github.com/rakibhasan/coursehub/services/account"
)

// IssueResetOTP emails a password reset code to an existing account. Unknown
// emails are reported so the caller can return a 404.
func (u *AccountUC) IssueResetOTP(ctx context.Context, email string) error {
	isValid, normalized := utils.ValidateEmail(email)
	if !isValid {
		return fmt.Errorf("%w: invalid email address", account.ErrValidation)
	}

	if _, err := u.userRepo.GetUserByEmail(ctx, normalized); err != nil {
		return err
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	if err := u.notifier.SendPasswordResetOTP(normalized, code); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	if err := u.userRepo.SetOTP(ctx, normalized, code, time.Now().Add(otpTTL)); err != nil {
		return err
	}

	logger.Info("Issued password reset OTP", logger.String("email", normalized))
	return nil
}

// VerifyResetOTP checks a reset code without consuming it, so the same code
// still works for the reset-password call that follows.
func (u *AccountUC) VerifyResetOTP(ctx context.Context, email, code string) error {
	isValid, normalized := utils.ValidateEmail(email)
	if !isValid {
		return fmt.Errorf("%w: invalid email address", account.ErrValidation)
	}
	return u.checkPersistedOTP(ctx, normalized, code)
}

// ResetPassword verifies the reset code, consumes it and stores the new
// password hash.
func (u *AccountUC) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	isValid, normalized := utils.ValidateEmail(req.Email)
	if !isValid {
		return fmt.Errorf("%w: invalid email address", account.ErrValidation)
	}
	if len(req.NewPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", account.ErrValidation, minPasswordLength)
	}

	if err := u.checkPersistedOTP(ctx, normalized, req.OTP); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// clears the challenge alongside the hash
	if err := u.userRepo.UpdatePassword(ctx, normalized, string(hash)); err != nil {
		return err
	}

	logger.Info("Password reset", logger.String("email", normalized))
	return nil
}
