package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/rakibhasan/coursehub/internal/pkg/logger"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/internal/utils"
	"github.com/rakibhasan/coursehub/services/account"
)

const (
	otpTTL = 5 * time.Minute

	// codes are uniform in [1000, 9999]
	otpMin  = 1000
	otpSpan = 9000
)

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return strconv.FormatInt(otpMin+n.Int64(), 10), nil
}

// IssueOTP generates a verification code and emails it. The challenge is
// persisted only after the email has been handed off, so a delivery failure
// never leaves a code the user will never receive.
func (u *AccountUC) IssueOTP(ctx context.Context, email string) error {
	isValid, normalized := utils.ValidateEmail(email)
	if !isValid {
		return fmt.Errorf("%w: invalid email address", account.ErrValidation)
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	user, err := u.userRepo.GetUserByEmail(ctx, normalized)
	if err != nil && !errors.Is(err, account.ErrUserNotFound) {
		return err
	}

	if err := u.notifier.SendOTP(normalized, code); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	expiresAt := time.Now().Add(otpTTL)
	if user != nil {
		if err := u.userRepo.SetOTP(ctx, normalized, code, expiresAt); err != nil {
			return err
		}
	} else {
		otp := &models.OTP{
			Email:     normalized,
			Code:      code,
			ExpiresAt: expiresAt,
		}
		if err := u.otpRepo.StoreOTP(ctx, otp, otpTTL); err != nil {
			return err
		}
	}

	logger.Info("Issued OTP", logger.String("email", normalized))
	return nil
}

// VerifyOTP checks a code against the pending challenge for an email. The
// ephemeral tier is checked first; a successful verification is single use.
// A mismatch leaves the challenge in place so the user may retry until it
// expires.
func (u *AccountUC) VerifyOTP(ctx context.Context, email, code string) error {
	isValid, normalized := utils.ValidateEmail(email)
	if !isValid {
		return fmt.Errorf("%w: invalid email address", account.ErrValidation)
	}

	otp, err := u.otpRepo.GetOTP(ctx, normalized)
	if err == nil {
		if otp.Expired(time.Now()) {
			if delErr := u.otpRepo.DeleteOTP(ctx, normalized); delErr != nil {
				logger.Warn("Failed to delete expired OTP", logger.ErrorField(delErr))
			}
			return account.ErrOTPExpired
		}
		if otp.Code != code {
			return account.ErrOTPMismatch
		}
		return u.otpRepo.DeleteOTP(ctx, normalized)
	}
	if !errors.Is(err, account.ErrOTPNotFound) {
		return err
	}

	// No ephemeral entry, fall back to the challenge on the account row.
	if err := u.checkPersistedOTP(ctx, normalized, code); err != nil {
		return err
	}
	return u.userRepo.ClearOTP(ctx, normalized)
}

// checkPersistedOTP validates a code against the account-row challenge
// without consuming it.
func (u *AccountUC) checkPersistedOTP(ctx context.Context, email, code string) error {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrUserNotFound) {
			return account.ErrOTPNotFound
		}
		return err
	}
	if user.OTPCode == nil || user.OTPExpiresAt == nil {
		return account.ErrOTPNotFound
	}
	if time.Now().After(*user.OTPExpiresAt) {
		return account.ErrOTPExpired
	}
	if *user.OTPCode != code {
		return account.ErrOTPMismatch
	}
	return nil
}
