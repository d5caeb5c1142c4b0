package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/account"
)

func TestAccountUC_IssueResetOTP_UnknownEmail(t *testing.T) {
	uc, userRepo, _, _ := setupAccountUC(t)

	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, account.ErrUserNotFound)

	err := uc.IssueResetOTP(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, account.ErrUserNotFound)
}

func TestAccountUC_IssueResetOTP_SendThenPersist(t *testing.T) {
	uc, userRepo, _, notifier := setupAccountUC(t)

	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "rakib@example.com").
		Return(&models.User{Email: "rakib@example.com"}, nil)

	var sentCode string
	notifier.EXPECT().
		SendPasswordResetOTP("rakib@example.com", gomock.Any()).
		DoAndReturn(func(to, code string) error {
			sentCode = code
			return nil
		})
	userRepo.EXPECT().
		SetOTP(gomock.Any(), "rakib@example.com", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, email, code string, expiresAt time.Time) error {
			assert.Equal(t, sentCode, code)
			return nil
		})

	err := uc.IssueResetOTP(context.Background(), "rakib@example.com")
	assert.NoError(t, err)
}

func TestAccountUC_VerifyResetOTP_DoesNotConsume(t *testing.T) {
	uc, userRepo, _, _ := setupAccountUC(t)

	code := "1234"
	expiresAt := time.Now().Add(time.Minute)
	user := &models.User{
		Email:        "rakib@example.com",
		OTPCode:      &code,
		OTPExpiresAt: &expiresAt,
	}

	// checked twice, never cleared
	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "rakib@example.com").
		Return(user, nil).
		Times(2)

	assert.NoError(t, uc.VerifyResetOTP(context.Background(), "rakib@example.com", "1234"))
	assert.NoError(t, uc.VerifyResetOTP(context.Background(), "rakib@example.com", "1234"))
}

func TestAccountUC_ResetPassword_Success(t *testing.T) {
	uc, userRepo, _, _ := setupAccountUC(t)

	code := "1234"
	expiresAt := time.Now().Add(time.Minute)

	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "rakib@example.com").
		Return(&models.User{
			Email:        "rakib@example.com",
			OTPCode:      &code,
			OTPExpiresAt: &expiresAt,
		}, nil)
	userRepo.EXPECT().
		UpdatePassword(gomock.Any(), "rakib@example.com", gomock.Any()).
		DoAndReturn(func(ctx context.Context, email, hash string) error {
			assert.NotEqual(t, "new-password", hash)
			return nil
		})

	err := uc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Email:       "rakib@example.com",
		OTP:         "1234",
		NewPassword: "new-password",
	})
	assert.NoError(t, err)
}

func TestAccountUC_ResetPassword_WrongCode(t *testing.T) {
	uc, userRepo, _, _ := setupAccountUC(t)

	code := "1234"
	expiresAt := time.Now().Add(time.Minute)

	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "rakib@example.com").
		Return(&models.User{
			Email:        "rakib@example.com",
			OTPCode:      &code,
			OTPExpiresAt: &expiresAt,
		}, nil)

	err := uc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Email:       "rakib@example.com",
		OTP:         "9999",
		NewPassword: "new-password",
	})
	assert.ErrorIs(t, err, account.ErrOTPMismatch)
}

func TestAccountUC_ResetPassword_ExpiredCode(t *testing.T) {
	uc, userRepo, _, _ := setupAccountUC(t)

	code := "1234"
	expiresAt := time.Now().Add(-time.Minute)

	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "rakib@example.com").
		Return(&models.User{
			Email:        "rakib@example.com",
			OTPCode:      &code,
			OTPExpiresAt: &expiresAt,
		}, nil)

	err := uc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Email:       "rakib@example.com",
		OTP:         "1234",
		NewPassword: "new-password",
	})
	assert.ErrorIs(t, err, account.ErrOTPExpired)
}

func TestAccountUC_ResetPassword_ShortPassword(t *testing.T) {
	uc, _, _, _ := setupAccountUC(t)

	err := uc.ResetPassword(context.Background(), &models.ResetPasswordRequest{
		Email:       "rakib@example.com",
		OTP:         "1234",
		NewPassword: "abc",
	})
	assert.ErrorIs(t, err, account.ErrValidation)
}
