package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/account"
	"github.com/rakibhasan/coursehub/services/account/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 1440,
			Issuer:     "coursehub",
		},
	}
}

func setupAccountUC(t *testing.T) (*AccountUC, *mocks.MockUserRepo, *mocks.MockOTPRepo, *mocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	userRepo := mocks.NewMockUserRepo(ctrl)
	otpRepo := mocks.NewMockOTPRepo(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	uc := NewAccountUC(userRepo, otpRepo, notifier, testConfig())
	return uc, userRepo, otpRepo, notifier
}

func TestAccountUC_Register_Success(t *testing.T) {
	uc, userRepo, _, _ := setupAccountUC(t)

	userID := uuid.New()
	userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			assert.Equal(t, "rakib@example.com", u.Email)
			assert.NotEmpty(t, u.PasswordHash)
			assert.NotEqual(t, "secret123", u.PasswordHash)
			u.ID = userID
			return nil
		})

	resp, err := uc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Rakib Hasan",
		Email:    "Rakib@Example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, userID.String(), resp.User.ID)
	assert.Equal(t, "rakib@example.com", resp.User.Email)
	assert.Equal(t, []string{}, resp.User.Courses)
}

func TestAccountUC_Register_DuplicateEmail(t *testing.T) {
	uc, userRepo, _, _ := setupAccountUC(t)

	userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(account.ErrEmailExists)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Rakib Hasan",
		Email:    "rakib@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, account.ErrEmailExists)
}

func TestAccountUC_Register_ShortPassword(t *testing.T) {
	uc, _, _, _ := setupAccountUC(t)

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Rakib Hasan",
		Email:    "rakib@example.com",
		Password: "abc",
	})

	assert.ErrorIs(t, err, account.ErrValidation)
}

func TestAccountUC_Login_Success(t *testing.T) {
	uc, userRepo, _, _ := setupAccountUC(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	userID := uuid.New()
	user := &models.User{
		ID:           userID,
		Name:         "Rakib Hasan",
		Email:        "rakib@example.com",
		PasswordHash: string(hash),
	}

	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "rakib@example.com").
		Return(user, nil)
	userRepo.EXPECT().
		GetUserCourses(gomock.Any(), userID).
		Return([]string{"go-basics"}, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "rakib@example.com",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, []string{"go-basics"}, resp.User.Courses)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestAccountUC_Login_WrongPassword(t *testing.T) {
	uc, userRepo, _, _ := setupAccountUC(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "rakib@example.com").
		Return(&models.User{Email: "rakib@example.com", PasswordHash: string(hash)}, nil)

	_, err = uc.Login(context.Background(), &models.LoginRequest{
		Email:    "rakib@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestAccountUC_Login_UnknownEmail(t *testing.T) {
	uc, userRepo, _, _ := setupAccountUC(t)

	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, account.ErrUserNotFound)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	// unknown email and bad password look the same to the caller
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestAccountUC_GetUserCourses(t *testing.T) {
	uc, userRepo, _, _ := setupAccountUC(t)

	userID := uuid.New()
	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), "rakib@example.com").
		Return(&models.User{ID: userID, Email: "rakib@example.com"}, nil)
	userRepo.EXPECT().
		GetUserCourses(gomock.Any(), userID).
		Return([]string{"go-basics", "sql-deep-dive"}, nil)

	courses, err := uc.GetUserCourses(context.Background(), "rakib@example.com")

	assert.NoError(t, err)
	assert.Equal(t, []string{"go-basics", "sql-deep-dive"}, courses)
}
