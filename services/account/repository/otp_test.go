package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakibhasan/coursehub/internal/pkg/constants"
	"github.com/rakibhasan/coursehub/internal/pkg/database"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/account"
)

func setupOTPRepoTest(t *testing.T) (*OTPRepo, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewOTPRepo(&database.RedisClient{Client: client})
	return repo, mr
}

func TestOTPRepo_StoreOTP(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)

	otp := &models.OTP{
		Email:     "new@example.com",
		Code:      "1234",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}

	err := repo.StoreOTP(context.Background(), otp, 5*time.Minute)
	assert.NoError(t, err)

	key := fmt.Sprintf(constants.KeyPendingOTP, otp.Email)
	val, err := mr.Get(key)
	assert.NoError(t, err)

	var stored models.OTP
	require.NoError(t, json.Unmarshal([]byte(val), &stored))
	assert.Equal(t, "1234", stored.Code)

	ttl := mr.TTL(key)
	assert.Equal(t, 5*time.Minute, ttl)
}

func TestOTPRepo_GetOTP(t *testing.T) {
	repo, _ := setupOTPRepoTest(t)

	otp := &models.OTP{
		Email:     "new@example.com",
		Code:      "1234",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	require.NoError(t, repo.StoreOTP(context.Background(), otp, 5*time.Minute))

	got, err := repo.GetOTP(context.Background(), "new@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "1234", got.Code)
	assert.Equal(t, "new@example.com", got.Email)
}

func TestOTPRepo_GetOTP_Missing(t *testing.T) {
	repo, _ := setupOTPRepoTest(t)

	_, err := repo.GetOTP(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, account.ErrOTPNotFound)
}

func TestOTPRepo_GetOTP_ExpiresWithKey(t *testing.T) {
	repo, mr := setupOTPRepoTest(t)

	otp := &models.OTP{
		Email:     "new@example.com",
		Code:      "1234",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	require.NoError(t, repo.StoreOTP(context.Background(), otp, 5*time.Minute))

	mr.FastForward(6 * time.Minute)

	_, err := repo.GetOTP(context.Background(), "new@example.com")
	assert.ErrorIs(t, err, account.ErrOTPNotFound)
}

func TestOTPRepo_StoreOTP_OverwritesPrevious(t *testing.T) {
	repo, _ := setupOTPRepoTest(t)

	first := &models.OTP{Email: "new@example.com", Code: "1111", ExpiresAt: time.Now().Add(5 * time.Minute)}
	second := &models.OTP{Email: "new@example.com", Code: "2222", ExpiresAt: time.Now().Add(5 * time.Minute)}

	require.NoError(t, repo.StoreOTP(context.Background(), first, 5*time.Minute))
	require.NoError(t, repo.StoreOTP(context.Background(), second, 5*time.Minute))

	got, err := repo.GetOTP(context.Background(), "new@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "2222", got.Code)
}

func TestOTPRepo_DeleteOTP(t *testing.T) {
	repo, _ := setupOTPRepoTest(t)

	otp := &models.OTP{Email: "new@example.com", Code: "1234", ExpiresAt: time.Now().Add(5 * time.Minute)}
	require.NoError(t, repo.StoreOTP(context.Background(), otp, 5*time.Minute))
	require.NoError(t, repo.DeleteOTP(context.Background(), "new@example.com"))

	_, err := repo.GetOTP(context.Background(), "new@example.com")
	assert.ErrorIs(t, err, account.ErrOTPNotFound)
}
