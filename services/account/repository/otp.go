package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/rakibhasan/coursehub/internal/pkg/constants"
	"github.com/rakibhasan/coursehub/internal/pkg/database"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/account"
)

// OTPRepo keeps pre-registration challenges in Redis. Keys carry a TTL so
// abandoned signups clean themselves up.
type OTPRepo struct {
	redisClient *database.RedisClient
}

// NewOTPRepo creates a new ephemeral OTP repository
func NewOTPRepo(redisClient *database.RedisClient) *OTPRepo {
	return &OTPRepo{redisClient: redisClient}
}

// StoreOTP stores a challenge under the email key, replacing any previous one.
func (r *OTPRepo) StoreOTP(ctx context.Context, otp *models.OTP, ttl time.Duration) error {
	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	key := fmt.Sprintf(constants.KeyPendingOTP, otp.Email)
	if err := r.redisClient.Client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store OTP in Redis: %w", err)
	}
	return nil
}

// GetOTP retrieves the pending challenge for an email. A missing key maps
// to account.ErrOTPNotFound.
func (r *OTPRepo) GetOTP(ctx context.Context, email string) (*models.OTP, error) {
	key := fmt.Sprintf(constants.KeyPendingOTP, email)
	data, err := r.redisClient.Client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, account.ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(data), &otp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP: %w", err)
	}
	return &otp, nil
}

// DeleteOTP removes the pending challenge for an email.
func (r *OTPRepo) DeleteOTP(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeyPendingOTP, email)
	if err := r.redisClient.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete OTP from Redis: %w", err)
	}
	return nil
}
