package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rakibhasan/coursehub/internal/pkg/database"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/account"
)

// UserRepo persists accounts and their course access in Postgres.
type UserRepo struct {
	db *database.PostgresClient
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.PostgresClient) *UserRepo {
	return &UserRepo{db: db}
}

// CreateUser inserts a new account row. The caller is expected to have
// hashed the password already.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES (:id, :name, :email, :password_hash, :created_at, :updated_at)
	`
	_, err := r.db.GetDB().NamedExecContext(ctx, query, user)
	if err != nil {
		if isUniqueViolation(err) {
			return account.ErrEmailExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves an account by its normalized email.
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, otp_code, otp_expires_at, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.GetDB().GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserCourses returns the course IDs the user has been granted, oldest first.
func (r *UserRepo) GetUserCourses(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `
		SELECT course_id FROM user_courses
		WHERE user_id = $1
		ORDER BY granted_at
	`

	courses := []string{}
	if err := r.db.GetDB().SelectContext(ctx, &courses, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get user courses: %w", err)
	}
	return courses, nil
}

// SetOTP stores a challenge on the account row, replacing any previous one.
func (r *UserRepo) SetOTP(ctx context.Context, email, code string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET otp_code = $1, otp_expires_at = $2, updated_at = $3
		WHERE email = $4
	`

	res, err := r.db.GetDB().ExecContext(ctx, query, code, expiresAt, time.Now(), email)
	if err != nil {
		return fmt.Errorf("failed to set OTP: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return account.ErrUserNotFound
	}
	return nil
}

// ClearOTP removes any pending challenge from the account row.
func (r *UserRepo) ClearOTP(ctx context.Context, email string) error {
	query := `
		UPDATE users
		SET otp_code = NULL, otp_expires_at = NULL, updated_at = $1
		WHERE email = $2
	`

	if _, err := r.db.GetDB().ExecContext(ctx, query, time.Now(), email); err != nil {
		return fmt.Errorf("failed to clear OTP: %w", err)
	}
	return nil
}

// UpdatePassword replaces the password hash and consumes the pending
// challenge in the same statement.
func (r *UserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1, otp_code = NULL, otp_expires_at = NULL, updated_at = $2
		WHERE email = $3
	`

	res, err := r.db.GetDB().ExecContext(ctx, query, passwordHash, time.Now(), email)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return account.ErrUserNotFound
	}
	return nil
}
