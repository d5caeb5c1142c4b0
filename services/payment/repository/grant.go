package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rakibhasan/coursehub/internal/pkg/database"
)

// GrantRepo hands out course access rows. Approval must work whether or not
// the payer already registered, so the account is created on demand with an
// empty password hash; the payer sets a real one later through the OTP and
// reset flow.
type GrantRepo struct {
	db *database.PostgresClient
}

// NewGrantRepo creates a new grant repository
func NewGrantRepo(db *database.PostgresClient) *GrantRepo {
	return &GrantRepo{db: db}
}

// GrantCourse finds or creates the account for email and adds courseID to
// its granted set. Re-granting an already granted course is a no-op.
func (r *GrantRepo) GrantCourse(ctx context.Context, email, name, courseID string) error {
	tx, err := r.db.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	insertUser := `
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, '', $4, $4)
		ON CONFLICT (email) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, insertUser, uuid.New(), name, email, now); err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	var userID uuid.UUID
	if err := tx.GetContext(ctx, &userID, `SELECT id FROM users WHERE email = $1`, email); err != nil {
		return fmt.Errorf("failed to resolve user: %w", err)
	}

	insertGrant := `
		INSERT INTO user_courses (user_id, course_id, granted_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, course_id) DO NOTHING
	`
	if _, err := tx.ExecContext(ctx, insertGrant, userID, courseID, now); err != nil {
		return fmt.Errorf("failed to grant course: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit grant: %w", err)
	}
	return nil
}
