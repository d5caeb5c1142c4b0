package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakibhasan/coursehub/internal/pkg/database"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/account"
)

func setupUserRepoTest(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewUserRepo(database.NewPostgresClientFromDB(sqlxDB)), mock
}

func TestUserRepo_GetUserByEmail(t *testing.T) {
	repo, mock := setupUserRepoTest(t)

	userID := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "password_hash", "otp_code", "otp_expires_at", "created_at", "updated_at",
	}).AddRow(userID, "Rakib Hasan", "rakib@example.com", "hash", nil, nil, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, otp_code, otp_expires_at, created_at, updated_at")).
		WithArgs("rakib@example.com").
		WillReturnRows(rows)

	user, err := repo.GetUserByEmail(context.Background(), "rakib@example.com")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "Rakib Hasan", user.Name)
	assert.Nil(t, user.OTPCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetUserByEmail_NotFound(t *testing.T) {
	repo, mock := setupUserRepoTest(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email")).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, account.ErrUserNotFound)
}

func TestUserRepo_CreateUser(t *testing.T) {
	repo, mock := setupUserRepoTest(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	user := &models.User{
		Name:         "Rakib Hasan",
		Email:        "rakib@example.com",
		PasswordHash: "hash",
	}
	err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SetOTP_UnknownEmail(t *testing.T) {
	repo, mock := setupUserRepoTest(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetOTP(context.Background(), "nobody@example.com", "1234", time.Now().Add(5*time.Minute))
	assert.ErrorIs(t, err, account.ErrUserNotFound)
}

func TestUserRepo_GetUserCourses(t *testing.T) {
	repo, mock := setupUserRepoTest(t)

	userID := uuid.New()
	rows := sqlmock.NewRows([]string{"course_id"}).
		AddRow("go-basics").
		AddRow("sql-deep-dive")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT course_id FROM user_courses")).
		WithArgs(userID).
		WillReturnRows(rows)

	courses, err := repo.GetUserCourses(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"go-basics", "sql-deep-dive"}, courses)
}

func TestUserRepo_UpdatePassword_ClearsChallenge(t *testing.T) {
	repo, mock := setupUserRepoTest(t)

	mock.ExpectExec(regexp.QuoteMeta("SET password_hash = $1, otp_code = NULL, otp_expires_at = NULL")).
		WithArgs("new-hash", sqlmock.AnyArg(), "rakib@example.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePassword(context.Background(), "rakib@example.com", "new-hash")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
