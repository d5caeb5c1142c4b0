package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rakibhasan/coursehub/internal/pkg/database"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/payment"
)

// PaymentRepo persists payment submissions in Postgres.
type PaymentRepo struct {
	db *database.PostgresClient
}

// NewPaymentRepo creates a new payment repository
func NewPaymentRepo(db *database.PostgresClient) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// CreatePayment inserts a new payment submission.
func (r *PaymentRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()

	query := `
		INSERT INTO payments (id, name, email, phone, course_id, course_name,
			payment_method, txn_id, amount, status, created_at)
		VALUES (:id, :name, :email, :phone, :course_id, :course_name,
			:payment_method, :txn_id, :amount, :status, :created_at)
	`
	if _, err := r.db.GetDB().NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// GetPayment retrieves a payment by ID.
func (r *PaymentRepo) GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	query := `
		SELECT id, name, email, phone, course_id, course_name,
			payment_method, txn_id, amount, status, created_at
		FROM payments
		WHERE id = $1
	`

	var p models.Payment
	err := r.db.GetDB().GetContext(ctx, &p, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &p, nil
}

// UpdateStatus sets the payment status and returns the updated row.
func (r *PaymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Payment, error) {
	query := `
		UPDATE payments
		SET status = $1
		WHERE id = $2
		RETURNING id, name, email, phone, course_id, course_name,
			payment_method, txn_id, amount, status, created_at
	`

	var p models.Payment
	err := r.db.GetDB().GetContext(ctx, &p, query, status, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	return &p, nil
}

// ListPayments returns a page of payments, newest first, optionally filtered
// by status and a case-insensitive search over name, email and txn id.
func (r *PaymentRepo) ListPayments(ctx context.Context, filter models.PaymentFilter) (*models.PaymentPage, error) {
	where := []string{}
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR txn_id ILIKE $%d)", n, n, n))
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = "WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM payments %s", whereClause)
	if err := r.db.GetDB().GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(`
		SELECT id, name, email, phone, course_id, course_name,
			payment_method, txn_id, amount, status, created_at
		FROM payments %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)-1, len(args))

	payments := []models.Payment{}
	if err := r.db.GetDB().SelectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	return &models.PaymentPage{
		Payments:    payments,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}
