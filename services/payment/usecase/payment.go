package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rakibhasan/coursehub/internal/pkg/constants"
	"github.com/rakibhasan/coursehub/internal/pkg/logger"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/internal/utils"
	"github.com/rakibhasan/coursehub/services/payment"
)

// SubmitPayment validates and records a payment submission. Nothing is
// granted here; access follows only from an approval.
func (u *PaymentUC) SubmitPayment(ctx context.Context, req *models.SubmitPaymentRequest) (*models.Payment, error) {
	if err := validateSubmission(req); err != nil {
		return nil, err
	}
	_, email := utils.ValidateEmail(req.Email)

	p := &models.Payment{
		Name:          strings.TrimSpace(req.Name),
		Email:         email,
		Phone:         strings.TrimSpace(req.Phone),
		CourseID:      req.CourseID,
		CourseName:    req.CourseName,
		PaymentMethod: req.PaymentMethod,
		TxnID:         req.TxnID,
		Amount:        req.Amount,
		Status:        models.PaymentStatusPending,
	}
	if err := u.paymentRepo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("Payment submitted",
		logger.String("payment_id", p.ID.String()),
		logger.String("email", p.Email),
		logger.String("course_id", p.CourseID))
	return p, nil
}

func validateSubmission(req *models.SubmitPaymentRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", payment.ErrValidation)
	}
	if isValid, _ := utils.ValidateEmail(req.Email); !isValid {
		return fmt.Errorf("%w: invalid email address", payment.ErrValidation)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", payment.ErrValidation)
	}
	if req.CourseID == "" {
		return fmt.Errorf("%w: courseId is required", payment.ErrValidation)
	}
	if !models.ValidPaymentMethod(req.PaymentMethod) {
		return fmt.Errorf("%w: unsupported payment method %q", payment.ErrValidation, req.PaymentMethod)
	}
	if req.TxnID == "" {
		return fmt.Errorf("%w: txnId is required", payment.ErrValidation)
	}
	if req.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", payment.ErrValidation)
	}
	return nil
}

// GetPayment retrieves a single payment by ID.
func (u *PaymentUC) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	paymentID, err := uuid.Parse(id)
	if err != nil {
		return nil, payment.ErrPaymentNotFound
	}
	return u.paymentRepo.GetPayment(ctx, paymentID)
}

// ListPayments returns a filtered page of payments.
func (u *PaymentUC) ListPayments(ctx context.Context, filter models.PaymentFilter) (*models.PaymentPage, error) {
	if filter.Status != "" && !models.ValidPaymentStatus(filter.Status) {
		return nil, fmt.Errorf("%w: %s", payment.ErrInvalidStatus, filter.Status)
	}
	return u.paymentRepo.ListPayments(ctx, filter)
}

// SetPaymentStatus moves a payment through its status machine. Pending may
// go anywhere; approved and rejected are terminal except for repeating the
// same status. Each transition to approved re-runs the grant, which is
// idempotent, and re-emits the broadcast.
func (u *PaymentUC) SetPaymentStatus(ctx context.Context, id, status string) (*models.Payment, error) {
	if !models.ValidPaymentStatus(status) {
		return nil, fmt.Errorf("%w: %s", payment.ErrInvalidStatus, status)
	}
	paymentID, err := uuid.Parse(id)
	if err != nil {
		return nil, payment.ErrPaymentNotFound
	}

	current, err := u.paymentRepo.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !legalTransition(current.Status, status) {
		return nil, fmt.Errorf("%w: %s to %s", payment.ErrIllegalTransition, current.Status, status)
	}

	updated, err := u.paymentRepo.UpdateStatus(ctx, paymentID, status)
	if err != nil {
		return nil, err
	}

	if status == models.PaymentStatusApproved {
		if err := u.grantAccess(ctx, updated); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

func legalTransition(from, to string) bool {
	return from == to || from == models.PaymentStatusPending
}

// grantAccess performs the approval side effects. The grant itself is the
// core and its failure fails the call; the broadcast and the email are
// best effort.
func (u *PaymentUC) grantAccess(ctx context.Context, p *models.Payment) error {
	if err := u.grantRepo.GrantCourse(ctx, p.Email, p.Name, p.CourseID); err != nil {
		return fmt.Errorf("failed to grant course access: %w", err)
	}

	event := &models.CourseAccessEvent{
		Type:       constants.EventCourseAccessUpdated,
		Email:      p.Email,
		CourseID:   p.CourseID,
		CourseName: p.CourseName,
		PaymentID:  p.ID.String(),
		UserName:   p.Name,
		Timestamp:  time.Now(),
	}
	if err := u.paymentGW.PublishCourseGranted(ctx, event); err != nil {
		logger.Warn("Course access broadcast failed",
			logger.String("payment_id", p.ID.String()),
			logger.ErrorField(err))
	}

	if err := u.notifier.SendCourseAccess(p.Email, p.Name, p.CourseName); err != nil {
		logger.Warn("Course access email failed",
			logger.String("payment_id", p.ID.String()),
			logger.String("email", p.Email),
			logger.ErrorField(err))
	}

	logger.Info("Course access granted",
		logger.String("payment_id", p.ID.String()),
		logger.String("email", p.Email),
		logger.String("course_id", p.CourseID))
	return nil
}
