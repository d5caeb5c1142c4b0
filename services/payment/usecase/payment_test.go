package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"github.com/rakibhasan/coursehub/services/payment"
	"github.com/rakibhasan/coursehub/services/payment/mocks"
)

func setupPaymentUC(t *testing.T) (*PaymentUC, *mocks.MockPaymentRepo, *mocks.MockGrantRepo, *mocks.MockPaymentGW, *mocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	paymentRepo := mocks.NewMockPaymentRepo(ctrl)
	grantRepo := mocks.NewMockGrantRepo(ctrl)
	gw := mocks.NewMockPaymentGW(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	uc := NewPaymentUC(paymentRepo, grantRepo, gw, notifier, &models.Config{})
	return uc, paymentRepo, grantRepo, gw, notifier
}

func validSubmission() *models.SubmitPaymentRequest {
	return &models.SubmitPaymentRequest{
		Name:          "Rakib Hasan",
		Email:         "rakib@example.com",
		Phone:         "01712345678",
		CourseID:      "go-basics",
		CourseName:    "Go Basics",
		PaymentMethod: "bkash",
		TxnID:         "TXN123",
		Amount:        1500,
	}
}

func TestPaymentUC_SubmitPayment_Success(t *testing.T) {
	uc, paymentRepo, _, _, _ := setupPaymentUC(t)

	paymentRepo.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p *models.Payment) error {
			assert.Equal(t, models.PaymentStatusPending, p.Status)
			assert.Equal(t, "rakib@example.com", p.Email)
			p.ID = uuid.New()
			return nil
		})

	p, err := uc.SubmitPayment(context.Background(), validSubmission())
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, p.Status)
}

func TestPaymentUC_SubmitPayment_Validation(t *testing.T) {
	uc, _, _, _, _ := setupPaymentUC(t)

	testCases := []struct {
		name   string
		mutate func(*models.SubmitPaymentRequest)
	}{
		{"missing name", func(r *models.SubmitPaymentRequest) { r.Name = "" }},
		{"bad email", func(r *models.SubmitPaymentRequest) { r.Email = "not-an-email" }},
		{"missing phone", func(r *models.SubmitPaymentRequest) { r.Phone = "" }},
		{"missing course", func(r *models.SubmitPaymentRequest) { r.CourseID = "" }},
		{"unknown method", func(r *models.SubmitPaymentRequest) { r.PaymentMethod = "paypal" }},
		{"missing txn", func(r *models.SubmitPaymentRequest) { r.TxnID = "" }},
		{"zero amount", func(r *models.SubmitPaymentRequest) { r.Amount = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubmission()
			tc.mutate(req)

			// no CreatePayment expectation: nothing may be persisted
			_, err := uc.SubmitPayment(context.Background(), req)
			assert.ErrorIs(t, err, payment.ErrValidation)
		})
	}
}

func approvedFixture(id uuid.UUID, status string) *models.Payment {
	return &models.Payment{
		ID:         id,
		Name:       "Rakib Hasan",
		Email:      "rakib@example.com",
		CourseID:   "go-basics",
		CourseName: "Go Basics",
		Status:     status,
		CreatedAt:  time.Now(),
	}
}

func TestPaymentUC_SetPaymentStatus_ApprovalGrantsAndBroadcasts(t *testing.T) {
	uc, paymentRepo, grantRepo, gw, notifier := setupPaymentUC(t)

	id := uuid.New()
	paymentRepo.EXPECT().
		GetPayment(gomock.Any(), id).
		Return(approvedFixture(id, models.PaymentStatusPending), nil)
	paymentRepo.EXPECT().
		UpdateStatus(gomock.Any(), id, models.PaymentStatusApproved).
		Return(approvedFixture(id, models.PaymentStatusApproved), nil)
	grantRepo.EXPECT().
		GrantCourse(gomock.Any(), "rakib@example.com", "Rakib Hasan", "go-basics").
		Return(nil)
	gw.EXPECT().
		PublishCourseGranted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *models.CourseAccessEvent) error {
			assert.Equal(t, "courseAccessUpdated", event.Type)
			assert.Equal(t, "rakib@example.com", event.Email)
			assert.Equal(t, "go-basics", event.CourseID)
			assert.Equal(t, id.String(), event.PaymentID)
			return nil
		})
	notifier.EXPECT().
		SendCourseAccess("rakib@example.com", "Rakib Hasan", "Go Basics").
		Return(nil)

	p, err := uc.SetPaymentStatus(context.Background(), id.String(), models.PaymentStatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusApproved, p.Status)
}

func TestPaymentUC_SetPaymentStatus_ReapprovalRerunsGrant(t *testing.T) {
	uc, paymentRepo, grantRepo, gw, notifier := setupPaymentUC(t)

	id := uuid.New()
	paymentRepo.EXPECT().
		GetPayment(gomock.Any(), id).
		Return(approvedFixture(id, models.PaymentStatusApproved), nil)
	paymentRepo.EXPECT().
		UpdateStatus(gomock.Any(), id, models.PaymentStatusApproved).
		Return(approvedFixture(id, models.PaymentStatusApproved), nil)
	grantRepo.EXPECT().
		GrantCourse(gomock.Any(), "rakib@example.com", "Rakib Hasan", "go-basics").
		Return(nil)
	gw.EXPECT().
		PublishCourseGranted(gomock.Any(), gomock.Any()).
		Return(nil)
	notifier.EXPECT().
		SendCourseAccess(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := uc.SetPaymentStatus(context.Background(), id.String(), models.PaymentStatusApproved)
	assert.NoError(t, err)
}

func TestPaymentUC_SetPaymentStatus_TerminalTransitionsRejected(t *testing.T) {
	testCases := []struct {
		from, to string
	}{
		{models.PaymentStatusApproved, models.PaymentStatusRejected},
		{models.PaymentStatusApproved, models.PaymentStatusPending},
		{models.PaymentStatusRejected, models.PaymentStatusApproved},
		{models.PaymentStatusRejected, models.PaymentStatusPending},
	}

	for _, tc := range testCases {
		t.Run(tc.from+"_to_"+tc.to, func(t *testing.T) {
			uc, paymentRepo, _, _, _ := setupPaymentUC(t)

			id := uuid.New()
			paymentRepo.EXPECT().
				GetPayment(gomock.Any(), id).
				Return(approvedFixture(id, tc.from), nil)

			_, err := uc.SetPaymentStatus(context.Background(), id.String(), tc.to)
			assert.ErrorIs(t, err, payment.ErrIllegalTransition)
			assert.Contains(t, err.Error(), tc.from)
			assert.Contains(t, err.Error(), tc.to)
		})
	}
}

func TestPaymentUC_SetPaymentStatus_UnknownStatus(t *testing.T) {
	uc, _, _, _, _ := setupPaymentUC(t)

	_, err := uc.SetPaymentStatus(context.Background(), uuid.New().String(), "refunded")
	assert.ErrorIs(t, err, payment.ErrInvalidStatus)
}

func TestPaymentUC_SetPaymentStatus_UnknownID(t *testing.T) {
	uc, paymentRepo, _, _, _ := setupPaymentUC(t)

	id := uuid.New()
	paymentRepo.EXPECT().
		GetPayment(gomock.Any(), id).
		Return(nil, payment.ErrPaymentNotFound)

	_, err := uc.SetPaymentStatus(context.Background(), id.String(), models.PaymentStatusApproved)
	assert.ErrorIs(t, err, payment.ErrPaymentNotFound)
}

func TestPaymentUC_SetPaymentStatus_GrantFailureFailsCall(t *testing.T) {
	uc, paymentRepo, grantRepo, _, _ := setupPaymentUC(t)

	id := uuid.New()
	paymentRepo.EXPECT().
		GetPayment(gomock.Any(), id).
		Return(approvedFixture(id, models.PaymentStatusPending), nil)
	paymentRepo.EXPECT().
		UpdateStatus(gomock.Any(), id, models.PaymentStatusApproved).
		Return(approvedFixture(id, models.PaymentStatusApproved), nil)
	grantRepo.EXPECT().
		GrantCourse(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("db down"))

	_, err := uc.SetPaymentStatus(context.Background(), id.String(), models.PaymentStatusApproved)
	assert.Error(t, err)
}

func TestPaymentUC_SetPaymentStatus_BroadcastAndEmailFailuresSwallowed(t *testing.T) {
	uc, paymentRepo, grantRepo, gw, notifier := setupPaymentUC(t)

	id := uuid.New()
	paymentRepo.EXPECT().
		GetPayment(gomock.Any(), id).
		Return(approvedFixture(id, models.PaymentStatusPending), nil)
	paymentRepo.EXPECT().
		UpdateStatus(gomock.Any(), id, models.PaymentStatusApproved).
		Return(approvedFixture(id, models.PaymentStatusApproved), nil)
	grantRepo.EXPECT().
		GrantCourse(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	gw.EXPECT().
		PublishCourseGranted(gomock.Any(), gomock.Any()).
		Return(errors.New("nats down"))
	notifier.EXPECT().
		SendCourseAccess(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp down"))

	p, err := uc.SetPaymentStatus(context.Background(), id.String(), models.PaymentStatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusApproved, p.Status)
}

func TestPaymentUC_SetPaymentStatus_RejectionSkipsGrant(t *testing.T) {
	uc, paymentRepo, _, _, _ := setupPaymentUC(t)

	id := uuid.New()
	paymentRepo.EXPECT().
		GetPayment(gomock.Any(), id).
		Return(approvedFixture(id, models.PaymentStatusPending), nil)
	paymentRepo.EXPECT().
		UpdateStatus(gomock.Any(), id, models.PaymentStatusRejected).
		Return(approvedFixture(id, models.PaymentStatusRejected), nil)

	// no grant, broadcast or email expectations
	p, err := uc.SetPaymentStatus(context.Background(), id.String(), models.PaymentStatusRejected)
	assert.NoError(t, err)
	assert.Equal(t, models.PaymentStatusRejected, p.Status)
}
