package payment

import (
	"errors"
	"fmt"

	"tutoria/config"
	classRepo "tutoria/database/repository/class"
	enrollmentRepo "tutoria/database/repository/enrollment"
	paymentRepo "tutoria/database/repository/payment"
	"tutoria/models"
	"tutoria/services/notification"
	"tutoria/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// ErrNotPaid is returned when confirming an intent Stripe has not settled.
var ErrNotPaid = errors.New("payment has not succeeded yet")

// PaymentService creates payment intents and keeps the payment history.
type PaymentService interface {
	// CreateIntent starts a card payment for an enrollment's monthly fee and
	// returns the Stripe client secret.
	CreateIntent(parentID string, req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error)
	// ConfirmIntent checks the intent with Stripe and marks the payment paid.
	ConfirmIntent(parentID, paymentID string) (*models.Payment, error)
	// RecordCashPayment records an over-the-counter payment (staff only).
	RecordCashPayment(req models.CashPaymentRequest) (*models.Payment, error)
	History(parentID string) ([]models.Payment, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Repo           paymentRepo.PaymentRepository
	EnrollmentRepo enrollmentRepo.EnrollmentRepository
	ClassRepo      classRepo.ClassRepository
	Notifier       notification.NotificationService
}

// CreateIntent starts a card payment for an enrollment's monthly fee.
func (s *DefaultPaymentService) CreateIntent(parentID string, req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error) {
	enrollment, class, err := s.loadBillingTargets(parentID, req.EnrollmentID)
	if err != nil {
		return nil, err
	}

	currency := config.AppConfig.PaymentCurrency
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(class.MonthlyFee)),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("enrollmentId", enrollment.ID)
	params.AddMetadata("classId", class.ID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	payment := &models.Payment{
		ID:              uuid.New().String(),
		ParentID:        parentID,
		StudentID:       enrollment.StudentID,
		ClassID:         class.ID,
		EnrollmentID:    enrollment.ID,
		Amount:          class.MonthlyFee,
		Currency:        currency,
		Method:          "card",
		Status:          models.PaymentPending,
		PaymentIntentID: intent.ID,
		Description:     req.Description,
	}
	if err := s.Repo.Create(payment); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("payment intent created",
		zap.String("paymentID", payment.ID), zap.String("intentID", intent.ID))

	return &models.PaymentIntentResponse{
		PaymentID:    payment.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       payment.Amount,
		Currency:     currency,
	}, nil
}

// ConfirmIntent checks the intent's status with Stripe and marks the payment
// record paid.
func (s *DefaultPaymentService) ConfirmIntent(parentID, paymentID string) (*models.Payment, error) {
	payment, err := s.lookup(paymentID)
	if err != nil {
		return nil, err
	}
	if payment.ParentID != parentID {
		return nil, fmt.Errorf("payment does not belong to this parent")
	}
	if payment.Status == models.PaymentPaid {
		return payment, nil
	}

	intent, err := paymentintent.Get(payment.PaymentIntentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment intent: %w", err)
	}
	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, ErrNotPaid
	}

	if err := s.Repo.SetStatus(payment.ID, models.PaymentPaid); err != nil {
		return nil, err
	}
	payment.Status = models.PaymentPaid

	if s.Notifier != nil {
		s.Notifier.NotifyPayment(models.PaymentNoticePayload{
			ParentID:  payment.ParentID,
			PaymentID: payment.ID,
			Amount:    payment.Amount,
			Currency:  payment.Currency,
			Method:    payment.Method,
		})
	}
	return payment, nil
}

// RecordCashPayment records an over-the-counter payment taken by staff.
func (s *DefaultPaymentService) RecordCashPayment(req models.CashPaymentRequest) (*models.Payment, error) {
	enrollment, class, err := s.loadEnrollment(req.EnrollmentID)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		ID:           uuid.New().String(),
		ParentID:     enrollment.ParentID,
		StudentID:    enrollment.StudentID,
		ClassID:      class.ID,
		EnrollmentID: enrollment.ID,
		Amount:       req.Amount,
		Currency:     config.AppConfig.PaymentCurrency,
		Method:       "cash",
		Status:       models.PaymentPaid,
		Description:  req.Description,
	}
	if err := s.Repo.Create(payment); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyPayment(models.PaymentNoticePayload{
			ParentID:  payment.ParentID,
			PaymentID: payment.ID,
			Amount:    payment.Amount,
			Currency:  payment.Currency,
			Method:    payment.Method,
		})
	}
	return payment, nil
}

// History returns a parent's payment records, newest first.
func (s *DefaultPaymentService) History(parentID string) ([]models.Payment, error) {
	return s.Repo.ListByParent(parentID)
}

// lookup resolves a payment by our ID or, failing that, by the Stripe intent
// ID. The checkout redirect only carries the intent ID.
func (s *DefaultPaymentService) lookup(id string) (*models.Payment, error) {
	payment, err := s.Repo.GetByID(id)
	if err == nil {
		return payment, nil
	}
	byIntent, intentErr := s.Repo.GetByIntentID(id)
	if intentErr != nil {
		return nil, intentErr
	}
	if byIntent == nil {
		return nil, err
	}
	return byIntent, nil
}

func (s *DefaultPaymentService) loadBillingTargets(parentID, enrollmentID string) (*models.Enrollment, *models.Class, error) {
	enrollment, class, err := s.loadEnrollment(enrollmentID)
	if err != nil {
		return nil, nil, err
	}
	if enrollment.ParentID != parentID {
		return nil, nil, fmt.Errorf("enrollment does not belong to this parent")
	}
	return enrollment, class, nil
}

func (s *DefaultPaymentService) loadEnrollment(enrollmentID string) (*models.Enrollment, *models.Class, error) {
	enrollment, err := s.EnrollmentRepo.GetByID(enrollmentID)
	if err != nil {
		return nil, nil, err
	}
	class, err := s.ClassRepo.GetByID(enrollment.ClassID)
	if err != nil {
		return nil, nil, err
	}
	return enrollment, class, nil
}
