package models

import "time"

// Payment statuses.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// Payment is one fee payment record in a parent's history.
type Payment struct {
	ID              string    `bson:"id" json:"id"`
	ParentID        string    `bson:"parent_id" json:"parentId"`
	StudentID       string    `bson:"student_id,omitempty" json:"studentId,omitempty"`
	ClassID         string    `bson:"class_id,omitempty" json:"classId,omitempty"`
	EnrollmentID    string    `bson:"enrollment_id,omitempty" json:"enrollmentId,omitempty"`
	Amount          Money     `bson:"amount" json:"amount"`
	Currency        string    `bson:"currency" json:"currency"`
	Method          string    `bson:"method" json:"method"` // "card" or "cash"
	Status          string    `bson:"status" json:"status"`
	PaymentIntentID string    `bson:"payment_intent_id,omitempty" json:"paymentIntentId,omitempty"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// PaymentIntentRequest is the payload for starting a card payment.
type PaymentIntentRequest struct {
	EnrollmentID string `json:"enrollmentId" binding:"required"`
	Description  string `json:"description"`
}

// PaymentIntentResponse returns the Stripe client secret for the front end.
type PaymentIntentResponse struct {
	PaymentID    string `json:"paymentId"`
	ClientSecret string `json:"clientSecret"`
	Amount       Money  `json:"amount"`
	Currency     string `json:"currency"`
}

// CashPaymentRequest records an over-the-counter payment (staff only).
type CashPaymentRequest struct {
	EnrollmentID string `json:"enrollmentId" binding:"required"`
	Amount       Money  `json:"amount" binding:"required"`
	Description  string `json:"description"`
}
