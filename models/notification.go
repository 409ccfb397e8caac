package models

import "time"

// Notice kinds.
const (
	NoticeAssignment = "assignment"
	NoticePayment    = "payment"
	NoticeEnrollment = "enrollment"
)

// Notice is a delivered in-app notification.
type Notice struct {
	ID          string         `bson:"id" json:"id"`
	Kind        string         `bson:"kind" json:"kind"`
	RecipientID string         `bson:"recipient_id" json:"recipientId"`
	Message     string         `bson:"message" json:"message"`
	Data        map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	CreatedAt   time.Time      `bson:"created_at" json:"createdAt"`
}

// AssignmentNoticePayload is the queued task payload for a tutor assignment.
type AssignmentNoticePayload struct {
	TutorID   string    `json:"tutorId"`
	TutorName string    `json:"tutorName"`
	ClassID   string    `json:"classId"`
	ClassName string    `json:"className"`
	StartTime time.Time `json:"startTime"`
	Branch    string    `json:"branch,omitempty"`
}

// PaymentNoticePayload is the queued task payload for a confirmed payment.
type PaymentNoticePayload struct {
	ParentID  string `json:"parentId"`
	PaymentID string `json:"paymentId"`
	Amount    Money  `json:"amount"`
	Currency  string `json:"currency"`
	Method    string `json:"method"`
}
