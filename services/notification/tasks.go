package notification

import (
	"encoding/json"

	"tutoria/models"

	"github.com/hibiken/asynq"
)

// Task type names shared between the enqueueing service and the worker.
const (
	TypeAssignmentNotice = "notice:assignment"
	TypePaymentNotice    = "notice:payment"
)

// NewAssignmentNoticeTask builds the queued task for a tutor assignment.
func NewAssignmentNoticeTask(payload models.AssignmentNoticePayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAssignmentNotice, b), nil
}

// NewPaymentNoticeTask builds the queued task for a confirmed payment.
func NewPaymentNoticeTask(payload models.PaymentNoticePayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePaymentNotice, b), nil
}
