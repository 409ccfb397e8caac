package notification

import (
	"tutoria/config"
	"tutoria/models"
	"tutoria/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NotificationService enqueues notices for asynchronous delivery. Enqueueing
// is best-effort: a queue failure is logged, never surfaced to the caller,
// since the triggering operation has already committed.
type NotificationService interface {
	NotifyAssignment(payload models.AssignmentNoticePayload)
	NotifyPayment(payload models.PaymentNoticePayload)
}

// DefaultNotificationService is the production implementation backed by asynq.
type DefaultNotificationService struct {
	client *asynq.Client
}

// NewNotificationService creates a notification service using the configured
// Redis queue.
func NewNotificationService() *DefaultNotificationService {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &DefaultNotificationService{client: client}
}

func (s *DefaultNotificationService) NotifyAssignment(payload models.AssignmentNoticePayload) {
	task, err := NewAssignmentNoticeTask(payload)
	if err != nil {
		utils.GetLogger().Error("failed to build assignment notice task", zap.Error(err))
		return
	}
	s.enqueue(task, "assignment", payload.TutorID)
}

func (s *DefaultNotificationService) NotifyPayment(payload models.PaymentNoticePayload) {
	task, err := NewPaymentNoticeTask(payload)
	if err != nil {
		utils.GetLogger().Error("failed to build payment notice task", zap.Error(err))
		return
	}
	s.enqueue(task, "payment", payload.ParentID)
}

func (s *DefaultNotificationService) enqueue(task *asynq.Task, kind, recipient string) {
	info, err := s.client.Enqueue(task, asynq.MaxRetry(3))
	if err != nil {
		utils.GetLogger().Error("failed to enqueue notice",
			zap.String("kind", kind), zap.String("recipient", recipient), zap.Error(err))
		return
	}
	utils.GetLogger().Debug("notice enqueued",
		zap.String("kind", kind), zap.String("taskID", info.ID))
}
