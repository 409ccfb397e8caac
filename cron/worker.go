package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"tutoria/config"
	noticeRepo "tutoria/database/repository/notice"
	"tutoria/models"
	"tutoria/services/notification"
	"tutoria/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitNoticeWorker runs the async notice worker in the background. Delivered
// notices land in the notices collection where clients poll for them.
func InitNoticeWorker(notices noticeRepo.NoticeRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeAssignmentNotice, handleAssignmentNotice(notices))
	mux.HandleFunc(notification.TypePaymentNotice, handlePaymentNotice(notices))

	go func() {
		log.Println("[NoticeWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NoticeWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NoticeWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleAssignmentNotice(notices noticeRepo.NoticeRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.AssignmentNoticePayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("bad assignment notice payload: %w", err)
		}

		msg := fmt.Sprintf("You have been assigned to %s on %s",
			payload.ClassName, payload.StartTime.Format("Mon 2 Jan, 15:04"))
		if payload.Branch != "" {
			msg += " at " + payload.Branch
		}

		notice := &models.Notice{
			ID:          uuid.New().String(),
			Kind:        models.NoticeAssignment,
			RecipientID: payload.TutorID,
			Message:     msg,
			Data: map[string]any{
				"classId": payload.ClassID,
			},
		}
		if err := notices.Create(notice); err != nil {
			return err
		}

		utils.GetLogger().Info("assignment notice delivered",
			zap.String("tutorID", payload.TutorID), zap.String("classID", payload.ClassID))
		return nil
	}
}

func handlePaymentNotice(notices noticeRepo.NoticeRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.PaymentNoticePayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("bad payment notice payload: %w", err)
		}

		notice := &models.Notice{
			ID:          uuid.New().String(),
			Kind:        models.NoticePayment,
			RecipientID: payload.ParentID,
			Message: fmt.Sprintf("Payment of %s %s via %s received, thank you.",
				payload.Currency, payload.Amount.Display(), payload.Method),
			Data: map[string]any{
				"paymentId": payload.PaymentID,
			},
		}
		if err := notices.Create(notice); err != nil {
			return err
		}

		utils.GetLogger().Info("payment notice delivered",
			zap.String("parentID", payload.ParentID), zap.String("paymentID", payload.PaymentID))
		return nil
	}
}
