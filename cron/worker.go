package cron

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"courtside/config"
	bookingRepo "courtside/database/repository/booking"
	"courtside/services/booking"
	"courtside/services/tasks"
	"courtside/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const sweepInterval = 10 * time.Minute

// InitReconcileWorker runs the async worker in background. It processes
// delayed payment:reconcile tasks and periodically sweeps for pending
// attempts the task queue missed.
func InitReconcileWorker(svc booking.BookingService, repo bookingRepo.BookingRepository) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
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
	mux.HandleFunc(tasks.TypePaymentReconcile, handleReconcileTask(svc))

	go func() {
		logger.Info("reconcile worker starting")
		if err := srv.Run(mux); err != nil {
			logger.Error("reconcile worker stopped", zap.Error(err))
		}
	}()

	go sweepStaleAttempts(svc, repo)
}

// handleReconcileTask cancels the attempt if it never reached a terminal
// state. An attempt that completed or was already cancelled is left alone.
func handleReconcileTask(svc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload tasks.ReconcilePayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return err
		}
		logger := utils.GetLogger()

		attempt, err := svc.CancelAttempt(ctx, payload.PaymentID, "")
		if err != nil {
			var berr *booking.BookingError
			if errors.As(err, &berr) &&
				(berr.Code == booking.CodeState || berr.Code == booking.CodeNotFound) {
				// Completed or gone; nothing to reconcile.
				return nil
			}
			logger.Error("reconcile failed", zap.String("paymentId", payload.PaymentID), zap.Error(err))
			return err
		}
		logger.Info("stale payment attempt reconciled",
			zap.String("paymentId", attempt.PaymentID), zap.String("status", attempt.Status))
		return nil
	}
}

// sweepStaleAttempts is the safety net behind the task queue: if a delayed
// task was lost, pending attempts older than the reconcile window are still
// picked up and cancelled here.
func sweepStaleAttempts(svc booking.BookingService, repo bookingRepo.BookingRepository) {
	logger := utils.GetLogger()
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		stale, err := repo.ListPendingOlderThan(ctx, 30*time.Minute)
		if err != nil {
			logger.Error("stale attempt sweep failed", zap.Error(err))
			cancel()
			continue
		}
		for _, attempt := range stale {
			if _, err := svc.CancelAttempt(ctx, attempt.PaymentID, ""); err != nil {
				var berr *booking.BookingError
				if errors.As(err, &berr) && berr.Code == booking.CodeState {
					continue
				}
				logger.Error("failed to cancel stale attempt",
					zap.String("paymentId", attempt.PaymentID), zap.Error(err))
			}
		}
		cancel()
	}
}
