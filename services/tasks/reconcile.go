package tasks

import (
	"encoding/json"
	"time"

	"courtside/config"

	"github.com/hibiken/asynq"
)

const TypePaymentReconcile = "payment:reconcile"

// ReconcilePayload identifies the payment attempt to re-check.
type ReconcilePayload struct {
	PaymentID string `json:"paymentId"`
}

// NewReconcileTask builds a delayed reconciliation task for a payment attempt.
func NewReconcileTask(paymentID string, delay time.Duration) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ReconcilePayload{PaymentID: paymentID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePaymentReconcile, b)
	opts := []asynq.Option{asynq.ProcessIn(delay)}
	return task, opts, nil
}

// AsynqEnqueuer schedules tasks on the Redis-backed queue.
type AsynqEnqueuer struct {
	client *asynq.Client
}

// NewAsynqEnqueuer builds an enqueuer from the configured Redis queue DB.
func NewAsynqEnqueuer() *AsynqEnqueuer {
	return &AsynqEnqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisTaskQueueDB,
		}),
	}
}

// EnqueueReconcile schedules a reconciliation check for the attempt.
func (e *AsynqEnqueuer) EnqueueReconcile(paymentID string, delay time.Duration) error {
	task, opts, err := NewReconcileTask(paymentID, delay)
	if err != nil {
		return err
	}
	_, err = e.client.Enqueue(task, opts...)
	return err
}
