package notification

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypePaymentSuccessEmail = "email:payment_success"

// NewPaymentSuccessTask builds the queue task for a payment confirmation
// email.
func NewPaymentSuccessTask(payload PaymentSuccessPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePaymentSuccessEmail, b), nil
}

// AsynqNotifier enqueues notification tasks for the background worker.
type AsynqNotifier struct {
	client *asynq.Client
}

// NewAsynqNotifier creates a Notifier backed by an asynq client.
func NewAsynqNotifier(redisOpt asynq.RedisClientOpt) *AsynqNotifier {
	return &AsynqNotifier{client: asynq.NewClient(redisOpt)}
}

// PaymentSuccess enqueues the payment confirmation email task.
func (n *AsynqNotifier) PaymentSuccess(ctx context.Context, payload PaymentSuccessPayload) error {
	task, err := NewPaymentSuccessTask(payload)
	if err != nil {
		return err
	}
	_, err = n.client.EnqueueContext(ctx, task, asynq.MaxRetry(5))
	return err
}

// Close releases the underlying queue connection.
func (n *AsynqNotifier) Close() error {
	return n.client.Close()
}
