package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"tourdesk/models"

	"github.com/hibiken/asynq"
)

const (
	TypeBookingConfirmed = "notify:booking_confirmed"
	TypeCompanyWelcome   = "notify:company_welcome"
	TypeChatReply        = "notify:chat_reply"
	TypeTripReminders    = "notify:trip_reminders"
)

// Notifications are best-effort: a failed send is logged by the worker and dropped.
var bestEffort = []asynq.Option{asynq.MaxRetry(0)}

func newTask(taskType string, payload any) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", taskType, err)
	}
	return asynq.NewTask(taskType, b, bestEffort...), nil
}

// NewTripRemindersTask is registered with the scheduler; the handler resolves the date.
func NewTripRemindersTask() (*asynq.Task, error) {
	return newTask(TypeTripReminders, models.TripReminderPayload{})
}

// AsynqDispatcher enqueues notification tasks on Redis.
type AsynqDispatcher struct {
	client *asynq.Client
}

func NewAsynqDispatcher(client *asynq.Client) *AsynqDispatcher {
	return &AsynqDispatcher{client: client}
}

func (d *AsynqDispatcher) enqueue(ctx context.Context, taskType string, payload any) error {
	task, err := newTask(taskType, payload)
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", taskType, err)
	}
	return nil
}

func (d *AsynqDispatcher) BookingConfirmed(ctx context.Context, p models.BookingConfirmedPayload) error {
	return d.enqueue(ctx, TypeBookingConfirmed, p)
}

func (d *AsynqDispatcher) CompanyWelcome(ctx context.Context, p models.CompanyWelcomePayload) error {
	return d.enqueue(ctx, TypeCompanyWelcome, p)
}

func (d *AsynqDispatcher) ChatReply(ctx context.Context, p models.ChatReplyPayload) error {
	return d.enqueue(ctx, TypeChatReply, p)
}
