package cron

import (
	"context"
	"fmt"
	"time"

	"tourdesk/config"
	"tourdesk/services/notification"
	"tourdesk/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt is the queue connection shared by the dispatcher, worker and scheduler.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// Worker runs notification tasks and the daily trip-reminder schedule.
type Worker struct {
	server       *asynq.Server
	scheduler    *asynq.Scheduler
	mux          *asynq.ServeMux
	reminderCron string
}

func NewWorker(processor *notification.Processor, reminderCron string) *Worker {
	opt := RedisOpt()
	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: 10,
		Queues:      map[string]int{"default": 1},
		Logger:      utils.GetLogger().Sugar(),
	})
	mux := asynq.NewServeMux()
	processor.Register(mux)

	return &Worker{
		server:       server,
		scheduler:    asynq.NewScheduler(opt, &asynq.SchedulerOpts{Logger: utils.GetLogger().Sugar()}),
		mux:          mux,
		reminderCron: reminderCron,
	}
}

// Start waits for Redis, then starts processing and registers the reminder job.
func (w *Worker) Start(ctx context.Context) error {
	logger := utils.GetLogger()
	if err := waitForRedis(ctx); err != nil {
		return err
	}

	if err := w.server.Start(w.mux); err != nil {
		return fmt.Errorf("failed to start worker: %w", err)
	}
	logger.Info("Notification worker started")

	if w.reminderCron == "" {
		logger.Info("Trip reminders disabled")
		return nil
	}
	task, err := notification.NewTripRemindersTask()
	if err != nil {
		return err
	}
	entryID, err := w.scheduler.Register(w.reminderCron, task)
	if err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", w.reminderCron, err)
	}
	if err := w.scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	logger.Info("Trip reminders scheduled", zap.String("cron", w.reminderCron), zap.String("entry", entryID))
	return nil
}

func (w *Worker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
}

// waitForRedis pings the queue database with linear backoff.
func waitForRedis(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer client.Close()

	const maxAttempts = 5
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = client.Ping(ctx).Err(); err == nil {
			return nil
		}
		utils.GetLogger().Warn("Queue Redis not reachable",
			zap.Int("attempt", attempt), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt*2) * time.Second):
		}
	}
	return fmt.Errorf("queue redis unavailable after %d attempts: %w", maxAttempts, err)
}
