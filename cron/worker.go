package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"healthhive/models"
)

// Completer marks an appointment completed.
type Completer interface {
	Complete(ctx context.Context, id string) (*models.Appointment, error)
}

// NewCompletionWorker builds the asynq server and handler mux; call Start and Shutdown on the result.
func NewCompletionWorker(redisOpts asynq.RedisClientOpt, concurrency int, completer Completer, logger *zap.Logger) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAppointmentComplete, HandleCompletionTask(completer, logger))
	return srv, mux
}

// HandleCompletionTask completes the appointment. Outcomes that a retry cannot change
// (already terminal, moved to a later slot, deleted) are acknowledged, not retried.
func HandleCompletionTask(completer Completer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p CompletionPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid completion payload", zap.Error(err))
			return fmt.Errorf("invalid payload: %v: %w", err, asynq.SkipRetry)
		}

		_, err := completer.Complete(ctx, p.AppointmentID)
		switch {
		case err == nil:
			logger.Info("Appointment completed", zap.String("appointmentId", p.AppointmentID))
			return nil
		case errors.Is(err, models.ErrImmutableAppointment),
			errors.Is(err, models.ErrNotYetEnded),
			errors.Is(err, models.ErrAppointmentNotFound):
			logger.Debug("Skipping completion", zap.String("appointmentId", p.AppointmentID), zap.Error(err))
			return nil
		default:
			logger.Warn("Completion failed, will retry", zap.String("appointmentId", p.AppointmentID), zap.Error(err))
			return err
		}
	}
}
