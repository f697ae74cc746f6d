package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"healthhive/models"
)

const TypeAppointmentComplete = "appointment:complete"

type CompletionPayload struct {
	AppointmentID string `json:"appointmentId"`
}

// NewCompletionTask builds a task that fires when the appointment slot ends. The task id
// is keyed on the slot so a reschedule enqueues a fresh task instead of colliding.
func NewCompletionTask(appt models.Appointment, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(CompletionPayload{AppointmentID: appt.ID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentComplete, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(fmt.Sprintf("%s:%s:%d", appt.ID, appt.Date, appt.Slot.Minutes())),
		asynq.MaxRetry(5),
	}
	return task, opts, nil
}

// taskEnqueuer is the subset of *asynq.Client used here.
type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// CompletionEnqueuer schedules completion tasks on the asynq queue.
type CompletionEnqueuer struct {
	client       taskEnqueuer
	slotDuration time.Duration
	location     *time.Location
}

func NewCompletionEnqueuer(client *asynq.Client, slotDuration time.Duration, loc *time.Location) *CompletionEnqueuer {
	return &CompletionEnqueuer{client: client, slotDuration: slotDuration, location: loc}
}

func (e *CompletionEnqueuer) ScheduleCompletion(ctx context.Context, appt models.Appointment) error {
	task, opts, err := NewCompletionTask(appt, appt.EndsAt(e.slotDuration, e.location))
	if err != nil {
		return fmt.Errorf("failed to build completion task: %w", err)
	}
	if _, err := e.client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("failed to enqueue completion task: %w", err)
	}
	return nil
}
