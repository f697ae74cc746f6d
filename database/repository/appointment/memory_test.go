package appointmentRepo

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthhive/models"
)

func scheduled(id, doctorID string, date models.CalendarDate, slot string) models.Appointment {
	return models.Appointment{
		ID:       id,
		DoctorID: doctorID,
		UserID:   "user-1",
		Date:     date,
		Slot:     models.MustParseTimeOfDay(slot),
		Status:   models.StatusScheduled,
		Symptoms: "cough",
	}
}

func TestMemoryInsertRejectsSecondScheduledSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAppointmentRepo()

	require.NoError(t, repo.Insert(ctx, scheduled("a1", "doc-1", "2025-06-02", "10:00 AM")))
	assert.ErrorIs(t, repo.Insert(ctx, scheduled("a2", "doc-1", "2025-06-02", "10:00")), ErrDuplicateKey)

	// Different doctor or date is fine.
	require.NoError(t, repo.Insert(ctx, scheduled("a3", "doc-2", "2025-06-02", "10:00 AM")))
	require.NoError(t, repo.Insert(ctx, scheduled("a4", "doc-1", "2025-06-03", "10:00 AM")))
}

func TestMemoryCancelFreesSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAppointmentRepo()
	require.NoError(t, repo.Insert(ctx, scheduled("a1", "doc-1", "2025-06-02", "10:00 AM")))

	cancelled := models.StatusCancelled
	updated, err := repo.UpdateIfScheduled(ctx, "a1", models.AppointmentPatch{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)

	booked, err := repo.FindScheduledByDoctorAndDate(ctx, "doc-1", "2025-06-02")
	require.NoError(t, err)
	assert.Empty(t, booked)

	require.NoError(t, repo.Insert(ctx, scheduled("a2", "doc-1", "2025-06-02", "10:00 AM")))

	_, err = repo.UpdateIfScheduled(ctx, "a1", models.AppointmentPatch{Status: &cancelled})
	assert.ErrorIs(t, err, ErrNotScheduled)
	_, err = repo.UpdateIfScheduled(ctx, "missing", models.AppointmentPatch{Status: &cancelled})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRescheduleIntoTakenSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAppointmentRepo()
	require.NoError(t, repo.Insert(ctx, scheduled("a1", "doc-1", "2025-06-02", "10:00 AM")))
	require.NoError(t, repo.Insert(ctx, scheduled("a2", "doc-1", "2025-06-02", "10:30 AM")))

	slot := models.MustParseTimeOfDay("10:00 AM")
	_, err := repo.UpdateIfScheduled(ctx, "a2", models.AppointmentPatch{Slot: &slot})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// Same slot patched onto itself is not a conflict.
	_, err = repo.UpdateIfScheduled(ctx, "a1", models.AppointmentPatch{Slot: &slot})
	require.NoError(t, err)
}

func TestMemoryConcurrentInsertsSingleWinner(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAppointmentRepo()

	const n = 50
	var wg sync.WaitGroup
	var wins, conflicts int32
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			appt := scheduled(fmt.Sprintf("appt-%d", i), "doc-1", "2025-06-02", "11:00 AM")
			switch err := repo.Insert(ctx, appt); err {
			case nil:
				atomic.AddInt32(&wins, 1)
			case ErrDuplicateKey:
				atomic.AddInt32(&conflicts, 1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
	assert.Equal(t, int32(n-1), conflicts)
}
