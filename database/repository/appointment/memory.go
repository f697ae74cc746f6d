package appointmentRepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"healthhive/models"
)

var _ AppointmentRepository = (*MemoryAppointmentRepo)(nil)

type slotKey struct {
	doctorID string
	date     models.CalendarDate
	slot     models.TimeOfDay
}

// MemoryAppointmentRepo is an in-process AppointmentRepository that enforces the
// same one-scheduled-appointment-per-slot constraint as the Mongo partial index.
type MemoryAppointmentRepo struct {
	mu        sync.Mutex
	byID      map[string]models.Appointment
	scheduled map[slotKey]string
	now       func() time.Time
}

func NewMemoryAppointmentRepo() *MemoryAppointmentRepo {
	return &MemoryAppointmentRepo{
		byID:      make(map[string]models.Appointment),
		scheduled: make(map[slotKey]string),
		now:       time.Now,
	}
}

func keyOf(a models.Appointment) slotKey {
	return slotKey{doctorID: a.DoctorID, date: a.Date, slot: a.Slot}
}

func (r *MemoryAppointmentRepo) Insert(_ context.Context, appt models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[appt.ID]; exists {
		return ErrDuplicateKey
	}
	if appt.Status == models.StatusScheduled {
		if _, taken := r.scheduled[keyOf(appt)]; taken {
			return ErrDuplicateKey
		}
		r.scheduled[keyOf(appt)] = appt.ID
	}
	r.byID[appt.ID] = appt
	return nil
}

func (r *MemoryAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &appt, nil
}

func (r *MemoryAppointmentRepo) ListByUser(_ context.Context, userID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Appointment{}
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Slot > out[j].Slot
	})
	return out, nil
}

func (r *MemoryAppointmentRepo) FindScheduledByDoctorAndDate(_ context.Context, doctorID string, date models.CalendarDate) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Appointment{}
	for _, a := range r.byID {
		if a.DoctorID == doctorID && a.Date == date && a.Status == models.StatusScheduled {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out, nil
}

func (r *MemoryAppointmentRepo) UpdateIfScheduled(_ context.Context, id string, patch models.AppointmentPatch) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if current.Status != models.StatusScheduled {
		return nil, ErrNotScheduled
	}

	next := current
	patch.Apply(&next)
	next.UpdatedAt = r.now().UTC()

	oldKey, newKey := keyOf(current), keyOf(next)
	if next.Status == models.StatusScheduled && newKey != oldKey {
		if _, taken := r.scheduled[newKey]; taken {
			return nil, ErrDuplicateKey
		}
	}

	delete(r.scheduled, oldKey)
	if next.Status == models.StatusScheduled {
		r.scheduled[newKey] = id
	}
	r.byID[id] = next
	return &next, nil
}

func (r *MemoryAppointmentRepo) EnsureIndexes(context.Context) error { return nil }
