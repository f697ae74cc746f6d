package doctor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	doctorRepo "healthhive/database/repository/doctor"
	"healthhive/models"
)

func TestDoctorService(t *testing.T) {
	ctx := context.Background()
	svc := &DefaultDoctorService{Repo: doctorRepo.NewMemoryDoctorRepo(SeedDoctors(time.Now())...)}

	doc, err := svc.Get(ctx, SeedID("Priya Sharma"))
	require.NoError(t, err)
	assert.Equal(t, 1200.0, doc.ConsultationFee)

	_, err = svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, models.ErrDoctorNotFound)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(roster))

	specialties, err := svc.Specialties(ctx)
	require.NoError(t, err)
	assert.Len(t, specialties, len(roster))
	assert.Contains(t, specialties, "Cardiologist")
}

func TestSeedSchedules(t *testing.T) {
	for _, d := range SeedDoctors(time.Now()) {
		require.Len(t, d.Schedule, 7, d.Name)
		mon, ok := d.ScheduleFor(models.Monday)
		require.True(t, ok)
		assert.True(t, mon.IsOpen)
		assert.Less(t, int(mon.OpenTime), int(mon.CloseTime))
		assert.Equal(t, SeedID(d.Name), d.ID)
	}
}
