package doctorRepo

import (
	"context"
	"sort"
	"sync"

	"healthhive/models"
)

var _ DoctorRepository = (*MemoryDoctorRepo)(nil)

// MemoryDoctorRepo keeps doctors in a map; used by the memory driver and tests.
type MemoryDoctorRepo struct {
	mu      sync.RWMutex
	doctors map[string]models.Doctor
}

func NewMemoryDoctorRepo(seed ...models.Doctor) *MemoryDoctorRepo {
	r := &MemoryDoctorRepo{doctors: make(map[string]models.Doctor)}
	for _, d := range seed {
		r.doctors[d.ID] = d
	}
	return r
}

func (r *MemoryDoctorRepo) GetByID(_ context.Context, id string) (*models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.doctors[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (r *MemoryDoctorRepo) List(_ context.Context) ([]models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemoryDoctorRepo) Specialties(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	out := []string{}
	for _, d := range r.doctors {
		if _, dup := seen[d.Specialty]; dup || d.Specialty == "" {
			continue
		}
		seen[d.Specialty] = struct{}{}
		out = append(out, d.Specialty)
	}
	sort.Strings(out)
	return out, nil
}

func (r *MemoryDoctorRepo) UpsertMany(_ context.Context, doctors []models.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range doctors {
		r.doctors[d.ID] = d
	}
	return nil
}

func (r *MemoryDoctorRepo) EnsureIndexes(context.Context) error { return nil }
