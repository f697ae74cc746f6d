// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"
	"errors"

	"healthhive/models"
)

var ErrNotFound = errors.New("doctor not found")

type DoctorRepository interface {
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	List(ctx context.Context) ([]models.Doctor, error)
	Specialties(ctx context.Context) ([]string, error)
	// UpsertMany inserts or replaces doctors by id.
	UpsertMany(ctx context.Context, doctors []models.Doctor) error
	EnsureIndexes(ctx context.Context) error
}
