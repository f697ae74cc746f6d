package doctor

import (
	"context"
	"errors"
	"fmt"

	doctorRepo "healthhive/database/repository/doctor"
	"healthhive/models"
)

// DoctorService is the read-only doctor surface; schedules are not edited through the API.
type DoctorService interface {
	Get(ctx context.Context, id string) (*models.Doctor, error)
	List(ctx context.Context) ([]models.Doctor, error)
	Specialties(ctx context.Context) ([]string, error)
}

type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) Get(ctx context.Context, id string) (*models.Doctor, error) {
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, models.ErrDoctorNotFound
		}
		return nil, fmt.Errorf("failed to get doctor %s: %w", id, err)
	}
	return doc, nil
}

func (s *DefaultDoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (s *DefaultDoctorService) Specialties(ctx context.Context) ([]string, error) {
	specialties, err := s.Repo.Specialties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}
	return specialties, nil
}
