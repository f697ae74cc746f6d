package doctorRepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"healthhive/models"
)

const (
	doctorKeyPrefix = "doctor:"
	doctorListKey   = "doctors:all"
	specialtiesKey  = "doctors:specialties"
)

// cachedDoctorRepo is a read-through Redis cache in front of another DoctorRepository.
// Cache failures fall back to the inner repository.
type cachedDoctorRepo struct {
	inner  DoctorRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedDoctorRepo(inner DoctorRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) DoctorRepository {
	return &cachedDoctorRepo{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (r *cachedDoctorRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	var doc models.Doctor
	if r.get(ctx, doctorKeyPrefix+id, &doc) {
		return &doc, nil
	}
	found, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.set(ctx, doctorKeyPrefix+id, found)
	return found, nil
}

func (r *cachedDoctorRepo) List(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if r.get(ctx, doctorListKey, &doctors) {
		return doctors, nil
	}
	doctors, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	r.set(ctx, doctorListKey, doctors)
	return doctors, nil
}

func (r *cachedDoctorRepo) Specialties(ctx context.Context) ([]string, error) {
	var specialties []string
	if r.get(ctx, specialtiesKey, &specialties) {
		return specialties, nil
	}
	specialties, err := r.inner.Specialties(ctx)
	if err != nil {
		return nil, err
	}
	r.set(ctx, specialtiesKey, specialties)
	return specialties, nil
}

// UpsertMany writes through and invalidates every affected key.
func (r *cachedDoctorRepo) UpsertMany(ctx context.Context, doctors []models.Doctor) error {
	if err := r.inner.UpsertMany(ctx, doctors); err != nil {
		return err
	}
	keys := []string{doctorListKey, specialtiesKey}
	for _, d := range doctors {
		keys = append(keys, doctorKeyPrefix+d.ID)
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warn("Failed to invalidate doctor cache", zap.Error(err))
	}
	return nil
}

func (r *cachedDoctorRepo) EnsureIndexes(ctx context.Context) error {
	return r.inner.EnsureIndexes(ctx)
}

func (r *cachedDoctorRepo) get(ctx context.Context, key string, dst interface{}) bool {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("Doctor cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		r.logger.Warn("Discarding corrupt doctor cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *cachedDoctorRepo) set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		r.logger.Warn("Doctor cache write failed", zap.String("key", key), zap.Error(err))
	}
}
