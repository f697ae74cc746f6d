package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"healthhive/config"
	"healthhive/database"
	appointmentRepo "healthhive/database/repository/appointment"
	doctorRepo "healthhive/database/repository/doctor"
	"healthhive/services/doctor"
	"healthhive/utils"
)

// stores holds the repositories for the configured driver plus whatever needs closing.
type stores struct {
	Doctors      doctorRepo.DoctorRepository
	Appointments appointmentRepo.AppointmentRepository
	Mongo        *mongo.Client
	Cache        *redis.Client
}

func (s *stores) Close(logger *zap.Logger) {
	if s.Cache != nil {
		_ = s.Cache.Close()
	}
	if s.Mongo != nil {
		database.Disconnect(s.Mongo, logger)
	}
}

// healthChecks lists the external dependencies to probe.
func (s *stores) healthChecks() map[string]utils.Pinger {
	checks := map[string]utils.Pinger{}
	if s.Mongo != nil {
		client := s.Mongo
		checks["mongo"] = utils.PingerFunc(func(ctx context.Context) error { return client.Ping(ctx, nil) })
	}
	if s.Cache != nil {
		client := s.Cache
		checks["redis"] = utils.PingerFunc(func(ctx context.Context) error { return client.Ping(ctx).Err() })
	}
	return checks
}

func openStores(ctx context.Context, cfg config.Config, logger *zap.Logger) (*stores, error) {
	s := &stores{}

	switch cfg.DatabaseDriver {
	case "memory":
		logger.Warn("Using in-memory storage; data is lost on restart")
		s.Doctors = doctorRepo.NewMemoryDoctorRepo(doctor.SeedDoctors(time.Now().UTC())...)
		s.Appointments = appointmentRepo.NewMemoryAppointmentRepo()
	default:
		client, err := database.Connect(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, err
		}
		s.Mongo = client
		db := client.Database(cfg.DatabaseName)
		s.Doctors = doctorRepo.NewMongoDoctorRepo(db)
		s.Appointments = appointmentRepo.NewMongoAppointmentRepo(db)
	}

	if cfg.RedisEnabled {
		cache, err := utils.NewRedisClient(ctx, cfg, cfg.RedisCacheDB)
		if err != nil {
			s.Close(logger)
			return nil, err
		}
		s.Cache = cache
		s.Doctors = doctorRepo.NewCachedDoctorRepo(s.Doctors, cache, cfg.DoctorCacheTTL, logger)
	}
	return s, nil
}

// ensureIndexes creates every collection index, including the scheduled-slot uniqueness backstop.
func (s *stores) ensureIndexes(ctx context.Context) error {
	if err := s.Doctors.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("doctors: %w", err)
	}
	if err := s.Appointments.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("appointments: %w", err)
	}
	return nil
}

func bootstrap() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}
