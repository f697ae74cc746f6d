package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"healthhive/cron"
	"healthhive/handlers"
	"healthhive/middleware"
	"healthhive/routes"
	"healthhive/services/appointment"
	"healthhive/services/doctor"
	"healthhive/services/scheduling"
	"healthhive/utils"
)

func serveCmd() *cobra.Command {
	var withWorker bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API (and the completion worker)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(withWorker)
		},
	}
	cmd.Flags().BoolVar(&withWorker, "worker", true, "run the appointment completion worker in-process")
	return cmd
}

func runServer(withWorker bool) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open stores", zap.Error(err))
		return err
	}
	defer st.Close(logger)

	if err := st.ensureIndexes(ctx); err != nil {
		logger.Error("Failed to create indexes", zap.Error(err))
		return err
	}

	clock := utils.SystemClock{}
	loc := cfg.Location()

	engine := scheduling.NewEngine(st.Appointments, cfg.AppointmentDurationMinutes, logger)
	guard := scheduling.NewGuard(st.Appointments, clock, scheduling.GuardConfig{
		DurationMinutes: cfg.AppointmentDurationMinutes,
		LeadTime:        cfg.LeadTime(),
		Location:        loc,
	}, logger)

	appointmentService := &appointment.DefaultAppointmentService{
		Doctors:      st.Doctors,
		Appointments: st.Appointments,
		Guard:        guard,
		Clock:        clock,
		SlotDuration: cfg.SlotDuration(),
		Location:     loc,
		Logger:       logger,
	}

	// Scheduled completion needs the redis-backed queue.
	var worker *asynq.Server
	if cfg.RedisEnabled {
		queue := asynq.NewClient(utils.QueueRedisOpt(cfg))
		defer queue.Close()
		appointmentService.Completion = cron.NewCompletionEnqueuer(queue, cfg.SlotDuration(), loc)

		if withWorker {
			srv, mux := cron.NewCompletionWorker(utils.QueueRedisOpt(cfg), cfg.WorkerConcurrency, appointmentService, logger)
			if err := srv.Start(mux); err != nil {
				logger.Error("Failed to start completion worker", zap.Error(err))
				return err
			}
			worker = srv
			logger.Info("Completion worker started", zap.Int("concurrency", cfg.WorkerConcurrency))
		}
	}

	health := utils.NewHealthMonitor(st.healthChecks(), logger)
	health.Start(ctx, 60*time.Second)

	verifier, err := utils.NewTokenVerifier(cfg.JWTSecret)
	if err != nil {
		logger.Error("Invalid auth configuration", zap.Error(err))
		return err
	}

	doctorService := &doctor.DefaultDoctorService{Repo: st.Doctors}
	bundle := handlers.NewHandlerBundle(
		handlers.NewDoctorHandler(doctorService, engine, logger),
		handlers.NewAppointmentHandler(appointmentService, logger),
		verifier,
		health,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, logger))
	routes.RegisterRoutes(router, bundle, cfg.AllowedOrigins())

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("driver", cfg.DatabaseDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for an OS signal or a listener failure.
	select {
	case <-ctx.Done():
	case err, ok := <-serveErr:
		if ok {
			logger.Error("Server failed to start", zap.Error(err))
			return err
		}
	}
	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if worker != nil {
		worker.Shutdown()
	}

	logger.Info("Server stopped gracefully")
	return nil
}
