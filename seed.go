package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"healthhive/services/doctor"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Upsert the default doctor roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if cfg.DatabaseDriver == "memory" {
				logger.Warn("Memory driver seeds itself on serve; nothing to do")
				return nil
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			st, err := openStores(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer st.Close(logger)

			if err := st.ensureIndexes(ctx); err != nil {
				logger.Error("Failed to create indexes", zap.Error(err))
				return err
			}

			doctors := doctor.SeedDoctors(time.Now().UTC())
			if err := st.Doctors.UpsertMany(ctx, doctors); err != nil {
				logger.Error("Failed to seed doctors", zap.Error(err))
				return err
			}
			logger.Info("Doctors seeded", zap.Int("count", len(doctors)))
			return nil
		},
	}
}

func indexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create collection indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			st, err := openStores(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer st.Close(logger)

			if err := st.ensureIndexes(ctx); err != nil {
				logger.Error("Failed to create indexes", zap.Error(err))
				return err
			}
			logger.Info("Indexes ensured", zap.String("database", cfg.DatabaseName))
			return nil
		},
	}
}
