// Package app is the composition root: configuration in, a wired Application
// out. Bootstrap stays orchestration-only; behavior lives in the packages it
// composes.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"intrahub.io/portal/internal/api/handlers"
	"intrahub.io/portal/internal/api/middleware"
	"intrahub.io/portal/internal/audit"
	"intrahub.io/portal/internal/config"
	"intrahub.io/portal/internal/infrastructure"
	"intrahub.io/portal/internal/jobs"
	"intrahub.io/portal/internal/notification"
	"intrahub.io/portal/internal/pkg/logger"
	"intrahub.io/portal/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools
}

// Bootstrap initializes all dependencies using manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database clients: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize:   cfg.Worker.GeneralPoolSize,
		BroadcastPoolSize: cfg.Worker.BroadcastPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(db.EntClient, cfg.Notification.Retention))
	if err := db.InitRiverClient(workers, cfg.River); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river client: %w", err)
	}

	// Inbox retention cleanup: daily, plus once on startup so a long-stopped
	// instance catches up immediately.
	db.RiverClient.PeriodicJobs().Add(
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.NotificationCleanupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	)

	jwtCfg := middleware.JWTConfig{
		SigningKey: []byte(cfg.Security.SessionSecret),
		Issuer:     "intrahub-portal",
		ExpiresIn:  cfg.Session.Lifetime,
	}

	server := handlers.NewServer(handlers.ServerDeps{
		EntClient:   db.EntClient,
		Pool:        db.Pool,
		JWTCfg:      jwtCfg,
		Audit:       audit.NewLogger(db.EntClient),
		Resolver:    notification.NewResolver(db.EntClient),
		Store:       notification.NewStore(db.EntClient),
		Inbox:       notification.NewInbox(db.EntClient),
		Mutator:     notification.NewMutator(db.EntClient),
		Registry:    notification.NewRegistry(db.EntClient),
		Pools:       pools,
		RiverClient: db.RiverClient,
	})

	logger.Info("application bootstrapped")

	return &Application{
		Config: cfg,
		Router: newRouter(cfg, server, jwtCfg.SigningKey),
		DB:     db,
		Pools:  pools,
	}, nil
}
