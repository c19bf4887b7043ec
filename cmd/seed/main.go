// Package main provides data seeding for the IntraHub Portal.
//
// Migrations are expected to have run already; this command only performs
// idempotent data bootstrap: the default admin account and a starter sector
// layout.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"intrahub.io/portal/ent"
	entuser "intrahub.io/portal/ent/user"
	"intrahub.io/portal/internal/config"
	"intrahub.io/portal/internal/infrastructure"
	"intrahub.io/portal/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	if err := seedSectors(ctx, client); err != nil {
		return fmt.Errorf("seed sectors: %w", err)
	}
	if err := seedDefaultAdmin(ctx, client); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

type seedSector struct {
	ID         string
	Name       string
	Subsectors []seedSubsector
}

type seedSubsector struct {
	ID   string
	Name string
}

func starterSectors() []seedSector {
	return []seedSector{
		{
			ID: "sector-operations", Name: "Operations",
			Subsectors: []seedSubsector{
				{ID: "subsector-logistics", Name: "Logistics"},
				{ID: "subsector-facilities", Name: "Facilities"},
			},
		},
		{
			ID: "sector-corporate", Name: "Corporate",
			Subsectors: []seedSubsector{
				{ID: "subsector-hr", Name: "Human Resources"},
				{ID: "subsector-finance", Name: "Finance"},
			},
		},
		{
			ID: "sector-technology", Name: "Technology",
			Subsectors: []seedSubsector{
				{ID: "subsector-it-support", Name: "IT Support"},
				{ID: "subsector-development", Name: "Development"},
			},
		},
	}
}

// seedSectors creates the starter sector layout. Idempotent: existing rows
// are skipped via constraint errors (ON CONFLICT DO NOTHING equivalent).
func seedSectors(ctx context.Context, client *ent.Client) error {
	for _, sec := range starterSectors() {
		_, err := client.Sector.Create().
			SetID(sec.ID).
			SetName(sec.Name).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				logger.Info("Sector already exists, skipping", zap.String("sector", sec.Name))
			} else {
				return fmt.Errorf("create sector %s: %w", sec.Name, err)
			}
		} else {
			logger.Info("Seeded sector", zap.String("sector", sec.Name))
		}

		for _, sub := range sec.Subsectors {
			_, err := client.Subsector.Create().
				SetID(sub.ID).
				SetName(sub.Name).
				SetSectorID(sec.ID).
				Save(ctx)
			if err != nil {
				if ent.IsConstraintError(err) {
					logger.Info("Subsector already exists, skipping", zap.String("subsector", sub.Name))
					continue
				}
				return fmt.Errorf("create subsector %s: %w", sub.Name, err)
			}
			logger.Info("Seeded subsector", zap.String("subsector", sub.Name))
		}
	}
	return nil
}

// seedDefaultAdmin creates the default admin account (admin/admin). The
// account comes pre-approved; the password must be changed after first login.
func seedDefaultAdmin(ctx context.Context, client *ent.Client) error {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	_, err = client.User.Create().
		SetID("user-default-admin").
		SetUsername("admin").
		SetEmail("admin@localhost").
		SetDisplayName("Default Administrator").
		SetPasswordHash(string(hashBytes)).
		SetRole(entuser.RoleADMIN).
		SetApproved(true).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			logger.Info("Default admin already exists, skipping")
			return nil
		}
		return fmt.Errorf("create default admin: %w", err)
	}

	logger.Info("Seeded default admin user", zap.String("username", "admin"))
	return nil
}
