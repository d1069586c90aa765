package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/studyspot/dataport/internal/data/db"
	"github.com/studyspot/dataport/internal/data/repos"
	"github.com/studyspot/dataport/internal/platform/gcp"
	"github.com/studyspot/dataport/internal/platform/logger"
	"github.com/studyspot/dataport/internal/services"
)

// Migrator wires everything the migrate binary needs: logger, config,
// Postgres (schema migrated), the photo bucket and the migration service.
type Migrator struct {
	Log       *logger.Logger
	Cfg       Config
	DB        *gorm.DB
	Migration services.MigrationService

	pg     *db.PostgresService
	bucket gcp.BucketService
}

func NewMigrator(ctx context.Context) (*Migrator, error) {
	log, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig()
	log.Info("Configuration loaded", "data_dir", cfg.DataDir)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	theDB := pg.DB()
	if err := db.AutoMigrateAll(theDB); err != nil {
		_ = pg.Close()
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}

	bucket, err := gcp.NewBucketService(ctx, log)
	if err != nil {
		_ = pg.Close()
		log.Sync()
		return nil, fmt.Errorf("init bucket service: %w", err)
	}

	orgRepo := repos.NewOrganizationRepo(theDB, log)
	buildingRepo := repos.NewBuildingRepo(theDB, log)
	spotRepo := repos.NewSpotRepo(theDB, log)
	hallRepo := repos.NewHallRepo(theDB, log)
	photoRepo := repos.NewPhotoRepo(theDB, log)
	photoService := services.NewPhotoService(log, bucket, photoRepo)

	migration := services.NewMigrationService(
		theDB,
		log,
		orgRepo,
		buildingRepo,
		spotRepo,
		hallRepo,
		photoRepo,
		photoService,
		bucket,
		cfg.DataDir,
	)

	return &Migrator{
		Log:       log,
		Cfg:       cfg,
		DB:        theDB,
		Migration: migration,
		pg:        pg,
		bucket:    bucket,
	}, nil
}

func (m *Migrator) Close() {
	if m == nil {
		return
	}
	if m.bucket != nil {
		_ = m.bucket.Close()
	}
	if m.pg != nil {
		_ = m.pg.Close()
	}
	if m.Log != nil {
		m.Log.Sync()
	}
}
