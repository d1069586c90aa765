package app

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"github.com/studyspot/dataport/internal/platform/gcp"
	"github.com/studyspot/dataport/internal/platform/logger"
	"github.com/studyspot/dataport/internal/services"
)

// Exporter wires everything the export binary needs: logger, config, the
// document-store client and the export service.
type Exporter struct {
	Log    *logger.Logger
	Cfg    Config
	Export services.ExportService

	client *firestore.Client
}

func NewExporter(ctx context.Context) (*Exporter, error) {
	log, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig()
	log.Info("Configuration loaded",
		"data_dir", cfg.DataDir,
		"with_subcollections", cfg.ExportWithSubcollections,
	)

	client, err := gcp.NewFirestoreClient(ctx)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init firestore: %w", err)
	}

	return &Exporter{
		Log:    log,
		Cfg:    cfg,
		Export: services.NewExportService(log, client, cfg.DataDir, cfg.ExportWithSubcollections),
		client: client,
	}, nil
}

func (e *Exporter) Close() {
	if e == nil {
		return
	}
	if e.client != nil {
		_ = e.client.Close()
	}
	if e.Log != nil {
		e.Log.Sync()
	}
}
