package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/studyspot/dataport/internal/app"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	migrator, err := app.NewMigrator(ctx)
	if err != nil {
		fmt.Printf("init migrator: %v\n", err)
		os.Exit(1)
	}
	defer migrator.Close()

	report, err := migrator.Migration.Run(ctx)
	if err != nil {
		migrator.Log.Error("Migration failed", "error", err)
		migrator.Close()
		os.Exit(1)
	}

	// Per-record and per-image failures are reported, not fatal.
	report.LogSummary(migrator.Log)
}
