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

	exporter, err := app.NewExporter(ctx)
	if err != nil {
		fmt.Printf("init exporter: %v\n", err)
		os.Exit(1)
	}
	defer exporter.Close()

	if err := exporter.Export.ExportAll(ctx); err != nil {
		exporter.Log.Error("Export failed", "error", err)
		exporter.Close()
		os.Exit(1)
	}
}
