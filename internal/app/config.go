package app

import (
	"github.com/studyspot/dataport/internal/platform/envutil"
	"github.com/studyspot/dataport/internal/platform/logger"
)

type Config struct {
	// DataDir holds the JSON dumps: the exporter writes
	// <DataDir>/<collection>.json, the migrator reads spaces.json and
	// rooms.json from the same place.
	DataDir string

	// ExportWithSubcollections switches the exporter to the variant that
	// recurses one level into each document's subcollections.
	ExportWithSubcollections bool
}

func LoadConfig() Config {
	return Config{
		DataDir:                  envutil.String("DATA_DIR", "data"),
		ExportWithSubcollections: envutil.Bool("EXPORT_WITH_SUBCOLLECTIONS", false),
	}
}

func newLogger() (*logger.Logger, error) {
	return logger.New(envutil.String("LOG_MODE", "development"))
}
