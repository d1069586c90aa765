package services

import (
	"fmt"
	"time"

	"github.com/studyspot/dataport/internal/platform/logger"
)

// RunReport accumulates counters and non-fatal errors over one migration run.
// Per-record and per-image failures land here instead of aborting the run.
type RunReport struct {
	Organizations int
	Buildings     int
	Spots         int
	Halls         int
	SpotPhotos    int
	HallPhotos    int

	Errors []string

	startedAt time.Time
}

func NewRunReport() *RunReport {
	return &RunReport{startedAt: time.Now()}
}

func (r *RunReport) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *RunReport) Elapsed() time.Duration {
	return time.Since(r.startedAt)
}

// LogSummary emits the end-of-run accounting. Informational only; exit codes
// are decided by the caller.
func (r *RunReport) LogSummary(log *logger.Logger) {
	log.Info("Migration finished",
		"organizations", r.Organizations,
		"buildings", r.Buildings,
		"spots", r.Spots,
		"halls", r.Halls,
		"spot_photos", r.SpotPhotos,
		"hall_photos", r.HallPhotos,
		"errors", len(r.Errors),
		"elapsed", r.Elapsed().Round(time.Millisecond).String(),
	)
	for _, msg := range r.Errors {
		log.Warn("Migration error", "detail", msg)
	}
}
