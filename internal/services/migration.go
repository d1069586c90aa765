package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/studyspot/dataport/internal/data/repos"
	"github.com/studyspot/dataport/internal/normalization"
	"github.com/studyspot/dataport/internal/platform/gcp"
	"github.com/studyspot/dataport/internal/platform/logger"
	"github.com/studyspot/dataport/internal/types"
	"gorm.io/gorm"
)

// OrganizationName is the single tenant every migrated row belongs to.
const OrganizationName = "Studyspot"

// MigrationService is the transform-and-load half of the port: it reads the
// JSON dumps, rebuilds the relational schema from scratch and moves every
// record's photos into object storage. One call, strictly sequential.
type MigrationService interface {
	Run(ctx context.Context) (*RunReport, error)
}

type migrationService struct {
	db           *gorm.DB
	log          *logger.Logger
	orgRepo      repos.OrganizationRepo
	buildingRepo repos.BuildingRepo
	spotRepo     repos.SpotRepo
	hallRepo     repos.HallRepo
	photoRepo    repos.PhotoRepo
	photos       PhotoService
	bucket       gcp.BucketService
	dataDir      string
}

func NewMigrationService(
	db *gorm.DB,
	log *logger.Logger,
	orgRepo repos.OrganizationRepo,
	buildingRepo repos.BuildingRepo,
	spotRepo repos.SpotRepo,
	hallRepo repos.HallRepo,
	photoRepo repos.PhotoRepo,
	photos PhotoService,
	bucket gcp.BucketService,
	dataDir string,
) MigrationService {
	return &migrationService{
		db:           db,
		log:          log.With("service", "MigrationService"),
		orgRepo:      orgRepo,
		buildingRepo: buildingRepo,
		spotRepo:     spotRepo,
		hallRepo:     hallRepo,
		photoRepo:    photoRepo,
		photos:       photos,
		bucket:       bucket,
		dataDir:      dataDir,
	}
}

// Run executes one full-replacement pass. All relational work happens inside
// a single transaction: a fatal mid-run failure rolls back to the previous
// contents instead of leaving a half-populated store. Bucket uploads are side
// effects outside that boundary. Per-record and per-image failures are
// collected on the report and never abort the run.
func (ms *migrationService) Run(ctx context.Context) (*RunReport, error) {
	spaces, err := LoadSpaceRecords(filepath.Join(ms.dataDir, "spaces.json"))
	if err != nil {
		return nil, err
	}
	rooms, err := LoadRoomRecords(filepath.Join(ms.dataDir, "rooms.json"))
	if err != nil {
		return nil, err
	}
	ms.log.Info("Source dumps loaded", "spaces", len(spaces), "rooms", len(rooms))

	if err := ms.bucket.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	report := NewRunReport()
	if err := ms.db.Transaction(func(tx *gorm.DB) error {
		return ms.runInTx(ctx, tx, spaces, rooms, report)
	}); err != nil {
		return nil, err
	}
	return report, nil
}

func (ms *migrationService) runInTx(ctx context.Context, tx *gorm.DB, spaces []types.SpaceRecord, rooms []types.RoomRecord, report *RunReport) error {
	if err := ms.clearDestination(ctx, tx); err != nil {
		return err
	}

	org := &types.Organization{
		ID:   uuid.New(),
		Name: OrganizationName,
		Slug: normalization.Slugify(OrganizationName),
	}
	if err := ms.orgRepo.Create(ctx, tx, org); err != nil {
		return fmt.Errorf("create organization: %w", err)
	}
	report.Organizations++

	buildingIDs := ms.createBuildings(ctx, tx, org.ID, spaces, rooms, report)
	migratedSpots := ms.createSpots(ctx, tx, buildingIDs, spaces, report)
	migratedHalls := ms.createHalls(ctx, tx, buildingIDs, rooms, report)

	for _, m := range migratedSpots {
		ms.photos.MigrateSpotPhotos(ctx, tx, org.ID, m.spot, m.images, report)
	}
	for _, m := range migratedHalls {
		ms.photos.MigrateHallPhotos(ctx, tx, org.ID, m.hall, m.images, report)
	}
	return nil
}

// clearDestination empties every destination table in child-to-parent order.
func (ms *migrationService) clearDestination(ctx context.Context, tx *gorm.DB) error {
	ms.log.Info("Clearing destination tables")
	if err := ms.photoRepo.DeleteAll(ctx, tx); err != nil {
		return fmt.Errorf("clear photo: %w", err)
	}
	if err := ms.spotRepo.DeleteAll(ctx, tx); err != nil {
		return fmt.Errorf("clear spot: %w", err)
	}
	if err := ms.hallRepo.DeleteAll(ctx, tx); err != nil {
		return fmt.Errorf("clear hall: %w", err)
	}
	if err := ms.buildingRepo.DeleteAll(ctx, tx); err != nil {
		return fmt.Errorf("clear building: %w", err)
	}
	if err := ms.orgRepo.DeleteAll(ctx, tx); err != nil {
		return fmt.Errorf("clear organization: %w", err)
	}
	return nil
}

// createBuildings collects the distinct normalized building names across both
// datasets (first-seen order) and creates one Building per name, returning
// the name → id lookup used by the record stages.
func (ms *migrationService) createBuildings(ctx context.Context, tx *gorm.DB, orgID uuid.UUID, spaces []types.SpaceRecord, rooms []types.RoomRecord, report *RunReport) map[string]uuid.UUID {
	var names []string
	seen := make(map[string]struct{})
	collect := func(raw string) {
		name := normalization.CanonicalBuildingName(raw)
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, rec := range spaces {
		collect(rec.Building)
	}
	for _, rec := range rooms {
		collect(rec.Building)
	}

	ids := make(map[string]uuid.UUID, len(names))
	for _, name := range names {
		b := &types.Building{
			ID:             uuid.New(),
			OrganizationID: orgID,
			Name:           name,
		}
		if err := attempt(tx, func() error {
			return ms.buildingRepo.Create(ctx, tx, b)
		}); err != nil {
			report.AddError("create building %q: %v", name, err)
			continue
		}
		ids[name] = b.ID
		report.Buildings++
	}
	ms.log.Info("Buildings created", "count", report.Buildings)
	return ids
}

type migratedSpot struct {
	spot   *types.Spot
	images []string
}

func (ms *migrationService) createSpots(ctx context.Context, tx *gorm.DB, buildingIDs map[string]uuid.UUID, spaces []types.SpaceRecord, report *RunReport) []migratedSpot {
	out := make([]migratedSpot, 0, len(spaces))
	for _, rec := range spaces {
		buildingID, ok := buildingIDs[normalization.CanonicalBuildingName(rec.Building)]
		if !ok {
			report.AddError("spot %s (%s): building %q not found", rec.ID, rec.Name, rec.Building)
			continue
		}
		spot := mapSpaceRecord(rec, buildingID)
		if err := attempt(tx, func() error {
			return ms.spotRepo.Create(ctx, tx, spot)
		}); err != nil {
			report.AddError("create spot %s (%s): %v", rec.ID, rec.Name, err)
			continue
		}
		report.Spots++
		out = append(out, migratedSpot{spot: spot, images: rec.Images})
	}
	ms.log.Info("Spots created", "count", report.Spots)
	return out
}

type migratedHall struct {
	hall   *types.Hall
	images []string
}

func (ms *migrationService) createHalls(ctx context.Context, tx *gorm.DB, buildingIDs map[string]uuid.UUID, rooms []types.RoomRecord, report *RunReport) []migratedHall {
	out := make([]migratedHall, 0, len(rooms))
	for _, rec := range rooms {
		buildingID, ok := buildingIDs[normalization.CanonicalBuildingName(rec.Building)]
		if !ok {
			report.AddError("hall %s (%s): building %q not found", rec.ID, rec.Name, rec.Building)
			continue
		}
		hall := mapRoomRecord(rec, buildingID)
		if err := attempt(tx, func() error {
			return ms.hallRepo.Create(ctx, tx, hall)
		}); err != nil {
			report.AddError("create hall %s (%s): %v", rec.ID, rec.Name, err)
			continue
		}
		report.Halls++
		out = append(out, migratedHall{hall: hall, images: rec.Images})
	}
	ms.log.Info("Halls created", "count", report.Halls)
	return out
}

// attempt runs fn inside a savepoint so a failed insert cannot poison the
// rest of the enclosing transaction.
func attempt(tx *gorm.DB, fn func() error) error {
	if tx == nil {
		return fn()
	}
	if err := tx.SavePoint("attempt").Error; err != nil {
		return err
	}
	if err := fn(); err != nil {
		if rbErr := tx.RollbackTo("attempt").Error; rbErr != nil {
			return fmt.Errorf("%w (rollback to savepoint: %v)", err, rbErr)
		}
		return err
	}
	return nil
}
