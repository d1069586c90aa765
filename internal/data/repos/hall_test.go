package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/studyspot/dataport/internal/data/repos/testutil"
	"github.com/studyspot/dataport/internal/types"
)

func TestHallRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewHallRepo(db, testutil.Logger(t))
	ctx := context.Background()

	org := testutil.SeedOrganization(t, ctx, tx, "Studyspot", "studyspot")
	bld := testutil.SeedBuilding(t, ctx, tx, org.ID, "Phillips Hall")

	h := &types.Hall{
		ID:            uuid.New(),
		BuildingID:    bld.ID,
		SourceID:      "room-215",
		Name:          "Phillips 215",
		HasAVInputs:   true,
		HasPC:         false,
		HasWhiteboard: true,
		HasProjector:  true,
	}
	if err := repo.Create(ctx, tx, h); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByBuildingID(ctx, tx, bld.ID)
	if err != nil {
		t.Fatalf("GetByBuildingID: %v", err)
	}
	if len(got) != 1 || got[0].ID != h.ID {
		t.Fatalf("GetByBuildingID: unexpected result: %+v", got)
	}
	if !got[0].HasAVInputs || got[0].HasPC || !got[0].HasWhiteboard || !got[0].HasProjector {
		t.Fatalf("GetByBuildingID: equipment flags not round-tripped: %+v", got[0])
	}

	count, err := repo.Count(ctx, tx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("Count: expected 1, got %d", count)
	}

	if err := repo.DeleteAll(ctx, tx); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	count, err = repo.Count(ctx, tx)
	if err != nil {
		t.Fatalf("Count after DeleteAll: %v", err)
	}
	if count != 0 {
		t.Fatalf("Count after DeleteAll: expected 0, got %d", count)
	}
}
