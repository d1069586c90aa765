package repos

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/studyspot/dataport/internal/data/repos/testutil"
	"github.com/studyspot/dataport/internal/types"
)

func TestPhotoRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewPhotoRepo(db, testutil.Logger(t))
	ctx := context.Background()

	org := testutil.SeedOrganization(t, ctx, tx, "Studyspot", "studyspot")
	bld := testutil.SeedBuilding(t, ctx, tx, org.ID, "Davis Library")
	spot := testutil.SeedSpot(t, ctx, tx, bld.ID, "abc123", "Davis 2nd Floor Commons")
	hall := testutil.SeedHall(t, ctx, tx, bld.ID, "room-215", "Phillips 215")

	// Insert out of position order to check ListBySpotID sorts.
	for _, pos := range []int{2, 0, 1} {
		p := &types.Photo{
			ID:        uuid.New(),
			SpotID:    testutil.PtrUUID(spot.ID),
			BucketKey: fmt.Sprintf("organizations/x/photos/spots/abc123/%d.webp", pos),
			URL:       "https://storage.googleapis.com/bucket/key",
			Position:  pos,
		}
		if err := repo.Create(ctx, tx, p); err != nil {
			t.Fatalf("Create (spot photo %d): %v", pos, err)
		}
	}
	if err := repo.Create(ctx, tx, &types.Photo{
		ID:        uuid.New(),
		HallID:    testutil.PtrUUID(hall.ID),
		BucketKey: "organizations/x/photos/halls/room-215/0.webp",
		URL:       "https://storage.googleapis.com/bucket/key",
		Position:  0,
	}); err != nil {
		t.Fatalf("Create (hall photo): %v", err)
	}

	spotPhotos, err := repo.ListBySpotID(ctx, tx, spot.ID)
	if err != nil {
		t.Fatalf("ListBySpotID: %v", err)
	}
	if len(spotPhotos) != 3 {
		t.Fatalf("ListBySpotID: expected 3 photos, got %d", len(spotPhotos))
	}
	for i, p := range spotPhotos {
		if p.Position != i {
			t.Fatalf("ListBySpotID: expected position %d at index %d, got %d", i, i, p.Position)
		}
	}

	hallPhotos, err := repo.ListByHallID(ctx, tx, hall.ID)
	if err != nil {
		t.Fatalf("ListByHallID: %v", err)
	}
	if len(hallPhotos) != 1 {
		t.Fatalf("ListByHallID: expected 1 photo, got %d", len(hallPhotos))
	}

	count, err := repo.Count(ctx, tx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 4 {
		t.Fatalf("Count: expected 4, got %d", count)
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
