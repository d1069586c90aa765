package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/studyspot/dataport/internal/data/repos/testutil"
	"github.com/studyspot/dataport/internal/types"
)

func TestBuildingRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewBuildingRepo(db, testutil.Logger(t))
	ctx := context.Background()

	org := testutil.SeedOrganization(t, ctx, tx, "Studyspot", "studyspot")

	b := &types.Building{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		Name:           "Davis Library",
	}
	if err := repo.Create(ctx, tx, b); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByName(ctx, tx, "Davis Library")
	if err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if got.ID != b.ID {
		t.Fatalf("GetByName: expected %s, got %s", b.ID, got.ID)
	}

	_, err = repo.GetByName(ctx, tx, "No Such Building")
	if err == nil {
		t.Fatalf("GetByName (missing): expected error")
	}
	if !IsNotFound(err) {
		t.Fatalf("GetByName (missing): expected not-found, got %v", err)
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
