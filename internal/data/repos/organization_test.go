package repos

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/studyspot/dataport/internal/data/repos/testutil"
	"github.com/studyspot/dataport/internal/types"
)

func TestOrganizationRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewOrganizationRepo(db, testutil.Logger(t))
	ctx := context.Background()

	org := &types.Organization{
		ID:   uuid.New(),
		Name: "Studyspot",
		Slug: "studyspot",
	}
	if err := repo.Create(ctx, tx, org); err != nil {
		t.Fatalf("Create: %v", err)
	}

	count, err := repo.Count(ctx, tx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("Count: expected 1, got %d", count)
	}

	if err := tx.SavePoint("dup").Error; err != nil {
		t.Fatalf("SavePoint: %v", err)
	}
	dup := &types.Organization{
		ID:   uuid.New(),
		Name: "Studyspot",
		Slug: "studyspot",
	}
	if err := repo.Create(ctx, tx, dup); err == nil {
		t.Fatalf("Create (duplicate slug): expected error")
	} else if !IsUniqueViolation(err) {
		t.Fatalf("Create (duplicate slug): expected unique violation, got %v", err)
	}
	if err := tx.RollbackTo("dup").Error; err != nil {
		t.Fatalf("RollbackTo: %v", err)
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
