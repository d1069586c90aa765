package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/studyspot/dataport/internal/types"
	"gorm.io/gorm"
)

func SeedOrganization(tb testing.TB, ctx context.Context, tx *gorm.DB, name, slug string) *types.Organization {
	tb.Helper()
	o := &types.Organization{
		ID:   uuid.New(),
		Name: name,
		Slug: slug,
	}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed organization: %v", err)
	}
	return o
}

func SeedBuilding(tb testing.TB, ctx context.Context, tx *gorm.DB, orgID uuid.UUID, name string) *types.Building {
	tb.Helper()
	b := &types.Building{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           name,
	}
	if err := tx.WithContext(ctx).Create(b).Error; err != nil {
		tb.Fatalf("seed building: %v", err)
	}
	return b
}

func SeedSpot(tb testing.TB, ctx context.Context, tx *gorm.DB, buildingID uuid.UUID, sourceID, name string) *types.Spot {
	tb.Helper()
	s := &types.Spot{
		ID:         uuid.New(),
		BuildingID: buildingID,
		SourceID:   sourceID,
		Name:       name,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed spot: %v", err)
	}
	return s
}

func SeedHall(tb testing.TB, ctx context.Context, tx *gorm.DB, buildingID uuid.UUID, sourceID, name string) *types.Hall {
	tb.Helper()
	h := &types.Hall{
		ID:         uuid.New(),
		BuildingID: buildingID,
		SourceID:   sourceID,
		Name:       name,
	}
	if err := tx.WithContext(ctx).Create(h).Error; err != nil {
		tb.Fatalf("seed hall: %v", err)
	}
	return h
}

func PtrUUID(v uuid.UUID) *uuid.UUID { return &v }

func PtrString(v string) *string { return &v }

func PtrInt(v int) *int { return &v }
