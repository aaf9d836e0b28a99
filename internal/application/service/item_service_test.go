package service

import (
	"context"
	"strings"
	"testing"

	"github.com/follonierjack89-bit/fte-facturation/internal/infrastructure/repository"
	"github.com/follonierjack89-bit/fte-facturation/pkg/apperror"
)

func newItemService(t *testing.T) *ItemService {
	t.Helper()
	return NewItemService(repository.NewItemRepository(newTestDB(t)))
}

func TestCreateItemRejectsDuplicateReference(t *testing.T) {
	items := newItemService(t)
	ctx := context.Background()

	if _, err := items.CreateItem(ctx, CreateItemInput{
		Reference:   "PAN-001",
		Description: "Panneau trois plis",
		UnitPrice:   dec("42.50"),
	}); err != nil {
		t.Fatalf("failed to create item: %v", err)
	}

	_, err := items.CreateItem(ctx, CreateItemInput{
		Reference:   "PAN-001",
		Description: "Autre panneau",
		UnitPrice:   dec("12.00"),
	})
	if err == nil {
		t.Fatal("expected a conflict error, got nil")
	}
	if appErr := apperror.GetAppError(err); appErr.Code != 409 {
		t.Errorf("error code = %d, want 409", appErr.Code)
	}
}

func TestDeleteItemFreesReference(t *testing.T) {
	items := newItemService(t)
	ctx := context.Background()

	first, err := items.CreateItem(ctx, CreateItemInput{
		Reference:   "PAN-001",
		Description: "Panneau trois plis",
		UnitPrice:   dec("42.50"),
	})
	if err != nil {
		t.Fatalf("failed to create item: %v", err)
	}
	if err := items.DeleteItem(ctx, first.ID); err != nil {
		t.Fatalf("failed to delete item: %v", err)
	}

	recreated, err := items.CreateItem(ctx, CreateItemInput{
		Reference:   "PAN-001",
		Description: "Panneau trois plis 19mm",
		UnitPrice:   dec("45.00"),
	})
	if err != nil {
		t.Fatalf("failed to recreate item with a deleted reference: %v", err)
	}
	if recreated.ID == first.ID {
		t.Error("recreated item reused the deleted row")
	}
}

func TestGetItemByReference(t *testing.T) {
	items := newItemService(t)
	ctx := context.Background()

	created, err := items.CreateItem(ctx, CreateItemInput{
		Reference:   "VIS-4x40",
		Description: "Vis torx 4x40",
		UnitPrice:   dec("0.15"),
	})
	if err != nil {
		t.Fatalf("failed to create item: %v", err)
	}

	found, err := items.GetItemByReference(ctx, "VIS-4x40")
	if err != nil {
		t.Fatalf("failed to look up item: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("found item %d, want %d", found.ID, created.ID)
	}

	if _, err := items.GetItemByReference(ctx, "missing"); err == nil {
		t.Error("expected a not found error for an unknown reference")
	}
}

func TestImportCSV(t *testing.T) {
	tests := []struct {
		name         string
		csv          string
		wantInserted int
		wantUpdated  int
		wantSkipped  int
	}{
		{
			name: "english headers",
			csv: "reference,description,price\n" +
				"PAN-001,Panneau trois plis,42.50\n" +
				"VIS-4x40,Vis torx 4x40,0.15\n",
			wantInserted: 2,
		},
		{
			name: "french headers with comma decimals",
			csv: "Article n°,Description,Prix unitaire\n" +
				"PAN-001,Panneau trois plis,\"42,50\"\n",
			wantInserted: 1,
		},
		{
			name: "rows without reference or price are skipped",
			csv: "reference,description,price\n" +
				",Sans référence,10.00\n" +
				"TAS-27,Tasseau 27x50,pas un prix\n" +
				"PAN-001,Panneau trois plis,42.50\n",
			wantInserted: 1,
			wantSkipped:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := newItemService(t)

			result, err := items.ImportCSV(context.Background(), strings.NewReader(tt.csv))
			if err != nil {
				t.Fatalf("import failed: %v", err)
			}
			if result.Inserted != tt.wantInserted {
				t.Errorf("inserted = %d, want %d", result.Inserted, tt.wantInserted)
			}
			if result.Updated != tt.wantUpdated {
				t.Errorf("updated = %d, want %d", result.Updated, tt.wantUpdated)
			}
			if result.Skipped != tt.wantSkipped {
				t.Errorf("skipped = %d, want %d", result.Skipped, tt.wantSkipped)
			}
		})
	}
}

func TestImportCSVUpdatesExistingItems(t *testing.T) {
	items := newItemService(t)
	ctx := context.Background()

	if _, err := items.CreateItem(ctx, CreateItemInput{
		Reference:       "PAN-001",
		Description:     "Panneau trois plis",
		UnitPrice:       dec("42.50"),
		DefaultQuantity: dec("5"),
	}); err != nil {
		t.Fatalf("failed to create item: %v", err)
	}

	csv := "reference,description,price\n" +
		"PAN-001,Panneau trois plis 19mm,45.00\n"
	result, err := items.ImportCSV(ctx, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if result.Updated != 1 || result.Inserted != 0 {
		t.Fatalf("result = %+v, want one update", result)
	}

	item, err := items.GetItemByReference(ctx, "PAN-001")
	if err != nil {
		t.Fatalf("failed to reload item: %v", err)
	}
	if item.Description != "Panneau trois plis 19mm" {
		t.Errorf("description = %q, want the imported one", item.Description)
	}
	if got := item.UnitPrice.StringFixed(2); got != "45.00" {
		t.Errorf("unit price = %s, want 45.00", got)
	}
	// Imports never touch the stored default quantity.
	if got := item.DefaultQuantity.StringFixed(0); got != "5" {
		t.Errorf("default quantity = %s, want 5", got)
	}
}

func TestImportCSVInsertsDeletedReference(t *testing.T) {
	items := newItemService(t)
	ctx := context.Background()

	item, err := items.CreateItem(ctx, CreateItemInput{
		Reference:   "PAN-001",
		Description: "Panneau trois plis",
		UnitPrice:   dec("42.50"),
	})
	if err != nil {
		t.Fatalf("failed to create item: %v", err)
	}
	if err := items.DeleteItem(ctx, item.ID); err != nil {
		t.Fatalf("failed to delete item: %v", err)
	}

	csv := "reference,description,price\n" +
		"PAN-001,Panneau trois plis,42.50\n" +
		"VIS-4x40,Vis torx 4x40,0.15\n"
	result, err := items.ImportCSV(ctx, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("import after delete failed: %v", err)
	}
	if result.Inserted != 2 || result.Updated != 0 || result.Skipped != 0 {
		t.Errorf("result = %+v, want two inserts", result)
	}
}

func TestImportCSVRejectsMissingColumns(t *testing.T) {
	items := newItemService(t)

	csv := "code,label\nPAN-001,Panneau\n"
	if _, err := items.ImportCSV(context.Background(), strings.NewReader(csv)); err == nil {
		t.Error("expected an error for missing columns")
	}
}
