package locator_test

import (
	"context"
	"testing"

	"github.com/pdv-survey-api/internal/apperr"
	"github.com/pdv-survey-api/internal/locator"
	"github.com/pdv-survey-api/internal/mocks"
)

func TestLocateSingleTab(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("Zona Norte", [][]string{
		{"ID", "Nombre"},
		{"101", "Kiosco A"},
		{"102", "Kiosco B"},
	})

	loc, err := locator.Locate(context.Background(), store, []string{"Zona Norte"}, "102")
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if loc.Sheet != "Zona Norte" || loc.Row != 3 {
		t.Errorf("Locate = {%s %d}, want {Zona Norte 3}", loc.Sheet, loc.Row)
	}
}

func TestLocateCaseInsensitive(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("Zona Norte", [][]string{
		{"ID"},
		{" ABC-9 "},
	})

	loc, err := locator.Locate(context.Background(), store, []string{"Zona Norte"}, "abc-9")
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if loc.Row != 2 {
		t.Errorf("Locate row = %d, want 2", loc.Row)
	}
}

func TestLocateScansTabsInOrder(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("Zona Norte", [][]string{
		{"ID"},
		{"101"},
	})
	store.SetTab("Zona Sur", [][]string{
		{"ID"},
		{"101"}, // same ID in a later tab
		{"205"},
	})

	loc, err := locator.Locate(context.Background(), store, []string{"Zona Norte", "Zona Sur"}, "101")
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if loc.Sheet != "Zona Norte" {
		t.Errorf("Locate picked %q, want the first tab in listing order", loc.Sheet)
	}

	loc, err = locator.Locate(context.Background(), store, []string{"Zona Norte", "Zona Sur"}, "205")
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if loc.Sheet != "Zona Sur" || loc.Row != 3 {
		t.Errorf("Locate = {%s %d}, want {Zona Sur 3}", loc.Sheet, loc.Row)
	}
}

func TestLocateMissIsNotFound(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("Zona Norte", [][]string{
		{"ID"},
		{"101"},
	})

	_, err := locator.Locate(context.Background(), store, []string{"Zona Norte"}, "999")
	if apperr.KindOf(err) != apperr.NotFound {
		t.Fatalf("Locate miss: err = %v, want NotFound", err)
	}

	appErr, _ := apperr.As(err)
	details, ok := appErr.Details.(locator.NotFoundDetails)
	if !ok {
		t.Fatalf("miss details have type %T", appErr.Details)
	}
	if details.SearchedID != "999" || details.TotalRows != 1 || details.SheetName != "Zona Norte" {
		t.Errorf("miss details = %+v", details)
	}
}

func TestLocateMissAcrossTabsListsThem(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("A", [][]string{{"ID"}, {"1"}})
	store.SetTab("B", [][]string{{"ID"}, {"2"}})

	_, err := locator.Locate(context.Background(), store, []string{"A", "B"}, "9")
	appErr, ok := apperr.As(err)
	if !ok {
		t.Fatalf("expected apperr, got %v", err)
	}
	details := appErr.Details.(locator.NotFoundDetails)
	if len(details.Tabs) != 2 || details.SheetName != "" {
		t.Errorf("multi-tab miss details = %+v", details)
	}
	if details.TotalRows != 2 {
		t.Errorf("TotalRows = %d, want 2", details.TotalRows)
	}
}

func TestNextID(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("ALTA PDV", [][]string{
		{"ID"},
		{"4279"},
		{"4300"},
		{"abc"}, // non-numeric cells count as zero
	})

	next, err := locator.NextID(context.Background(), store, "ALTA PDV", 4279)
	if err != nil {
		t.Fatalf("NextID failed: %v", err)
	}
	if next != 4301 {
		t.Errorf("NextID = %d, want 4301", next)
	}
}

func TestNextIDEmptyTabUsesFloor(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("ALTA PDV", [][]string{{"ID"}})

	next, err := locator.NextID(context.Background(), store, "ALTA PDV", 4279)
	if err != nil {
		t.Fatalf("NextID failed: %v", err)
	}
	if next != 4280 {
		t.Errorf("NextID on empty tab = %d, want 4280", next)
	}
}

func TestNextIDNeverBelowFloor(t *testing.T) {
	store := mocks.NewStore()
	store.SetTab("ALTA PDV", [][]string{
		{"ID"},
		{"12"},
	})

	next, err := locator.NextID(context.Background(), store, "ALTA PDV", 4279)
	if err != nil {
		t.Fatalf("NextID failed: %v", err)
	}
	if next != 4280 {
		t.Errorf("NextID with low IDs = %d, want 4280", next)
	}
}
