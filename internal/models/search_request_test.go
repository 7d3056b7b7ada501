package models_test

import (
	"testing"

	"github.com/jcooper22-22/extreme-day-trip-finder/internal/models"
)

func TestNewSearchRequest_MissingParams(t *testing.T) {
	_, err := models.NewSearchRequest("", "200", "2025-08-20", "2025-08-21")
	if err == nil {
		t.Fatal("expected error for missing origin")
	}
	_, err = models.NewSearchRequest("STN", "200", "", "2025-08-21")
	if err == nil {
		t.Fatal("expected error for missing date_start")
	}
}

func TestValidate(t *testing.T) {
	req, err := models.NewSearchRequest("stn", "200", "2025-08-20", "2025-08-22")
	if err != nil {
		t.Fatal(err)
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.OriginIATA != "STN" {
		t.Fatalf("expected IATA-looking origin to resolve directly, got %q", req.OriginIATA)
	}
	if req.DateStart.Format("2006-01-02") != "2025-08-20" {
		t.Fatalf("unexpected start date: %v", req.DateStart)
	}
}

func TestValidate_AirportNameLeftUnresolved(t *testing.T) {
	req, err := models.NewSearchRequest("London Stansted Airport", "200", "2025-08-20", "2025-08-20")
	if err != nil {
		t.Fatal(err)
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// names are resolved by the HTTP layer against the registry
	if req.OriginIATA != "" {
		t.Fatalf("expected no IATA for a name, got %q", req.OriginIATA)
	}
}

func TestValidate_BadDates(t *testing.T) {
	req, err := models.NewSearchRequest("STN", "200", "20-08-2025", "2025-08-20")
	if err != nil {
		t.Fatal(err)
	}
	if err := req.Validate(); err == nil {
		t.Fatal("expected invalid date_start error")
	}
}

func TestValidate_ReversedRangeIsNotAnError(t *testing.T) {
	req, err := models.NewSearchRequest("STN", "200", "2025-08-22", "2025-08-20")
	if err != nil {
		t.Fatal(err)
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("reversed range should validate (scan just visits zero days), got %v", err)
	}
}

func TestValidate_BudgetNotCoercedHere(t *testing.T) {
	req, err := models.NewSearchRequest("STN", "not-a-number", "2025-08-20", "2025-08-20")
	if err != nil {
		t.Fatal(err)
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("budget coercion belongs to the finder, got %v", err)
	}
}
