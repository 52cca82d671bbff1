package farm_test

import (
	"errors"
	"testing"

	"aquafarm/internal/farm"
)

func TestRecordFeeding(t *testing.T) {
	t.Parallel()

	t.Run("decrements feed stock", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		_, batchID, cageID := stockSetup(t, svc)
		if err := svc.StockCage(cageID, batchID, 1500, ""); err != nil {
			t.Fatalf("StockCage() error = %v", err)
		}
		ft, err := svc.AddFeedType("Starter", 300, 1000, 20)
		if err != nil {
			t.Fatalf("AddFeedType() error = %v", err)
		}

		entry, err := svc.RecordFeeding(cageID, ft.ID, 25.5, "2024-01-15T08:00:00Z")
		if err != nil {
			t.Fatalf("RecordFeeding() error = %v", err)
		}
		if entry.Amount != 25.5 || entry.CageID != cageID {
			t.Errorf("entry = %+v, want amount and cage recorded", entry)
		}

		got := svc.ListFeedTypes()
		if got[0].TotalStock != 274.5 {
			t.Errorf("stock = %.1f, want 274.5", got[0].TotalStock)
		}
	})

	t.Run("insufficient stock rejected", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		_, batchID, cageID := stockSetup(t, svc)
		if err := svc.StockCage(cageID, batchID, 1500, ""); err != nil {
			t.Fatalf("StockCage() error = %v", err)
		}
		ft, err := svc.AddFeedType("Starter", 10, 1000, 20)
		if err != nil {
			t.Fatalf("AddFeedType() error = %v", err)
		}

		if _, err := svc.RecordFeeding(cageID, ft.ID, 11, ""); !errors.Is(err, farm.ErrInsufficientStock) {
			t.Errorf("error = %v, want ErrInsufficientStock", err)
		}
		if svc.ListFeedTypes()[0].TotalStock != 10 {
			t.Error("failed feeding must not touch the stock")
		}
	})

	t.Run("cage must be occupied", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		_, _, cageID := stockSetup(t, svc)
		ft, err := svc.AddFeedType("Starter", 300, 1000, 20)
		if err != nil {
			t.Fatalf("AddFeedType() error = %v", err)
		}

		if _, err := svc.RecordFeeding(cageID, ft.ID, 5, ""); !errors.Is(err, farm.ErrIllegalTransition) {
			t.Errorf("error = %v, want ErrIllegalTransition", err)
		}
	})

	t.Run("empty timestamp defaults to clock", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		_, batchID, cageID := stockSetup(t, svc)
		if err := svc.StockCage(cageID, batchID, 1500, ""); err != nil {
			t.Fatalf("StockCage() error = %v", err)
		}
		ft, err := svc.AddFeedType("Starter", 300, 1000, 20)
		if err != nil {
			t.Fatalf("AddFeedType() error = %v", err)
		}

		entry, err := svc.RecordFeeding(cageID, ft.ID, 5, "")
		if err != nil {
			t.Fatalf("RecordFeeding() error = %v", err)
		}
		if entry.Timestamp != "2024-01-15T10:30:00Z" {
			t.Errorf("Timestamp = %q, want the fixed clock time", entry.Timestamp)
		}
	})
}

func TestRecordMortality(t *testing.T) {
	t.Parallel()

	t.Run("appends entry", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		_, batchID, cageID := stockSetup(t, svc)
		if err := svc.StockCage(cageID, batchID, 1500, ""); err != nil {
			t.Fatalf("StockCage() error = %v", err)
		}

		entry, err := svc.RecordMortality(cageID, 12, "2024-01-20")
		if err != nil {
			t.Fatalf("RecordMortality() error = %v", err)
		}
		if entry.Count != 12 || entry.Date != "2024-01-20" {
			t.Errorf("entry = %+v", entry)
		}
	})

	t.Run("count must be positive", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		_, batchID, cageID := stockSetup(t, svc)
		if err := svc.StockCage(cageID, batchID, 1500, ""); err != nil {
			t.Fatalf("StockCage() error = %v", err)
		}

		if _, err := svc.RecordMortality(cageID, 0, ""); err == nil {
			t.Error("zero count should be rejected")
		}
		if _, err := svc.RecordMortality(cageID, -5, ""); err == nil {
			t.Error("negative count should be rejected")
		}
	})

	t.Run("cage must be occupied", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		_, _, cageID := stockSetup(t, svc)

		if _, err := svc.RecordMortality(cageID, 3, ""); !errors.Is(err, farm.ErrIllegalTransition) {
			t.Errorf("error = %v, want ErrIllegalTransition", err)
		}
	})
}

func TestRecordBiometry(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)
	_, batchID, cageID := stockSetup(t, svc)
	if err := svc.StockCage(cageID, batchID, 1500, ""); err != nil {
		t.Fatalf("StockCage() error = %v", err)
	}

	entry, err := svc.RecordBiometry(cageID, 35.4, "")
	if err != nil {
		t.Fatalf("RecordBiometry() error = %v", err)
	}
	if entry.AverageWeight != 35.4 {
		t.Errorf("AverageWeight = %.1f, want 35.4", entry.AverageWeight)
	}
	if entry.Date != "2024-01-15" {
		t.Errorf("Date = %q, want the clock date", entry.Date)
	}
}

func TestRecordWater(t *testing.T) {
	t.Parallel()

	t.Run("farm wide, no cage required", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		loginMaster(t, svc)

		entry, err := svc.RecordWater(27.5, 7.2, 5.8, 40, "2024-01-15", "06:00")
		if err != nil {
			t.Fatalf("RecordWater() error = %v", err)
		}
		if entry.Temperature != 27.5 || entry.PH != 7.2 {
			t.Errorf("entry = %+v", entry)
		}
	})

	t.Run("defaults date and time from clock", func(t *testing.T) {
		t.Parallel()
		svc, _, _ := newService(t)
		loginMaster(t, svc)

		entry, err := svc.RecordWater(27.5, 7.2, 5.8, 40, "", "")
		if err != nil {
			t.Fatalf("RecordWater() error = %v", err)
		}
		if entry.Date != "2024-01-15" || entry.Time != "10:30" {
			t.Errorf("entry defaults = %q %q, want 2024-01-15 10:30", entry.Date, entry.Time)
		}
	})
}
