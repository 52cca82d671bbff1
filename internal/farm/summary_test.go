package farm_test

import (
	"testing"

	"aquafarm/internal/model"
)

func TestSummarize(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)
	_, batchID, cageID := stockSetup(t, svc)

	// A second cage left available, a third under cleaning.
	if _, err := svc.AddCage("Cage 2", "", model.Dimensions{}, 1000); err != nil {
		t.Fatalf("AddCage() error = %v", err)
	}
	cleaning, err := svc.AddCage("Cage 3", "", model.Dimensions{}, 1000)
	if err != nil {
		t.Fatalf("AddCage() error = %v", err)
	}
	if err := svc.StartCleaning(cleaning.ID); err != nil {
		t.Fatalf("StartCleaning() error = %v", err)
	}

	if err := svc.StockCage(cageID, batchID, 1500, ""); err != nil {
		t.Fatalf("StockCage() error = %v", err)
	}
	if _, err := svc.RecordMortality(cageID, 100, ""); err != nil {
		t.Fatalf("RecordMortality() error = %v", err)
	}

	if _, err := svc.AddFeedType("Scarce", 50, 1000, 20); err != nil {
		t.Fatalf("AddFeedType() error = %v", err)
	}
	if _, err := svc.RecordWater(27.5, 7.2, 5.8, 40, "2024-01-15", "06:00"); err != nil {
		t.Fatalf("RecordWater() error = %v", err)
	}

	sum := svc.Summarize()

	if sum.TotalLines != 1 || sum.TotalBatches != 1 {
		t.Errorf("totals = %d lines / %d batches, want 1/1", sum.TotalLines, sum.TotalBatches)
	}
	if sum.CagesByStatus[model.CageOccupied] != 1 {
		t.Errorf("occupied = %d, want 1", sum.CagesByStatus[model.CageOccupied])
	}
	if sum.CagesByStatus[model.CageAvailable] != 1 {
		t.Errorf("available = %d, want 1", sum.CagesByStatus[model.CageAvailable])
	}
	if sum.CagesByStatus[model.CageCleaning] != 1 {
		t.Errorf("cleaning = %d, want 1", sum.CagesByStatus[model.CageCleaning])
	}
	if sum.StockedFish != 1400 {
		t.Errorf("StockedFish = %d, want 1500 - 100 deaths = 1400", sum.StockedFish)
	}
	if len(sum.LowStockFeeds) != 1 || sum.LowStockFeeds[0].Name != "Scarce" {
		t.Errorf("LowStockFeeds = %+v, want the scarce feed", sum.LowStockFeeds)
	}
	if sum.LatestWater == nil || sum.LatestWater.Temperature != 27.5 {
		t.Errorf("LatestWater = %+v, want the recorded reading", sum.LatestWater)
	}
}
