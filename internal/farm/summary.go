package farm

import "aquafarm/internal/model"

// Summary is a dashboard snapshot of the farm.
type Summary struct {
	CagesByStatus map[model.CageStatus]int
	StockedFish   int // initial counts of occupied cages net of mortality
	TotalBatches  int
	TotalLines    int
	LowStockFeeds []model.FeedType
	LatestWater   *model.WaterLog
}

// Summarize computes the dashboard snapshot from the current aggregate.
func (s *FarmService) Summarize() Summary {
	sum := Summary{
		CagesByStatus: make(map[model.CageStatus]int),
		TotalBatches:  len(s.state.Batches),
		TotalLines:    len(s.state.Lines),
		LowStockFeeds: s.LowStockFeedTypes(),
	}

	deaths := make(map[string]int)
	for _, m := range s.state.MortalityLogs {
		deaths[m.CageID] += m.Count
	}

	for _, c := range s.state.Cages {
		sum.CagesByStatus[c.Status]++
		if c.Status == model.CageOccupied {
			fish := c.InitialFishCount - deaths[c.ID]
			if fish > 0 {
				sum.StockedFish += fish
			}
		}
	}

	if n := len(s.state.WaterLogs); n > 0 {
		latest := s.state.WaterLogs[n-1]
		sum.LatestWater = &latest
	}

	return sum
}
