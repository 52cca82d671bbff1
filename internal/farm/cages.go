package farm

import "aquafarm/internal/model"

// Cage status is an explicit state machine. Every legal move is a named
// operation that sets exactly the fields meaningful in the target state and
// clears the rest; arbitrary status writes are rejected.
//
//	Available -> Occupied     StockCage (batch assignment required)
//	Occupied  -> Available    HarvestCage (stamps the harvest date)
//	Available -> Maintenance  StartMaintenance (window dates)
//	Maintenance -> Available  FinishMaintenance
//	Available -> Cleaning     StartCleaning
//	Cleaning  -> Available    FinishCleaning

// AddCage registers a new cage, initially Available.
func (s *FarmService) AddCage(name, lineID string, dims model.Dimensions, capacity int) (model.Cage, error) {
	u, err := s.requireEditor()
	if err != nil {
		return model.Cage{}, err
	}
	if lineID != "" && findLine(s.state.Lines, lineID) < 0 {
		return model.Cage{}, ErrNotFound
	}

	cage := model.Cage{
		ID:               s.idgen.New(),
		LineID:           lineID,
		Name:             name,
		Dimensions:       dims,
		StockingCapacity: capacity,
		Status:           model.CageAvailable,
		UserID:           u.ID,
	}
	next := s.state.Clone()
	next.Cages = append(next.Cages, cage)
	if err := s.setState(next); err != nil {
		return model.Cage{}, err
	}
	return cage, nil
}

// ListCages returns all cages.
func (s *FarmService) ListCages() []model.Cage {
	return append([]model.Cage{}, s.state.Cages...)
}

// RemoveCage deletes a cage. Occupied cages must be harvested first.
func (s *FarmService) RemoveCage(id string) error {
	if _, err := s.requireEditor(); err != nil {
		return err
	}

	next := s.state.Clone()
	for i := range next.Cages {
		if next.Cages[i].ID == id {
			if next.Cages[i].Status == model.CageOccupied {
				return ErrIllegalTransition
			}
			next.Cages = append(next.Cages[:i], next.Cages[i+1:]...)
			return s.setState(next)
		}
	}
	return ErrNotFound
}

// StockCage moves an Available cage to Occupied, assigning the batch,
// initial fish count and settlement date that occupancy requires.
func (s *FarmService) StockCage(cageID, batchID string, fishCount int, settlementDate string) error {
	u, err := s.requireEditor()
	if err != nil {
		return err
	}
	if findBatch(s.state.Batches, batchID) < 0 {
		return ErrNotFound
	}
	if settlementDate == "" {
		settlementDate = s.clock.Now().UTC().Format("2006-01-02")
	}

	return s.transitionCage(cageID, model.CageAvailable, func(c *model.Cage) {
		c.Status = model.CageOccupied
		c.BatchID = batchID
		c.InitialFishCount = fishCount
		c.SettlementDate = settlementDate
		c.HarvestDate = ""
		c.UserID = u.ID
	})
}

// HarvestCage moves an Occupied cage back to Available, stamping the
// harvest date and clearing the occupancy fields.
func (s *FarmService) HarvestCage(cageID, harvestDate string) error {
	u, err := s.requireEditor()
	if err != nil {
		return err
	}
	if harvestDate == "" {
		harvestDate = s.clock.Now().UTC().Format("2006-01-02")
	}

	return s.transitionCage(cageID, model.CageOccupied, func(c *model.Cage) {
		c.Status = model.CageAvailable
		c.HarvestDate = harvestDate
		c.BatchID = ""
		c.InitialFishCount = 0
		c.SettlementDate = ""
		c.UserID = u.ID
	})
}

// StartMaintenance moves an Available cage to Maintenance with the given
// window.
func (s *FarmService) StartMaintenance(cageID, start, end string) error {
	u, err := s.requireEditor()
	if err != nil {
		return err
	}

	return s.transitionCage(cageID, model.CageAvailable, func(c *model.Cage) {
		c.Status = model.CageMaintenance
		c.MaintenanceStartDate = start
		c.MaintenanceEndDate = end
		c.UserID = u.ID
	})
}

// FinishMaintenance returns a Maintenance cage to Available and clears the
// window fields.
func (s *FarmService) FinishMaintenance(cageID string) error {
	u, err := s.requireEditor()
	if err != nil {
		return err
	}

	return s.transitionCage(cageID, model.CageMaintenance, func(c *model.Cage) {
		c.Status = model.CageAvailable
		c.MaintenanceStartDate = ""
		c.MaintenanceEndDate = ""
		c.UserID = u.ID
	})
}

// StartCleaning moves an Available cage to Cleaning.
func (s *FarmService) StartCleaning(cageID string) error {
	u, err := s.requireEditor()
	if err != nil {
		return err
	}

	return s.transitionCage(cageID, model.CageAvailable, func(c *model.Cage) {
		c.Status = model.CageCleaning
		c.UserID = u.ID
	})
}

// FinishCleaning returns a Cleaning cage to Available.
func (s *FarmService) FinishCleaning(cageID string) error {
	u, err := s.requireEditor()
	if err != nil {
		return err
	}

	return s.transitionCage(cageID, model.CageCleaning, func(c *model.Cage) {
		c.Status = model.CageAvailable
		c.UserID = u.ID
	})
}

// transitionCage applies mutate to the cage if it is currently in the
// required status, then replaces the aggregate.
func (s *FarmService) transitionCage(cageID string, from model.CageStatus, mutate func(*model.Cage)) error {
	next := s.state.Clone()
	for i := range next.Cages {
		if next.Cages[i].ID != cageID {
			continue
		}
		if next.Cages[i].Status != from {
			return ErrIllegalTransition
		}
		mutate(&next.Cages[i])
		return s.setState(next)
	}
	return ErrNotFound
}

func findLine(lines []model.Line, id string) int {
	for i := range lines {
		if lines[i].ID == id {
			return i
		}
	}
	return -1
}

func findBatch(batches []model.Batch, id string) int {
	for i := range batches {
		if batches[i].ID == id {
			return i
		}
	}
	return -1
}

func findCage(cages []model.Cage, id string) int {
	for i := range cages {
		if cages[i].ID == id {
			return i
		}
	}
	return -1
}
