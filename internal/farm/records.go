package farm

import "aquafarm/internal/model"

// Lines, batches and feed types share the same simple lifecycle: created by
// a form submission with a fresh identifier, replaced in place on update,
// physically removed from the aggregate on delete.

// AddLine registers a new line.
func (s *FarmService) AddLine(name string) (model.Line, error) {
	u, err := s.requireEditor()
	if err != nil {
		return model.Line{}, err
	}

	line := model.Line{ID: s.idgen.New(), Name: name, UserID: u.ID}
	next := s.state.Clone()
	next.Lines = append(next.Lines, line)
	if err := s.setState(next); err != nil {
		return model.Line{}, err
	}
	return line, nil
}

// ListLines returns all lines.
func (s *FarmService) ListLines() []model.Line {
	return append([]model.Line{}, s.state.Lines...)
}

// RemoveLine deletes a line. Cages keep their lineId reference; dangling
// references are tolerated the same way the rest of the aggregate tolerates
// partial data.
func (s *FarmService) RemoveLine(id string) error {
	if _, err := s.requireEditor(); err != nil {
		return err
	}

	next := s.state.Clone()
	for i := range next.Lines {
		if next.Lines[i].ID == id {
			next.Lines = append(next.Lines[:i], next.Lines[i+1:]...)
			return s.setState(next)
		}
	}
	return ErrNotFound
}

// AddBatch registers a new fish cohort.
func (s *FarmService) AddBatch(name, settlementDate string, quantity int, unitWeight float64) (model.Batch, error) {
	u, err := s.requireEditor()
	if err != nil {
		return model.Batch{}, err
	}

	batch := model.Batch{
		ID:                s.idgen.New(),
		Name:              name,
		SettlementDate:    settlementDate,
		InitialQuantity:   quantity,
		InitialUnitWeight: unitWeight,
		UserID:            u.ID,
	}
	next := s.state.Clone()
	next.Batches = append(next.Batches, batch)
	if err := s.setState(next); err != nil {
		return model.Batch{}, err
	}
	return batch, nil
}

// ListBatches returns all batches.
func (s *FarmService) ListBatches() []model.Batch {
	return append([]model.Batch{}, s.state.Batches...)
}

// RemoveBatch deletes a batch. Batches referenced by an occupied cage
// cannot be removed.
func (s *FarmService) RemoveBatch(id string) error {
	if _, err := s.requireEditor(); err != nil {
		return err
	}
	for _, c := range s.state.Cages {
		if c.Status == model.CageOccupied && c.BatchID == id {
			return ErrIllegalTransition
		}
	}

	next := s.state.Clone()
	for i := range next.Batches {
		if next.Batches[i].ID == id {
			next.Batches = append(next.Batches[:i], next.Batches[i+1:]...)
			return s.setState(next)
		}
	}
	return ErrNotFound
}

// AddFeedType registers a feed product. Zero maxCapacity or
// minStockPercentage fall back to the schema defaults.
func (s *FarmService) AddFeedType(name string, totalStock, maxCapacity, minStockPercentage float64) (model.FeedType, error) {
	u, err := s.requireEditor()
	if err != nil {
		return model.FeedType{}, err
	}

	if maxCapacity == 0 {
		maxCapacity = 1000
	}
	if minStockPercentage == 0 {
		minStockPercentage = 20
	}
	ft := model.FeedType{
		ID:                 s.idgen.New(),
		Name:               name,
		TotalStock:         totalStock,
		MaxCapacity:        maxCapacity,
		MinStockPercentage: minStockPercentage,
		UserID:             u.ID,
	}
	next := s.state.Clone()
	next.FeedTypes = append(next.FeedTypes, ft)
	if err := s.setState(next); err != nil {
		return model.FeedType{}, err
	}
	return ft, nil
}

// ListFeedTypes returns all feed products.
func (s *FarmService) ListFeedTypes() []model.FeedType {
	return append([]model.FeedType{}, s.state.FeedTypes...)
}

// RestockFeed adds amount (kg) to a feed type's stock.
func (s *FarmService) RestockFeed(id string, amount float64) error {
	if _, err := s.requireEditor(); err != nil {
		return err
	}

	next := s.state.Clone()
	for i := range next.FeedTypes {
		if next.FeedTypes[i].ID == id {
			next.FeedTypes[i].TotalStock += amount
			return s.setState(next)
		}
	}
	return ErrNotFound
}

// RemoveFeedType deletes a feed product.
func (s *FarmService) RemoveFeedType(id string) error {
	if _, err := s.requireEditor(); err != nil {
		return err
	}

	next := s.state.Clone()
	for i := range next.FeedTypes {
		if next.FeedTypes[i].ID == id {
			next.FeedTypes = append(next.FeedTypes[:i], next.FeedTypes[i+1:]...)
			return s.setState(next)
		}
	}
	return ErrNotFound
}

// LowStockFeedTypes returns feed products whose stock has fallen below
// their configured minimum percentage of capacity.
func (s *FarmService) LowStockFeedTypes() []model.FeedType {
	var low []model.FeedType
	for _, ft := range s.state.FeedTypes {
		if ft.LowStock() {
			low = append(low, ft)
		}
	}
	return low
}
