package farm

import (
	"fmt"

	"aquafarm/internal/model"
)

// The four event logs are append-only. Each entry references the cage (for
// cage-scoped events) and the acting user, with a timestamp or date string
// supplied by the caller so that late data entry keeps its real-world time.

// RecordFeeding appends a feeding event and decrements the feed type's
// stock. The cage must be Occupied and the stock must cover the amount.
func (s *FarmService) RecordFeeding(cageID, feedTypeID string, amount float64, timestamp string) (model.FeedingLog, error) {
	u, err := s.requireEditor()
	if err != nil {
		return model.FeedingLog{}, err
	}
	if err := s.requireOccupiedCage(cageID); err != nil {
		return model.FeedingLog{}, err
	}
	if timestamp == "" {
		timestamp = s.clock.Now().UTC().Format("2006-01-02T15:04:05Z")
	}

	next := s.state.Clone()
	ftIdx := -1
	for i := range next.FeedTypes {
		if next.FeedTypes[i].ID == feedTypeID {
			ftIdx = i
			break
		}
	}
	if ftIdx < 0 {
		return model.FeedingLog{}, ErrNotFound
	}
	if next.FeedTypes[ftIdx].TotalStock < amount {
		return model.FeedingLog{}, ErrInsufficientStock
	}
	next.FeedTypes[ftIdx].TotalStock -= amount

	entry := model.FeedingLog{
		ID:         s.idgen.New(),
		CageID:     cageID,
		FeedTypeID: feedTypeID,
		Amount:     amount,
		Timestamp:  timestamp,
		UserID:     u.ID,
	}
	next.FeedingLogs = append(next.FeedingLogs, entry)
	if err := s.setState(next); err != nil {
		return model.FeedingLog{}, err
	}

	if next.FeedTypes[ftIdx].LowStock() {
		s.logger.Warn("feed stock below minimum", "feedType", next.FeedTypes[ftIdx].Name)
	}
	return entry, nil
}

// RecordMortality appends a mortality event for an Occupied cage.
func (s *FarmService) RecordMortality(cageID string, count int, date string) (model.MortalityLog, error) {
	u, err := s.requireEditor()
	if err != nil {
		return model.MortalityLog{}, err
	}
	if count <= 0 {
		return model.MortalityLog{}, fmt.Errorf("mortality count must be positive, got %d", count)
	}
	if err := s.requireOccupiedCage(cageID); err != nil {
		return model.MortalityLog{}, err
	}
	if date == "" {
		date = s.clock.Now().UTC().Format("2006-01-02")
	}

	entry := model.MortalityLog{
		ID:     s.idgen.New(),
		CageID: cageID,
		Count:  count,
		Date:   date,
		UserID: u.ID,
	}
	next := s.state.Clone()
	next.MortalityLogs = append(next.MortalityLogs, entry)
	if err := s.setState(next); err != nil {
		return model.MortalityLog{}, err
	}
	return entry, nil
}

// RecordBiometry appends an average-weight sampling for an Occupied cage.
func (s *FarmService) RecordBiometry(cageID string, averageWeight float64, date string) (model.BiometryLog, error) {
	u, err := s.requireEditor()
	if err != nil {
		return model.BiometryLog{}, err
	}
	if err := s.requireOccupiedCage(cageID); err != nil {
		return model.BiometryLog{}, err
	}
	if date == "" {
		date = s.clock.Now().UTC().Format("2006-01-02")
	}

	entry := model.BiometryLog{
		ID:            s.idgen.New(),
		CageID:        cageID,
		AverageWeight: averageWeight,
		Date:          date,
		UserID:        u.ID,
	}
	next := s.state.Clone()
	next.BiometryLogs = append(next.BiometryLogs, entry)
	if err := s.setState(next); err != nil {
		return model.BiometryLog{}, err
	}
	return entry, nil
}

// RecordWater appends a water quality measurement. Water readings are
// farm-wide, not cage-scoped.
func (s *FarmService) RecordWater(temperature, ph, oxygen, transparency float64, date, timeOfDay string) (model.WaterLog, error) {
	u, err := s.requireEditor()
	if err != nil {
		return model.WaterLog{}, err
	}
	now := s.clock.Now().UTC()
	if date == "" {
		date = now.Format("2006-01-02")
	}
	if timeOfDay == "" {
		timeOfDay = now.Format("15:04")
	}

	entry := model.WaterLog{
		ID:           s.idgen.New(),
		Date:         date,
		Time:         timeOfDay,
		Temperature:  temperature,
		PH:           ph,
		Oxygen:       oxygen,
		Transparency: transparency,
		UserID:       u.ID,
	}
	next := s.state.Clone()
	next.WaterLogs = append(next.WaterLogs, entry)
	if err := s.setState(next); err != nil {
		return model.WaterLog{}, err
	}
	return entry, nil
}

// requireOccupiedCage checks that the cage exists and currently holds fish.
func (s *FarmService) requireOccupiedCage(cageID string) error {
	idx := findCage(s.state.Cages, cageID)
	if idx < 0 {
		return ErrNotFound
	}
	if s.state.Cages[idx].Status != model.CageOccupied {
		return ErrIllegalTransition
	}
	return nil
}
