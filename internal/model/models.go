package model

// User is a farm operator account. Passwords are stored and compared as
// plain values for compatibility with data written by earlier versions;
// see DESIGN.md for the named security gap.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsMaster bool   `json:"isMaster,omitempty"`
	CanEdit  bool   `json:"canEdit"`
}

// Line is a physical grouping of cages. UserID records who registered it.
type Line struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	UserID string `json:"userId,omitempty"`
}

// Batch is a cohort of fish stocked together.
type Batch struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	SettlementDate    string  `json:"settlementDate"`
	InitialQuantity   int     `json:"initialQuantity"`
	InitialUnitWeight float64 `json:"initialUnitWeight"` // grams
	UserID            string  `json:"userId,omitempty"`
}

// CageStatus is the lifecycle state of a cage. Transitions between states
// go through the service layer, which rejects illegal moves.
type CageStatus string

const (
	CageAvailable   CageStatus = "Available"
	CageOccupied    CageStatus = "Occupied"
	CageMaintenance CageStatus = "Maintenance"
	CageCleaning    CageStatus = "Cleaning"
)

// Valid reports whether s is one of the four known cage states.
func (s CageStatus) Valid() bool {
	switch s {
	case CageAvailable, CageOccupied, CageMaintenance, CageCleaning:
		return true
	}
	return false
}

// Dimensions are the physical measurements of a cage, in meters.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
}

// Cage is a stocking unit within a line.
// BatchID, InitialFishCount and SettlementDate are only meaningful while
// Status is Occupied; the maintenance window fields only while Maintenance.
type Cage struct {
	ID               string     `json:"id"`
	LineID           string     `json:"lineId,omitempty"`
	Name             string     `json:"name"`
	Dimensions       Dimensions `json:"dimensions"`
	StockingCapacity int        `json:"stockingCapacity"`
	Status           CageStatus `json:"status"`
	UserID           string     `json:"userId,omitempty"`

	MaintenanceStartDate string `json:"maintenanceStartDate,omitempty"`
	MaintenanceEndDate   string `json:"maintenanceEndDate,omitempty"`

	BatchID          string `json:"batchId,omitempty"`
	InitialFishCount int    `json:"initialFishCount,omitempty"`
	SettlementDate   string `json:"settlementDate,omitempty"`
	HarvestDate      string `json:"harvestDate,omitempty"`
}

// FeedType is a feed product tracked in inventory.
type FeedType struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	TotalStock         float64 `json:"totalStock"`
	MaxCapacity        float64 `json:"maxCapacity"`
	MinStockPercentage float64 `json:"minStockPercentage"`
	UserID             string  `json:"userId,omitempty"`
}

// LowStock reports whether the remaining stock is below the configured
// minimum percentage of capacity.
func (f FeedType) LowStock() bool {
	if f.MaxCapacity <= 0 {
		return false
	}
	return f.TotalStock < f.MaxCapacity*f.MinStockPercentage/100
}

// FeedingLog records one feeding event on a cage.
type FeedingLog struct {
	ID         string  `json:"id"`
	CageID     string  `json:"cageId"`
	FeedTypeID string  `json:"feedTypeId"`
	Amount     float64 `json:"amount"` // kg
	Timestamp  string  `json:"timestamp"`
	UserID     string  `json:"userId"`
}

// MortalityLog records fish deaths observed in a cage.
type MortalityLog struct {
	ID     string `json:"id"`
	CageID string `json:"cageId"`
	Count  int    `json:"count"`
	Date   string `json:"date"`
	UserID string `json:"userId"`
}

// BiometryLog records an average-weight sampling of a cage.
type BiometryLog struct {
	ID            string  `json:"id"`
	CageID        string  `json:"cageId"`
	AverageWeight float64 `json:"averageWeight"` // grams
	Date          string  `json:"date"`
	UserID        string  `json:"userId"`
}

// WaterLog records a water quality measurement.
type WaterLog struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Temperature  float64 `json:"temperature"`
	PH           float64 `json:"ph"`
	Oxygen       float64 `json:"oxygen"`
	Transparency float64 `json:"transparency"`
	UserID       string  `json:"userId"`
}

// AppState is the aggregate holding every collection. It is the sole unit
// of persistence: mutation means replacing the whole aggregate.
type AppState struct {
	Users         []User         `json:"users"`
	Lines         []Line         `json:"lines"`
	Batches       []Batch        `json:"batches"`
	Cages         []Cage         `json:"cages"`
	FeedTypes     []FeedType     `json:"feedTypes"`
	FeedingLogs   []FeedingLog   `json:"feedingLogs"`
	MortalityLogs []MortalityLog `json:"mortalityLogs"`
	BiometryLogs  []BiometryLog  `json:"biometryLogs"`
	WaterLogs     []WaterLog     `json:"waterLogs"`
	LastSync      string         `json:"lastSync,omitempty"`
}

// MasterUser is the seeded administrator present in the default aggregate.
func MasterUser() User {
	return User{
		ID:       "master-001",
		Name:     "Master Administrator",
		Username: "admin",
		Phone:    "00000000000",
		Email:    "master@farm.local",
		Password: "admin",
		IsMaster: true,
		CanEdit:  true,
	}
}

// DefaultState returns the canonical default aggregate: the seeded master
// user and every other collection present but empty.
func DefaultState() *AppState {
	return &AppState{
		Users:         []User{MasterUser()},
		Lines:         []Line{},
		Batches:       []Batch{},
		Cages:         []Cage{},
		FeedTypes:     []FeedType{},
		FeedingLogs:   []FeedingLog{},
		MortalityLogs: []MortalityLog{},
		BiometryLogs:  []BiometryLog{},
		WaterLogs:     []WaterLog{},
	}
}

// Clone returns a deep copy of the aggregate. Callers mutate the copy and
// hand it back through the service's replace-state entry point.
func (s *AppState) Clone() *AppState {
	if s == nil {
		return nil
	}
	return &AppState{
		Users:         append([]User{}, s.Users...),
		Lines:         append([]Line{}, s.Lines...),
		Batches:       append([]Batch{}, s.Batches...),
		Cages:         append([]Cage{}, s.Cages...),
		FeedTypes:     append([]FeedType{}, s.FeedTypes...),
		FeedingLogs:   append([]FeedingLog{}, s.FeedingLogs...),
		MortalityLogs: append([]MortalityLog{}, s.MortalityLogs...),
		BiometryLogs:  append([]BiometryLog{}, s.BiometryLogs...),
		WaterLogs:     append([]WaterLog{}, s.WaterLogs...),
		LastSync:      s.LastSync,
	}
}
