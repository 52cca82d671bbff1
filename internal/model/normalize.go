package model

import "strings"

// Normalize repairs an aggregate loaded from persisted data so it satisfies
// the full AppState shape, even when the blob predates later schema fields.
// It never fails: whatever is present wins, missing pieces get defaults.
func Normalize(s *AppState) {
	if s.Lines == nil {
		s.Lines = []Line{}
	}
	// Aggregates persisted before these collections existed lack the keys
	// entirely; they must come back present and empty, never absent.
	if s.Batches == nil {
		s.Batches = []Batch{}
	}
	if s.WaterLogs == nil {
		s.WaterLogs = []WaterLog{}
	}
	if s.Cages == nil {
		s.Cages = []Cage{}
	}
	if s.FeedTypes == nil {
		s.FeedTypes = []FeedType{}
	}
	if s.FeedingLogs == nil {
		s.FeedingLogs = []FeedingLog{}
	}
	if s.MortalityLogs == nil {
		s.MortalityLogs = []MortalityLog{}
	}
	if s.BiometryLogs == nil {
		s.BiometryLogs = []BiometryLog{}
	}

	if len(s.Users) == 0 {
		s.Users = []User{MasterUser()}
	}
	for i := range s.Users {
		if s.Users[i].Username == "" {
			s.Users[i].Username = DeriveUsername(s.Users[i].Name)
		}
	}

	for i := range s.FeedTypes {
		if s.FeedTypes[i].MaxCapacity == 0 {
			s.FeedTypes[i].MaxCapacity = 1000
		}
		if s.FeedTypes[i].MinStockPercentage == 0 {
			s.FeedTypes[i].MinStockPercentage = 20
		}
	}
}

// DeriveUsername builds a login name for legacy user records that predate
// the username field: the lower-cased first whitespace-delimited token of
// the display name.
func DeriveUsername(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
