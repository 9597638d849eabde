// Package state holds the immutable game definitions (the preset) and
// constructs fresh runtime state from them.
package state

import "github.com/jinsol/clubsim/types"

// Defs holds the immutable definitions a game runs against. Built from the
// default preset or compiled from Lua preset files by the loader.
type Defs struct {
	Game      types.GameDef
	Stats     []types.StatDef
	Resources []types.ResourceDef

	Facilities    map[string]types.FacilityDef
	FacilityOrder []string // menu listing order

	Roster   []types.Member // starting members
	Recruits []types.Member // candidates for new-member offers
	Skills   map[string]types.Outcome

	Tables     map[string]types.OutcomeTable
	Moves      map[types.ActionID]types.Outcome // fixed single-outcome actions
	Thresholds []types.ThresholdRule
	Events     []types.DailyEvent
	Tiers      []types.RewardTier

	Balance  types.Balance
	Messages map[string]string
}

// Msg returns a named message template, or its key when undefined so a
// missing preset string is visible rather than silent.
func (d *Defs) Msg(key string) string {
	if m, ok := d.Messages[key]; ok {
		return m
	}
	return key
}

// NewState creates a fresh simulation state from definitions.
func NewState(defs *Defs) *types.State {
	s := &types.State{
		Day:             1,
		ActionPoints:    defs.Balance.ActionPoints,
		MaxActionPoints: defs.Balance.ActionPoints,
		Stats:           map[string]int{},
		Resources:       map[string]int{},
		MaxMembers:      defs.Balance.MaxMembers,
		Facilities:      map[string]types.FacilityState{},
		Scenario:        types.ScenarioIntro,
		DailyBonus:      map[string]int{},
		DailyActions:    types.DailyActions{ChattedWith: []string{}},
	}
	for _, sd := range defs.Stats {
		s.Stats[sd.Key] = sd.Start
	}
	for _, rd := range defs.Resources {
		s.Resources[rd.Key] = rd.Start
	}
	for key := range defs.Facilities {
		s.Facilities[key] = types.FacilityState{Built: false, Durability: 100}
	}
	s.Members = make([]types.Member, len(defs.Roster))
	copy(s.Members, defs.Roster)
	return s
}

// FindMember returns a pointer into the member slice, or nil.
func FindMember(s *types.State, id string) *types.Member {
	for i := range s.Members {
		if s.Members[i].ID == id {
			return &s.Members[i]
		}
	}
	return nil
}

// ClampFriendship bounds a friendship value to [0, 100].
func ClampFriendship(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ClampActionPoints bounds action points to [0, max].
func ClampActionPoints(s *types.State) {
	if s.ActionPoints < 0 {
		s.ActionPoints = 0
	}
	if s.ActionPoints > s.MaxActionPoints {
		s.ActionPoints = s.MaxActionPoints
	}
}

// CanAfford reports whether every resource in cost is available.
func CanAfford(s *types.State, cost map[string]int) bool {
	for res, amount := range cost {
		if s.Resources[res] < amount {
			return false
		}
	}
	return true
}

// SpendResources deducts a cost. Callers must check CanAfford first.
func SpendResources(s *types.State, cost map[string]int) {
	for res, amount := range cost {
		s.Resources[res] -= amount
	}
}

// TerminalScenario maps a depleted stat to its game-over scenario id.
func TerminalScenario(statKey string) types.ScenarioID {
	return types.ScenarioID(types.GameOverPrefix + statKey)
}
