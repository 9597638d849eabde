// Package save implements JSON serialization and deserialization of game state.
package save

import (
	"encoding/json"

	"github.com/jinsol/clubsim/engine/state"
	"github.com/jinsol/clubsim/types"
)

// SaveData is the JSON-serializable save format. Loading is forward
// compatible: keys missing from older saves fall back to preset defaults
// when applied.
type SaveData struct {
	Version        string                         `json:"version"`
	Game           string                         `json:"game"`
	Day            int                            `json:"day"`
	LastPlayed     string                         `json:"last_played"`
	ManualAdvances int                            `json:"manual_advances"`
	ActionPoints   int                            `json:"action_points"`
	MaxActionPts   int                            `json:"max_action_points"`
	Stats          map[string]int                 `json:"stats"`
	Resources      map[string]int                 `json:"resources"`
	Members        []types.Member                 `json:"members"`
	MaxMembers     int                            `json:"max_members"`
	Facilities     map[string]types.FacilityState `json:"facilities"`
	Scenario       types.ScenarioID               `json:"scenario"`
	DailyEventDone bool                           `json:"daily_event_done"`
	DailyBonus     map[string]int                 `json:"daily_bonus"`
	DailyActions   types.DailyActions             `json:"daily_actions"`
	ClubLevel      int                            `json:"club_level"`
	PendingMember  *types.Member                  `json:"pending_member,omitempty"`
	RNGSeed        int64                          `json:"rng_seed"`
	RNGPos         int64                          `json:"rng_pos"`
}

// Save serializes game state to JSON bytes.
func Save(s *types.State, defs *state.Defs) ([]byte, error) {
	data := SaveData{
		Version:        defs.Game.Version,
		Game:           defs.Game.Title,
		Day:            s.Day,
		LastPlayed:     s.LastPlayed,
		ManualAdvances: s.ManualAdvances,
		ActionPoints:   s.ActionPoints,
		MaxActionPts:   s.MaxActionPoints,
		Stats:          s.Stats,
		Resources:      s.Resources,
		Members:        s.Members,
		MaxMembers:     s.MaxMembers,
		Facilities:     s.Facilities,
		Scenario:       s.Scenario,
		DailyEventDone: s.DailyEventDone,
		DailyBonus:     s.DailyBonus,
		DailyActions:   s.DailyActions,
		ClubLevel:      s.ClubLevel,
		PendingMember:  s.PendingMember,
		RNGSeed:        s.RNGSeed,
		RNGPos:         s.RNGPos,
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	return &sd, nil
}

// Apply merges loaded save data onto a freshly initialized state. The state
// keeps its preset defaults for any key the save does not carry, so saves
// written by older presets keep loading after new stats or facilities land.
func Apply(s *types.State, sd *SaveData) {
	if sd.Day > 0 {
		s.Day = sd.Day
	}
	s.LastPlayed = sd.LastPlayed
	s.ManualAdvances = sd.ManualAdvances
	s.ActionPoints = sd.ActionPoints
	if sd.MaxActionPts > 0 {
		s.MaxActionPoints = sd.MaxActionPts
	}
	for k, v := range sd.Stats {
		s.Stats[k] = v
	}
	for k, v := range sd.Resources {
		s.Resources[k] = v
	}
	if sd.Members != nil {
		s.Members = sd.Members
	}
	if sd.MaxMembers > 0 {
		s.MaxMembers = sd.MaxMembers
	}
	for k, v := range sd.Facilities {
		s.Facilities[k] = v
	}
	if sd.Scenario != "" {
		s.Scenario = sd.Scenario
	}
	s.DailyEventDone = sd.DailyEventDone
	if sd.DailyBonus != nil {
		s.DailyBonus = sd.DailyBonus
	}
	s.DailyActions = sd.DailyActions
	s.ClubLevel = sd.ClubLevel
	s.PendingMember = sd.PendingMember
	s.RNGSeed = sd.RNGSeed
	s.RNGPos = sd.RNGPos
}
