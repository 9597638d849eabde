package save

import (
	"encoding/json"
	"testing"

	"github.com/jinsol/clubsim/engine/state"
	"github.com/jinsol/clubsim/types"
)

func TestRoundTrip(t *testing.T) {
	defs := state.DefaultDefs()
	s := state.NewState(defs)

	s.Day = 7
	s.LastPlayed = "2024-03-15"
	s.ManualAdvances = 2
	s.ActionPoints = 4
	s.Stats["harmony"] = 62
	s.Resources["funds"] = 33
	s.Members[0].Friendship = 88
	s.Facilities["pantry"] = types.FacilityState{Built: true, Durability: 77}
	s.Scenario = types.ScenarioDispute
	s.DailyEventDone = true
	s.ClubLevel = 2
	s.RNGSeed = 20240315007
	s.RNGPos = 41
	recruit := defs.Recruits[0]
	s.PendingMember = &recruit

	data, err := Save(s, defs)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	sd, err := Load(data)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s2 := state.NewState(defs)
	Apply(s2, sd)

	if s2.Day != 7 || s2.LastPlayed != "2024-03-15" || s2.ManualAdvances != 2 {
		t.Fatalf("calendar fields lost: day=%d last=%q adv=%d", s2.Day, s2.LastPlayed, s2.ManualAdvances)
	}
	if s2.ActionPoints != 4 {
		t.Fatalf("action points = %d, want 4", s2.ActionPoints)
	}
	if s2.Stats["harmony"] != 62 || s2.Resources["funds"] != 33 {
		t.Fatalf("stats/resources lost: harmony=%d funds=%d", s2.Stats["harmony"], s2.Resources["funds"])
	}
	if s2.Members[0].Friendship != 88 {
		t.Fatalf("friendship = %d, want 88", s2.Members[0].Friendship)
	}
	if fs := s2.Facilities["pantry"]; !fs.Built || fs.Durability != 77 {
		t.Fatalf("pantry = %+v, want built at 77", fs)
	}
	if s2.Scenario != types.ScenarioDispute {
		t.Fatalf("scenario = %q, want dispute", s2.Scenario)
	}
	if s2.RNGSeed != 20240315007 || s2.RNGPos != 41 {
		t.Fatalf("rng stream lost: seed=%d pos=%d", s2.RNGSeed, s2.RNGPos)
	}
	if s2.PendingMember == nil || s2.PendingMember.Name != recruit.Name {
		t.Fatalf("pending member lost: %+v", s2.PendingMember)
	}
	if s2.ClubLevel != 2 {
		t.Fatalf("club level = %d, want 2", s2.ClubLevel)
	}
}

// Menu ids are part of the save format; a renamed id would orphan the
// scenario in older saves.
func TestSave_MenuScenarioIDs(t *testing.T) {
	defs := state.DefaultDefs()
	s := state.NewState(defs)
	s.Scenario = types.ScenarioActivities

	data, err := Save(s, defs)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("save is not valid JSON: %v", err)
	}
	if raw["scenario"] != "resource_menu" {
		t.Fatalf("scenario = %v, want resource_menu", raw["scenario"])
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	if _, err := Load([]byte("{not json")); err == nil {
		t.Fatal("malformed JSON should fail to load")
	}
}

func TestApply_MissingKeysKeepDefaults(t *testing.T) {
	defs := state.DefaultDefs()

	// A save written before the organization stat and the party room
	// existed: those keys are simply absent.
	old := map[string]any{
		"day":   4,
		"stats": map[string]int{"harmony": 20},
	}
	data, err := json.Marshal(old)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	sd, err := Load(data)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s := state.NewState(defs)
	Apply(s, sd)

	if s.Day != 4 {
		t.Fatalf("day = %d, want 4", s.Day)
	}
	if s.Stats["harmony"] != 20 {
		t.Fatalf("harmony = %d, want 20 from save", s.Stats["harmony"])
	}
	// Untouched keys keep the preset's starting values.
	if s.Stats["organization"] == 0 {
		t.Fatal("missing stat should keep its preset default")
	}
	if _, ok := s.Facilities["party_room"]; !ok {
		t.Fatal("missing facility should keep its preset entry")
	}
	if len(s.Members) != len(defs.Roster) {
		t.Fatalf("members = %d, want roster default %d", len(s.Members), len(defs.Roster))
	}
}

func TestSave_CarriesGameMetadata(t *testing.T) {
	defs := state.DefaultDefs()
	s := state.NewState(defs)

	data, err := Save(s, defs)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("save is not valid JSON: %v", err)
	}
	if raw["game"] != defs.Game.Title {
		t.Fatalf("game = %v, want %q", raw["game"], defs.Game.Title)
	}
}
