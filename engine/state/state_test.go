package state

import (
	"testing"

	"github.com/jinsol/clubsim/types"
)

func TestNewState_Defaults(t *testing.T) {
	defs := DefaultDefs()
	s := NewState(defs)

	if s.Day != 1 {
		t.Fatalf("day = %d, want 1", s.Day)
	}
	if s.ActionPoints != defs.Balance.ActionPoints {
		t.Fatalf("action points = %d, want %d", s.ActionPoints, defs.Balance.ActionPoints)
	}
	if s.Scenario != types.ScenarioIntro {
		t.Fatalf("scenario = %q, want intro", s.Scenario)
	}

	for _, sd := range defs.Stats {
		if s.Stats[sd.Key] != sd.Start {
			t.Errorf("stat %s = %d, want %d", sd.Key, s.Stats[sd.Key], sd.Start)
		}
	}
	for _, rd := range defs.Resources {
		if s.Resources[rd.Key] != rd.Start {
			t.Errorf("resource %s = %d, want %d", rd.Key, s.Resources[rd.Key], rd.Start)
		}
	}
	for key, fs := range s.Facilities {
		if fs.Built || fs.Durability != 100 {
			t.Errorf("facility %s = %+v, want unbuilt at 100", key, fs)
		}
	}
	if len(s.Members) != len(defs.Roster) {
		t.Fatalf("members = %d, want %d", len(s.Members), len(defs.Roster))
	}
}

func TestNewState_RosterIsCopied(t *testing.T) {
	defs := DefaultDefs()
	s := NewState(defs)

	s.Members[0].Friendship = 0
	if defs.Roster[0].Friendship == 0 {
		t.Fatal("mutating state members should not touch the preset roster")
	}
}

func TestFindMember(t *testing.T) {
	defs := DefaultDefs()
	s := NewState(defs)

	m := FindMember(s, s.Members[0].ID)
	if m == nil {
		t.Fatal("known member not found")
	}
	m.Friendship = 99
	if s.Members[0].Friendship != 99 {
		t.Fatal("FindMember should return a pointer into the slice")
	}

	if FindMember(s, "nobody") != nil {
		t.Fatal("unknown id should return nil")
	}
}

func TestClampFriendship(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, 0}, {0, 0}, {50, 50}, {100, 100}, {130, 100},
	}
	for _, tc := range cases {
		if got := ClampFriendship(tc.in); got != tc.want {
			t.Errorf("ClampFriendship(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestClampActionPoints(t *testing.T) {
	s := &types.State{ActionPoints: -3, MaxActionPoints: 10}
	ClampActionPoints(s)
	if s.ActionPoints != 0 {
		t.Fatalf("negative points clamped to %d, want 0", s.ActionPoints)
	}

	s.ActionPoints = 25
	ClampActionPoints(s)
	if s.ActionPoints != 10 {
		t.Fatalf("overflow clamped to %d, want 10", s.ActionPoints)
	}
}

func TestCanAffordAndSpend(t *testing.T) {
	s := &types.State{Resources: map[string]int{"funds": 50, "decorations": 20}}
	cost := map[string]int{"funds": 50, "decorations": 20}

	if !CanAfford(s, cost) {
		t.Fatal("exact cost should be affordable")
	}
	SpendResources(s, cost)
	if s.Resources["funds"] != 0 || s.Resources["decorations"] != 0 {
		t.Fatalf("resources after spend: %v, want zeroes", s.Resources)
	}
	if CanAfford(s, cost) {
		t.Fatal("empty purse should not afford the cost")
	}
}

func TestTerminalScenario(t *testing.T) {
	id := TerminalScenario("harmony")
	if id != types.ScenarioID("game_over_harmony") {
		t.Fatalf("got %q, want game_over_harmony", id)
	}
	if !id.Terminal() {
		t.Fatal("terminal scenario id should report Terminal()")
	}
}

func TestMsg_FallsBackToKey(t *testing.T) {
	defs := DefaultDefs()
	if defs.Msg("morning") == "morning" {
		t.Fatal("known key should resolve to its template")
	}
	if got := defs.Msg("no_such_key"); got != "no_such_key" {
		t.Fatalf("missing key = %q, want the key itself", got)
	}
}

func TestDefaultDefs_Wellformed(t *testing.T) {
	defs := DefaultDefs()

	if len(defs.FacilityOrder) != len(defs.Facilities) {
		t.Fatalf("facility order lists %d keys, defs hold %d", len(defs.FacilityOrder), len(defs.Facilities))
	}
	for _, key := range defs.FacilityOrder {
		fd, ok := defs.Facilities[key]
		if !ok {
			t.Fatalf("order references unknown facility %q", key)
		}
		if fd.Requires != "" {
			if _, ok := defs.Facilities[fd.Requires]; !ok {
				t.Errorf("facility %q requires unknown %q", key, fd.Requires)
			}
		}
	}

	// Reward tiers must be ordered highest floor first for lookup.
	for i := 1; i < len(defs.Tiers); i++ {
		if defs.Tiers[i].MinScore > defs.Tiers[i-1].MinScore {
			t.Fatalf("tiers out of order at index %d", i)
		}
	}

	terminal := false
	for _, sd := range defs.Stats {
		if sd.Terminal {
			terminal = true
			if sd.GameOver == "" {
				t.Errorf("terminal stat %q has no game-over text", sd.Key)
			}
		}
	}
	if !terminal {
		t.Fatal("defaults should define at least one terminal stat")
	}
}
