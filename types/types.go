// Package types defines the shared data structures for the clubsim engine.
// It contains only type definitions, with no logic beyond trivial
// classification helpers on the closed id sets.
package types

import "strings"

// ScenarioID identifies which menu or event screen the player is in.
// The set is closed: the engine dispatches on these ids exhaustively.
type ScenarioID string

const (
	ScenarioIntro      ScenarioID = "intro"
	ScenarioActivities ScenarioID = "resource_menu"
	ScenarioFacilities ScenarioID = "facility_menu"
	ScenarioSocial     ScenarioID = "social_menu"
	ScenarioDispute    ScenarioID = "member_dispute"
	ScenarioNewMember  ScenarioID = "new_member_offer"
	ScenarioDonation   ScenarioID = "donation_offer"
)

// MinigamePrefix tags scenario ids while a minigame owns the screen.
// Normal menu rendering is suppressed until the minigame reports a score.
const MinigamePrefix = "minigame:"

// GameOverPrefix tags the terminal scenarios. Once entered, only a full
// reset leaves them.
const GameOverPrefix = "game_over_"

// Terminal reports whether the scenario is an absorbing game-over state.
func (s ScenarioID) Terminal() bool {
	return strings.HasPrefix(string(s), GameOverPrefix)
}

// InMinigame reports whether a minigame currently owns the screen.
func (s ScenarioID) InMinigame() bool {
	return strings.HasPrefix(string(s), MinigamePrefix)
}

// ActionID names a player-invocable operation in the action catalog.
type ActionID string

const (
	ActionLookAround   ActionID = "look_around"
	ActionChatMember   ActionID = "chat_member"
	ActionHoldMeeting  ActionID = "hold_meeting"
	ActionOpenActivity ActionID = "open_activities"
	ActionOpenFacility ActionID = "open_facilities"
	ActionOpenSocial   ActionID = "open_social"
	ActionBack         ActionID = "back"

	ActionPrepareRefreshments ActionID = "prepare_refreshments"
	ActionDecorateClub        ActionID = "decorate_club"
	ActionRaiseFunds          ActionID = "raise_funds"

	ActionBuildFacility    ActionID = "build_facility"
	ActionMaintainFacility ActionID = "maintain_facility"

	ActionLuckyRefreshments ActionID = "lucky_refreshments"
	ActionClubHistory       ActionID = "club_history"

	ActionDisputeFavor   ActionID = "dispute_favor"
	ActionDisputeMediate ActionID = "dispute_mediate"
	ActionDisputeIgnore  ActionID = "dispute_ignore"

	ActionAcceptMember    ActionID = "accept_member"
	ActionDeclineMember   ActionID = "decline_member"
	ActionAcceptDonation  ActionID = "accept_donation"
	ActionDeclineDonation ActionID = "decline_donation"

	ActionPlayMinigame  ActionID = "play_minigame"
	ActionMinigameInput ActionID = "minigame_input"

	ActionNextDay ActionID = "next_day"
	ActionReset   ActionID = "reset"
)

// Member is one club member.
type Member struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Personality string `json:"personality"`
	Skill       string `json:"skill"`
	Friendship  int    `json:"friendship"` // 0-100, clamped
}

// FacilityState is the runtime state of one buildable facility.
type FacilityState struct {
	Built      bool `json:"built"`
	Durability int  `json:"durability"` // 0-100
}

// DailyActions tracks what the player already did today. Reset every rollover.
type DailyActions struct {
	LookedAround   bool     `json:"looked_around"`
	HeldMeeting    bool     `json:"held_meeting"`
	ChattedWith    []string `json:"chatted_with"`
	MinigamePlayed bool     `json:"minigame_played"`
}

// State is the complete mutable simulation state. It is owned exclusively
// by the engine and mutated only through the engine's effect application.
type State struct {
	Day            int    `json:"day"`
	LastPlayed     string `json:"last_played"` // YYYY-MM-DD
	ManualAdvances int    `json:"manual_advances"`

	ActionPoints    int `json:"action_points"`
	MaxActionPoints int `json:"max_action_points"`

	Stats     map[string]int `json:"stats"`
	Resources map[string]int `json:"resources"`

	Members    []Member `json:"members"`
	MaxMembers int      `json:"max_members"`

	Facilities map[string]FacilityState `json:"facilities"`

	Scenario       ScenarioID     `json:"scenario"`
	DailyEventDone bool           `json:"daily_event_done"`
	DailyBonus     map[string]int `json:"daily_bonus"`
	DailyActions   DailyActions   `json:"daily_actions"`

	ClubLevel int `json:"club_level"`

	RNGSeed int64 `json:"rng_seed"`
	RNGPos  int64 `json:"rng_pos"`

	// PendingMember holds the candidate offered by a new-member event
	// until the player accepts or declines.
	PendingMember *Member `json:"pending_member,omitempty"`
}

// Choice is one selectable option presented through the presentation port.
type Choice struct {
	Label  string
	Action ActionID
	Params map[string]string
}

// Result is the output of one engine operation: a narrative message plus
// the choice set for the resulting scenario.
type Result struct {
	Message string
	Choices []Choice
}

// Condition is an eligibility predicate over the current state and an
// optional secondary subject (a member). Evaluated by type switch.
type Condition struct {
	Type     string // "stat_above", "stat_below", "resource_at_least", ...
	Stat     string
	Resource string
	Facility string
	Value    int
	Inner    *Condition // for "not"
}

// Roll describes a randomized magnitude: uniform in [Base-Variance, Base+Variance].
type Roll struct {
	Base     int
	Variance int
}

// Effect is a single atomic state mutation instruction. Scale multiplies
// the outcome's rolled magnitude (+1 gain, -1 loss); when Scale is zero the
// fixed Amount is used instead.
type Effect struct {
	Type     string // "stat", "resource", "friendship", "friendship_all", "action_points", "durability_built", "club_level"
	Stat     string
	Resource string
	Scale    int
	Amount   int
	Clamp    bool // clamp resource at zero on loss
}

// Outcome is one weighted candidate: eligibility conditions, a rolled
// magnitude shared by its effects, and a message template. Message templates
// may reference {v} (the rolled magnitude) and {member} (the secondary
// subject's name). Weight is ignored where an Outcome is used standalone
// (facility build rewards, skill passives, threshold effects).
type Outcome struct {
	ID         string
	Weight     int
	Conditions []Condition
	Roll       Roll
	Effects    []Effect
	Message    string
}

// OutcomeTable is an ordered candidate list for weighted resolution.
type OutcomeTable []Outcome

// FacilityDef is the static definition of a buildable facility.
type FacilityDef struct {
	Name        string
	Description string
	EffectDesc  string
	Cost        map[string]int
	Requires    string  // facility key that must be built first, if any
	Build       Outcome // applied on successful construction
	Daily       Outcome // passive applied each rollover while built
}

// ThresholdRule is a stat-threshold passive evaluated at rollover against
// the pre-step snapshot. Fires when the stat is >= Value, or < Value for
// Below rules.
type ThresholdRule struct {
	Stat   string
	Value  int
	Below  bool
	Effect Outcome
}

// DailyEvent is one candidate in the rollover's weighted daily-event table.
// A non-empty Scenario switches the player into a choice screen (dispute,
// offers) after the event's own effects apply.
type DailyEvent struct {
	ID         string
	Weight     int
	Conditions []Condition
	Outcome    Outcome
	Scenario   ScenarioID
}

// RewardTier maps a minigame score band to its reward. Tiers are checked
// highest MinScore first; the first satisfied tier wins.
type RewardTier struct {
	MinScore int
	Effects  []Effect
	Message  string
}

// StatDef names a tracked stat. Terminal stats end the game at the floor.
type StatDef struct {
	Key      string
	Name     string
	Start    int
	Terminal bool
	GameOver string // terminal scenario text
}

// ResourceDef names a tracked resource.
type ResourceDef struct {
	Key   string
	Name  string
	Start int
}

// GameDef holds game metadata.
type GameDef struct {
	Title   string
	Author  string
	Version string
	Intro   string
}

// Balance holds the tunable numbers the rollover and action catalog consume.
type Balance struct {
	ActionPoints     int
	MaxMembers       int
	ManualAdvanceCap int

	UpkeepPerMember   int
	UpkeepResource    string
	UpkeepPenaltyStat string
	UpkeepPenalty     int

	TerminalResource string // resource whose depletion ends the game (after day 1)
	FacilityDecay    int    // durability lost per rollover while built
	UnbuildAtZero    bool   // durability 0 un-builds the facility
	MaintainCost     map[string]int
}
