// Package engine implements the deterministic daily simulation: the seeded
// RNG stream, the action catalog, and the day-rollover pipeline that wires
// together threshold effects, passives, upkeep, and daily events.
package engine

import (
	"time"

	"github.com/jinsol/clubsim/engine/save"
	"github.com/jinsol/clubsim/engine/state"
	"github.com/jinsol/clubsim/persist"
	"github.com/jinsol/clubsim/types"
)

// Engine holds the game definitions, the mutable state, and the RNG stream.
// It is single-actor: every operation runs to completion before the next.
type Engine struct {
	Defs  *state.Defs
	State *types.State
	RNG   *RNG
	Store persist.Store

	// Now is the clock used for daily seed derivation and rollover
	// detection. Tests pin it to fixed dates.
	Now func() time.Time

	// Logf, when set, receives programming-error diagnostics such as
	// unknown action ids. Never required for correct operation.
	Logf func(format string, args ...any)

	minigames []Minigame
	session   MinigameSession
	actions   map[types.ActionID]actionFunc
}

type actionFunc func(params map[string]string) types.Result

// New creates an engine, restoring persisted state from the store when
// present and falling back to a fresh state otherwise. Malformed persisted
// data is recovered silently by starting fresh.
func New(defs *state.Defs, store persist.Store) *Engine {
	e := &Engine{
		Defs:      defs,
		Store:     store,
		Now:       time.Now,
		minigames: []Minigame{PraiseRelay{}},
	}
	e.actions = e.catalog()
	e.restore()
	return e
}

// restore loads persisted state or builds a fresh one.
func (e *Engine) restore() {
	blob, ok, err := e.Store.Load()
	if err != nil || !ok {
		e.freshState()
		return
	}
	sd, err := save.Load(blob)
	if err != nil {
		e.freshState()
		return
	}
	s := state.NewState(e.Defs)
	save.Apply(s, sd)
	// A minigame never survives a session; its in-memory handle is gone.
	if s.Scenario.InMinigame() {
		s.Scenario = types.ScenarioIntro
	}
	e.State = s
	if s.RNGSeed == 0 {
		s.RNGSeed = SessionSeed(e.Now(), s.Day)
		s.RNGPos = 0
	}
	e.RNG = RestoreRNG(s.RNGSeed, s.RNGPos)
}

func (e *Engine) freshState() {
	s := state.NewState(e.Defs)
	s.LastPlayed = DateKey(e.Now())
	s.RNGSeed = SessionSeed(e.Now(), s.Day)
	e.State = s
	e.RNG = NewRNG(s.RNGSeed)
}

// Start runs the rollover if the calendar day changed (or this is a fresh
// state) and returns the opening message and choice set.
func (e *Engine) Start() types.Result {
	if res, rolled := e.checkRollover(); rolled {
		return res
	}
	return e.render("")
}

// Invoke executes one action from the catalog. Unknown ids are logged
// no-ops. A calendar-day change runs the rollover pipeline instead; the
// front end re-presents the new day's choices.
func (e *Engine) Invoke(action types.ActionID, params map[string]string) types.Result {
	if res, rolled := e.checkRollover(); rolled {
		return res
	}
	s := e.State

	if s.Scenario.Terminal() && action != types.ActionReset {
		return types.Result{Message: e.scenarioText(s.Scenario) + " " + e.Defs.Msg("game_over")}
	}
	if s.Scenario.InMinigame() && action != types.ActionMinigameInput && action != types.ActionReset {
		return e.render("")
	}

	handler, ok := e.actions[action]
	if !ok {
		e.logf("invoke: unknown action id %q", action)
		return e.render("")
	}

	res := handler(params)
	state.ClampActionPoints(s)
	e.persist()
	return res
}

// Reset wipes persisted state and reinitializes to defaults, then runs the
// first day's rollover.
func (e *Engine) Reset() types.Result {
	if err := e.Store.Clear(); err != nil {
		e.logf("reset: clearing store: %v", err)
	}
	e.session = nil
	e.freshState()
	res := e.runRollover()
	res.Message = e.Defs.Msg("reset_done") + "\n" + res.Message
	return res
}

// spendPoint atomically deducts one action point before effect resolution.
// Returns false, with no state change, when none are available.
func (e *Engine) spendPoint() bool {
	if e.State.ActionPoints <= 0 {
		return false
	}
	e.State.ActionPoints--
	return true
}

// persist writes the full state through to the store after a mutation.
// Store failures are logged; the at-most-one-action loss window is accepted.
func (e *Engine) persist() {
	e.State.RNGSeed = e.RNG.Seed()
	e.State.RNGPos = e.RNG.Position()
	data, err := save.Save(e.State, e.Defs)
	if err != nil {
		e.logf("persist: encoding state: %v", err)
		return
	}
	if err := e.Store.Save(data); err != nil {
		e.logf("persist: writing store: %v", err)
	}
}

func (e *Engine) logf(format string, args ...any) {
	if e.Logf != nil {
		e.Logf(format, args...)
	}
}
