package engine

import (
	"strings"

	"github.com/jinsol/clubsim/engine/outcome"
	"github.com/jinsol/clubsim/engine/state"
	"github.com/jinsol/clubsim/types"
)

// checkRollover advances the simulation when the real calendar day has
// changed since the last session, or when a fresh state has not yet had its
// first daily event. Returns the rollover result and true if one ran.
func (e *Engine) checkRollover() (types.Result, bool) {
	s := e.State
	today := DateKey(e.Now())
	if s.LastPlayed != today {
		s.Day++
		s.LastPlayed = today
		s.ManualAdvances = 0
		s.DailyEventDone = false
	}
	if s.DailyEventDone {
		return types.Result{}, false
	}
	return e.runRollover(), true
}

// AdvanceDay is the player-invoked manual day advance, capped per real day.
// The cap is a rate limit: the refusal leaves the day counter untouched.
func (e *Engine) AdvanceDay() types.Result {
	s := e.State
	if s.ManualAdvances >= e.Defs.Balance.ManualAdvanceCap {
		return e.render(e.Defs.Msg("advance_cap"))
	}
	s.ManualAdvances++
	s.Day++
	s.DailyEventDone = false
	return e.runRollover()
}

// runRollover executes the day transition pipeline in order: reseed, reset
// per-day trackers, stat-threshold passives (against the pre-step
// snapshot), member and facility passives, durability decay, upkeep,
// terminal check, and finally the weighted daily event. Idempotent per day:
// a second call with DailyEventDone set is a no-op.
func (e *Engine) runRollover() types.Result {
	s := e.State
	if s.DailyEventDone {
		return e.render("")
	}

	// 1. Reseed the stream for the new day.
	seed := SessionSeed(e.Now(), s.Day)
	e.RNG = NewRNG(seed)
	s.RNGSeed = seed

	// 2. Reset per-day trackers and restore action points.
	s.DailyActions = types.DailyActions{ChattedWith: []string{}}
	s.DailyBonus = map[string]int{}
	s.ActionPoints = s.MaxActionPoints
	env := outcome.Env{State: s}

	var b strings.Builder
	b.WriteString(e.Defs.Msg("morning"))

	// 3. Stat-threshold passives, all judged against the same snapshot.
	snapshot := make(map[string]int, len(s.Stats))
	for k, v := range s.Stats {
		snapshot[k] = v
	}
	for _, rule := range e.Defs.Thresholds {
		fired := snapshot[rule.Stat] >= rule.Value
		if rule.Below {
			fired = snapshot[rule.Stat] < rule.Value
		}
		if fired {
			b.WriteString(e.applyOutcome(rule.Effect, env))
		}
	}

	// 4a. Member skill passives.
	for i := range s.Members {
		m := &s.Members[i]
		if o, ok := e.Defs.Skills[m.Skill]; ok {
			b.WriteString(e.applyOutcome(o, outcome.Env{State: s, Member: m}))
		}
	}

	// 4b. Facility passives and durability decay.
	for _, key := range e.Defs.FacilityOrder {
		fs := s.Facilities[key]
		if !fs.Built {
			continue
		}
		fd := e.Defs.Facilities[key]
		b.WriteString(e.applyOutcome(fd.Daily, env))

		fs.Durability -= e.Defs.Balance.FacilityDecay
		if fs.Durability <= 0 {
			fs.Durability = 0
			if e.Defs.Balance.UnbuildAtZero {
				fs.Built = false
				b.WriteString(strings.ReplaceAll(e.Defs.Msg("facility_collapsed"), "{facility}", fd.Name))
			}
		}
		s.Facilities[key] = fs
	}

	// 5. Upkeep proportional to member count. A shortfall clamps the
	// resource to zero and costs the penalty stat instead of ending the game.
	balance := e.Defs.Balance
	upkeep := balance.UpkeepPerMember * len(s.Members)
	if upkeep > 0 && balance.UpkeepResource != "" {
		s.Resources[balance.UpkeepResource] -= upkeep
		if s.Resources[balance.UpkeepResource] < 0 {
			s.Resources[balance.UpkeepResource] = 0
			s.Stats[balance.UpkeepPenaltyStat] -= balance.UpkeepPenalty
			b.WriteString(interpolate(e.Defs.Msg("upkeep_shortfall"), balance.UpkeepPenalty, env))
		}
	}

	s.DailyEventDone = true

	// 6. Terminal check. Terminal days select no event.
	if scenario, ok := e.terminalCheck(); ok {
		s.Scenario = scenario
		b.WriteString(e.scenarioText(scenario))
		e.persist()
		return types.Result{Message: b.String(), Choices: e.choicesFor(scenario)}
	}

	// 7. Weighted daily event.
	b.WriteString(e.applyDailyEvent())

	// 8. Persist and surface the composed morning report.
	e.persist()
	return types.Result{Message: strings.TrimSpace(b.String()), Choices: e.choicesFor(s.Scenario)}
}

// terminalCheck reports the terminal scenario to enter, if any monitored
// stat has hit the floor. The resource floor only applies after day 1 so a
// fresh club is never stillborn.
func (e *Engine) terminalCheck() (types.ScenarioID, bool) {
	s := e.State
	for _, sd := range e.Defs.Stats {
		if sd.Terminal && s.Stats[sd.Key] <= 0 {
			return state.TerminalScenario(sd.Key), true
		}
	}
	res := e.Defs.Balance.TerminalResource
	if res != "" && s.Day > 1 && s.Resources[res] <= 0 {
		return types.ScenarioID(types.GameOverPrefix + "resources"), true
	}
	return "", false
}

// applyDailyEvent selects one event from the weighted table and applies it.
// Events with a choice scenario switch the player there; everything else
// returns to the intro menu.
func (e *Engine) applyDailyEvent() string {
	s := e.State
	env := outcome.Env{State: s}

	table := make(types.OutcomeTable, len(e.Defs.Events))
	for i, ev := range e.Defs.Events {
		table[i] = types.Outcome{ID: ev.ID, Weight: ev.Weight, Conditions: ev.Conditions}
	}
	chosen, ok := outcome.Resolve(e.RNG, table, env)
	if !ok {
		s.Scenario = types.ScenarioIntro
		return ""
	}

	var event types.DailyEvent
	for _, ev := range e.Defs.Events {
		if ev.ID == chosen.ID {
			event = ev
			break
		}
	}

	// A membership offer needs a candidate; without one the event
	// degrades to its message with no choice screen.
	if event.Scenario == types.ScenarioNewMember {
		if len(e.Defs.Recruits) == 0 || len(s.Members) >= s.MaxMembers {
			event.Scenario = ""
		} else {
			recruit := e.Defs.Recruits[e.RNG.Intn(len(e.Defs.Recruits))]
			s.PendingMember = &recruit
			env.Member = s.PendingMember
		}
	}

	msg := e.applyOutcome(event.Outcome, env)

	if event.Scenario != "" {
		s.Scenario = event.Scenario
	} else {
		s.Scenario = types.ScenarioIntro
	}
	if msg != "" {
		msg += "\n"
	}
	return msg + e.scenarioText(s.Scenario)
}
