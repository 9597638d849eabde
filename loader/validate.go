package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/jinsol/clubsim/engine/state"
	"github.com/jinsol/clubsim/types"
)

// ValidationError collects all validation errors and warnings.
type ValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// Known effect types.
var validEffectTypes = map[string]bool{
	"stat":             true,
	"resource":         true,
	"friendship":       true,
	"friendship_all":   true,
	"action_points":    true,
	"durability_built": true,
	"club_level":       true,
}

// Known condition types.
var validConditionTypes = map[string]bool{
	"stat_above":        true,
	"stat_below":        true,
	"resource_at_least": true,
	"facility_built":    true,
	"members_below_cap": true,
	"friendship_below":  true,
	"day_after":         true,
	"not":               true,
}

// Scenario ids an event may switch the player into.
var validEventScenarios = map[types.ScenarioID]bool{
	"":                      true,
	types.ScenarioDispute:   true,
	types.ScenarioNewMember: true,
	types.ScenarioDonation:  true,
}

// validate checks the compiled defs for referential integrity.
func validate(defs *state.Defs) error {
	ve := &ValidationError{}

	if defs.Game.Title == "" {
		ve.Errors = append(ve.Errors, "Game.Title is required")
	}
	if len(defs.Stats) == 0 {
		ve.Errors = append(ve.Errors, "at least one Stat is required")
	}
	if len(defs.Resources) == 0 {
		ve.Errors = append(ve.Errors, "at least one Resource is required")
	}

	stats := map[string]bool{}
	for _, sd := range defs.Stats {
		if stats[sd.Key] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate stat %q", sd.Key))
		}
		stats[sd.Key] = true
	}
	resources := map[string]bool{}
	for _, rd := range defs.Resources {
		if resources[rd.Key] {
			ve.Errors = append(ve.Errors, fmt.Sprintf("duplicate resource %q", rd.Key))
		}
		resources[rd.Key] = true
	}

	check := func(where string, outcomes ...types.Outcome) {
		for _, o := range outcomes {
			validateConditions(where, o.Conditions, defs, stats, resources, ve)
			validateEffects(where, o.Effects, stats, resources, ve)
		}
	}

	// Facilities: costs, prerequisites, build and daily outcomes.
	for key, fd := range defs.Facilities {
		where := "facility " + key
		for res := range fd.Cost {
			if !resources[res] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"%s cost references undefined resource %q", where, res))
			}
		}
		if fd.Requires != "" {
			if _, ok := defs.Facilities[fd.Requires]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"%s requires undefined facility %q", where, fd.Requires))
			}
		}
		check(where, fd.Build, fd.Daily)
	}

	// Members reference defined skills.
	for _, m := range append(append([]types.Member{}, defs.Roster...), defs.Recruits...) {
		if m.Skill == "" {
			continue
		}
		if _, ok := defs.Skills[m.Skill]; !ok {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"member %q has skill %q with no Skill definition", m.Name, m.Skill))
		}
	}
	for name, o := range defs.Skills {
		check("skill "+name, o)
	}

	for name, table := range defs.Tables {
		where := "table " + name
		if len(table) == 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s is empty", where))
		}
		total := 0
		for _, o := range table {
			total += o.Weight
			check(where, o)
		}
		if total <= 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s has no positive weights", where))
		}
	}

	for id, o := range defs.Moves {
		check("move "+string(id), o)
	}

	for _, rule := range defs.Thresholds {
		if !stats[rule.Stat] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"threshold references undefined stat %q", rule.Stat))
		}
		check("threshold "+rule.Stat, rule.Effect)
	}

	for _, ev := range defs.Events {
		where := "event " + ev.ID
		if ev.Weight <= 0 {
			ve.Errors = append(ve.Errors, fmt.Sprintf("%s has non-positive weight", where))
		}
		if !validEventScenarios[ev.Scenario] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"%s switches to unknown scenario %q", where, ev.Scenario))
		}
		validateConditions(where, ev.Conditions, defs, stats, resources, ve)
		check(where, ev.Outcome)
	}

	for i, tier := range defs.Tiers {
		if i > 0 && tier.MinScore > defs.Tiers[i-1].MinScore {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"reward tiers out of order at min_score %d", tier.MinScore))
		}
		validateEffects("reward tier", tier.Effects, stats, resources, ve)
	}

	b := defs.Balance
	if b.UpkeepResource != "" && !resources[b.UpkeepResource] {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"balance upkeep_resource %q is undefined", b.UpkeepResource))
	}
	if b.UpkeepPenaltyStat != "" && !stats[b.UpkeepPenaltyStat] {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"balance upkeep_penalty_stat %q is undefined", b.UpkeepPenaltyStat))
	}
	if b.TerminalResource != "" && !resources[b.TerminalResource] {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"balance terminal_resource %q is undefined", b.TerminalResource))
	}
	for res := range b.MaintainCost {
		if !resources[res] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"balance maintain_cost references undefined resource %q", res))
		}
	}

	for _, w := range ve.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}

func validateConditions(where string, conditions []types.Condition, defs *state.Defs, stats, resources map[string]bool, ve *ValidationError) {
	for _, cond := range conditions {
		if !validConditionTypes[cond.Type] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"%s: unknown condition type %q", where, cond.Type))
			continue
		}
		switch cond.Type {
		case "stat_above", "stat_below":
			if !stats[cond.Stat] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"%s: condition %s references undefined stat %q", where, cond.Type, cond.Stat))
			}
		case "resource_at_least":
			if !resources[cond.Resource] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"%s: condition references undefined resource %q", where, cond.Resource))
			}
		case "facility_built":
			if _, ok := defs.Facilities[cond.Facility]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"%s: condition references undefined facility %q", where, cond.Facility))
			}
		case "not":
			if cond.Inner == nil {
				ve.Errors = append(ve.Errors, fmt.Sprintf("%s: not condition has no inner", where))
			} else {
				validateConditions(where, []types.Condition{*cond.Inner}, defs, stats, resources, ve)
			}
		}
	}
}

func validateEffects(where string, effects []types.Effect, stats, resources map[string]bool, ve *ValidationError) {
	for _, eff := range effects {
		if !validEffectTypes[eff.Type] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"%s: unknown effect type %q", where, eff.Type))
			continue
		}
		switch eff.Type {
		case "stat":
			if !stats[eff.Stat] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"%s: effect references undefined stat %q", where, eff.Stat))
			}
		case "resource":
			if !resources[eff.Resource] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"%s: effect references undefined resource %q", where, eff.Resource))
			}
		}
		if eff.Scale == 0 && eff.Amount == 0 {
			ve.Warnings = append(ve.Warnings, fmt.Sprintf(
				"%s: effect %s has neither scale nor amount", where, eff.Type))
		}
	}
}
