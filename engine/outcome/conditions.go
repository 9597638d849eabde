package outcome

import "github.com/jinsol/clubsim/types"

// Eligible evaluates a single condition against the environment.
// Unknown condition types are never satisfied.
func Eligible(c types.Condition, env Env) bool {
	s := env.State
	switch c.Type {
	case "stat_above":
		return s.Stats[c.Stat] > c.Value

	case "stat_below":
		return s.Stats[c.Stat] < c.Value

	case "resource_at_least":
		return s.Resources[c.Resource] >= c.Value

	case "facility_built":
		return s.Facilities[c.Facility].Built

	case "members_below_cap":
		return len(s.Members) < s.MaxMembers

	case "friendship_below":
		return env.Member != nil && env.Member.Friendship < c.Value

	case "day_after":
		return s.Day > c.Value

	case "not":
		if c.Inner == nil {
			return true
		}
		return !Eligible(*c.Inner, env)

	default:
		return false
	}
}

// All returns true if every condition passes (AND logic).
// An empty condition list is vacuously true.
func All(conditions []types.Condition, env Env) bool {
	for _, c := range conditions {
		if !Eligible(c, env) {
			return false
		}
	}
	return true
}
