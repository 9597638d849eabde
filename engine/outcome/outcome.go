// Package outcome implements weighted-outcome resolution: eligibility
// filtering by condition, then a cumulative-weight draw from the shared
// RNG stream, with a defined deterministic fallback.
package outcome

import "github.com/jinsol/clubsim/types"

// Rand is the single draw the resolver needs from the RNG stream.
type Rand interface {
	Float64() float64
}

// Env is the evaluation environment for conditions: the current state and
// an optional secondary subject (the member an action is directed at).
type Env struct {
	State  *types.State
	Member *types.Member
}

// Resolve selects exactly one outcome from the table. Candidates are
// filtered by eligibility, then one is drawn with probability proportional
// to weight. If the weighted walk falls through (floating-point edge) or no
// candidate is eligible, the first originally-listed outcome is returned.
// The bool is false only for an empty table.
func Resolve(r Rand, table types.OutcomeTable, env Env) (types.Outcome, bool) {
	if len(table) == 0 {
		return types.Outcome{}, false
	}

	var eligible []types.Outcome
	for _, o := range table {
		if All(o.Conditions, env) {
			eligible = append(eligible, o)
		}
	}
	if len(eligible) == 0 {
		return table[0], true
	}

	total := 0
	for _, o := range eligible {
		total += o.Weight
	}
	roll := r.Float64() * float64(total)

	cumulative := 0
	for _, o := range eligible {
		cumulative += o.Weight
		if float64(cumulative) >= roll {
			return o, true
		}
	}
	return table[0], true
}
