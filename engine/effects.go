package engine

import (
	"strconv"
	"strings"

	"github.com/jinsol/clubsim/engine/outcome"
	"github.com/jinsol/clubsim/engine/state"
	"github.com/jinsol/clubsim/types"
)

// applyOutcome rolls the outcome's magnitude, applies its effects, and
// returns the interpolated message. The roll is drawn from the session
// stream, so an outcome consumes at most one value draw.
func (e *Engine) applyOutcome(o types.Outcome, env outcome.Env) string {
	v := 0
	if o.Roll.Base != 0 || o.Roll.Variance != 0 {
		v = e.RNG.IntAround(o.Roll.Base, o.Roll.Variance)
	}
	e.applyEffects(o.Effects, v, env)
	return interpolate(o.Message, v, env)
}

// applyEffects is the single place state deltas are applied. Every effect
// type is one atomic operation.
func (e *Engine) applyEffects(effects []types.Effect, v int, env outcome.Env) {
	s := env.State

	for _, eff := range effects {
		delta := eff.Amount
		if eff.Scale != 0 {
			delta = eff.Scale * v
		}

		switch eff.Type {
		case "stat":
			s.Stats[eff.Stat] += delta

		case "resource":
			s.Resources[eff.Resource] += delta
			if eff.Clamp && s.Resources[eff.Resource] < 0 {
				s.Resources[eff.Resource] = 0
			}

		case "friendship":
			if env.Member != nil {
				env.Member.Friendship = state.ClampFriendship(env.Member.Friendship + delta)
			}

		case "friendship_all":
			for i := range s.Members {
				s.Members[i].Friendship = state.ClampFriendship(s.Members[i].Friendship + delta)
			}

		case "action_points":
			s.ActionPoints += delta
			state.ClampActionPoints(s)

		case "durability_built":
			for key, fs := range s.Facilities {
				if !fs.Built {
					continue
				}
				fs.Durability += delta
				if fs.Durability < 0 {
					fs.Durability = 0
				}
				if fs.Durability > 100 {
					fs.Durability = 100
				}
				if fs.Durability == 0 && e.Defs.Balance.UnbuildAtZero {
					fs.Built = false
				}
				s.Facilities[key] = fs
			}

		case "club_level":
			s.ClubLevel += delta

		default:
			e.logf("effects: unknown effect type %q", eff.Type)
		}
	}
}

// interpolate replaces template variables in a message.
func interpolate(text string, v int, env outcome.Env) string {
	text = strings.ReplaceAll(text, "{v}", strconv.Itoa(v))
	if env.Member != nil {
		text = strings.ReplaceAll(text, "{member}", env.Member.Name)
		text = strings.ReplaceAll(text, "{personality}", env.Member.Personality)
		text = strings.ReplaceAll(text, "{skill}", env.Member.Skill)
	}
	return text
}
