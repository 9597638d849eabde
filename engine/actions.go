package engine

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jinsol/clubsim/engine/outcome"
	"github.com/jinsol/clubsim/engine/state"
	"github.com/jinsol/clubsim/types"
)

// catalog builds the dispatch table for every player-invocable action.
// Menu navigation and event responses are free; everything that exerts the
// player costs one action point, deducted before the effect resolves.
func (e *Engine) catalog() map[types.ActionID]actionFunc {
	return map[types.ActionID]actionFunc{
		types.ActionLookAround:  e.actLookAround,
		types.ActionChatMember:  e.actChatMember,
		types.ActionHoldMeeting: e.actHoldMeeting,

		types.ActionOpenActivity: e.menu(types.ScenarioActivities),
		types.ActionOpenFacility: e.menu(types.ScenarioFacilities),
		types.ActionOpenSocial:   e.menu(types.ScenarioSocial),
		types.ActionBack:         e.menu(types.ScenarioIntro),

		types.ActionPrepareRefreshments: e.move(types.ActionPrepareRefreshments),
		types.ActionDecorateClub:        e.move(types.ActionDecorateClub),
		types.ActionRaiseFunds:          e.move(types.ActionRaiseFunds),

		types.ActionBuildFacility:    e.actBuildFacility,
		types.ActionMaintainFacility: e.actMaintainFacility,

		types.ActionLuckyRefreshments: e.table("lucky_refreshments"),
		types.ActionClubHistory:       e.table("club_history"),

		types.ActionDisputeFavor:   e.actDisputeFavor,
		types.ActionDisputeMediate: e.disputeMove(types.ActionDisputeMediate),
		types.ActionDisputeIgnore:  e.disputeMove(types.ActionDisputeIgnore),

		types.ActionAcceptMember:    e.actAcceptMember,
		types.ActionDeclineMember:   e.actDeclineMember,
		types.ActionAcceptDonation:  e.offerMove(types.ActionAcceptDonation),
		types.ActionDeclineDonation: e.offerMove(types.ActionDeclineDonation),

		types.ActionPlayMinigame:  e.actPlayMinigame,
		types.ActionMinigameInput: e.actMinigameInput,

		types.ActionNextDay: func(map[string]string) types.Result { return e.AdvanceDay() },
		types.ActionReset:   func(map[string]string) types.Result { return e.Reset() },
	}
}

// menu returns a free navigation action that switches scenarios.
func (e *Engine) menu(target types.ScenarioID) actionFunc {
	return func(map[string]string) types.Result {
		e.State.Scenario = target
		return e.render("")
	}
}

// move returns a costed action applying one fixed outcome from the preset.
func (e *Engine) move(id types.ActionID) actionFunc {
	return func(map[string]string) types.Result {
		if !e.spendPoint() {
			return e.render(e.Defs.Msg("no_action_points"))
		}
		msg := e.applyOutcome(e.Defs.Moves[id], outcome.Env{State: e.State})
		return e.render(msg)
	}
}

// table returns a costed action resolved through a weighted outcome table.
func (e *Engine) table(name string) actionFunc {
	return func(map[string]string) types.Result {
		if !e.spendPoint() {
			return e.render(e.Defs.Msg("no_action_points"))
		}
		env := outcome.Env{State: e.State}
		chosen, ok := outcome.Resolve(e.RNG, e.Defs.Tables[name], env)
		if !ok {
			return e.render("")
		}
		return e.render(e.applyOutcome(chosen, env))
	}
}

func (e *Engine) actLookAround(map[string]string) types.Result {
	if !e.spendPoint() {
		return e.render(e.Defs.Msg("no_action_points"))
	}
	e.State.DailyActions.LookedAround = true
	env := outcome.Env{State: e.State}
	chosen, _ := outcome.Resolve(e.RNG, e.Defs.Tables["look_around"], env)
	return e.render(e.applyOutcome(chosen, env))
}

func (e *Engine) actChatMember(map[string]string) types.Result {
	s := e.State
	if !e.spendPoint() {
		return e.render(e.Defs.Msg("no_action_points"))
	}
	if len(s.Members) == 0 {
		return e.render("")
	}
	member := &s.Members[e.RNG.Intn(len(s.Members))]
	s.DailyActions.ChattedWith = append(s.DailyActions.ChattedWith, member.ID)

	env := outcome.Env{State: s, Member: member}
	chosen, _ := outcome.Resolve(e.RNG, e.Defs.Tables["chat"], env)
	return e.render(e.applyOutcome(chosen, env))
}

func (e *Engine) actHoldMeeting(map[string]string) types.Result {
	if !e.spendPoint() {
		return e.render(e.Defs.Msg("no_action_points"))
	}
	e.State.DailyActions.HeldMeeting = true
	env := outcome.Env{State: e.State}
	chosen, _ := outcome.Resolve(e.RNG, e.Defs.Tables["meeting"], env)
	return e.render(e.applyOutcome(chosen, env))
}

// actBuildFacility follows the spend-then-check order: the action point is
// gone even when the resources turn out to be insufficient.
func (e *Engine) actBuildFacility(params map[string]string) types.Result {
	s := e.State
	key := params["facility"]
	fd, ok := e.Defs.Facilities[key]
	if !ok {
		e.logf("build: unknown facility %q", key)
		return e.render("")
	}
	if !e.spendPoint() {
		return e.render(e.Defs.Msg("no_action_points"))
	}
	if s.Facilities[key].Built {
		return e.render("")
	}
	if fd.Requires != "" && !s.Facilities[fd.Requires].Built {
		return e.render(e.Defs.Msg("insufficient"))
	}
	if !state.CanAfford(s, fd.Cost) {
		return e.render(e.Defs.Msg("insufficient"))
	}

	state.SpendResources(s, fd.Cost)
	s.Facilities[key] = types.FacilityState{Built: true, Durability: 100}
	s.ClubLevel++
	msg := e.applyOutcome(fd.Build, outcome.Env{State: s})
	return e.render(msg)
}

func (e *Engine) actMaintainFacility(params map[string]string) types.Result {
	s := e.State
	key := params["facility"]
	fd, ok := e.Defs.Facilities[key]
	if !ok {
		e.logf("maintain: unknown facility %q", key)
		return e.render("")
	}
	if !e.spendPoint() {
		return e.render(e.Defs.Msg("no_action_points"))
	}
	if !s.Facilities[key].Built {
		return e.render("")
	}
	if !state.CanAfford(s, e.Defs.Balance.MaintainCost) {
		return e.render(e.Defs.Msg("insufficient"))
	}

	state.SpendResources(s, e.Defs.Balance.MaintainCost)
	s.Facilities[key] = types.FacilityState{Built: true, Durability: 100}
	msg := strings.ReplaceAll(e.Defs.Msg("maintain_done"), "{facility}", fd.Name)
	return e.render(msg)
}

func (e *Engine) actDisputeFavor(params map[string]string) types.Result {
	s := e.State
	if !e.spendPoint() {
		return e.render(e.Defs.Msg("no_action_points"))
	}
	member := state.FindMember(s, params["member"])
	if member == nil && len(s.Members) > 0 {
		member = &s.Members[0]
	}
	// Nobody left to side with: the dispute fizzles without the move.
	if member == nil {
		s.Scenario = types.ScenarioIntro
		return e.render("")
	}
	msg := e.applyOutcome(e.Defs.Moves[types.ActionDisputeFavor], outcome.Env{State: s, Member: member})
	s.Scenario = types.ScenarioIntro
	return e.render(msg)
}

// disputeMove wraps the costed dispute branches that return to the intro.
func (e *Engine) disputeMove(id types.ActionID) actionFunc {
	return func(map[string]string) types.Result {
		if !e.spendPoint() {
			return e.render(e.Defs.Msg("no_action_points"))
		}
		msg := e.applyOutcome(e.Defs.Moves[id], outcome.Env{State: e.State})
		e.State.Scenario = types.ScenarioIntro
		return e.render(msg)
	}
}

// offerMove wraps the free offer responses (donation), returning to intro.
func (e *Engine) offerMove(id types.ActionID) actionFunc {
	return func(map[string]string) types.Result {
		msg := e.applyOutcome(e.Defs.Moves[id], outcome.Env{State: e.State})
		e.State.Scenario = types.ScenarioIntro
		return e.render(msg)
	}
}

func (e *Engine) actAcceptMember(map[string]string) types.Result {
	s := e.State
	if s.PendingMember == nil {
		s.Scenario = types.ScenarioIntro
		return e.render("")
	}
	member := *s.PendingMember
	s.PendingMember = nil
	s.Scenario = types.ScenarioIntro

	if len(s.Members) >= s.MaxMembers {
		return e.render("")
	}
	member.ID = uuid.NewString()
	s.Members = append(s.Members, member)
	msg := interpolate(e.Defs.Msg("member_joined"), 0, outcome.Env{State: s, Member: &member})
	return e.render(msg)
}

func (e *Engine) actDeclineMember(map[string]string) types.Result {
	s := e.State
	member := s.PendingMember
	s.PendingMember = nil
	s.Scenario = types.ScenarioIntro
	msg := e.applyOutcome(e.Defs.Moves[types.ActionDeclineMember], outcome.Env{State: s, Member: member})
	return e.render(msg)
}
