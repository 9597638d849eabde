package engine

import (
	"fmt"
	"strings"

	"github.com/jinsol/clubsim/engine/outcome"
	"github.com/jinsol/clubsim/types"
)

// render composes a result for the current scenario. A non-empty message
// replaces the scenario's standing text, the way an action's narrative
// takes over the screen while the choices stay current.
func (e *Engine) render(msg string) types.Result {
	if msg == "" {
		msg = e.scenarioText(e.State.Scenario)
	}
	return types.Result{Message: msg, Choices: e.choicesFor(e.State.Scenario)}
}

// scenarioText returns the standing description for a scenario id.
func (e *Engine) scenarioText(id types.ScenarioID) string {
	s := e.State

	if id.Terminal() {
		key := strings.TrimPrefix(string(id), types.GameOverPrefix)
		if key == "resources" {
			return e.Defs.Msg("game_over_resource")
		}
		for _, sd := range e.Defs.Stats {
			if sd.Key == key {
				return sd.GameOver
			}
		}
		return e.Defs.Msg("game_over")
	}

	if id.InMinigame() && e.session != nil {
		text, _ := e.session.Prompt()
		return text
	}

	switch id {
	case types.ScenarioIntro:
		return e.Defs.Msg("scenario_intro")
	case types.ScenarioActivities:
		return e.Defs.Msg("scenario_activities")
	case types.ScenarioFacilities:
		return e.Defs.Msg("scenario_facilities")
	case types.ScenarioSocial:
		return e.Defs.Msg("scenario_social")
	case types.ScenarioDispute:
		return e.Defs.Msg("scenario_dispute")
	case types.ScenarioNewMember:
		return interpolate(e.Defs.Msg("scenario_new_member"), 0, outcome.Env{State: s, Member: s.PendingMember})
	case types.ScenarioDonation:
		return e.Defs.Msg("scenario_donation")
	default:
		return e.Defs.Msg("scenario_intro")
	}
}

// choicesFor builds the choice set for a scenario. The facility menu and
// the dispute screen are generated from current state; terminal scenarios
// offer nothing.
func (e *Engine) choicesFor(id types.ScenarioID) []types.Choice {
	s := e.State

	if id.Terminal() {
		return nil
	}
	if id.InMinigame() && e.session != nil {
		_, choices := e.session.Prompt()
		return choices
	}

	switch id {
	case types.ScenarioIntro:
		return []types.Choice{
			{Label: "Look around the club", Action: types.ActionLookAround},
			{Label: "Chat with a member", Action: types.ActionChatMember},
			{Label: "Hold the regular meeting", Action: types.ActionHoldMeeting},
			{Label: "Prepare activities", Action: types.ActionOpenActivity},
			{Label: "Manage facilities", Action: types.ActionOpenFacility},
			{Label: "Socialize", Action: types.ActionOpenSocial},
			{Label: "Today's activity", Action: types.ActionPlayMinigame},
			{Label: "End the day", Action: types.ActionNextDay},
		}

	case types.ScenarioActivities:
		return []types.Choice{
			{Label: "Prepare refreshments", Action: types.ActionPrepareRefreshments},
			{Label: "Decorate the club", Action: types.ActionDecorateClub},
			{Label: "Raise funds", Action: types.ActionRaiseFunds},
			{Label: "Back", Action: types.ActionBack},
		}

	case types.ScenarioFacilities:
		return e.facilityChoices()

	case types.ScenarioSocial:
		return []types.Choice{
			{Label: "Prepare surprise refreshments", Action: types.ActionLuckyRefreshments},
			{Label: "Explore club history", Action: types.ActionClubHistory},
			{Label: "Back", Action: types.ActionBack},
		}

	case types.ScenarioDispute:
		var choices []types.Choice
		for _, m := range s.Members {
			choices = append(choices, types.Choice{
				Label:  "Side with " + m.Name,
				Action: types.ActionDisputeFavor,
				Params: map[string]string{"member": m.ID},
			})
		}
		choices = append(choices,
			types.Choice{Label: "Mediate", Action: types.ActionDisputeMediate},
			types.Choice{Label: "Stay out of it", Action: types.ActionDisputeIgnore},
		)
		return choices

	case types.ScenarioNewMember:
		return []types.Choice{
			{Label: "Welcome them in", Action: types.ActionAcceptMember},
			{Label: "Turn them away", Action: types.ActionDeclineMember},
		}

	case types.ScenarioDonation:
		return []types.Choice{
			{Label: "Accept the donation", Action: types.ActionAcceptDonation},
			{Label: "Decline politely", Action: types.ActionDeclineDonation},
		}

	default:
		return nil
	}
}

// facilityChoices lists buildable facilities (prerequisites met), repairs
// for worn facilities, and a way back.
func (e *Engine) facilityChoices() []types.Choice {
	s := e.State
	var choices []types.Choice

	for _, key := range e.Defs.FacilityOrder {
		fd := e.Defs.Facilities[key]
		fs := s.Facilities[key]
		if !fs.Built {
			if fd.Requires != "" && !s.Facilities[fd.Requires].Built {
				continue
			}
			choices = append(choices, types.Choice{
				Label:  fmt.Sprintf("Build %s (%s)", fd.Name, e.formatCost(fd.Cost)),
				Action: types.ActionBuildFacility,
				Params: map[string]string{"facility": key},
			})
		}
	}
	for _, key := range e.Defs.FacilityOrder {
		fd := e.Defs.Facilities[key]
		fs := s.Facilities[key]
		if fs.Built && fs.Durability < 100 {
			choices = append(choices, types.Choice{
				Label:  fmt.Sprintf("Repair %s (%s)", fd.Name, e.formatCost(e.Defs.Balance.MaintainCost)),
				Action: types.ActionMaintainFacility,
				Params: map[string]string{"facility": key},
			})
		}
	}
	return append(choices, types.Choice{Label: "Back", Action: types.ActionBack})
}

// formatCost renders a resource cost in the preset's resource order.
func (e *Engine) formatCost(cost map[string]int) string {
	var parts []string
	for _, rd := range e.Defs.Resources {
		if amount, ok := cost[rd.Key]; ok {
			parts = append(parts, fmt.Sprintf("%d %s", amount, strings.ToLower(rd.Name)))
		}
	}
	return strings.Join(parts, ", ")
}
