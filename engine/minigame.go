package engine

import (
	"fmt"

	"github.com/jinsol/clubsim/engine/outcome"
	"github.com/jinsol/clubsim/types"
)

// Minigame is a self-contained score-producing diversion. A session owns the
// screen until Advance reports done; the engine then maps the final score to a
// reward tier. Sessions are in-memory only and never survive a save.
type Minigame interface {
	Name() string
	Description() string
	Start(s *types.State, rng *RNG) MinigameSession
}

// MinigameSession is one in-progress playthrough.
type MinigameSession interface {
	// Prompt returns the current screen text and the choices to offer.
	Prompt() (string, []types.Choice)
	// Advance consumes one player input. done flips once the session is
	// finished; score is only meaningful when done.
	Advance(input string) (done bool, score int)
}

func (e *Engine) actPlayMinigame(map[string]string) types.Result {
	s := e.State
	if s.DailyActions.MinigamePlayed {
		return e.render(e.Defs.Msg("minigame_done"))
	}
	if !e.spendPoint() {
		return e.render(e.Defs.Msg("no_action_points"))
	}
	mg := e.minigames[e.RNG.Intn(len(e.minigames))]
	e.session = mg.Start(s, e.RNG)
	s.Scenario = types.ScenarioID(types.MinigamePrefix + mg.Name())
	s.DailyActions.MinigamePlayed = true
	return e.render(e.Defs.Msg("minigame_intro"))
}

func (e *Engine) actMinigameInput(params map[string]string) types.Result {
	s := e.State
	if e.session == nil {
		s.Scenario = types.ScenarioIntro
		return e.render("")
	}
	done, score := e.session.Advance(params["input"])
	if !done {
		return e.render("")
	}
	e.session = nil
	s.Scenario = types.ScenarioIntro
	return e.render(e.applyReward(score))
}

// applyReward maps a final score onto the first tier whose floor it clears.
// Tiers are ordered highest floor first.
func (e *Engine) applyReward(score int) string {
	for _, tier := range e.Defs.Tiers {
		if score >= tier.MinScore {
			e.applyEffects(tier.Effects, score, outcome.Env{State: e.State})
			return fmt.Sprintf("%s (score %d)", tier.Message, score)
		}
	}
	return fmt.Sprintf("Score %d.", score)
}

// praiseRelaySteps is how many compliments one relay runs.
const praiseRelaySteps = 3

// PraiseRelay is the compliment-passing game: each round names a member and
// offers three compliments; any pick keeps the relay going and scores points.
type PraiseRelay struct{}

func (PraiseRelay) Name() string        { return "praise_relay" }
func (PraiseRelay) Description() string { return "Pass a compliment around the room." }

func (PraiseRelay) Start(s *types.State, rng *RNG) MinigameSession {
	names := make([]string, len(s.Members))
	for i, m := range s.Members {
		names[i] = m.Name
	}
	// Fisher-Yates on the RNG stream keeps replays deterministic.
	for i := len(names) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		names[i], names[j] = names[j], names[i]
	}
	return &praiseRelaySession{names: names}
}

type praiseRelaySession struct {
	names []string
	step  int
	score int
}

var praiseLines = []string{
	"You always lift the mood.",
	"The club runs smoother with you around.",
	"That was sharp thinking yesterday.",
}

func (p *praiseRelaySession) Prompt() (string, []types.Choice) {
	if len(p.names) == 0 {
		return "Nobody is around to praise today.", []types.Choice{
			{Label: "Leave", Action: types.ActionMinigameInput, Params: map[string]string{"input": "0"}},
		}
	}
	target := p.names[p.step%len(p.names)]
	text := fmt.Sprintf("Round %d of %d. Say something nice to %s:", p.step+1, praiseRelaySteps, target)
	choices := make([]types.Choice, len(praiseLines))
	for i, line := range praiseLines {
		choices[i] = types.Choice{
			Label:  line,
			Action: types.ActionMinigameInput,
			Params: map[string]string{"input": fmt.Sprintf("%d", i+1)},
		}
	}
	return text, choices
}

func (p *praiseRelaySession) Advance(input string) (bool, int) {
	if len(p.names) == 0 {
		return true, p.score
	}
	if input != "" && input != "0" {
		p.score += 50
	}
	p.step++
	if p.step >= praiseRelaySteps {
		return true, p.score
	}
	return false, 0
}
