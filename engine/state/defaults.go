package state

import "github.com/jinsol/clubsim/types"

// DefaultDefs returns the built-in preset: the classic social-club balance.
// Every number and message here can be overridden by a Lua preset loaded
// through the loader package.
func DefaultDefs() *Defs {
	return &Defs{
		Game: types.GameDef{
			Title:   "Clubhouse Days",
			Author:  "clubsim",
			Version: "1.0",
			Intro:   "You run a small social club. Spend each day's action points wisely, keep the members close, and don't let the club fall apart.",
		},

		Stats: []types.StatDef{
			{Key: "harmony", Name: "Harmony", Start: 50, Terminal: true,
				GameOver: "The club's harmony is shattered. One by one, the members drift away."},
			{Key: "popularity", Name: "Popularity", Start: 50, Terminal: true,
				GameOver: "The club's popularity has hit rock bottom. It has become a ghost club no one visits."},
			{Key: "tradition", Name: "Tradition", Start: 50, Terminal: true,
				GameOver: "A club that has lost its traditions has lost its reason to exist."},
			{Key: "friendliness", Name: "Friendliness", Start: 50},
			{Key: "organization", Name: "Organization", Start: 50},
		},

		Resources: []types.ResourceDef{
			{Key: "refreshments", Name: "Refreshments", Start: 10},
			{Key: "decorations", Name: "Decorations", Start: 10},
			{Key: "funds", Name: "Funds", Start: 5},
			{Key: "trophies", Name: "Trophies", Start: 0},
		},

		Roster: []types.Member{
			{ID: "sunny", Name: "Sunny", Personality: "kindhearted", Skill: "event_planning", Friendship: 70},
			{ID: "leo", Name: "Leo", Personality: "sociable", Skill: "mood_making", Friendship: 60},
		},
		Recruits: []types.Member{
			{Name: "Chloe", Personality: "cheerful", Skill: "baking", Friendship: 50},
			{Name: "Dana", Personality: "meticulous", Skill: "record_keeping", Friendship: 50},
			{Name: "Miro", Personality: "quiet", Skill: "mood_making", Friendship: 50},
		},
		Skills: map[string]types.Outcome{
			"event_planning": {
				Roll:    types.Roll{Base: 2, Variance: 1},
				Effects: []types.Effect{{Type: "resource", Resource: "funds", Scale: 1}},
				Message: "{member}'s event planning brings in a little funding. (+{v} funds) ",
			},
			"mood_making": {
				Effects: []types.Effect{{Type: "stat", Stat: "harmony", Amount: 1}},
				Message: "{member} keeps the mood light. (+1 harmony) ",
			},
			"baking": {
				Roll:    types.Roll{Base: 2, Variance: 1},
				Effects: []types.Effect{{Type: "resource", Resource: "refreshments", Scale: 1}},
				Message: "{member} bakes for everyone. (+{v} refreshments) ",
			},
			"record_keeping": {
				Effects: []types.Effect{{Type: "stat", Stat: "tradition", Amount: 1}},
				Message: "{member} keeps the club chronicle up to date. (+1 tradition) ",
			},
		},

		Facilities: map[string]types.FacilityDef{
			"pantry": {
				Name:        "Pantry",
				Description: "Keeps refreshments ready for the members.",
				EffectDesc:  "Generates refreshments daily and boosts friendliness.",
				Cost:        map[string]int{"funds": 50, "decorations": 20},
				Build: types.Outcome{
					Roll:    types.Roll{Base: 10, Variance: 3},
					Effects: []types.Effect{{Type: "stat", Stat: "friendliness", Scale: 1}},
					Message: "You set up the pantry! (+{v} friendliness)",
				},
				Daily: types.Outcome{
					Roll:    types.Roll{Base: 3, Variance: 1},
					Effects: []types.Effect{{Type: "resource", Resource: "refreshments", Scale: 1}},
					Message: "The pantry restocks refreshments. (+{v} refreshments) ",
				},
			},
			"hobby_room": {
				Name:        "Hobby Room",
				Description: "A space for members to enjoy their hobbies.",
				EffectDesc:  "Produces decorations and raises popularity.",
				Cost:        map[string]int{"decorations": 30, "refreshments": 30},
				Build: types.Outcome{
					Roll:    types.Roll{Base: 10, Variance: 3},
					Effects: []types.Effect{{Type: "stat", Stat: "popularity", Scale: 1}},
					Message: "You set up the hobby room! (+{v} popularity)",
				},
				Daily: types.Outcome{
					Roll:    types.Roll{Base: 2, Variance: 1},
					Effects: []types.Effect{{Type: "resource", Resource: "decorations", Scale: 1}},
					Message: "The hobby room turns out fresh decorations. (+{v} decorations) ",
				},
			},
			"main_lounge": {
				Name:        "Main Lounge",
				Description: "The heart of the club, where members mingle.",
				EffectDesc:  "Attracts new members and strengthens harmony.",
				Cost:        map[string]int{"funds": 100, "decorations": 50},
				Build: types.Outcome{
					Roll:    types.Roll{Base: 15, Variance: 5},
					Effects: []types.Effect{{Type: "stat", Stat: "harmony", Scale: 1}},
					Message: "You expand the main lounge! (+{v} harmony)",
				},
				Daily: types.Outcome{
					Effects: []types.Effect{{Type: "stat", Stat: "harmony", Amount: 1}},
					Message: "The main lounge keeps spirits up. (+1 harmony) ",
				},
			},
			"record_room": {
				Name:        "Record Room",
				Description: "Chronicles the club's history and traditions.",
				EffectDesc:  "Preserves tradition through the club's records.",
				Cost:        map[string]int{"decorations": 80, "refreshments": 40},
				Build: types.Outcome{
					Roll:    types.Roll{Base: 15, Variance: 5},
					Effects: []types.Effect{{Type: "stat", Stat: "tradition", Scale: 1}},
					Message: "You open the record room! (+{v} tradition)",
				},
				Daily: types.Outcome{
					Effects: []types.Effect{{Type: "stat", Stat: "tradition", Amount: 1}},
					Message: "The record room preserves another day of club history. (+1 tradition) ",
				},
			},
			"party_room": {
				Name:        "Party Room",
				Description: "Hosts grand parties and special events.",
				EffectDesc:  "Earns trophies and unlocks premium activities.",
				Cost:        map[string]int{"funds": 150, "trophies": 5},
				Requires:    "hobby_room",
				Build: types.Outcome{
					Roll:    types.Roll{Base: 20, Variance: 5},
					Effects: []types.Effect{{Type: "stat", Stat: "popularity", Scale: 1}},
					Message: "You open the party room! (+{v} popularity)",
				},
				Daily: types.Outcome{
					Effects: []types.Effect{{Type: "stat", Stat: "popularity", Amount: 1}},
					Message: "Word of last night's party spreads. (+1 popularity) ",
				},
			},
		},
		FacilityOrder: []string{"pantry", "hobby_room", "main_lounge", "record_room", "party_room"},

		Tables: map[string]types.OutcomeTable{
			"look_around": {
				{ID: "warm_mood", Weight: 30,
					Conditions: []types.Condition{{Type: "stat_above", Stat: "friendliness", Value: 60}},
					Roll:       types.Roll{Base: 10, Variance: 5},
					Effects:    []types.Effect{{Type: "stat", Stat: "harmony", Scale: 1}},
					Message:    "Thanks to your warmth, the club mood turns even friendlier! (+{v} harmony)"},
				{ID: "satisfied_members", Weight: 25,
					Roll:    types.Roll{Base: 5, Variance: 2},
					Effects: []types.Effect{{Type: "stat", Stat: "popularity", Scale: 1}},
					Message: "You make the rounds and lift member satisfaction. (+{v} popularity)"},
				{ID: "broken_decorations", Weight: 20,
					Roll:    types.Roll{Base: 5, Variance: 2},
					Effects: []types.Effect{{Type: "resource", Resource: "decorations", Scale: -1}},
					Message: "Some decorations got damaged while you looked around. (-{v} decorations)"},
				{ID: "awkward_rounds", Weight: 15,
					Conditions: []types.Condition{{Type: "stat_below", Stat: "friendliness", Value: 40}},
					Roll:       types.Roll{Base: 5, Variance: 2},
					Effects:    []types.Effect{{Type: "stat", Stat: "organization", Scale: -1}},
					Message:    "Your standoffishness leaves members awkward around you. (-{v} organization)"},
			},
			"chat": {
				{ID: "deep_bond", Weight: 40,
					Conditions: []types.Condition{{Type: "friendship_below", Value: 80}},
					Roll:       types.Roll{Base: 10, Variance: 5},
					Effects:    []types.Effect{{Type: "friendship", Scale: 1}},
					Message:    "A delightful chat with {member} deepens your bond. (+{v} friendship)"},
				{ID: "flattered", Weight: 30,
					Roll:    types.Roll{Base: 5, Variance: 2},
					Effects: []types.Effect{{Type: "stat", Stat: "popularity", Scale: 1}},
					Message: "{member} beams at your compliment. (+{v} popularity)"},
				{ID: "grievances", Weight: 20,
					Conditions: []types.Condition{{Type: "stat_below", Stat: "harmony", Value: 40}},
					Roll:       types.Roll{Base: 10, Variance: 3},
					Effects:    []types.Effect{{Type: "friendship", Scale: -1}},
					Message:    "The club's discord has {member} airing grievances. (-{v} friendship)"},
			},
			"meeting": {
				{ID: "orderly_meeting", Weight: 40,
					Conditions: []types.Condition{{Type: "stat_above", Stat: "organization", Value: 60}},
					Roll:       types.Roll{Base: 10, Variance: 3},
					Effects:    []types.Effect{{Type: "stat", Stat: "tradition", Scale: 1}},
					Message:    "A well-run meeting strengthens the club's traditions. (+{v} tradition)"},
				{ID: "opinions_aligned", Weight: 30,
					Roll:    types.Roll{Base: 10, Variance: 3},
					Effects: []types.Effect{{Type: "stat", Stat: "harmony", Scale: 1}},
					Message: "The meeting brings everyone's opinions into line. (+{v} harmony)"},
				{ID: "rambling_meeting", Weight: 20,
					Conditions: []types.Condition{{Type: "stat_below", Stat: "organization", Value: 40}},
					Roll:       types.Roll{Base: 10, Variance: 4},
					Effects:    []types.Effect{{Type: "stat", Stat: "popularity", Scale: -1}},
					Message:    "A rambling meeting costs the club some popularity. (-{v} popularity)"},
			},
			"lucky_refreshments": {
				{ID: "legendary_recipe", Weight: 30,
					Roll:    types.Roll{Base: 1, Variance: 1},
					Effects: []types.Effect{{Type: "resource", Resource: "trophies", Scale: 1}},
					Message: "You discover a legendary recipe among the snacks! (+{v} trophies)"},
				{ID: "tasty_spread", Weight: 70,
					Roll:    types.Roll{Base: 10, Variance: 5},
					Effects: []types.Effect{{Type: "stat", Stat: "friendliness", Scale: 1}},
					Message: "A successful spread of refreshments lifts your friendliness. (+{v} friendliness)"},
			},
			"club_history": {
				{ID: "forgotten_stash", Weight: 60,
					Roll:    types.Roll{Base: 10, Variance: 5},
					Effects: []types.Effect{{Type: "resource", Resource: "funds", Scale: 1}},
					Message: "Digging through club history you find a forgotten stash. (+{v} funds)"},
				{ID: "nothing_found", Weight: 40,
					Message: "You find nothing of note."},
			},
		},

		Moves: map[types.ActionID]types.Outcome{
			types.ActionPrepareRefreshments: {
				Roll:    types.Roll{Base: 10, Variance: 4},
				Effects: []types.Effect{{Type: "resource", Resource: "refreshments", Scale: 1}},
				Message: "You prepared refreshments. (+{v} refreshments)"},
			types.ActionDecorateClub: {
				Roll:    types.Roll{Base: 10, Variance: 4},
				Effects: []types.Effect{{Type: "resource", Resource: "decorations", Scale: 1}},
				Message: "You decorated the club. (+{v} decorations)"},
			types.ActionRaiseFunds: {
				Roll:    types.Roll{Base: 5, Variance: 2},
				Effects: []types.Effect{{Type: "resource", Resource: "funds", Scale: 1}},
				Message: "You raised activity funds. (+{v} funds)"},

			types.ActionDisputeFavor: {
				Roll: types.Roll{Base: 10, Variance: 3},
				Effects: []types.Effect{
					{Type: "friendship", Scale: 1},
					{Type: "stat", Stat: "harmony", Amount: -5},
				},
				Message: "You side with {member}. Their loyalty grows, but the room chills. (+{v} friendship, -5 harmony)"},
			types.ActionDisputeMediate: {
				Roll:    types.Roll{Base: 8, Variance: 3},
				Effects: []types.Effect{{Type: "stat", Stat: "harmony", Scale: 1}},
				Message: "You patiently mediate until the quarrel settles. (+{v} harmony)"},
			types.ActionDisputeIgnore: {
				Effects: []types.Effect{
					{Type: "stat", Stat: "harmony", Amount: -5},
					{Type: "stat", Stat: "popularity", Amount: -3},
				},
				Message: "You look away and let it fester. (-5 harmony, -3 popularity)"},

			types.ActionAcceptDonation: {
				Roll: types.Roll{Base: 20, Variance: 5},
				Effects: []types.Effect{
					{Type: "resource", Resource: "funds", Scale: 1},
					{Type: "stat", Stat: "tradition", Amount: -3},
				},
				Message: "You accept the donation with thanks. (+{v} funds, -3 tradition)"},
			types.ActionDeclineDonation: {
				Effects: []types.Effect{{Type: "stat", Stat: "tradition", Amount: 2}},
				Message: "You decline gracefully. The members nod in respect. (+2 tradition)"},
			types.ActionDeclineMember: {
				Effects: []types.Effect{{Type: "stat", Stat: "organization", Amount: 2}},
				Message: "You politely turn {member} away. (+2 organization)"},
		},

		Thresholds: []types.ThresholdRule{
			{Stat: "harmony", Value: 70,
				Effect: types.Outcome{Message: "Everyone basks in the club's harmonious mood. "}},
			{Stat: "popularity", Value: 70,
				Effect: types.Outcome{
					Roll:    types.Roll{Base: 5, Variance: 2},
					Effects: []types.Effect{{Type: "resource", Resource: "funds", Scale: 1}},
					Message: "The club's popularity brings in funds. (+{v} funds) "}},
			{Stat: "tradition", Value: 70,
				Effect: types.Outcome{
					Roll:    types.Roll{Base: 2, Variance: 1},
					Effects: []types.Effect{{Type: "friendship_all", Scale: 1}},
					Message: "The club's traditions deepen every friendship. (+{v} friendship) "}},
			{Stat: "friendliness", Value: 30, Below: true,
				Effect: types.Outcome{
					Effects: []types.Effect{{Type: "action_points", Amount: -1}},
					Message: "Your lack of friendliness saps an action point. "}},
			{Stat: "organization", Value: 30, Below: true,
				Effect: types.Outcome{
					Effects: []types.Effect{{Type: "durability_built", Amount: -1}},
					Message: "Poor organization lets the facilities deteriorate. "}},
		},

		Events: []types.DailyEvent{
			{ID: "unexpected_guest", Weight: 10,
				Conditions: []types.Condition{{Type: "stat_above", Stat: "popularity", Value: 40}},
				Outcome: types.Outcome{
					Roll: types.Roll{Base: 10, Variance: 3},
					Effects: []types.Effect{
						{Type: "stat", Stat: "popularity", Scale: 1},
						{Type: "stat", Stat: "harmony", Scale: 1},
					},
					Message: "An unexpected guest drops by and the club's popularity soars. (+{v} popularity, +{v} harmony)"}},
			{ID: "member_dispute", Weight: 5,
				Outcome: types.Outcome{
					Roll: types.Roll{Base: 15, Variance: 5},
					Effects: []types.Effect{
						{Type: "resource", Resource: "refreshments", Scale: -1, Clamp: true},
						{Type: "stat", Stat: "harmony", Amount: -5},
					},
					Message: "A quarrel between members wrecks the refreshments. (-{v} refreshments, -5 harmony)"},
				Scenario: types.ScenarioDispute},
			{ID: "new_tradition", Weight: 15,
				Outcome: types.Outcome{
					Roll:    types.Roll{Base: 10, Variance: 5},
					Effects: []types.Effect{{Type: "stat", Stat: "tradition", Scale: 1}},
					Message: "A new tradition takes root! (+{v} tradition)"}},
			{ID: "new_member_offer", Weight: 8,
				Conditions: []types.Condition{
					{Type: "facility_built", Facility: "main_lounge"},
					{Type: "members_below_cap"},
				},
				Outcome:  types.Outcome{Message: "Someone lingers by the lounge door, hoping to join the club."},
				Scenario: types.ScenarioNewMember},
			{ID: "donation_offer", Weight: 6,
				Conditions: []types.Condition{{Type: "stat_above", Stat: "popularity", Value: 50}},
				Outcome:    types.Outcome{Message: "A local patron offers a donation to the club."},
				Scenario:   types.ScenarioDonation},
			{ID: "quiet_day", Weight: 20,
				Outcome: types.Outcome{Message: "A quiet day at the club."}},
		},

		Tiers: []types.RewardTier{
			{MinScore: 150,
				Effects: []types.Effect{
					{Type: "stat", Stat: "friendliness", Amount: 15},
					{Type: "stat", Stat: "harmony", Amount: 10},
				},
				Message: "A flawless praise relay! (+15 friendliness, +10 harmony)"},
			{MinScore: 50,
				Effects: []types.Effect{
					{Type: "stat", Stat: "friendliness", Amount: 10},
					{Type: "stat", Stat: "harmony", Amount: 5},
				},
				Message: "Warm compliments all around. (+10 friendliness, +5 harmony)"},
			{MinScore: 0,
				Effects: []types.Effect{{Type: "stat", Stat: "friendliness", Amount: 5}},
				Message: "You finished the praise relay. (+5 friendliness)"},
		},

		Balance: types.Balance{
			ActionPoints:      10,
			MaxMembers:        5,
			ManualAdvanceCap:  5,
			UpkeepPerMember:   1,
			UpkeepResource:    "refreshments",
			UpkeepPenaltyStat: "popularity",
			UpkeepPenalty:     5,
			TerminalResource:  "refreshments",
			FacilityDecay:     1,
			UnbuildAtZero:     false,
			MaintainCost:      map[string]int{"decorations": 10, "refreshments": 10},
		},

		Messages: map[string]string{
			"morning":            "A new morning dawns on the social club. ",
			"no_action_points":   "Not enough action points.",
			"insufficient":       "Not enough resources.",
			"advance_cap":        "You can't advance to the next day any more today.",
			"upkeep_shortfall":   "The refreshments ran out and members grumble. (-{v} popularity) ",
			"game_over_resource": "The club's supplies are completely exhausted.",

			"scenario_intro":      "What will you do for the club today?",
			"scenario_activities": "What will you prepare?",
			"scenario_facilities": "Which facility will you manage?",
			"scenario_social":     "How will you bond with the members?",
			"scenario_dispute":    "Two members are glaring at each other across the room. What now?",
			"scenario_new_member": "{member} ({personality}, good at {skill}) wants to join the club.",
			"scenario_donation":   "The patron is waiting for your answer.",

			"member_joined": "{member} joins the club!",

			"maintain_done":      "{facility} has been repaired.",
			"facility_collapsed": "The {facility} has fallen into disrepair and is out of use. ",
			"minigame_intro":     "Pass a compliment along the relay. Find something kind to say to each member!",
			"minigame_done":      "Today's activity already happened. Come back tomorrow.",
			"reset_done":         "The club has been disbanded. A fresh start awaits.",
			"game_over":          "The club's story ends here. Reset to start over.",
		},
	}
}
