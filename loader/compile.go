package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/jinsol/clubsim/engine/state"
	"github.com/jinsol/clubsim/types"
)

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	if s, ok := tbl.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	if b, ok := tbl.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an int field from a Lua table, or def if missing.
func getInt(tbl *lua.LTable, key string, def int) int {
	if n, ok := tbl.RawGetString(key).(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	if t, ok := tbl.RawGetString(key).(*lua.LTable); ok {
		return t
	}
	return nil
}

// tableToIntMap converts a Lua table to a map[string]int (resource costs).
func tableToIntMap(tbl *lua.LTable) map[string]int {
	if tbl == nil {
		return nil
	}
	m := map[string]int{}
	tbl.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok {
			return
		}
		if vn, ok := v.(lua.LNumber); ok {
			m[string(ks)] = int(vn)
		}
	})
	return m
}

// tableToStringMap converts a Lua table to a map[string]string.
func tableToStringMap(tbl *lua.LTable) map[string]string {
	if tbl == nil {
		return nil
	}
	m := map[string]string{}
	tbl.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok {
			return
		}
		if vs, ok := v.(lua.LString); ok {
			m[string(ks)] = string(vs)
		}
	})
	return m
}

// compile converts all collected Lua data into a Defs struct.
func compile(coll *collector) (*state.Defs, error) {
	defs := &state.Defs{
		Facilities: map[string]types.FacilityDef{},
		Skills:     map[string]types.Outcome{},
		Tables:     map[string]types.OutcomeTable{},
		Moves:      map[types.ActionID]types.Outcome{},
		Messages:   map[string]string{},
	}

	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}
	defs.Game = types.GameDef{
		Title:   getString(coll.game, "title"),
		Author:  getString(coll.game, "author"),
		Version: getString(coll.game, "version"),
		Intro:   getString(coll.game, "intro"),
	}

	for _, raw := range coll.stats {
		defs.Stats = append(defs.Stats, types.StatDef{
			Key:      raw.id,
			Name:     getString(raw.table, "name"),
			Start:    getInt(raw.table, "start", 50),
			Terminal: getBool(raw.table, "terminal", false),
			GameOver: getString(raw.table, "game_over"),
		})
	}

	for _, raw := range coll.resources {
		defs.Resources = append(defs.Resources, types.ResourceDef{
			Key:   raw.id,
			Name:  getString(raw.table, "name"),
			Start: getInt(raw.table, "start", 0),
		})
	}

	for _, raw := range coll.facilities {
		fd, err := compileFacility(raw)
		if err != nil {
			return nil, fmt.Errorf("facility %s: %w", raw.id, err)
		}
		defs.Facilities[raw.id] = fd
		defs.FacilityOrder = append(defs.FacilityOrder, raw.id)
	}

	for _, tbl := range coll.members {
		defs.Roster = append(defs.Roster, compileMember(tbl))
	}
	for _, tbl := range coll.recruits {
		defs.Recruits = append(defs.Recruits, compileMember(tbl))
	}

	for _, raw := range coll.skills {
		o, err := compileOutcome(raw.table)
		if err != nil {
			return nil, fmt.Errorf("skill %s: %w", raw.id, err)
		}
		defs.Skills[raw.id] = o
	}

	for _, raw := range coll.tables {
		table, err := compileTable(raw.table)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", raw.id, err)
		}
		defs.Tables[raw.id] = table
	}

	for _, raw := range coll.moves {
		o, err := compileOutcome(raw.table)
		if err != nil {
			return nil, fmt.Errorf("move %s: %w", raw.id, err)
		}
		defs.Moves[types.ActionID(raw.id)] = o
	}

	for _, tbl := range coll.thresholds {
		rule, err := compileThreshold(tbl)
		if err != nil {
			return nil, fmt.Errorf("threshold: %w", err)
		}
		defs.Thresholds = append(defs.Thresholds, rule)
	}

	for _, raw := range coll.events {
		ev, err := compileEvent(raw)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", raw.id, err)
		}
		defs.Events = append(defs.Events, ev)
	}

	for _, tbl := range coll.tiers {
		defs.Tiers = append(defs.Tiers, types.RewardTier{
			MinScore: getInt(tbl, "min_score", 0),
			Effects:  compileEffects(getTable(tbl, "effects")),
			Message:  getString(tbl, "message"),
		})
	}

	if coll.balance != nil {
		defs.Balance = compileBalance(coll.balance)
	}
	if coll.messages != nil {
		defs.Messages = tableToStringMap(coll.messages)
	}

	return defs, nil
}

func compileMember(tbl *lua.LTable) types.Member {
	name := getString(tbl, "name")
	return types.Member{
		ID:          getStringDefault(tbl, "id", name),
		Name:        name,
		Personality: getString(tbl, "personality"),
		Skill:       getString(tbl, "skill"),
		Friendship:  getInt(tbl, "friendship", 50),
	}
}

func getStringDefault(tbl *lua.LTable, key, def string) string {
	if s := getString(tbl, key); s != "" {
		return s
	}
	return def
}

func compileFacility(raw rawKeyed) (types.FacilityDef, error) {
	tbl := raw.table
	fd := types.FacilityDef{
		Name:        getString(tbl, "name"),
		Description: getString(tbl, "description"),
		EffectDesc:  getString(tbl, "effect"),
		Cost:        tableToIntMap(getTable(tbl, "cost")),
		Requires:    getString(tbl, "requires"),
	}
	if buildTbl := getTable(tbl, "build"); buildTbl != nil {
		o, err := compileOutcome(buildTbl)
		if err != nil {
			return fd, fmt.Errorf("build outcome: %w", err)
		}
		fd.Build = o
	}
	if dailyTbl := getTable(tbl, "daily"); dailyTbl != nil {
		o, err := compileOutcome(dailyTbl)
		if err != nil {
			return fd, fmt.Errorf("daily outcome: %w", err)
		}
		fd.Daily = o
	}
	return fd, nil
}

func compileTable(tbl *lua.LTable) (types.OutcomeTable, error) {
	var table types.OutcomeTable
	var err error
	tbl.ForEach(func(k, v lua.LValue) {
		if _, ok := k.(lua.LNumber); !ok {
			return
		}
		outTbl, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		o, cerr := compileOutcome(outTbl)
		if cerr != nil && err == nil {
			err = cerr
		}
		table = append(table, o)
	})
	return table, err
}

func compileOutcome(tbl *lua.LTable) (types.Outcome, error) {
	o := types.Outcome{
		ID:      getString(tbl, "id"),
		Weight:  getInt(tbl, "weight", 0),
		Message: getString(tbl, "message"),
	}
	if rollTbl := getTable(tbl, "roll"); rollTbl != nil {
		o.Roll = types.Roll{
			Base:     getInt(rollTbl, "base", 0),
			Variance: getInt(rollTbl, "variance", 0),
		}
	}
	if condTbl := getTable(tbl, "conditions"); condTbl != nil {
		o.Conditions = compileConditions(condTbl)
	}
	o.Effects = compileEffects(getTable(tbl, "effects"))
	return o, nil
}

func compileConditions(tbl *lua.LTable) []types.Condition {
	var conditions []types.Condition
	tbl.ForEach(func(k, v lua.LValue) {
		if _, ok := k.(lua.LNumber); !ok {
			return
		}
		if condTbl, ok := v.(*lua.LTable); ok {
			conditions = append(conditions, compileCondition(condTbl))
		}
	})
	return conditions
}

func compileCondition(tbl *lua.LTable) types.Condition {
	c := types.Condition{
		Type:     getString(tbl, "type"),
		Stat:     getString(tbl, "stat"),
		Resource: getString(tbl, "resource"),
		Facility: getString(tbl, "facility"),
		Value:    getInt(tbl, "value", 0),
	}
	if c.Type == "not" {
		if innerTbl := getTable(tbl, "inner"); innerTbl != nil {
			inner := compileCondition(innerTbl)
			c.Inner = &inner
		}
	}
	return c
}

func compileEffects(tbl *lua.LTable) []types.Effect {
	if tbl == nil {
		return nil
	}
	var effects []types.Effect
	tbl.ForEach(func(k, v lua.LValue) {
		if _, ok := k.(lua.LNumber); !ok {
			return
		}
		effTbl, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		effects = append(effects, types.Effect{
			Type:     getString(effTbl, "type"),
			Stat:     getString(effTbl, "stat"),
			Resource: getString(effTbl, "resource"),
			Scale:    getInt(effTbl, "scale", 0),
			Amount:   getInt(effTbl, "amount", 0),
			Clamp:    getBool(effTbl, "clamp", false),
		})
	})
	return effects
}

func compileThreshold(tbl *lua.LTable) (types.ThresholdRule, error) {
	rule := types.ThresholdRule{
		Stat:  getString(tbl, "stat"),
		Value: getInt(tbl, "value", 0),
		Below: getBool(tbl, "below", false),
	}
	effTbl := getTable(tbl, "effect")
	if effTbl == nil {
		return rule, fmt.Errorf("threshold for %q has no effect", rule.Stat)
	}
	o, err := compileOutcome(effTbl)
	if err != nil {
		return rule, err
	}
	rule.Effect = o
	return rule, nil
}

func compileEvent(raw rawKeyed) (types.DailyEvent, error) {
	tbl := raw.table
	ev := types.DailyEvent{
		ID:       raw.id,
		Weight:   getInt(tbl, "weight", 0),
		Scenario: types.ScenarioID(getString(tbl, "scenario")),
	}
	if condTbl := getTable(tbl, "conditions"); condTbl != nil {
		ev.Conditions = compileConditions(condTbl)
	}
	if outTbl := getTable(tbl, "outcome"); outTbl != nil {
		o, err := compileOutcome(outTbl)
		if err != nil {
			return ev, err
		}
		ev.Outcome = o
	}
	ev.Outcome.ID = raw.id
	return ev, nil
}

func compileBalance(tbl *lua.LTable) types.Balance {
	return types.Balance{
		ActionPoints:      getInt(tbl, "action_points", 10),
		MaxMembers:        getInt(tbl, "max_members", 5),
		ManualAdvanceCap:  getInt(tbl, "manual_advance_cap", 5),
		UpkeepPerMember:   getInt(tbl, "upkeep_per_member", 1),
		UpkeepResource:    getString(tbl, "upkeep_resource"),
		UpkeepPenaltyStat: getString(tbl, "upkeep_penalty_stat"),
		UpkeepPenalty:     getInt(tbl, "upkeep_penalty", 0),
		TerminalResource:  getString(tbl, "terminal_resource"),
		FacilityDecay:     getInt(tbl, "facility_decay", 1),
		UnbuildAtZero:     getBool(tbl, "unbuild_at_zero", false),
		MaintainCost:      tableToIntMap(getTable(tbl, "maintain_cost")),
	}
}
