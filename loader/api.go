package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers all Lua constructors and helpers as globals.
func registerAPI(L *lua.LState, coll *collector) {
	registerConstructors(L, coll)
	registerConditionHelpers(L)
	registerEffectHelpers(L)
}

// keyed registers a curried constructor: Name "id" { ... }.
func keyed(L *lua.LState, name string, sink func(rawKeyed)) {
	L.SetGlobal(name, L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			sink(rawKeyed{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}

func registerConstructors(L *lua.LState, coll *collector) {
	// Game { title = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		coll.game = L.CheckTable(1)
		return 0
	}))

	keyed(L, "Stat", func(r rawKeyed) { coll.stats = append(coll.stats, r) })
	keyed(L, "Resource", func(r rawKeyed) { coll.resources = append(coll.resources, r) })
	keyed(L, "Facility", func(r rawKeyed) { coll.facilities = append(coll.facilities, r) })
	keyed(L, "Skill", func(r rawKeyed) { coll.skills = append(coll.skills, r) })
	keyed(L, "Table", func(r rawKeyed) { coll.tables = append(coll.tables, r) })
	keyed(L, "Move", func(r rawKeyed) { coll.moves = append(coll.moves, r) })
	keyed(L, "Event", func(r rawKeyed) { coll.events = append(coll.events, r) })

	// Member { name = "...", personality = "...", skill = "...", friendship = 70 }
	L.SetGlobal("Member", L.NewFunction(func(L *lua.LState) int {
		coll.members = append(coll.members, L.CheckTable(1))
		return 0
	}))

	// Recruit { ... }: a new-member-offer candidate.
	L.SetGlobal("Recruit", L.NewFunction(func(L *lua.LState) int {
		coll.recruits = append(coll.recruits, L.CheckTable(1))
		return 0
	}))

	// Threshold { stat = "...", value = 70, below = false, effect = Outcome {...} }
	L.SetGlobal("Threshold", L.NewFunction(func(L *lua.LState) int {
		coll.thresholds = append(coll.thresholds, L.CheckTable(1))
		return 0
	}))

	// Tier { min_score = 150, effects = {...}, message = "..." }
	L.SetGlobal("Tier", L.NewFunction(func(L *lua.LState) int {
		coll.tiers = append(coll.tiers, L.CheckTable(1))
		return 0
	}))

	// Balance { action_points = 10, ... }
	L.SetGlobal("Balance", L.NewFunction(func(L *lua.LState) int {
		coll.balance = L.CheckTable(1)
		return 0
	}))

	// Messages { morning = "...", ... }
	L.SetGlobal("Messages", L.NewFunction(func(L *lua.LState) int {
		coll.messages = L.CheckTable(1)
		return 0
	}))

	// Outcome { weight = 30, roll = Roll(10, 4), ... }: pass-through.
	L.SetGlobal("Outcome", L.NewFunction(func(L *lua.LState) int {
		L.Push(L.CheckTable(1))
		return 1
	}))

	// Roll(base, variance)
	L.SetGlobal("Roll", L.NewFunction(func(L *lua.LState) int {
		base := L.CheckNumber(1)
		variance := L.CheckNumber(2)
		tbl := L.NewTable()
		tbl.RawSetString("base", base)
		tbl.RawSetString("variance", variance)
		L.Push(tbl)
		return 1
	}))
}

// condition returns a Lua helper producing a condition descriptor table.
func condition(L *lua.LState, condType string, fields func(L *lua.LState, tbl *lua.LTable)) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString(condType))
		if fields != nil {
			fields(L, tbl)
		}
		L.Push(tbl)
		return 1
	})
}

func registerConditionHelpers(L *lua.LState) {
	// StatAbove("harmony", 60)
	L.SetGlobal("StatAbove", condition(L, "stat_above", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("stat", lua.LString(L.CheckString(1)))
		tbl.RawSetString("value", L.CheckNumber(2))
	}))

	// StatBelow("harmony", 40)
	L.SetGlobal("StatBelow", condition(L, "stat_below", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("stat", lua.LString(L.CheckString(1)))
		tbl.RawSetString("value", L.CheckNumber(2))
	}))

	// ResourceAtLeast("funds", 50)
	L.SetGlobal("ResourceAtLeast", condition(L, "resource_at_least", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("resource", lua.LString(L.CheckString(1)))
		tbl.RawSetString("value", L.CheckNumber(2))
	}))

	// FacilityBuilt("main_lounge")
	L.SetGlobal("FacilityBuilt", condition(L, "facility_built", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("facility", lua.LString(L.CheckString(1)))
	}))

	// MembersBelowCap()
	L.SetGlobal("MembersBelowCap", condition(L, "members_below_cap", nil))

	// FriendshipBelow(100): against the acting member.
	L.SetGlobal("FriendshipBelow", condition(L, "friendship_below", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("value", L.CheckNumber(1))
	}))

	// DayAfter(1)
	L.SetGlobal("DayAfter", condition(L, "day_after", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("value", L.CheckNumber(1))
	}))

	// Not(condition)
	L.SetGlobal("Not", L.NewFunction(func(L *lua.LState) int {
		inner := L.CheckTable(1)
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString("not"))
		tbl.RawSetString("inner", inner)
		L.Push(tbl)
		return 1
	}))
}

// effect returns a Lua helper producing an effect descriptor table.
func effect(L *lua.LState, effType string, fields func(L *lua.LState, tbl *lua.LTable)) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		tbl := L.NewTable()
		tbl.RawSetString("type", lua.LString(effType))
		if fields != nil {
			fields(L, tbl)
		}
		L.Push(tbl)
		return 1
	})
}

func registerEffectHelpers(L *lua.LState) {
	// GainStat("harmony"): scaled by the outcome's roll.
	L.SetGlobal("GainStat", effect(L, "stat", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("stat", lua.LString(L.CheckString(1)))
		tbl.RawSetString("scale", lua.LNumber(1))
	}))

	// LoseStat("harmony")
	L.SetGlobal("LoseStat", effect(L, "stat", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("stat", lua.LString(L.CheckString(1)))
		tbl.RawSetString("scale", lua.LNumber(-1))
	}))

	// AddStat("harmony", -5): fixed amount, ignores the roll.
	L.SetGlobal("AddStat", effect(L, "stat", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("stat", lua.LString(L.CheckString(1)))
		tbl.RawSetString("amount", L.CheckNumber(2))
	}))

	// GainResource("funds")
	L.SetGlobal("GainResource", effect(L, "resource", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("resource", lua.LString(L.CheckString(1)))
		tbl.RawSetString("scale", lua.LNumber(1))
	}))

	// LoseResource("refreshments"): clamped at zero.
	L.SetGlobal("LoseResource", effect(L, "resource", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("resource", lua.LString(L.CheckString(1)))
		tbl.RawSetString("scale", lua.LNumber(-1))
		tbl.RawSetString("clamp", lua.LTrue)
	}))

	// AddResource("funds", 10)
	L.SetGlobal("AddResource", effect(L, "resource", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("resource", lua.LString(L.CheckString(1)))
		tbl.RawSetString("amount", L.CheckNumber(2))
	}))

	// GainFriendship(): the acting member, scaled by the roll.
	L.SetGlobal("GainFriendship", effect(L, "friendship", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("scale", lua.LNumber(1))
	}))

	// AddFriendship(5)
	L.SetGlobal("AddFriendship", effect(L, "friendship", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("amount", L.CheckNumber(1))
	}))

	// FriendshipAll(): every member, scaled by the roll.
	L.SetGlobal("FriendshipAll", effect(L, "friendship_all", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("scale", lua.LNumber(1))
	}))

	// AddFriendshipAll(2)
	L.SetGlobal("AddFriendshipAll", effect(L, "friendship_all", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("amount", L.CheckNumber(1))
	}))

	// ActionPoints(-1)
	L.SetGlobal("ActionPoints", effect(L, "action_points", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("amount", L.CheckNumber(1))
	}))

	// Durability(-1): every built facility.
	L.SetGlobal("Durability", effect(L, "durability_built", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("amount", L.CheckNumber(1))
	}))

	// ClubLevel(1)
	L.SetGlobal("ClubLevel", effect(L, "club_level", func(L *lua.LState, tbl *lua.LTable) {
		tbl.RawSetString("amount", L.CheckNumber(1))
	}))
}
