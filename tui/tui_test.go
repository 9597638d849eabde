package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/jinsol/clubsim/engine"
	"github.com/jinsol/clubsim/engine/state"
	"github.com/jinsol/clubsim/persist"
	"github.com/jinsol/clubsim/types"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	defs := state.DefaultDefs()
	eng := engine.New(defs, &persist.Memory{})
	eng.Now = func() time.Time {
		return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	eng.Reset()
	return New(eng, defs)
}

func TestClassifyLine(t *testing.T) {
	cases := []struct {
		line string
		want lineKind
	}{
		{"The club hums with quiet chatter.", kindNarrative},
		{"  1. Look around the club", kindChoice},
		{"9. End the day", kindChoice},
		{"[Day 3, action points 8/10]", kindSystem},
		{"Not enough action points left today.", kindError},
		{"10am is too early.", kindNarrative},
		{"", kindNarrative},
	}
	for _, tc := range cases {
		if got := classifyLine(tc.line); got != tc.want {
			t.Errorf("classifyLine(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestWordWrap(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"fits", "short line", 20, "short line"},
		{"wraps at word", "one two three", 7, "one two\nthree"},
		{"zero width passthrough", "anything", 0, "anything"},
		{"long word stands alone", "abcdefghij x", 5, "abcdefghij\nx"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := wordWrap(tc.text, tc.width); got != tc.want {
				t.Fatalf("wordWrap(%q, %d) = %q, want %q", tc.text, tc.width, got, tc.want)
			}
		})
	}
}

func TestResultLines(t *testing.T) {
	result := types.Result{
		Message: "First line\nSecond line",
		Choices: []types.Choice{
			{Label: "Look around the club"},
			{Label: "End the day"},
		},
	}
	lines := resultLines(result)
	want := []string{
		"First line",
		"Second line",
		"  1. Look around the club",
		"  2. End the day",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestMatchChoice(t *testing.T) {
	m := newTestModel(t)
	m.choices = []types.Choice{
		{Label: "Look around the club", Action: types.ActionLookAround},
		{Label: "Hold the regular meeting", Action: types.ActionHoldMeeting},
	}

	ch, errLine := m.matchChoice("2")
	if errLine != "" || ch.Action != types.ActionHoldMeeting {
		t.Fatalf("numeric match = %+v, err %q", ch, errLine)
	}

	ch, errLine = m.matchChoice("look")
	if errLine != "" || ch.Action != types.ActionLookAround {
		t.Fatalf("prefix match = %+v, err %q", ch, errLine)
	}

	if _, errLine = m.matchChoice("7"); errLine == "" {
		t.Fatal("out-of-range number should error")
	}
	if _, errLine = m.matchChoice("juggle"); errLine == "" {
		t.Fatal("unknown label should error")
	}

	m.choices = nil
	if _, errLine = m.matchChoice("1"); errLine == "" {
		t.Fatal("empty choice set should error")
	}
}

func TestAppendOutput_TracksChoices(t *testing.T) {
	m := newTestModel(t)

	m = m.appendOutput(gameOutputMsg{
		lines:   []string{"Morning.", "  1. Look around the club"},
		choices: []types.Choice{{Label: "Look around the club", Action: types.ActionLookAround}},
	})
	if len(m.choices) != 1 {
		t.Fatalf("choices = %d, want 1", len(m.choices))
	}

	// System output without choices keeps the active set.
	m = m.appendOutput(gameOutputMsg{lines: []string{"Day 1"}, isSystem: true})
	if len(m.choices) != 1 {
		t.Fatal("system output must not clear choices")
	}
}

func TestAppendOutput_EchoesInput(t *testing.T) {
	m := newTestModel(t)
	m = m.appendOutput(gameOutputMsg{input: "look", lines: []string{"You look around."}})

	if len(m.rawLines) == 0 || m.rawLines[0].text != "> look" || !m.rawLines[0].isInput {
		t.Fatalf("rawLines = %+v", m.rawLines)
	}
	// Turn separator at the end.
	if m.rawLines[len(m.rawLines)-1].text != "" {
		t.Fatal("missing blank separator line")
	}
}

func TestCmdState_ListsEverything(t *testing.T) {
	m := newTestModel(t)
	m.engine.Start()

	got := strings.Join(m.cmdState(), "\n")
	if !strings.Contains(got, "Day 1, action points") {
		t.Fatalf("missing day line:\n%s", got)
	}
	for _, sd := range m.defs.Stats {
		if !strings.Contains(got, sd.Name+":") {
			t.Errorf("missing stat %s", sd.Name)
		}
	}
	for _, member := range m.engine.State.Members {
		if !strings.Contains(got, member.Name) {
			t.Errorf("missing member %s", member.Name)
		}
	}
}

func TestHandleMeta(t *testing.T) {
	m := newTestModel(t)
	m.engine.Start()

	if _, quit := m.handleMeta("/quit"); !quit {
		t.Fatal("/quit should request exit")
	}
	if out, quit := m.handleMeta("/help"); quit || len(out) == 0 {
		t.Fatal("/help should print and stay")
	}
	if out, _ := m.handleMeta("/bogus"); !strings.Contains(strings.Join(out, "\n"), "Unknown command") {
		t.Fatal("unknown command not reported")
	}

	out, quit := m.handleMeta("/reset")
	if quit {
		t.Fatal("/reset should not exit")
	}
	if len(m.choices) == 0 {
		t.Fatal("/reset should refresh the choice set")
	}
	if len(out) == 0 {
		t.Fatal("/reset should print the fresh opening")
	}
}
