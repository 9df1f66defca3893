package commands

import (
	"errors"
	"testing"
	"time"
)

func mustParse(t *testing.T, input string) Command {
	t.Helper()
	cmd, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return cmd
}

func parseError(t *testing.T, input string) *ParseError {
	t.Helper()
	_, err := Parse(input)
	if err == nil {
		t.Fatalf("Parse(%q) should fail", input)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	return pe
}

func TestParseQuitForms(t *testing.T) {
	if mustParse(t, ":q").Type != TypeQuit {
		t.Fatal("expected quit")
	}
	if mustParse(t, ":quit").Type != TypeQuit {
		t.Fatal("expected quit long form")
	}
}

func TestParseWriteTriggersSync(t *testing.T) {
	if mustParse(t, ":w").Type != TypeSync {
		t.Fatal("expected sync")
	}
	if mustParse(t, ":write").Type != TypeSync {
		t.Fatal("expected sync long form")
	}
}

func TestParseGotoWithDate(t *testing.T) {
	cmd := mustParse(t, ":goto 2025-01-15")
	if cmd.Type != TypeGoto {
		t.Fatalf("expected goto, got %s", cmd.Type)
	}
	want := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	if !cmd.Goto.Date.Equal(want) {
		t.Fatalf("expected %v, got %v", want, cmd.Goto.Date)
	}
}

func TestParseGotoInvalidDate(t *testing.T) {
	pe := parseError(t, ":goto invalid")
	if pe.Message != "Invalid date format: invalid" {
		t.Fatalf("unexpected message %q", pe.Message)
	}
}

func TestParseGotoMissingDate(t *testing.T) {
	pe := parseError(t, ":goto")
	if pe.Message != "goto requires a date argument" {
		t.Fatalf("unexpected message %q", pe.Message)
	}
}

func TestParseNewEventWithTitle(t *testing.T) {
	cmd := mustParse(t, ":new Sprint planning session")
	if cmd.Type != TypeNewEvent || cmd.NewEvent.Title != "Sprint planning session" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestParseNewEventBlankTitle(t *testing.T) {
	cmd := mustParse(t, ":new")
	if cmd.Type != TypeNewEvent || cmd.NewEvent.Title != "" {
		t.Fatalf("unexpected command: %+v", cmd)
	}
}

func TestParseCalendarForms(t *testing.T) {
	if got := mustParse(t, ":cal work"); got.SwitchCalendar.Name != "work" {
		t.Fatalf("unexpected calendar: %+v", got)
	}
	if got := mustParse(t, ":calendar personal"); got.SwitchCalendar.Name != "personal" {
		t.Fatalf("unexpected calendar: %+v", got)
	}
}

func TestParseCalendarMissingName(t *testing.T) {
	pe := parseError(t, ":cal")
	if pe.Message != "cal requires a calendar name" {
		t.Fatalf("unexpected message %q", pe.Message)
	}
}

func TestParseThemeMissingName(t *testing.T) {
	pe := parseError(t, ":theme")
	if pe.Message != "theme requires a theme name" {
		t.Fatalf("unexpected message %q", pe.Message)
	}
}

func TestParseHelp(t *testing.T) {
	if mustParse(t, ":help").Type != TypeHelp {
		t.Fatal("expected help")
	}
}

func TestParseUnknownCommand(t *testing.T) {
	pe := parseError(t, ":frobnicate")
	if pe.Message != "Unknown command: frobnicate" {
		t.Fatalf("unexpected message %q", pe.Message)
	}
}

func TestParseWithoutColon(t *testing.T) {
	pe := parseError(t, "quit")
	if pe.Message != "Commands must start with ':'" {
		t.Fatalf("unexpected message %q", pe.Message)
	}
}

func TestParseBareColon(t *testing.T) {
	pe := parseError(t, ":")
	if pe.Code != ErrCodeEmptyInput {
		t.Fatalf("unexpected code %q", pe.Code)
	}
}

func TestExecuteDispatchesGoto(t *testing.T) {
	var got time.Time
	handlers := Handlers{
		Goto: func(args GotoArgs) (Result, error) {
			got = args.Date
			return Result{Message: "moved"}, nil
		},
	}
	cmd := mustParse(t, ":goto 2025-06-01")
	res, err := Execute(cmd, handlers)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if res.Message != "moved" || got.IsZero() {
		t.Fatalf("handler not invoked: %+v", res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd := mustParse(t, ":help")
	if _, err := Execute(cmd, Handlers{}); err == nil {
		t.Fatal("expected handler-missing error")
	}
}
