// Package commands parses the colon-command line. Each command is
// parsed independently; the only shared grammar is "colon + keyword +
// optional args".
package commands

import (
	"fmt"
	"strings"
	"time"
)

type Type string

const (
	TypeQuit           Type = "quit"
	TypeSync           Type = "sync"
	TypeGoto           Type = "goto"
	TypeNewEvent       Type = "new"
	TypeSwitchCalendar Type = "calendar"
	TypeTheme          Type = "theme"
	TypeHelp           Type = "help"
)

type ErrorCode string

const (
	ErrCodeNoColon         ErrorCode = "no_colon"
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

// ParseError carries a user-displayable message; the state machine
// shows Message verbatim in the status bar.
type ParseError struct {
	Code    ErrorCode
	Message string
}

func (e *ParseError) Error() string { return e.Message }

const dateLayout = "2006-01-02"

type GotoArgs struct {
	Date time.Time
}

type NewEventArgs struct {
	Title string
}

type SwitchCalendarArgs struct {
	Name string
}

type ThemeArgs struct {
	Name string
}

type Command struct {
	Type           Type
	Raw            string
	Goto           *GotoArgs
	NewEvent       *NewEventArgs
	SwitchCalendar *SwitchCalendarArgs
	Theme          *ThemeArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if !strings.HasPrefix(raw, ":") {
		return Command{}, &ParseError{Code: ErrCodeNoColon, Message: "Commands must start with ':'"}
	}

	parts := strings.Fields(raw[1:])
	if len(parts) == 0 {
		return Command{}, &ParseError{Code: ErrCodeEmptyInput, Message: "Empty command"}
	}
	head := parts[0]
	args := parts[1:]

	switch head {
	case "q", "quit":
		return Command{Type: TypeQuit, Raw: raw}, nil
	case "w", "write":
		return Command{Type: TypeSync, Raw: raw}, nil
	case "help":
		return Command{Type: TypeHelp, Raw: raw}, nil
	case "goto":
		if len(args) == 0 {
			return Command{}, &ParseError{Code: ErrCodeInvalidArgument, Message: "goto requires a date argument"}
		}
		date, err := time.Parse(dateLayout, args[0])
		if err != nil {
			return Command{}, &ParseError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("Invalid date format: %s", args[0])}
		}
		return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Date: date}}, nil
	case "new":
		return Command{Type: TypeNewEvent, Raw: raw, NewEvent: &NewEventArgs{Title: strings.Join(args, " ")}}, nil
	case "cal", "calendar":
		if len(args) == 0 {
			return Command{}, &ParseError{Code: ErrCodeInvalidArgument, Message: "cal requires a calendar name"}
		}
		return Command{Type: TypeSwitchCalendar, Raw: raw, SwitchCalendar: &SwitchCalendarArgs{Name: args[0]}}, nil
	case "theme":
		if len(args) == 0 {
			return Command{}, &ParseError{Code: ErrCodeInvalidArgument, Message: "theme requires a theme name"}
		}
		return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{Name: args[0]}}, nil
	default:
		return Command{}, &ParseError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("Unknown command: %s", head)}
	}
}
