package commands

import "fmt"

type Result struct {
	Message string
}

// Handlers binds each command type to session behavior. Unbound
// handlers surface as errors rather than silent no-ops so a missing
// wiring is caught in tests.
type Handlers struct {
	Quit           func() (Result, error)
	Sync           func() (Result, error)
	Goto           func(GotoArgs) (Result, error)
	NewEvent       func(NewEventArgs) (Result, error)
	SwitchCalendar func(SwitchCalendarArgs) (Result, error)
	Theme          func(ThemeArgs) (Result, error)
	Help           func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeQuit:
		if handlers.Quit == nil {
			return Result{}, missing("quit")
		}
		return handlers.Quit()
	case TypeSync:
		if handlers.Sync == nil {
			return Result{}, missing("sync")
		}
		return handlers.Sync()
	case TypeGoto:
		if handlers.Goto == nil {
			return Result{}, missing("goto")
		}
		return handlers.Goto(*cmd.Goto)
	case TypeNewEvent:
		if handlers.NewEvent == nil {
			return Result{}, missing("new")
		}
		return handlers.NewEvent(*cmd.NewEvent)
	case TypeSwitchCalendar:
		if handlers.SwitchCalendar == nil {
			return Result{}, missing("calendar")
		}
		return handlers.SwitchCalendar(*cmd.SwitchCalendar)
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, missing("theme")
		}
		return handlers.Theme(*cmd.Theme)
	case TypeHelp:
		if handlers.Help == nil {
			return Result{}, missing("help")
		}
		return handlers.Help()
	default:
		return Result{}, &ParseError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("Unknown command type: %s", cmd.Type)}
	}
}

func missing(name string) error {
	return &ParseError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", name)}
}
