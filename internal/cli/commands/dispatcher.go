package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

func isHelpFlag(a string) bool { return a == "--help" || a == "-h" }

// Dispatch is the single entry point to execute CLI commands.
// It prints help and usage messages and returns a process exit code.
func Dispatch(ctx context.Context, app *App, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}
	if isHelpFlag(args[0]) {
		fmt.Fprint(Out, FormatGlobalUsage())
		return 0
	}

	name := strings.ToLower(args[0])
	if name == "help" { // pharmacy help [command]
		if len(args) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage())
			return 0
		}
		if c, ok := Get(args[1]); ok {
			fmt.Fprintf(Out, "Usage: %s\n  %s\n", c.Usage(), c.Description())
			return 0
		}
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[1])
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return 2
	}
	for _, a := range args[1:] {
		if isHelpFlag(a) {
			fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
			return 0
		}
	}

	err := c.Run(ctx, app, args[1:])
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return 2
	case errors.Is(err, errReported):
		// уже показано уведомлением
		app.Logger.Debugw("command failed", "command", name, "error", err)
		return 1
	default:
		app.Logger.Debugw("command failed", "command", name, "error", err)
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return 1
	}
}
