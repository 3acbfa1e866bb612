package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"PharmaKeeper/internal/cli/repo"
	fsrepo "PharmaKeeper/internal/cli/repo/fs"
	reposqlite "PharmaKeeper/internal/cli/repo/sqlite"
	"PharmaKeeper/internal/config"

	"go.uber.org/zap"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// App - зависимости, общие для всех команд одного запуска (или одной shell-сессии).
type App struct {
	Config   *config.Config
	Registry *reposqlite.Registry
	Logger   *zap.SugaredLogger
	Store    repo.PharmacyContextStore
}

// NewApp собирает App с файловым хранилищем активной аптеки.
func NewApp(cfg *config.Config, reg *reposqlite.Registry, logger *zap.SugaredLogger) *App {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &App{
		Config:   cfg,
		Registry: reg,
		Logger:   logger,
		Store:    fsrepo.PharmacyFSStore{},
	}
}

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "login".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "login <pharmacy name>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, app *App, args []string) error
}

// registry holds available commands by name.
var registry = map[string]Command{}

// Out - общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// In - источник ввода для подтверждений и shell. В тестах подменяется.
var In io.Reader = os.Stdin

// RegisterCmd adds a command to the registry. Should be called from init() of each command.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage builds a help text for all commands.
func FormatGlobalUsage() string {
	lines := []string{
		"Pharmacy inventory CLI",
		"",
		"Usage:",
		"  pharmacy [--data-dir <dir>] [--log-level <level>] [--log-file <file>] <command> [args]",
		"",
		"Commands:",
	}
	for _, c := range List() {
		lines = append(lines, fmt.Sprintf("  %-58s %s", c.Usage(), c.Description()))
	}
	return strings.Join(lines, "\n") + "\n"
}
