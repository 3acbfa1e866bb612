package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
)

const shellPrompt = "pharmacy> "

type shellCmd struct{}

func (shellCmd) Name() string        { return "shell" }
func (shellCmd) Description() string { return "Интерактивный режим (exit или quit для выхода)" }
func (shellCmd) Usage() string       { return "shell" }

// Run читает команды построчно. Все команды сессии работают с одним реестром баз,
// поэтому повторные обращения к аптеке переиспользуют уже инициализированное подключение.
func (shellCmd) Run(ctx context.Context, app *App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	r := stdin()
	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprint(Out, shellPrompt)
		line, err := r.ReadString('\n')
		if line == "" && err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(Out)
				return nil
			}
			return err
		}

		words, perr := splitLine(line)
		if perr != nil {
			fmt.Fprintf(Out, "× Error: %v\n", perr)
			continue
		}
		if len(words) == 0 {
			continue
		}
		switch strings.ToLower(words[0]) {
		case "exit", "quit":
			return nil
		case "shell":
			fmt.Fprintln(Out, "Already in shell")
			continue
		}
		code := Dispatch(ctx, app, words)
		app.Logger.Debugw("shell command finished", "command", words[0], "exit_code", code)
	}
}

// splitLine разбивает строку на слова по правилам shell: кавычки, экранирование, # - комментарий.
func splitLine(line string) ([]string, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("parse command line: %w", err)
	}
	return words, nil
}

func init() { RegisterCmd(shellCmd{}) }
