package commands

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeCmd позволяет управлять возвратом ошибок из Run
type fakeCmd struct {
	name, usage, desc string
	run               func(ctx context.Context, app *App, args []string) error
}

func (f fakeCmd) Name() string        { return f.name }
func (f fakeCmd) Description() string { return f.desc }
func (f fakeCmd) Usage() string       { return f.usage }
func (f fakeCmd) Run(ctx context.Context, app *App, args []string) error {
	return f.run(ctx, app, args)
}

func TestDispatcher_HelpAndUnknown(t *testing.T) {
	app := newTestApp(t)

	code, out := run(t, app)
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "Pharmacy inventory CLI")
	assert.Contains(t, out, "medicine-add")

	code, out = run(t, app, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage:")

	code, out = run(t, app, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Commands:")

	code, out = run(t, app, "help", "login")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage: login <pharmacy name>")

	code, out = run(t, app, "medicines", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage: medicines")

	code, out = run(t, app, "help", "nope")
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "Unknown command: nope")

	code, _ = run(t, app, "no-such")
	assert.Equal(t, 2, code)
}

func TestDispatcher_RunPaths(t *testing.T) {
	app := newTestApp(t)

	RegisterCmd(fakeCmd{name: "x", usage: "x", run: func(context.Context, *App, []string) error { return nil }})
	code, _ := run(t, app, "x")
	assert.Equal(t, 0, code)

	RegisterCmd(fakeCmd{name: "u", usage: "u <arg>", run: func(context.Context, *App, []string) error { return ErrUsage }})
	code, out := run(t, app, "u")
	assert.Equal(t, 2, code)
	assert.Contains(t, out, "Usage: u <arg>")

	RegisterCmd(fakeCmd{name: "e", usage: "e", run: func(context.Context, *App, []string) error { return fmt.Errorf("boom") }})
	code, out = run(t, app, "e")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "e error: boom")

	// уведомление уже выведено - строка "error:" не дублируется
	RegisterCmd(fakeCmd{name: "r", usage: "r", run: func(context.Context, *App, []string) error {
		return notifyError(fmt.Errorf("disk full"))
	}})
	code, out = run(t, app, "r")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "× Error: disk full")
	assert.False(t, strings.Contains(out, "r error:"))

	for _, n := range []string{"x", "u", "e", "r"} {
		delete(registry, n)
	}
}
