package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"PharmaKeeper/internal/cli/bootstrap"
	fsrepo "PharmaKeeper/internal/cli/repo/fs"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Выбрать аптеку и подготовить её базу" }
func (loginCmd) Usage() string       { return "login <pharmacy name>" }

func (loginCmd) Run(ctx context.Context, app *App, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return ErrUsage
	}

	prev, err := app.Store.LoadPharmacy()
	if err != nil && !errors.Is(err, fsrepo.ErrNoActivePharmacy) {
		app.Logger.Warnw("cannot read active pharmacy", "error", err)
	}

	inv, err := bootstrap.OpenPharmacy(ctx, app.Registry, name)
	if err != nil {
		return err
	}
	if err := app.Store.SavePharmacy(inv.Pharmacy); err != nil {
		return fmt.Errorf("saving active pharmacy: %w", err)
	}
	if prev != "" && prev != name {
		app.Registry.Shutdown(prev)
	}
	app.Logger.Infow("pharmacy selected", "pharmacy", name, "path", inv.Conn.Path())
	fmt.Fprintf(Out, "Logged in to %q\n", name)
	return nil
}

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Забыть выбранную аптеку" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, app *App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	name, err := app.Store.LoadPharmacy()
	if errors.Is(err, fsrepo.ErrNoActivePharmacy) {
		fmt.Fprintln(Out, "No active pharmacy")
		return nil
	}
	if err != nil {
		return err
	}
	if err := app.Store.ClearPharmacy(); err != nil {
		return err
	}
	app.Registry.Shutdown(name)
	fmt.Fprintf(Out, "Logged out of %q\n", name)
	return nil
}

func init() {
	RegisterCmd(loginCmd{})
	RegisterCmd(logoutCmd{})
}
