package commands

import (
	"context"
	"errors"
	"fmt"

	"PharmaKeeper/internal/cli/bootstrap"
	fsrepo "PharmaKeeper/internal/cli/repo/fs"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Активная аптека, база и количество записей" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, app *App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	inv, err := bootstrap.OpenInventory(ctx, app.Registry, app.Store)
	if errors.Is(err, fsrepo.ErrNoActivePharmacy) {
		fmt.Fprintln(Out, "No active pharmacy. Run: login <pharmacy name>")
		return nil
	}
	if err != nil {
		return err
	}

	meds, err := inv.Medicines.List(ctx)
	if err != nil {
		return err
	}
	items, err := inv.Items.List(ctx)
	if err != nil {
		return err
	}
	counts, err := inv.Reports.CountByType(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(Out, "Pharmacy:      %s\n", inv.Pharmacy)
	fmt.Fprintf(Out, "Database:      %s\n", inv.Conn.Path())
	fmt.Fprintf(Out, "State:         %s\n", inv.Conn.State())
	fmt.Fprintf(Out, "Medicines:     %d\n", len(meds))
	for _, c := range counts {
		fmt.Fprintf(Out, "  %-12s %d\n", orDash(c.Type), c.Count)
	}
	fmt.Fprintf(Out, "General items: %d\n", len(items))

	last, err := fsrepo.LoadLastExpiryCheck(inv.Pharmacy)
	if err != nil {
		app.Logger.Warnw("cannot read last expiry check", "pharmacy", inv.Pharmacy, "error", err)
	}
	fmt.Fprintf(Out, "Expiry check:  %s\n", orDash(last))
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
