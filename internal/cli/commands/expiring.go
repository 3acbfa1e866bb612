package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"PharmaKeeper/internal/cli/bootstrap"
	fsrepo "PharmaKeeper/internal/cli/repo/fs"
	"PharmaKeeper/internal/cli/service"
)

type expiringCmd struct{}

func (expiringCmd) Name() string        { return "expiring" }
func (expiringCmd) Description() string { return "Лекарства с истекающим сроком годности" }
func (expiringCmd) Usage() string       { return "expiring [--before YYYY-MM-DD] [--days N]" }

func (expiringCmd) Run(ctx context.Context, app *App, args []string) error {
	fs := newFlagSet("expiring")
	before := fs.String("before", "", "граница срока годности (включительно)")
	days := fs.Int("days", 0, "горизонт в днях от сегодняшней даты (по умолчанию 30)")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	inv, err := bootstrap.OpenInventory(ctx, app.Registry, app.Store)
	if err != nil {
		return err
	}
	cutoff, list, err := inv.Reports.Expiring(ctx, *before, *days)
	if errors.Is(err, service.ErrValidation) {
		return notifyError(err)
	}
	if err != nil {
		return err
	}

	if err := fsrepo.SaveLastExpiryCheck(inv.Pharmacy, time.Now().Format(service.DateLayout)); err != nil {
		app.Logger.Warnw("cannot save last expiry check", "pharmacy", inv.Pharmacy, "error", err)
	}

	if len(list) == 0 {
		fmt.Fprintf(Out, "No medicines expire on or before %s\n", cutoff)
		return nil
	}
	fmt.Fprintf(Out, "Medicines expiring on or before %s:\n", cutoff)
	printMedicines(list)
	return nil
}

func init() { RegisterCmd(expiringCmd{}) }
