package commands

import (
	"context"
	"fmt"
	"strings"

	"PharmaKeeper/internal/cli/bootstrap"
)

type searchCmd struct{}

func (searchCmd) Name() string        { return "search" }
func (searchCmd) Description() string { return "Поиск по названию в обеих таблицах" }
func (searchCmd) Usage() string       { return "search <text>" }

func (searchCmd) Run(ctx context.Context, app *App, args []string) error {
	fragment := strings.TrimSpace(strings.Join(args, " "))
	if fragment == "" {
		return ErrUsage
	}
	inv, err := bootstrap.OpenInventory(ctx, app.Registry, app.Store)
	if err != nil {
		return err
	}
	meds, items, err := inv.Reports.Search(ctx, fragment)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Medicines:")
	printMedicines(meds)
	fmt.Fprintln(Out, "General items:")
	printGeneralItems(items)
	return nil
}

func init() { RegisterCmd(searchCmd{}) }
