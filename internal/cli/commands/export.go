package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"PharmaKeeper/internal/cli/bootstrap"
	"PharmaKeeper/internal/cli/model/view"

	"gopkg.in/yaml.v3"
)

type exportCmd struct{}

func (exportCmd) Name() string        { return "export" }
func (exportCmd) Description() string { return "Выгрузить склад аптеки в YAML" }
func (exportCmd) Usage() string       { return "export [--out <file>]" }

func (exportCmd) Run(ctx context.Context, app *App, args []string) error {
	fs := newFlagSet("export")
	out := fs.String("out", "", "файл для выгрузки (по умолчанию stdout)")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	inv, err := bootstrap.OpenInventory(ctx, app.Registry, app.Store)
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

	snap := view.Snapshot{
		Pharmacy:     inv.Pharmacy,
		ExportedAt:   time.Now().UTC().Format(time.RFC3339),
		Medicines:    meds,
		GeneralItems: items,
	}
	b, err := yaml.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	if *out == "" {
		_, err = Out.Write(b)
		return err
	}
	if err := os.WriteFile(*out, b, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	notifySuccess(fmt.Sprintf("Exported %d medicines and %d general items to %s", len(meds), len(items), *out))
	return nil
}

func init() { RegisterCmd(exportCmd{}) }
