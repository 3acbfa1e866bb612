package commands

import (
	"context"
	"flag"
	"fmt"

	"PharmaKeeper/internal/cli/bootstrap"
	"PharmaKeeper/internal/cli/service"
)

type medicinesCmd struct{}

func (medicinesCmd) Name() string        { return "medicines" }
func (medicinesCmd) Description() string { return "Показать все лекарства" }
func (medicinesCmd) Usage() string       { return "medicines" }

func (medicinesCmd) Run(ctx context.Context, app *App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	inv, err := bootstrap.OpenInventory(ctx, app.Registry, app.Store)
	if err != nil {
		return err
	}
	list, err := inv.Medicines.List(ctx)
	if err != nil {
		return err
	}
	printMedicines(list)
	return nil
}

// medicineFlags - поля формы лекарства.
type medicineFlags struct {
	name, typ, quantity, expiry, batch, price string
}

func (f *medicineFlags) bind(fs *flag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "название")
	fs.StringVar(&f.typ, "type", "", "форма выпуска: strip|tube|powder|liquid")
	fs.StringVar(&f.quantity, "quantity", "", "количество")
	fs.StringVar(&f.expiry, "expiry", "", "срок годности YYYY-MM-DD")
	fs.StringVar(&f.batch, "batch", "", "номер партии")
	fs.StringVar(&f.price, "price", "", "цена")
}

func (f *medicineFlags) form(fs *flag.FlagSet) service.MedicineForm {
	return service.MedicineForm{
		Name:       given(fs, "name", &f.name),
		Type:       given(fs, "type", &f.typ),
		Quantity:   given(fs, "quantity", &f.quantity),
		ExpiryDate: given(fs, "expiry", &f.expiry),
		BatchNo:    given(fs, "batch", &f.batch),
		Price:      given(fs, "price", &f.price),
	}
}

type medicineAddCmd struct{}

func (medicineAddCmd) Name() string        { return "medicine-add" }
func (medicineAddCmd) Description() string { return "Добавить лекарство" }
func (medicineAddCmd) Usage() string {
	return "medicine-add --name <name> --type t --quantity q --expiry YYYY-MM-DD --batch b --price p"
}

func (medicineAddCmd) Run(ctx context.Context, app *App, args []string) error {
	fs := newFlagSet("medicine-add")
	var f medicineFlags
	f.bind(fs)
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	inv, err := bootstrap.OpenInventory(ctx, app.Registry, app.Store)
	if err != nil {
		return err
	}
	id, list, err := inv.Medicines.Add(ctx, f.form(fs))
	if err != nil {
		return notifyError(err)
	}
	app.Logger.Infow("medicine added", "pharmacy", inv.Pharmacy, "id", id)
	notifySuccess("Data added successfully.")
	printMedicines(list)
	return nil
}

type medicineEditCmd struct{}

func (medicineEditCmd) Name() string        { return "medicine-edit" }
func (medicineEditCmd) Description() string { return "Изменить поля лекарства" }
func (medicineEditCmd) Usage() string {
	return "medicine-edit <id> [--name n] [--type t] [--quantity q] [--expiry d] [--batch b] [--price p]"
}

func (medicineEditCmd) Run(ctx context.Context, app *App, args []string) error {
	fs := newFlagSet("medicine-edit")
	var f medicineFlags
	f.bind(fs)
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}
	if fs.NFlag() == 0 {
		return ErrUsage
	}
	inv, err := bootstrap.OpenInventory(ctx, app.Registry, app.Store)
	if err != nil {
		return err
	}
	list, err := inv.Medicines.Update(ctx, id, f.form(fs))
	if err != nil {
		return notifyError(err)
	}
	app.Logger.Infow("medicine updated", "pharmacy", inv.Pharmacy, "id", id)
	notifySuccess("Data updated successfully.")
	printMedicines(list)
	return nil
}

type medicineDeleteCmd struct{}

func (medicineDeleteCmd) Name() string        { return "medicine-delete" }
func (medicineDeleteCmd) Description() string { return "Удалить лекарство (с подтверждением)" }
func (medicineDeleteCmd) Usage() string       { return "medicine-delete [--yes] <id>" }

func (medicineDeleteCmd) Run(ctx context.Context, app *App, args []string) error {
	fs := newFlagSet("medicine-delete")
	yes := fs.Bool("yes", false, "не спрашивать подтверждение")
	id, err := parseWithID(fs, args)
	if err != nil {
		return err
	}
	inv, err := bootstrap.OpenInventory(ctx, app.Registry, app.Store)
	if err != nil {
		return err
	}
	if !*yes && !confirm(confirmDeleteText) {
		fmt.Fprintln(Out, "Cancelled")
		return nil
	}
	list, err := inv.Medicines.Delete(ctx, id)
	if err != nil {
		return notifyError(err)
	}
	app.Logger.Infow("medicine deleted", "pharmacy", inv.Pharmacy, "id", id)
	notifySuccess("Data deleted successfully.")
	printMedicines(list)
	return nil
}

func init() {
	RegisterCmd(medicinesCmd{})
	RegisterCmd(medicineAddCmd{})
	RegisterCmd(medicineEditCmd{})
	RegisterCmd(medicineDeleteCmd{})
}
