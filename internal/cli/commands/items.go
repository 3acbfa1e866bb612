package commands

import (
	"context"
	"flag"
	"fmt"

	"PharmaKeeper/internal/cli/bootstrap"
	"PharmaKeeper/internal/cli/service"
)

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "Показать сопутствующие товары" }
func (itemsCmd) Usage() string       { return "items" }

func (itemsCmd) Run(ctx context.Context, app *App, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	inv, err := bootstrap.OpenInventory(ctx, app.Registry, app.Store)
	if err != nil {
		return err
	}
	list, err := inv.Items.List(ctx)
	if err != nil {
		return err
	}
	printGeneralItems(list)
	return nil
}

type itemFlags struct {
	name, quantity, price string
}

func (f *itemFlags) bind(fs *flag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "название")
	fs.StringVar(&f.quantity, "quantity", "", "количество")
	fs.StringVar(&f.price, "price", "", "цена")
}

func (f *itemFlags) form(fs *flag.FlagSet) service.GeneralItemForm {
	return service.GeneralItemForm{
		Name:     given(fs, "name", &f.name),
		Quantity: given(fs, "quantity", &f.quantity),
		Price:    given(fs, "price", &f.price),
	}
}

type itemAddCmd struct{}

func (itemAddCmd) Name() string        { return "item-add" }
func (itemAddCmd) Description() string { return "Добавить сопутствующий товар" }
func (itemAddCmd) Usage() string       { return "item-add --name <name> [--quantity q] [--price p]" }

func (itemAddCmd) Run(ctx context.Context, app *App, args []string) error {
	fs := newFlagSet("item-add")
	var f itemFlags
	f.bind(fs)
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}
	inv, err := bootstrap.OpenInventory(ctx, app.Registry, app.Store)
	if err != nil {
		return err
	}
	id, list, err := inv.Items.Add(ctx, f.form(fs))
	if err != nil {
		return notifyError(err)
	}
	app.Logger.Infow("general item added", "pharmacy", inv.Pharmacy, "id", id)
	notifySuccess("Data added successfully.")
	printGeneralItems(list)
	return nil
}

type itemEditCmd struct{}

func (itemEditCmd) Name() string        { return "item-edit" }
func (itemEditCmd) Description() string { return "Изменить сопутствующий товар" }
func (itemEditCmd) Usage() string       { return "item-edit <id> [--name n] [--quantity q] [--price p]" }

func (itemEditCmd) Run(ctx context.Context, app *App, args []string) error {
	fs := newFlagSet("item-edit")
	var f itemFlags
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
	list, err := inv.Items.Update(ctx, id, f.form(fs))
	if err != nil {
		return notifyError(err)
	}
	app.Logger.Infow("general item updated", "pharmacy", inv.Pharmacy, "id", id)
	notifySuccess("Data updated successfully.")
	printGeneralItems(list)
	return nil
}

type itemDeleteCmd struct{}

func (itemDeleteCmd) Name() string        { return "item-delete" }
func (itemDeleteCmd) Description() string { return "Удалить сопутствующий товар (с подтверждением)" }
func (itemDeleteCmd) Usage() string       { return "item-delete [--yes] <id>" }

func (itemDeleteCmd) Run(ctx context.Context, app *App, args []string) error {
	fs := newFlagSet("item-delete")
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
	list, err := inv.Items.Delete(ctx, id)
	if err != nil {
		return notifyError(err)
	}
	app.Logger.Infow("general item deleted", "pharmacy", inv.Pharmacy, "id", id)
	notifySuccess("Data deleted successfully.")
	printGeneralItems(list)
	return nil
}

func init() {
	RegisterCmd(itemsCmd{})
	RegisterCmd(itemAddCmd{})
	RegisterCmd(itemEditCmd{})
	RegisterCmd(itemDeleteCmd{})
}
