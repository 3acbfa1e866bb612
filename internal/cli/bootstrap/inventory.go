package bootstrap

import (
	"context"
	"fmt"

	"PharmaKeeper/internal/cli/repo"
	reposqlite "PharmaKeeper/internal/cli/repo/sqlite"
	"PharmaKeeper/internal/cli/service"
)

// Inventory - всё, что нужно командам для работы со складом одной аптеки.
type Inventory struct {
	Pharmacy  string
	Conn      *reposqlite.Connection
	Medicines service.MedicineService
	Items     service.GeneralItemService
	Reports   *service.ReportService
}

// OpenPharmacy инициализирует базу аптеки name (таблицы создаются при первом вызове)
// и собирает сервисы поверх неё. Подключения открываются на время каждой операции,
// освобождение записи - через Registry.Shutdown/ShutdownAll.
func OpenPharmacy(ctx context.Context, reg *reposqlite.Registry, name string) (*Inventory, error) {
	conn, err := reg.Initialize(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open pharmacy %q: %w", name, err)
	}
	return &Inventory{
		Pharmacy:  name,
		Conn:      conn,
		Medicines: service.NewMedicineServiceLocal(reposqlite.NewMedicineRepository(conn)),
		Items:     service.NewGeneralItemServiceLocal(reposqlite.NewGeneralItemRepository(conn)),
		Reports:   service.NewReportService(reposqlite.NewReportRepository(conn)),
	}, nil
}

// OpenInventory открывает склад активной аптеки из store.
func OpenInventory(ctx context.Context, reg *reposqlite.Registry, store repo.PharmacyContextStore) (*Inventory, error) {
	name, err := store.LoadPharmacy()
	if err != nil {
		return nil, fmt.Errorf("нет активной аптеки: выполните login: %w", err)
	}
	return OpenPharmacy(ctx, reg, name)
}
