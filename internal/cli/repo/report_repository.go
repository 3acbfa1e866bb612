package repo

import (
	"context"

	"PharmaKeeper/internal/cli/model"
)

// TypeCount - количество лекарств одной формы выпуска.
type TypeCount struct {
	Type  string `db:"type"`
	Count int    `db:"cnt"`
}

// ReportRepository - выборки только на чтение поверх обеих таблиц.
type ReportRepository interface {
	// ExpiringMedicines возвращает лекарства со сроком годности не позже onOrBefore (YYYY-MM-DD).
	ExpiringMedicines(ctx context.Context, onOrBefore string) ([]model.Medicine, error)

	// SearchByName ищет подстроку в названиях (без учёта регистра) в обеих таблицах.
	SearchByName(ctx context.Context, fragment string) ([]model.Medicine, []model.GeneralItem, error)

	// CountByType группирует лекарства по форме выпуска.
	CountByType(ctx context.Context) ([]TypeCount, error)
}
