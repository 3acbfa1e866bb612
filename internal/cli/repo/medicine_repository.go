package repo

import (
	"context"

	"PharmaKeeper/internal/cli/model"
)

// MedicineRepository определяет порт доступа к таблице medicines.
// Каждая изменяющая операция перечитывает таблицу целиком и возвращает актуальный набор строк.
type MedicineRepository interface {
	// List возвращает все лекарства, упорядоченные по id.
	List(ctx context.Context) ([]model.Medicine, error)

	// Get возвращает лекарство по id или ErrNotFound.
	Get(ctx context.Context, id int64) (*model.Medicine, error)

	// Add вставляет запись (ID игнорируется) и возвращает новый id и свежий список.
	Add(ctx context.Context, m model.Medicine) (int64, []model.Medicine, error)

	// Update перезаписывает все поля записи m.ID. ErrNotFound, если записи нет.
	Update(ctx context.Context, m model.Medicine) ([]model.Medicine, error)

	// Delete удаляет запись; отсутствующий id - не ошибка.
	Delete(ctx context.Context, id int64) ([]model.Medicine, error)
}
