package repo

import (
	"context"

	"PharmaKeeper/internal/cli/model"
)

// GeneralItemRepository определяет порт доступа к таблице general_items.
type GeneralItemRepository interface {
	List(ctx context.Context) ([]model.GeneralItem, error)
	Get(ctx context.Context, id int64) (*model.GeneralItem, error)
	Add(ctx context.Context, it model.GeneralItem) (int64, []model.GeneralItem, error)
	Update(ctx context.Context, it model.GeneralItem) ([]model.GeneralItem, error)
	Delete(ctx context.Context, id int64) ([]model.GeneralItem, error)
}
