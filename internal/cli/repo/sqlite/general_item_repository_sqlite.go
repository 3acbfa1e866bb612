package sqlite

import (
	"context"
	"fmt"

	"PharmaKeeper/internal/cli/model"
	"PharmaKeeper/internal/cli/repo"

	"gorm.io/gorm"
)

// GeneralItemRepositorySQLite - репозиторий таблицы general_items.
type GeneralItemRepositorySQLite struct {
	conn *Connection
}

var _ repo.GeneralItemRepository = (*GeneralItemRepositorySQLite)(nil)

func NewGeneralItemRepository(conn *Connection) *GeneralItemRepositorySQLite {
	return &GeneralItemRepositorySQLite{conn: conn}
}

func listGeneralItems(ctx context.Context, db *gorm.DB) ([]model.GeneralItem, error) {
	res := make([]model.GeneralItem, 0)
	if err := db.WithContext(ctx).Order("id").Find(&res).Error; err != nil {
		return nil, fmt.Errorf("select general items: %w", err)
	}
	return res, nil
}

func (r *GeneralItemRepositorySQLite) List(ctx context.Context) ([]model.GeneralItem, error) {
	var res []model.GeneralItem
	err := r.conn.Do(ctx, func(ctx context.Context, h *Handle) error {
		var err error
		res, err = listGeneralItems(ctx, h.ORM())
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *GeneralItemRepositorySQLite) Get(ctx context.Context, id int64) (*model.GeneralItem, error) {
	var it model.GeneralItem
	err := r.conn.Do(ctx, func(ctx context.Context, h *Handle) error {
		tx := h.ORM().WithContext(ctx).Where("id = ?", id).Limit(1).Find(&it)
		if tx.Error != nil {
			return tx.Error
		}
		if tx.RowsAffected == 0 {
			return fmt.Errorf("general item %d: %w", id, repo.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *GeneralItemRepositorySQLite) Add(ctx context.Context, it model.GeneralItem) (int64, []model.GeneralItem, error) {
	it.ID = 0
	var rows []model.GeneralItem
	err := r.conn.Do(ctx, func(ctx context.Context, h *Handle) error {
		if err := h.ORM().WithContext(ctx).Create(&it).Error; err != nil {
			return fmt.Errorf("insert general item: %w", err)
		}
		var err error
		rows, err = listGeneralItems(ctx, h.ORM())
		return err
	})
	if err != nil {
		return 0, nil, err
	}
	return it.ID, rows, nil
}

func (r *GeneralItemRepositorySQLite) Update(ctx context.Context, it model.GeneralItem) ([]model.GeneralItem, error) {
	var rows []model.GeneralItem
	err := r.conn.Do(ctx, func(ctx context.Context, h *Handle) error {
		tx := h.ORM().WithContext(ctx).Model(&model.GeneralItem{}).Where("id = ?", it.ID).Updates(map[string]any{
			"name":     it.Name,
			"quantity": it.Quantity,
			"price":    it.Price,
		})
		if tx.Error != nil {
			return fmt.Errorf("update general item %d: %w", it.ID, tx.Error)
		}
		if tx.RowsAffected == 0 {
			return fmt.Errorf("general item %d: %w", it.ID, repo.ErrNotFound)
		}
		var err error
		rows, err = listGeneralItems(ctx, h.ORM())
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GeneralItemRepositorySQLite) Delete(ctx context.Context, id int64) ([]model.GeneralItem, error) {
	var rows []model.GeneralItem
	err := r.conn.Do(ctx, func(ctx context.Context, h *Handle) error {
		if err := h.ORM().WithContext(ctx).Where("id = ?", id).Delete(&model.GeneralItem{}).Error; err != nil {
			return fmt.Errorf("delete general item %d: %w", id, err)
		}
		var err error
		rows, err = listGeneralItems(ctx, h.ORM())
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
