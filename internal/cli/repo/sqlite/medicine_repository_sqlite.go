package sqlite

import (
	"context"
	"fmt"

	"PharmaKeeper/internal/cli/model"
	"PharmaKeeper/internal/cli/repo"

	"gorm.io/gorm"
)

// MedicineRepositorySQLite - репозиторий таблицы medicines поверх Connection.
// Каждая операция - отдельный unit of work: открыть, выполнить, закрыть.
type MedicineRepositorySQLite struct {
	conn *Connection
}

var _ repo.MedicineRepository = (*MedicineRepositorySQLite)(nil)

func NewMedicineRepository(conn *Connection) *MedicineRepositorySQLite {
	return &MedicineRepositorySQLite{conn: conn}
}

func listMedicines(ctx context.Context, db *gorm.DB) ([]model.Medicine, error) {
	res := make([]model.Medicine, 0)
	if err := db.WithContext(ctx).Order("id").Find(&res).Error; err != nil {
		return nil, fmt.Errorf("select medicines: %w", err)
	}
	return res, nil
}

func (r *MedicineRepositorySQLite) List(ctx context.Context) ([]model.Medicine, error) {
	var res []model.Medicine
	err := r.conn.Do(ctx, func(ctx context.Context, h *Handle) error {
		var err error
		res, err = listMedicines(ctx, h.ORM())
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *MedicineRepositorySQLite) Get(ctx context.Context, id int64) (*model.Medicine, error) {
	var m model.Medicine
	err := r.conn.Do(ctx, func(ctx context.Context, h *Handle) error {
		tx := h.ORM().WithContext(ctx).Where("id = ?", id).Limit(1).Find(&m)
		if tx.Error != nil {
			return tx.Error
		}
		if tx.RowsAffected == 0 {
			return fmt.Errorf("medicine %d: %w", id, repo.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MedicineRepositorySQLite) Add(ctx context.Context, m model.Medicine) (int64, []model.Medicine, error) {
	m.ID = 0
	var rows []model.Medicine
	err := r.conn.Do(ctx, func(ctx context.Context, h *Handle) error {
		if err := h.ORM().WithContext(ctx).Create(&m).Error; err != nil {
			return fmt.Errorf("insert medicine: %w", err)
		}
		var err error
		rows, err = listMedicines(ctx, h.ORM())
		return err
	})
	if err != nil {
		return 0, nil, err
	}
	return m.ID, rows, nil
}

func (r *MedicineRepositorySQLite) Update(ctx context.Context, m model.Medicine) ([]model.Medicine, error) {
	var rows []model.Medicine
	err := r.conn.Do(ctx, func(ctx context.Context, h *Handle) error {
		tx := h.ORM().WithContext(ctx).Model(&model.Medicine{}).Where("id = ?", m.ID).Updates(map[string]any{
			"name":        m.Name,
			"type":        m.Type,
			"quantity":    m.Quantity,
			"expiry_date": m.ExpiryDate,
			"batch_no":    m.BatchNo,
			"price":       m.Price,
		})
		if tx.Error != nil {
			return fmt.Errorf("update medicine %d: %w", m.ID, tx.Error)
		}
		if tx.RowsAffected == 0 {
			return fmt.Errorf("medicine %d: %w", m.ID, repo.ErrNotFound)
		}
		var err error
		rows, err = listMedicines(ctx, h.ORM())
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MedicineRepositorySQLite) Delete(ctx context.Context, id int64) ([]model.Medicine, error) {
	var rows []model.Medicine
	err := r.conn.Do(ctx, func(ctx context.Context, h *Handle) error {
		if err := h.ORM().WithContext(ctx).Where("id = ?", id).Delete(&model.Medicine{}).Error; err != nil {
			return fmt.Errorf("delete medicine %d: %w", id, err)
		}
		var err error
		rows, err = listMedicines(ctx, h.ORM())
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
