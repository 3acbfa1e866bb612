package service

import (
	"context"

	"PharmaKeeper/internal/cli/model"
	"PharmaKeeper/internal/cli/repo"
)

// MedicineService описывает юзкейс-уровень работы с лекарствами.
type MedicineService interface {
	// List возвращает все лекарства аптеки.
	List(ctx context.Context) ([]model.Medicine, error)

	// Add проверяет, что форма заполнена целиком, и добавляет лекарство. Возвращает новый id и актуальный список.
	Add(ctx context.Context, f MedicineForm) (int64, []model.Medicine, error)

	// Update применяет указанные поля формы к существующей записи.
	Update(ctx context.Context, id int64, f MedicineForm) ([]model.Medicine, error)

	// Delete удаляет запись и возвращает актуальный список.
	Delete(ctx context.Context, id int64) ([]model.Medicine, error)
}

// MedicineServiceLocal - реализация MedicineService поверх локального репозитория.
type MedicineServiceLocal struct {
	repo repo.MedicineRepository
}

func NewMedicineServiceLocal(r repo.MedicineRepository) MedicineService {
	return &MedicineServiceLocal{repo: r}
}

func (s *MedicineServiceLocal) List(ctx context.Context) ([]model.Medicine, error) {
	return s.repo.List(ctx)
}

func (s *MedicineServiceLocal) Add(ctx context.Context, f MedicineForm) (int64, []model.Medicine, error) {
	if err := f.requireAll(); err != nil {
		return 0, nil, err
	}
	var m model.Medicine
	if err := f.apply(&m); err != nil {
		return 0, nil, err
	}
	return s.repo.Add(ctx, m)
}

func (s *MedicineServiceLocal) Update(ctx context.Context, id int64, f MedicineForm) ([]model.Medicine, error) {
	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	m := *cur
	if err := f.apply(&m); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, m)
}

func (s *MedicineServiceLocal) Delete(ctx context.Context, id int64) ([]model.Medicine, error) {
	return s.repo.Delete(ctx, id)
}
