package service

import (
	"context"

	"PharmaKeeper/internal/cli/model"
	"PharmaKeeper/internal/cli/repo"
)

// GeneralItemService - юзкейсы сопутствующих товаров.
type GeneralItemService interface {
	List(ctx context.Context) ([]model.GeneralItem, error)
	Add(ctx context.Context, f GeneralItemForm) (int64, []model.GeneralItem, error)
	Update(ctx context.Context, id int64, f GeneralItemForm) ([]model.GeneralItem, error)
	Delete(ctx context.Context, id int64) ([]model.GeneralItem, error)
}

type GeneralItemServiceLocal struct {
	repo repo.GeneralItemRepository
}

func NewGeneralItemServiceLocal(r repo.GeneralItemRepository) GeneralItemService {
	return &GeneralItemServiceLocal{repo: r}
}

func (s *GeneralItemServiceLocal) List(ctx context.Context) ([]model.GeneralItem, error) {
	return s.repo.List(ctx)
}

func (s *GeneralItemServiceLocal) Add(ctx context.Context, f GeneralItemForm) (int64, []model.GeneralItem, error) {
	if f.Name == nil {
		return 0, nil, invalid("name is required")
	}
	var it model.GeneralItem
	if err := f.apply(&it); err != nil {
		return 0, nil, err
	}
	return s.repo.Add(ctx, it)
}

func (s *GeneralItemServiceLocal) Update(ctx context.Context, id int64, f GeneralItemForm) ([]model.GeneralItem, error) {
	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	it := *cur
	if err := f.apply(&it); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, it)
}

func (s *GeneralItemServiceLocal) Delete(ctx context.Context, id int64) ([]model.GeneralItem, error) {
	return s.repo.Delete(ctx, id)
}
