package sqlstore

import (
	"context"
	"errors"

	"campusfind/lostfound-api/model"

	"gorm.io/gorm"
)

type Items struct {
	db *gorm.DB
}

func NewItems(db *gorm.DB) *Items {
	return &Items{db: db}
}

func (s *Items) ListItems(ctx context.Context) ([]model.Item, error) {
	var items []model.Item

	err := s.db.WithContext(ctx).
		Preload("PostedBy").
		Order("date desc").
		Find(&items).
		Error
	if err != nil {
		return nil, wrap("list items", err)
	}

	return items, nil
}

func (s *Items) ListItemsByStatus(ctx context.Context, status string) ([]model.Item, error) {
	var items []model.Item

	err := s.db.WithContext(ctx).
		Preload("PostedBy").
		Where("status = ?", status).
		Order("date desc").
		Find(&items).
		Error
	if err != nil {
		return nil, wrap("list items by status", err)
	}

	return items, nil
}

func (s *Items) ItemByID(ctx context.Context, id int64) (*model.Item, error) {
	var item model.Item

	err := s.db.WithContext(ctx).
		Preload("PostedBy").
		First(&item, id).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrap("item by id", err)
	}

	return &item, nil
}

func (s *Items) AddItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, wrap("add item", err)
	}

	return item, nil
}

func (s *Items) UpdateItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, wrap("update item", err)
	}

	return item, nil
}

func (s *Items) DeleteItem(ctx context.Context, id int64) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&model.Item{}, id)
	if res.Error != nil {
		return false, wrap("delete item", res.Error)
	}

	return res.RowsAffected > 0, nil
}
