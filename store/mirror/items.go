package mirror

import (
	"context"
	"time"

	"campusfind/lostfound-api/model"
	"campusfind/lostfound-api/store"
)

// Items mirrors item writes from a primary store onto a secondary one.
type Items struct {
	primary   store.ItemStore
	secondary store.ItemStore
	budget    time.Duration
}

// NewItems wraps primary with a best-effort secondary. The secondary may be
// nil, in which case the wrapper is a pass-through.
func NewItems(primary, secondary store.ItemStore, budget time.Duration) *Items {
	return &Items{primary: primary, secondary: secondary, budget: budget}
}

func (m *Items) ListItems(ctx context.Context) ([]model.Item, error) {
	return m.primary.ListItems(ctx)
}

func (m *Items) ListItemsByStatus(ctx context.Context, status string) ([]model.Item, error) {
	return m.primary.ListItemsByStatus(ctx, status)
}

func (m *Items) ItemByID(ctx context.Context, id int64) (*model.Item, error) {
	return m.primary.ItemByID(ctx, id)
}

func (m *Items) AddItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	saved, err := m.primary.AddItem(ctx, item)
	if err != nil {
		return nil, err
	}

	if m.secondary != nil {
		attempt(ctx, m.budget, "add item", func(mctx context.Context) error {
			_, err := m.secondary.AddItem(mctx, saved)
			return err
		})
	}

	return saved, nil
}

func (m *Items) UpdateItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	saved, err := m.primary.UpdateItem(ctx, item)
	if err != nil {
		return nil, err
	}

	if m.secondary != nil {
		attempt(ctx, m.budget, "update item", func(mctx context.Context) error {
			_, err := m.secondary.UpdateItem(mctx, saved)
			return err
		})
	}

	return saved, nil
}

func (m *Items) DeleteItem(ctx context.Context, id int64) (bool, error) {
	deleted, err := m.primary.DeleteItem(ctx, id)
	if err != nil {
		return false, err
	}

	if m.secondary != nil {
		attempt(ctx, m.budget, "delete item", func(mctx context.Context) error {
			_, err := m.secondary.DeleteItem(mctx, id)
			return err
		})
	}

	return deleted, nil
}
