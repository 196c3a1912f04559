package validators

import (
	"errors"

	"campusfind/lostfound-api/model"
)

var (
	ErrItemNameEmpty     = errors.New("item name is required")
	ErrItemCategoryEmpty = errors.New("item category is required")
	ErrItemCategoryBad   = errors.New("unknown item category")
	ErrItemLocationEmpty = errors.New("item location is required")
	ErrItemStatusBad     = errors.New("status must be Lost or Found")
)

func ItemValidator(item *model.Item) error {
	if item.Name == "" {
		return ErrItemNameEmpty
	}

	if item.Category == "" {
		return ErrItemCategoryEmpty
	}

	if !model.ValidCategory(item.Category) {
		return ErrItemCategoryBad
	}

	if item.Location == "" {
		return ErrItemLocationEmpty
	}

	if item.Status != model.StatusLost && item.Status != model.StatusFound {
		return ErrItemStatusBad
	}

	return nil
}
