package docstore

import (
	"context"
	"encoding/json"

	"campusfind/lostfound-api/model"
	"campusfind/lostfound-api/store"

	"github.com/redis/go-redis/v9"
)

type itemDoc struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Status      string   `json:"status"`
	ContactInfo string   `json:"contact_info"`
	MediaPaths  []string `json:"media_paths"`
	UserID      *int64   `json:"user_id,omitempty"`
	PosterName  string   `json:"poster_name,omitempty"`
}

func toItemDoc(item *model.Item) itemDoc {
	d := itemDoc{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Description: item.Description,
		Location:    item.Location,
		Date:        formatDocTime(item.Date),
		Status:      item.Status,
		ContactInfo: item.ContactInfo,
		MediaPaths:  item.MediaPaths,
		UserID:      item.UserID,
	}

	if item.PostedBy != nil {
		d.PosterName = item.PostedBy.UserName
	}

	return d
}

func (d itemDoc) toModel() model.Item {
	item := model.Item{
		ID:          d.ID,
		Name:        d.Name,
		Category:    d.Category,
		Description: d.Description,
		Location:    d.Location,
		Date:        parseDocTime(d.Date),
		Status:      d.Status,
		ContactInfo: d.ContactInfo,
		MediaPaths:  d.MediaPaths,
		UserID:      d.UserID,
	}

	if d.PosterName != "" {
		item.PostedBy = &model.User{UserName: d.PosterName}
	}

	return item
}

type Items struct {
	rdb *redis.Client
}

func NewItems(rdb *redis.Client) *Items {
	return &Items{rdb: rdb}
}

func (s *Items) loadAll(ctx context.Context, op string) ([]itemDoc, error) {
	keys, err := s.rdb.HVals(ctx, itemIndexKey).Result()
	if err != nil {
		return nil, wrap(op, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	for i, k := range keys {
		keys[i] = itemDocPrefix + k
	}

	raw, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, wrap(op, err)
	}

	docs := make([]itemDoc, 0, len(raw))
	for _, v := range raw {
		str, ok := v.(string)
		if !ok {
			// Index entry without a document, skip
			continue
		}

		var d itemDoc
		if err := json.Unmarshal([]byte(str), &d); err != nil {
			return nil, wrap(op, err)
		}

		docs = append(docs, d)
	}

	return docs, nil
}

func (s *Items) ListItems(ctx context.Context) ([]model.Item, error) {
	docs, err := s.loadAll(ctx, "list items")
	if err != nil {
		return nil, err
	}

	items := make([]model.Item, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toModel())
	}

	return items, nil
}

func (s *Items) ListItemsByStatus(ctx context.Context, status string) ([]model.Item, error) {
	docs, err := s.loadAll(ctx, "list items by status")
	if err != nil {
		return nil, err
	}

	items := make([]model.Item, 0, len(docs))
	for _, d := range docs {
		if d.Status == status {
			items = append(items, d.toModel())
		}
	}

	return items, nil
}

func (s *Items) ItemByID(ctx context.Context, id int64) (*model.Item, error) {
	key, err := s.rdb.HGet(ctx, itemIndexKey, idField(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("item by id", err)
	}

	raw, err := s.rdb.Get(ctx, itemDocPrefix+key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("item by id", err)
	}

	var d itemDoc
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, wrap("item by id", err)
	}

	item := d.toModel()
	return &item, nil
}

func (s *Items) AddItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	key, err := newDocKey()
	if err != nil {
		return nil, wrap("add item", err)
	}

	// Ids assigned by the relational primary are kept as-is so both stores
	// agree on them. Standalone documents derive theirs from the key.
	if item.ID == 0 {
		item.ID = numericID(key)
	}

	raw, err := json.Marshal(toItemDoc(item))
	if err != nil {
		return nil, wrap("add item", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, itemDocPrefix+key, raw, 0)
	pipe.HSet(ctx, itemIndexKey, idField(item.ID), key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, wrap("add item", err)
	}

	return item, nil
}

func (s *Items) UpdateItem(ctx context.Context, item *model.Item) (*model.Item, error) {
	key, err := s.rdb.HGet(ctx, itemIndexKey, idField(item.ID)).Result()
	if err == redis.Nil {
		return nil, store.NotFoundError("update item")
	}
	if err != nil {
		return nil, wrap("update item", err)
	}

	raw, err := json.Marshal(toItemDoc(item))
	if err != nil {
		return nil, wrap("update item", err)
	}

	if err := s.rdb.Set(ctx, itemDocPrefix+key, raw, 0).Err(); err != nil {
		return nil, wrap("update item", err)
	}

	return item, nil
}

func (s *Items) DeleteItem(ctx context.Context, id int64) (bool, error) {
	key, err := s.rdb.HGet(ctx, itemIndexKey, idField(id)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, wrap("delete item", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, itemDocPrefix+key)
	pipe.HDel(ctx, itemIndexKey, idField(id))

	if _, err := pipe.Exec(ctx); err != nil {
		return false, wrap("delete item", err)
	}

	return true, nil
}
