package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"petstore-backend/internal/domain/category"
	"petstore-backend/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	categoryAllKey    = "categories:all"
	categoryKeyPrefix = "categories:"
)

type categoryModel struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func toModel(c *category.Category) categoryModel {
	return categoryModel{ID: c.ID, Name: c.Name, Description: c.Description}
}

func (m categoryModel) toDomain() *category.Category {
	return &category.Category{ID: m.ID, Name: m.Name, Description: m.Description}
}

// RedisCategoryCache stores the catalog list under one key and each category
// under its own key, all with the same TTL.
type RedisCategoryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCategoryCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCategoryCache {
	return &RedisCategoryCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisCategoryCache) GetAll(ctx context.Context) ([]*category.Category, bool, error) {
	data, err := c.client.Get(ctx, categoryAllKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "redis GET categories")
	}

	var models []categoryModel
	if err := json.Unmarshal(data, &models); err != nil {
		c.logger.Warn("Dropping undecodable category list from cache", "error", err.Error())
		_ = c.client.Del(ctx, categoryAllKey).Err()
		return nil, false, nil
	}

	list := make([]*category.Category, 0, len(models))
	for _, m := range models {
		list = append(list, m.toDomain())
	}
	return list, true, nil
}

func (c *RedisCategoryCache) SetAll(ctx context.Context, list []*category.Category) error {
	models := make([]categoryModel, 0, len(list))
	for _, cat := range list {
		models = append(models, toModel(cat))
	}
	data, err := json.Marshal(models)
	if err != nil {
		return errs.Wrap(err, "marshal categories")
	}

	pipe := c.client.Pipeline()
	pipe.Set(ctx, categoryAllKey, data, c.ttl)
	for _, m := range models {
		one, err := json.Marshal(m)
		if err != nil {
			continue
		}
		pipe.Set(ctx, categoryKey(m.ID), one, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errs.Wrap(err, "redis pipeline SET categories")
	}
	return nil
}

func (c *RedisCategoryCache) Get(ctx context.Context, id int64) (*category.Category, bool, error) {
	data, err := c.client.Get(ctx, categoryKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrapf(err, "redis GET category %d", id)
	}

	var m categoryModel
	if err := json.Unmarshal(data, &m); err != nil || m.ID != id {
		c.logger.Warn("Dropping mismatched category from cache", "category_id", id)
		_ = c.client.Del(ctx, categoryKey(id)).Err()
		return nil, false, nil
	}
	return m.toDomain(), true, nil
}

func (c *RedisCategoryCache) Set(ctx context.Context, cat *category.Category) error {
	data, err := json.Marshal(toModel(cat))
	if err != nil {
		return errs.Wrap(err, "marshal category")
	}
	if err := c.client.Set(ctx, categoryKey(cat.ID), data, c.ttl).Err(); err != nil {
		return errs.Wrapf(err, "redis SET category %d", cat.ID)
	}
	return nil
}

// Invalidate always drops the list key along with the given ids.
func (c *RedisCategoryCache) Invalidate(ctx context.Context, ids ...int64) error {
	keys := make([]string, 0, len(ids)+1)
	keys = append(keys, categoryAllKey)
	for _, id := range ids {
		keys = append(keys, categoryKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "redis DEL categories")
	}
	return nil
}

func categoryKey(id int64) string {
	return categoryKeyPrefix + strconv.FormatInt(id, 10)
}

// NopCategoryCache always misses.
type NopCategoryCache struct{}

func (NopCategoryCache) GetAll(context.Context) ([]*category.Category, bool, error) {
	return nil, false, nil
}
func (NopCategoryCache) SetAll(context.Context, []*category.Category) error { return nil }
func (NopCategoryCache) Get(context.Context, int64) (*category.Category, bool, error) {
	return nil, false, nil
}
func (NopCategoryCache) Set(context.Context, *category.Category) error { return nil }
func (NopCategoryCache) Invalidate(context.Context, ...int64) error   { return nil }
