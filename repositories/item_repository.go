package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"web-store/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const itemCacheTTL = 5 * time.Minute

// ItemRepository reads the catalog. Reads go through Redis when a
// client is configured; cache errors fall back to Postgres.
type ItemRepository struct {
	db    *pgxpool.Pool
	cache *redis.Client
}

func NewItemRepository(db *pgxpool.Pool, cache *redis.Client) *ItemRepository {
	return &ItemRepository{db: db, cache: cache}
}

func (r *ItemRepository) FindAll(ctx context.Context) ([]models.Item, error) {
	if cached, ok := r.cacheGetList(ctx, "items:all"); ok {
		return cached, nil
	}

	query := `SELECT id, name, price FROM items ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.cacheSetList(ctx, "items:all", items)
	return items, nil
}

// FindByID returns (nil, nil) when no such item exists.
func (r *ItemRepository) FindByID(ctx context.Context, id int) (*models.Item, error) {
	key := "items:id:" + strconv.Itoa(id)
	if r.cache != nil {
		if raw, err := r.cache.Get(ctx, key).Bytes(); err == nil {
			var item models.Item
			if json.Unmarshal(raw, &item) == nil {
				return &item, nil
			}
		}
	}

	query := `SELECT id, name, price FROM items WHERE id = $1`

	item := &models.Item{}
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if raw, err := json.Marshal(item); err == nil {
			r.cache.Set(ctx, key, raw, itemCacheTTL)
		}
	}
	return item, nil
}

func (r *ItemRepository) FindByName(ctx context.Context, name string) ([]models.Item, error) {
	query := `SELECT id, name, price FROM items WHERE name = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ItemRepository) cacheGetList(ctx context.Context, key string) ([]models.Item, bool) {
	if r.cache == nil {
		return nil, false
	}
	raw, err := r.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var items []models.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (r *ItemRepository) cacheSetList(ctx context.Context, key string, items []models.Item) {
	if r.cache == nil {
		return
	}
	if raw, err := json.Marshal(items); err == nil {
		r.cache.Set(ctx, key, raw, itemCacheTTL)
	}
}
