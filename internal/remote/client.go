// Package remote is the generic query client the advanced pages use to
// reach the relational backend: select with filters and ordering, insert,
// update by id, delete by id, and a per-collection change notification
// that re-triggers a full refetch on the subscriber side.
package remote

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"touchpay-system/internal/database/models"
)

var ErrUnknownCollection = errors.New("unknown collection")

const changeChannelPrefix = "touchpay:changes:"

// collections whitelists the query surface; everything else is rejected
// before touching the database.
var collections = map[string]struct{}{
	"customer_profiles":     {},
	"checklist_tasks":       {},
	"checklist_completions": {},
	"kitchen_orders":        {},
	"payment_methods":       {},
	"promo_codes":           {},
	"activity_logs":         {},
}

type Op string

const (
	OpEq   Op = "eq"
	OpIn   Op = "in"
	OpGte  Op = "gte"
	OpLte  Op = "lte"
	OpLike Op = "like"
)

type Filter struct {
	Column string
	Op     Op
	Value  interface{}
}

type Query struct {
	Filters    []Filter
	OrderBy    string
	Descending bool
	Limit      int
}

type Client struct {
	db  *gorm.DB
	rdb *redis.Client
	log *zap.SugaredLogger
}

func NewClient(db *gorm.DB, rdb *redis.Client, log *zap.SugaredLogger) *Client {
	return &Client{db: db, rdb: rdb, log: log}
}

func (c *Client) Select(ctx context.Context, collection string, q Query, dest interface{}) error {
	tx, err := c.scoped(ctx, collection)
	if err != nil {
		return err
	}
	tx, err = applyFilters(tx, q.Filters)
	if err != nil {
		return err
	}
	if q.OrderBy != "" {
		dir := "ASC"
		if q.Descending {
			dir = "DESC"
		}
		tx = tx.Order(fmt.Sprintf("%s %s", q.OrderBy, dir))
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	return errors.Wrapf(tx.Find(dest).Error, "select %s", collection)
}

func (c *Client) Insert(ctx context.Context, collection string, record interface{}) error {
	tx, err := c.scoped(ctx, collection)
	if err != nil {
		return err
	}
	if err := tx.Create(record).Error; err != nil {
		return errors.Wrapf(err, "insert into %s", collection)
	}
	c.notify(ctx, collection)
	return nil
}

func (c *Client) UpdateByID(ctx context.Context, collection, id string, updates map[string]interface{}) error {
	tx, err := c.scoped(ctx, collection)
	if err != nil {
		return err
	}
	res := tx.Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "update %s/%s", collection, id)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	c.notify(ctx, collection)
	return nil
}

func (c *Client) DeleteByID(ctx context.Context, collection, id string) error {
	tx, err := c.scoped(ctx, collection)
	if err != nil {
		return err
	}
	res := tx.Where("id = ?", id).Delete(nil)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete %s/%s", collection, id)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	c.notify(ctx, collection)
	return nil
}

// Subscribe invokes onChange after every committed write to the
// collection. Callers are expected to refetch the full collection rather
// than merge deltas. The returned func stops the subscription.
func (c *Client) Subscribe(ctx context.Context, collection string, onChange func()) (func(), error) {
	if _, ok := collections[collection]; !ok {
		return nil, errors.Wrap(ErrUnknownCollection, collection)
	}
	sub := c.rdb.Subscribe(ctx, ChangeChannel(collection))
	go func() {
		for range sub.Channel() {
			onChange()
		}
	}()
	return func() { _ = sub.Close() }, nil
}

func ChangeChannel(collection string) string {
	return changeChannelPrefix + collection
}

func (c *Client) notify(ctx context.Context, collection string) {
	if err := c.rdb.Publish(ctx, ChangeChannel(collection), "changed").Err(); err != nil {
		c.log.Warnw("change notification dropped", "collection", collection, "error", err)
	}
}

func (c *Client) scoped(ctx context.Context, collection string) (*gorm.DB, error) {
	if _, ok := collections[collection]; !ok {
		return nil, errors.Wrap(ErrUnknownCollection, collection)
	}
	return c.db.WithContext(ctx).Table(collection), nil
}

func applyFilters(tx *gorm.DB, filters []Filter) (*gorm.DB, error) {
	for _, f := range filters {
		switch f.Op {
		case OpEq:
			tx = tx.Where(fmt.Sprintf("%s = ?", f.Column), f.Value)
		case OpIn:
			tx = tx.Where(fmt.Sprintf("%s IN ?", f.Column), f.Value)
		case OpGte:
			tx = tx.Where(fmt.Sprintf("%s >= ?", f.Column), f.Value)
		case OpLte:
			tx = tx.Where(fmt.Sprintf("%s <= ?", f.Column), f.Value)
		case OpLike:
			tx = tx.Where(fmt.Sprintf("%s ILIKE ?", f.Column), fmt.Sprintf("%%%v%%", f.Value))
		default:
			return nil, errors.Errorf("unsupported filter op %q", f.Op)
		}
	}
	return tx, nil
}

// ArchiveServedKitchenOrders deletes kitchen tickets served more than
// olderThan ago. Runs from the nightly housekeeping schedule.
func (c *Client) ArchiveServedKitchenOrders(ctx context.Context, olderThan int) error {
	res := c.db.WithContext(ctx).
		Where("status = ? AND completed_at < NOW() - make_interval(hours => ?)", "served", olderThan).
		Delete(&models.KitchenOrder{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "archive kitchen orders")
	}
	if res.RowsAffected > 0 {
		c.log.Infow("archived served kitchen orders", "count", res.RowsAffected)
		c.notify(ctx, "kitchen_orders")
	}
	return nil
}
