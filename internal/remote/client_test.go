package remote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownCollectionRejected(t *testing.T) {
	c := &Client{}
	ctx := context.Background()

	err := c.Select(ctx, "users", Query{}, nil)
	assert.ErrorIs(t, err, ErrUnknownCollection)

	err = c.Insert(ctx, "orders; drop table orders", nil)
	assert.ErrorIs(t, err, ErrUnknownCollection)

	err = c.UpdateByID(ctx, "nope", "id-1", nil)
	assert.ErrorIs(t, err, ErrUnknownCollection)

	err = c.DeleteByID(ctx, "nope", "id-1")
	assert.ErrorIs(t, err, ErrUnknownCollection)

	_, err = c.Subscribe(ctx, "nope", func() {})
	assert.ErrorIs(t, err, ErrUnknownCollection)
}

func TestChangeChannelNaming(t *testing.T) {
	assert.Equal(t, "touchpay:changes:kitchen_orders", ChangeChannel("kitchen_orders"))
}

func TestUnsupportedFilterOpRejected(t *testing.T) {
	_, err := applyFilters(nil, []Filter{{Column: "id", Op: "regex", Value: ".*"}})
	assert.Error(t, err)
}
