package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t)
	seedCatalog(t, src)
	// UTC instants survive the JSON round trip byte for byte.
	src.WithClock(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) })

	order, err := src.CreateOrder("table-1", []OrderItem{
		{ProductID: "prod-1", Quantity: 2, Price: 10000},
	}, "tanpa sambal")
	require.NoError(t, err)
	_, _, err = src.SettlePayment(order.ID, "tunai", 50000)
	require.NoError(t, err)

	data, err := src.ExportJSON()
	require.NoError(t, err)

	dst := newTestStore(t)
	require.NoError(t, dst.ImportJSON(data))

	want := src.Snapshot()
	got := dst.Snapshot()
	assert.Equal(t, want.Categories, got.Categories)
	assert.Equal(t, want.Products, got.Products)
	assert.Equal(t, want.Tables, got.Tables)
	assert.Equal(t, want.Orders, got.Orders)
	assert.Equal(t, want.Transactions, got.Transactions)
}

func TestExportFileName(t *testing.T) {
	doc := ExportDocument{ExportedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local)}
	assert.Equal(t, "touchpay-export-2025-06-01.json", doc.FileName())
}

func TestImportJSONRejectsGarbage(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.ImportJSON([]byte("{not json")))
}
