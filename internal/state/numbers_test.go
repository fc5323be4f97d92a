package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderNumbersAreSequentialWithinADay(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	s.WithClock(func() time.Time { return fixed })

	seen := map[string]bool{}
	for i := 1; i <= 5; i++ {
		order, err := s.CreateOrder("table-1", []OrderItem{{ProductID: "prod-1", Quantity: 1, Price: 10000}}, "")
		require.NoError(t, err)

		assert.Equal(t, fmt.Sprintf("TP-20250601-%04d", i), order.OrderNumber)
		assert.False(t, seen[order.OrderNumber], "order number %s repeated", order.OrderNumber)
		seen[order.OrderNumber] = true
	}
}

func TestReceiptNumbersAreSequentialWithinADay(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	s.WithClock(func() time.Time { return fixed })

	for i := 1; i <= 3; i++ {
		order, err := s.CreateOrder("table-1", []OrderItem{{ProductID: "prod-1", Quantity: 1, Price: 10000}}, "")
		require.NoError(t, err)
		_, tx, err := s.SettlePayment(order.ID, "tunai", 100000)
		require.NoError(t, err)

		assert.Equal(t, fmt.Sprintf("RCP-20250601-%04d", i), tx.ReceiptNumber)
	}
}

func TestSequenceResetsAcrossDays(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)

	day1 := time.Date(2025, 6, 1, 23, 0, 0, 0, time.Local)
	s.WithClock(func() time.Time { return day1 })
	first, err := s.CreateOrder("table-1", []OrderItem{{ProductID: "prod-1", Quantity: 1, Price: 10000}}, "")
	require.NoError(t, err)
	assert.Equal(t, "TP-20250601-0001", first.OrderNumber)

	day2 := day1.AddDate(0, 0, 1)
	s.WithClock(func() time.Time { return day2 })
	second, err := s.CreateOrder("table-1", []OrderItem{{ProductID: "prod-1", Quantity: 1, Price: 10000}}, "")
	require.NoError(t, err)
	assert.Equal(t, "TP-20250602-0001", second.OrderNumber)
}

func TestNextNumberPreviews(t *testing.T) {
	s := newTestStore(t)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	s.WithClock(func() time.Time { return fixed })

	assert.Equal(t, "TP-20250601-0001", s.NextOrderNumber())
	assert.Equal(t, "RCP-20250601-0001", s.NextReceiptNumber())
	// Previews do not consume a sequence slot.
	assert.Equal(t, "TP-20250601-0001", s.NextOrderNumber())
}
