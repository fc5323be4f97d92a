package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsEmptyStore(t *testing.T) {
	s := newTestStore(t)
	s.SetTables([]Table{
		{ID: "table-1", Number: "01"},
		{ID: "table-2", Number: "02"},
	})

	stats := s.DashboardStats()
	assert.Equal(t, DashboardStats{
		TodayTransactions: 0,
		TodayRevenue:      0,
		ActiveOrders:      0,
		TotalTables:       2,
	}, stats)
}

func TestDashboardStatsTodayCutoff(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 30, 0, 0, time.Local)
	snap := Snapshot{
		Transactions: []Transaction{
			{ID: "trx-1", TotalAmount: 10000, CreatedAt: now.Add(-time.Hour)},                // today
			{ID: "trx-2", TotalAmount: 20000, CreatedAt: now.AddDate(0, 0, -1)},              // yesterday
			{ID: "trx-3", TotalAmount: 5000, CreatedAt: time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)}, // midnight boundary counts
		},
		Orders: []Order{
			{ID: "ord-1", Status: OrderBaru},
			{ID: "ord-2", Status: OrderDimasak},
			{ID: "ord-3", Status: OrderSiap},
			{ID: "ord-4", Status: OrderDiantar},
			{ID: "ord-5", Status: OrderSelesai},
		},
	}

	stats := ComputeDashboardStats(snap, now)
	assert.Equal(t, 2, stats.TodayTransactions)
	assert.Equal(t, int64(15000), stats.TodayRevenue)
	assert.Equal(t, 4, stats.ActiveOrders)
}

func TestSalesByDay(t *testing.T) {
	now := time.Date(2025, 6, 7, 18, 0, 0, 0, time.Local)
	snap := Snapshot{
		Transactions: []Transaction{
			{ID: "trx-1", TotalAmount: 10000, CreatedAt: now},
			{ID: "trx-2", TotalAmount: 15000, CreatedAt: now.Add(-2 * time.Hour)},
			{ID: "trx-3", TotalAmount: 20000, CreatedAt: now.AddDate(0, 0, -2)},
			{ID: "trx-4", TotalAmount: 99999, CreatedAt: now.AddDate(0, 0, -10)}, // outside window
		},
	}

	rows := ComputeSalesByDay(snap, 7, now)
	require.Len(t, rows, 7)

	assert.Equal(t, "2025-06-01", rows[0].Date)
	assert.Equal(t, "2025-06-07", rows[6].Date)

	assert.Equal(t, int64(25000), rows[6].Total)
	assert.Equal(t, 2, rows[6].Transactions)
	assert.Equal(t, int64(20000), rows[4].Total)
	assert.Equal(t, int64(0), rows[0].Total)
}

func TestSalesByDayZeroWindow(t *testing.T) {
	assert.Nil(t, ComputeSalesByDay(Snapshot{}, 0, time.Now()))
}

func TestTopProducts(t *testing.T) {
	snap := Snapshot{
		Products: []Product{
			{ID: "prod-1", Name: "Nasi Gudeg Yogya", Price: 25000},
			{ID: "prod-2", Name: "Es Teh Manis", Price: 5000},
			{ID: "prod-3", Name: "Kopi Tubruk", Price: 8000},
		},
		Orders: []Order{
			{ID: "ord-1", Items: []OrderItem{
				{ProductID: "prod-1", Quantity: 2, Price: 25000},
				{ProductID: "prod-2", Quantity: 5, Price: 5000},
			}},
			{ID: "ord-2", Items: []OrderItem{
				{ProductID: "prod-2", Quantity: 1, Price: 5000},
			}},
			{ID: "ord-3", Items: []OrderItem{
				{ProductID: "prod-3", Quantity: 9, Price: 8000},
			}},
		},
		Transactions: []Transaction{
			{ID: "trx-1", OrderID: "ord-1"},
			{ID: "trx-2", OrderID: "ord-2"},
			// ord-3 never reached a transaction, so prod-3 sold nothing.
		},
	}

	ranking := ComputeTopProducts(snap, 2)
	require.Len(t, ranking, 2)

	assert.Equal(t, "prod-2", ranking[0].ProductID)
	assert.Equal(t, 6, ranking[0].Sold)
	assert.Equal(t, int64(30000), ranking[0].Revenue)

	assert.Equal(t, "prod-1", ranking[1].ProductID)
	assert.Equal(t, 2, ranking[1].Sold)
	assert.Equal(t, int64(50000), ranking[1].Revenue)
}

func TestPaymentMethodDistribution(t *testing.T) {
	snap := Snapshot{
		Payments: []Payment{
			{ID: "pay-1", Method: "tunai", Amount: 10000},
			{ID: "pay-2", Method: "e-wallet", Amount: 20000},
			{ID: "pay-3", Method: "tunai", Amount: 5000},
		},
	}

	dist := ComputePaymentMethodDistribution(snap)
	require.Len(t, dist, 2)

	assert.Equal(t, MethodShare{Method: "tunai", Amount: 15000, Count: 2}, dist[0])
	assert.Equal(t, MethodShare{Method: "e-wallet", Amount: 20000, Count: 1}, dist[1])
}

func TestPaymentMethodDistributionEmpty(t *testing.T) {
	assert.Empty(t, ComputePaymentMethodDistribution(Snapshot{}))
}
