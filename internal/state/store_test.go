package state

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return NewStore(node)
}

func seedCatalog(t *testing.T, s *Store) {
	t.Helper()
	s.SetCategories([]Category{{ID: "cat-1", Name: "Makanan Utama", IsActive: true}})
	s.SetProducts([]Product{
		{ID: "prod-1", Name: "Nasi Gudeg Yogya", Price: 10000, CategoryID: "cat-1", Unit: "porsi", IsActive: true},
		{ID: "prod-2", Name: "Es Teh Manis", Price: 5000, CategoryID: "cat-1", Unit: "gelas", IsActive: true},
	})
	s.SetTables([]Table{{ID: "table-1", Number: "01", Area: "VIP", Capacity: 4, Status: TableKosong}})
}

func TestCreateOrderComputesTotal(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)

	order, err := s.CreateOrder("table-1", []OrderItem{
		{ProductID: "prod-1", Quantity: 2, Price: 10000},
		{ProductID: "prod-2", Quantity: 1, Price: 5000},
	}, "")
	require.NoError(t, err)

	assert.Equal(t, int64(25000), order.TotalAmount)
	assert.Equal(t, OrderBaru, order.Status)
	assert.NotEmpty(t, order.ID)
	assert.NotEmpty(t, order.OrderNumber)
}

func TestUpdateOrderRecomputesTotal(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)

	order, err := s.CreateOrder("table-1", []OrderItem{{ProductID: "prod-1", Quantity: 1, Price: 10000}}, "")
	require.NoError(t, err)

	// A caller submitting a stale total cannot desynchronise the order.
	order.Items = append(order.Items, OrderItem{ID: "item-x", ProductID: "prod-2", Quantity: 3, Price: 5000})
	order.TotalAmount = 1
	require.NoError(t, s.UpdateOrder(order))

	got := s.Snapshot().Orders[0]
	assert.Equal(t, int64(25000), got.TotalAmount)
}

func TestCreateOrderValidatesReferences(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)

	_, err := s.CreateOrder("table-missing", []OrderItem{{ProductID: "prod-1", Quantity: 1, Price: 10000}}, "")
	assert.ErrorIs(t, err, ErrDanglingReference)

	_, err = s.CreateOrder("table-1", []OrderItem{{ProductID: "prod-missing", Quantity: 1, Price: 10000}}, "")
	assert.ErrorIs(t, err, ErrDanglingReference)

	_, err = s.CreateOrder("table-1", nil, "")
	assert.ErrorIs(t, err, ErrEmptyOrder)

	assert.Empty(t, s.Snapshot().Orders)
}

func TestDeleteCategoryInUseRejected(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)
	before := s.Snapshot()

	err := s.DeleteCategory("cat-1")
	assert.ErrorIs(t, err, ErrCategoryInUse)

	after := s.Snapshot()
	assert.Equal(t, before.Categories, after.Categories)
	assert.Len(t, after.Categories, 1)
}

func TestDeleteProductInUseRejected(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)

	_, err := s.CreateOrder("table-1", []OrderItem{{ProductID: "prod-1", Quantity: 1, Price: 10000}}, "")
	require.NoError(t, err)

	assert.ErrorIs(t, s.DeleteProduct("prod-1"), ErrProductInUse)
	assert.Len(t, s.Snapshot().Products, 2)
}

func TestUpdateDeleteMissingIDReturnsNotFound(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)

	assert.ErrorIs(t, s.UpdateCategory(Category{ID: "cat-missing"}), ErrNotFound)
	assert.ErrorIs(t, s.DeleteTable("table-missing"), ErrNotFound)
	assert.ErrorIs(t, s.UpdateUser(User{ID: "user-missing"}), ErrNotFound)
	assert.ErrorIs(t, s.DeleteOrder("ord-missing"), ErrNotFound)
}

func TestSetIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	list := []Product{{ID: "prod-1", Name: "Kopi Tubruk", Price: 8000, CategoryID: "cat-1"}}

	s.SetProducts(list)
	once := s.Snapshot()
	s.SetProducts(list)
	twice := s.Snapshot()

	assert.Equal(t, once.Products, twice.Products)
}

func TestSnapshotIsolation(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)
	before := s.Snapshot()

	require.NoError(t, s.AddCategory(Category{ID: "cat-2", Name: "Minuman"}))
	_, err := s.CreateOrder("table-1", []OrderItem{{ProductID: "prod-1", Quantity: 1, Price: 10000}}, "")
	require.NoError(t, err)

	// The snapshot taken before the mutations still observes the old state.
	assert.Len(t, before.Categories, 1)
	assert.Empty(t, before.Orders)
	assert.Len(t, s.Snapshot().Categories, 2)
}

func TestSettlePayment(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)

	order, err := s.CreateOrder("table-1", []OrderItem{{ProductID: "prod-1", Quantity: 2, Price: 10000}}, "")
	require.NoError(t, err)

	payment, tx, err := s.SettlePayment(order.ID, "tunai", 50000)
	require.NoError(t, err)

	assert.Equal(t, int64(20000), payment.Amount)
	assert.Equal(t, int64(30000), payment.Change)
	assert.Equal(t, PaymentCompleted, payment.Status)

	// Default settings carry a 10% tax rate and no discount.
	assert.Equal(t, int64(2000), tx.TaxAmount)
	assert.Equal(t, int64(0), tx.DiscountAmount)
	assert.Equal(t, int64(22000), tx.TotalAmount)
	assert.Equal(t, payment.ID, tx.PaymentID)
	assert.NotEmpty(t, tx.ReceiptNumber)

	assert.Equal(t, OrderSelesai, s.Snapshot().Orders[0].Status)
}

func TestSettlePaymentValidation(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)

	order, err := s.CreateOrder("table-1", []OrderItem{{ProductID: "prod-1", Quantity: 2, Price: 10000}}, "")
	require.NoError(t, err)

	_, _, err = s.SettlePayment(order.ID, "tunai", 19999)
	assert.ErrorIs(t, err, ErrInsufficientPayment)

	_, _, err = s.SettlePayment(order.ID, "bitcoin", 50000)
	assert.ErrorIs(t, err, ErrUnknownMethod)

	_, _, err = s.SettlePayment("ord-missing", "tunai", 50000)
	assert.ErrorIs(t, err, ErrNotFound)

	// Failed settlements leave nothing behind.
	snap := s.Snapshot()
	assert.Empty(t, snap.Payments)
	assert.Empty(t, snap.Transactions)
	assert.Equal(t, OrderBaru, snap.Orders[0].Status)
}

func TestOrderLifecycleEndToEnd(t *testing.T) {
	s := newTestStore(t)
	s.SetCategories([]Category{{ID: "cat-1", Name: "Makanan Utama"}})
	s.SetProducts([]Product{
		{ID: "prod-1", Name: "Nasi Gudeg Yogya", Price: 10000, CategoryID: "cat-1"},
		{ID: "prod-2", Name: "Es Teh Manis", Price: 5000, CategoryID: "cat-1"},
	})
	require.NoError(t, s.AddTable(Table{ID: "table-1", Number: "01", Area: "VIP", Capacity: 4, Status: TableKosong}))

	order, err := s.CreateOrder("table-1", []OrderItem{
		{ProductID: "prod-1", Quantity: 2, Price: 10000},
		{ProductID: "prod-2", Quantity: 1, Price: 5000},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(25000), order.TotalAmount)

	assert.Equal(t, 1, s.DashboardStats().ActiveOrders)

	_, err = s.UpdateOrderStatus(order.ID, OrderSelesai)
	require.NoError(t, err)

	stats := s.DashboardStats()
	assert.Equal(t, 0, stats.ActiveOrders)
	assert.Equal(t, 1, stats.TotalTables)
}

func TestSelectPointers(t *testing.T) {
	s := newTestStore(t)
	seedCatalog(t, s)

	table := s.Snapshot().Tables[0]
	s.SelectTable(&table)
	require.NotNil(t, s.Snapshot().SelectedTable)
	assert.Equal(t, "table-1", s.Snapshot().SelectedTable.ID)

	s.SelectTable(nil)
	assert.Nil(t, s.Snapshot().SelectedTable)
}

func TestUpdateSettingsMergesPatch(t *testing.T) {
	s := newTestStore(t)

	name := "Warung Tengah Kota"
	rate := 11.0
	updated := s.UpdateSettings(SettingsPatch{RestaurantName: &name, TaxRate: &rate})

	assert.Equal(t, "Warung Tengah Kota", updated.RestaurantName)
	assert.Equal(t, 11.0, updated.TaxRate)
	// Untouched fields keep their defaults.
	assert.Equal(t, "08:00", updated.OpenTime)
	assert.Equal(t, []string{"tunai", "transfer", "e-wallet"}, updated.PaymentMethods)
}

func TestPercentOfRounds(t *testing.T) {
	assert.Equal(t, int64(0), percentOf(25000, 0))
	assert.Equal(t, int64(2500), percentOf(25000, 10))
	assert.Equal(t, int64(1), percentOf(5, 11)) // 0.55 rounds away from zero
}

func TestWithClock(t *testing.T) {
	s := newTestStore(t)
	fixed := time.Date(2025, 3, 14, 15, 0, 0, 0, time.Local)
	s.WithClock(func() time.Time { return fixed })

	require.NoError(t, s.AddCategory(Category{ID: "cat-1", Name: "Dessert"}))
	assert.Equal(t, fixed, s.Snapshot().Categories[0].CreatedAt)
}
