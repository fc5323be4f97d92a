package state

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrCategoryInUse       = errors.New("category still has products")
	ErrProductInUse        = errors.New("product is referenced by an order")
	ErrDanglingReference   = errors.New("reference to a missing record")
	ErrEmptyOrder          = errors.New("order has no items")
	ErrInsufficientPayment = errors.New("received amount is less than order total")
	ErrUnknownMethod       = errors.New("payment method not configured")
)

// Store is the single authoritative holder of session state. All mutations
// go through its methods; each one swaps in a new snapshot under the write
// lock, so a Snapshot handed out earlier keeps observing the state it was
// taken from.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
	node *snowflake.Node
	now  func() time.Time
}

func NewStore(node *snowflake.Node) *Store {
	return &Store{
		snap: Snapshot{Settings: DefaultSettings()},
		node: node,
		now:  time.Now,
	}
}

// WithClock overrides the store clock, for tests and replay.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// NewID returns a prefixed, collision-resistant identifier, e.g. "prod-8fk3j2p".
func (s *Store) NewID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToLower(s.node.Generate().Base36()))
}

// --- Users ---

func (s *Store) AddUser(u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}
	s.snap.Users = appendCopy(s.snap.Users, u)
	return nil
}

func (s *Store) UpdateUser(u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, ok := replaceByID(s.snap.Users, u, func(x User) string { return x.ID })
	if !ok {
		return ErrNotFound
	}
	s.snap.Users = users
	return nil
}

func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	users, ok := removeByID(s.snap.Users, id, func(x User) string { return x.ID })
	if !ok {
		return ErrNotFound
	}
	s.snap.Users = users
	return nil
}

func (s *Store) SetUsers(list []User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Users = cloneSlice(list)
}

func (s *Store) SetCurrentUser(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.CurrentUser = clonePtr(u)
}

// --- Categories ---

func (s *Store) AddCategory(c Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	s.snap.Categories = appendCopy(s.snap.Categories, c)
	return nil
}

func (s *Store) UpdateCategory(c Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cats, ok := replaceByID(s.snap.Categories, c, func(x Category) string { return x.ID })
	if !ok {
		return ErrNotFound
	}
	s.snap.Categories = cats
	return nil
}

// DeleteCategory refuses to drop a category any product still points at.
func (s *Store) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.snap.Products {
		if p.CategoryID == id {
			return ErrCategoryInUse
		}
	}
	cats, ok := removeByID(s.snap.Categories, id, func(x Category) string { return x.ID })
	if !ok {
		return ErrNotFound
	}
	s.snap.Categories = cats
	return nil
}

func (s *Store) SetCategories(list []Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Categories = cloneSlice(list)
}

// --- Products ---

func (s *Store) AddProduct(p Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.categoryExists(p.CategoryID) {
		return fmt.Errorf("category %q: %w", p.CategoryID, ErrDanglingReference)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	s.snap.Products = appendCopy(s.snap.Products, p)
	return nil
}

func (s *Store) UpdateProduct(p Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.categoryExists(p.CategoryID) {
		return fmt.Errorf("category %q: %w", p.CategoryID, ErrDanglingReference)
	}
	products, ok := replaceByID(s.snap.Products, p, func(x Product) string { return x.ID })
	if !ok {
		return ErrNotFound
	}
	s.snap.Products = products
	return nil
}

func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.snap.Orders {
		for _, it := range o.Items {
			if it.ProductID == id {
				return ErrProductInUse
			}
		}
	}
	products, ok := removeByID(s.snap.Products, id, func(x Product) string { return x.ID })
	if !ok {
		return ErrNotFound
	}
	s.snap.Products = products
	return nil
}

func (s *Store) SetProducts(list []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Products = cloneSlice(list)
}

// --- Tables ---

func (s *Store) AddTable(t Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.Status == "" {
		t.Status = TableKosong
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.now()
	}
	s.snap.Tables = appendCopy(s.snap.Tables, t)
	return nil
}

func (s *Store) UpdateTable(t Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tables, ok := replaceByID(s.snap.Tables, t, func(x Table) string { return x.ID })
	if !ok {
		return ErrNotFound
	}
	s.snap.Tables = tables
	return nil
}

func (s *Store) DeleteTable(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tables, ok := removeByID(s.snap.Tables, id, func(x Table) string { return x.ID })
	if !ok {
		return ErrNotFound
	}
	s.snap.Tables = tables
	return nil
}

func (s *Store) SetTables(list []Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Tables = cloneSlice(list)
}

func (s *Store) SelectTable(t *Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.SelectedTable = clonePtr(t)
}

// --- Orders ---

// CreateOrder assigns the id and the same-day-sequential order number,
// validates every reference and computes the total from the items.
func (s *Store) CreateOrder(tableID string, items []OrderItem, notes string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(items) == 0 {
		return Order{}, ErrEmptyOrder
	}
	if !s.tableExists(tableID) {
		return Order{}, fmt.Errorf("table %q: %w", tableID, ErrDanglingReference)
	}
	for i := range items {
		if !s.productExists(items[i].ProductID) {
			return Order{}, fmt.Errorf("product %q: %w", items[i].ProductID, ErrDanglingReference)
		}
		if items[i].ID == "" {
			items[i].ID = s.newIDLocked("item")
		}
	}

	now := s.now()
	order := Order{
		ID:          s.newIDLocked("ord"),
		OrderNumber: nextOrderNumber(s.snap.Orders, now),
		TableID:     tableID,
		Items:       cloneSlice(items),
		Status:      OrderBaru,
		TotalAmount: orderTotal(items),
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.snap.Orders = appendCopy(s.snap.Orders, order)
	return order, nil
}

// UpdateOrder replaces the stored record. The total is always recomputed
// from the submitted items, so a caller cannot desynchronise it.
func (s *Store) UpdateOrder(o Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.tableExists(o.TableID) {
		return fmt.Errorf("table %q: %w", o.TableID, ErrDanglingReference)
	}
	for _, it := range o.Items {
		if !s.productExists(it.ProductID) {
			return fmt.Errorf("product %q: %w", it.ProductID, ErrDanglingReference)
		}
	}
	o.Items = cloneSlice(o.Items)
	o.TotalAmount = orderTotal(o.Items)
	o.UpdatedAt = s.now()
	orders, ok := replaceByID(s.snap.Orders, o, func(x Order) string { return x.ID })
	if !ok {
		return ErrNotFound
	}
	s.snap.Orders = orders
	return nil
}

func (s *Store) UpdateOrderStatus(id string, status OrderStatus) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.snap.Orders {
		if o.ID == id {
			o.Status = status
			o.UpdatedAt = s.now()
			orders := cloneSlice(s.snap.Orders)
			orders[i] = o
			s.snap.Orders = orders
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}

func (s *Store) DeleteOrder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders, ok := removeByID(s.snap.Orders, id, func(x Order) string { return x.ID })
	if !ok {
		return ErrNotFound
	}
	s.snap.Orders = orders
	return nil
}

func (s *Store) SetOrders(list []Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := cloneSlice(list)
	for i := range orders {
		orders[i].Items = cloneSlice(orders[i].Items)
	}
	s.snap.Orders = orders
}

func (s *Store) SetCurrentOrder(o *Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.CurrentOrder = clonePtr(o)
}

// --- Payments & transactions ---

func (s *Store) AddPayment(p Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	s.snap.Payments = appendCopy(s.snap.Payments, p)
	return nil
}

func (s *Store) UpdatePayment(p Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payments, ok := replaceByID(s.snap.Payments, p, func(x Payment) string { return x.ID })
	if !ok {
		return ErrNotFound
	}
	s.snap.Payments = payments
	return nil
}

func (s *Store) DeletePayment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payments, ok := removeByID(s.snap.Payments, id, func(x Payment) string { return x.ID })
	if !ok {
		return ErrNotFound
	}
	s.snap.Payments = payments
	return nil
}

func (s *Store) SetPayments(list []Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Payments = cloneSlice(list)
}

func (s *Store) AddTransaction(t Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.now()
	}
	s.snap.Transactions = appendCopy(s.snap.Transactions, t)
	return nil
}

func (s *Store) UpdateTransaction(t Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	transactions, ok := replaceByID(s.snap.Transactions, t, func(x Transaction) string { return x.ID })
	if !ok {
		return ErrNotFound
	}
	s.snap.Transactions = transactions
	return nil
}

func (s *Store) DeleteTransaction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	transactions, ok := removeByID(s.snap.Transactions, id, func(x Transaction) string { return x.ID })
	if !ok {
		return ErrNotFound
	}
	s.snap.Transactions = transactions
	return nil
}

func (s *Store) SetTransactions(list []Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Transactions = cloneSlice(list)
}

// SettlePayment settles an order in one step: a completed payment with the
// change computed, the transaction with a fresh receipt number, and the
// order marked selesai. Validation failures leave the snapshot untouched.
func (s *Store) SettlePayment(orderID, method string, received int64) (Payment, Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, o := range s.snap.Orders {
		if o.ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Payment{}, Transaction{}, ErrNotFound
	}
	if !s.methodConfigured(method) {
		return Payment{}, Transaction{}, fmt.Errorf("%q: %w", method, ErrUnknownMethod)
	}

	order := s.snap.Orders[idx]
	if received < order.TotalAmount {
		return Payment{}, Transaction{}, ErrInsufficientPayment
	}

	now := s.now()
	payment := Payment{
		ID:        s.newIDLocked("pay"),
		OrderID:   order.ID,
		Method:    method,
		Amount:    order.TotalAmount,
		Received:  received,
		Change:    received - order.TotalAmount,
		Status:    PaymentCompleted,
		CreatedAt: now,
	}

	tax := percentOf(order.TotalAmount, s.snap.Settings.TaxRate)
	discount := percentOf(order.TotalAmount, s.snap.Settings.DefaultDiscount)
	tx := Transaction{
		ID:             s.newIDLocked("trx"),
		OrderID:        order.ID,
		PaymentID:      payment.ID,
		ReceiptNumber:  nextReceiptNumber(s.snap.Transactions, now),
		TotalAmount:    order.TotalAmount + tax - discount,
		TaxAmount:      tax,
		DiscountAmount: discount,
		CreatedAt:      now,
	}

	order.Status = OrderSelesai
	order.UpdatedAt = now
	orders := cloneSlice(s.snap.Orders)
	orders[idx] = order

	s.snap.Orders = orders
	s.snap.Payments = appendCopy(s.snap.Payments, payment)
	s.snap.Transactions = appendCopy(s.snap.Transactions, tx)
	return payment, tx, nil
}

// --- Settings ---

// UpdateSettings merges the given patch over the current settings.
func (s *Store) UpdateSettings(patch SettingsPatch) AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.snap.Settings
	if patch.RestaurantName != nil {
		cfg.RestaurantName = *patch.RestaurantName
	}
	if patch.LogoURL != nil {
		cfg.LogoURL = *patch.LogoURL
	}
	if patch.TaxRate != nil {
		cfg.TaxRate = *patch.TaxRate
	}
	if patch.DefaultDiscount != nil {
		cfg.DefaultDiscount = *patch.DefaultDiscount
	}
	if patch.OpenTime != nil {
		cfg.OpenTime = *patch.OpenTime
	}
	if patch.CloseTime != nil {
		cfg.CloseTime = *patch.CloseTime
	}
	if patch.PaymentMethods != nil {
		cfg.PaymentMethods = cloneSlice(patch.PaymentMethods)
	}
	s.snap.Settings = cfg
	return cfg
}

type SettingsPatch struct {
	RestaurantName  *string  `json:"restaurant_name,omitempty"`
	LogoURL         *string  `json:"logo_url,omitempty"`
	TaxRate         *float64 `json:"tax_rate,omitempty"`
	DefaultDiscount *float64 `json:"default_discount,omitempty"`
	OpenTime        *string  `json:"open_time,omitempty"`
	CloseTime       *string  `json:"close_time,omitempty"`
	PaymentMethods  []string `json:"payment_methods,omitempty"`
}

// --- internals ---

func (s *Store) newIDLocked(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToLower(s.node.Generate().Base36()))
}

func (s *Store) categoryExists(id string) bool {
	for _, c := range s.snap.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) productExists(id string) bool {
	for _, p := range s.snap.Products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) tableExists(id string) bool {
	for _, t := range s.snap.Tables {
		if t.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) methodConfigured(method string) bool {
	for _, m := range s.snap.Settings.PaymentMethods {
		if m == method {
			return true
		}
	}
	return false
}

func orderTotal(items []OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}

// percentOf rounds half away from zero to whole rupiah.
func percentOf(amount int64, rate float64) int64 {
	if rate == 0 {
		return 0
	}
	d := decimal.NewFromInt(amount).
		Mul(decimal.NewFromFloat(rate)).
		Div(decimal.NewFromInt(100))
	return d.Round(0).IntPart()
}

func appendCopy[T any](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, v)
}

func cloneSlice[T any](list []T) []T {
	if list == nil {
		return nil
	}
	out := make([]T, len(list))
	copy(out, list)
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func replaceByID[T any](list []T, v T, id func(T) string) ([]T, bool) {
	for i := range list {
		if id(list[i]) == id(v) {
			out := cloneSlice(list)
			out[i] = v
			return out, true
		}
	}
	return list, false
}

func removeByID[T any](list []T, target string, id func(T) string) ([]T, bool) {
	for i := range list {
		if id(list[i]) == target {
			out := make([]T, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...), true
		}
	}
	return list, false
}
