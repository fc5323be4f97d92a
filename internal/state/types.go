package state

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleKasir  Role = "kasir"
	RoleWaiter Role = "waiter"
)

// TableStatus is the occupancy lifecycle of a physical table. Transitions
// are permissive: any status may be set from any other by explicit update.
type TableStatus string

const (
	TableKosong  TableStatus = "kosong"
	TableDipesan TableStatus = "dipesan"
	TableMakan   TableStatus = "makan"
	TableSelesai TableStatus = "selesai"
)

// OrderStatus is the kitchen/service lifecycle of an order. An order counts
// as active for dashboard purposes in every status except selesai.
type OrderStatus string

const (
	OrderBaru    OrderStatus = "baru"
	OrderDimasak OrderStatus = "dimasak"
	OrderSiap    OrderStatus = "siap"
	OrderDiantar OrderStatus = "diantar"
	OrderSelesai OrderStatus = "selesai"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Product prices are integer rupiah.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	CategoryID  string    `json:"category_id"`
	ImageURL    string    `json:"image_url,omitempty"`
	Stock       int       `json:"stock"`
	Unit        string    `json:"unit"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type Table struct {
	ID        string      `json:"id"`
	Number    string      `json:"number"`
	Area      string      `json:"area"`
	Status    TableStatus `json:"status"`
	Capacity  int         `json:"capacity"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderItem snapshots the product price at order time.
type OrderItem struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
	Notes     string `json:"notes,omitempty"`
}

type Order struct {
	ID          string      `json:"id"`
	OrderNumber string      `json:"order_number"`
	TableID     string      `json:"table_id"`
	Items       []OrderItem `json:"items"`
	Status      OrderStatus `json:"status"`
	TotalAmount int64       `json:"total_amount"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type Payment struct {
	ID        string        `json:"id"`
	OrderID   string        `json:"order_id"`
	Method    string        `json:"method"`
	Amount    int64         `json:"amount"`
	Received  int64         `json:"received"`
	Change    int64         `json:"change"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// Transaction is the durable record of a completed sale.
type Transaction struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"order_id"`
	PaymentID      string    `json:"payment_id"`
	ReceiptNumber  string    `json:"receipt_number"`
	TotalAmount    int64     `json:"total_amount"`
	TaxAmount      int64     `json:"tax_amount"`
	DiscountAmount int64     `json:"discount_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

// AppSettings is session-wide configuration. TaxRate and DefaultDiscount
// are percentages.
type AppSettings struct {
	RestaurantName  string   `json:"restaurant_name"`
	LogoURL         string   `json:"logo_url,omitempty"`
	TaxRate         float64  `json:"tax_rate"`
	DefaultDiscount float64  `json:"default_discount"`
	OpenTime        string   `json:"open_time"`
	CloseTime       string   `json:"close_time"`
	PaymentMethods  []string `json:"payment_methods"`
}

func DefaultSettings() AppSettings {
	return AppSettings{
		RestaurantName:  "TouchPay Restaurant",
		TaxRate:         10,
		DefaultDiscount: 0,
		OpenTime:        "08:00",
		CloseTime:       "22:00",
		PaymentMethods:  []string{"tunai", "transfer", "e-wallet"},
	}
}

// Snapshot is one immutable view of the whole session state. Mutations on
// the store replace the affected collections wholesale; slices held by a
// snapshot handed out earlier are never written in place.
type Snapshot struct {
	Users        []User        `json:"users"`
	Categories   []Category    `json:"categories"`
	Products     []Product     `json:"products"`
	Tables       []Table       `json:"tables"`
	Orders       []Order       `json:"orders"`
	Payments     []Payment     `json:"payments"`
	Transactions []Transaction `json:"transactions"`
	Settings     AppSettings   `json:"settings"`

	CurrentUser   *User  `json:"current_user,omitempty"`
	SelectedTable *Table `json:"selected_table,omitempty"`
	CurrentOrder  *Order `json:"current_order,omitempty"`
}

type DashboardStats struct {
	TodayTransactions int   `json:"today_transactions"`
	TodayRevenue      int64 `json:"today_revenue"`
	ActiveOrders      int   `json:"active_orders"`
	TotalTables       int   `json:"total_tables"`
}

type DailySales struct {
	Date         string `json:"date"`
	Total        int64  `json:"total"`
	Transactions int    `json:"transactions"`
}

type ProductSales struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Sold      int    `json:"sold"`
	Revenue   int64  `json:"revenue"`
}

type MethodShare struct {
	Method string `json:"method"`
	Amount int64  `json:"amount"`
	Count  int    `json:"count"`
}
