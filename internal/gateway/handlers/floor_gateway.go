package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"touchpay-system/internal/state"
)

// FloorHandler serves the table, order, payment and transaction screens —
// the lifecycle surface of the POS floor.
type FloorHandler struct {
	store *state.Store
	log   *zap.SugaredLogger
}

func NewFloorHandler(store *state.Store, log *zap.SugaredLogger) *FloorHandler {
	return &FloorHandler{store: store, log: log}
}

// Request structs
type CreateTableRequest struct {
	Number   string `json:"number" binding:"required"`
	Area     string `json:"area" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Price     int64  `json:"price" binding:"required,min=0"`
	Notes     string `json:"notes"`
}

type CreateOrderRequest struct {
	TableID string             `json:"table_id" binding:"required"`
	Items   []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes   string             `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SettlePaymentRequest struct {
	OrderID  string `json:"order_id" binding:"required"`
	Method   string `json:"method" binding:"required"`
	Received int64  `json:"received" binding:"required,min=0"`
}

// --- Tables ---

func (h *FloorHandler) ListTables(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse("Tables retrieved successfully", h.store.Snapshot().Tables))
}

func (h *FloorHandler) CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	table := state.Table{
		ID:       h.store.NewID("table"),
		Number:   req.Number,
		Area:     req.Area,
		Capacity: req.Capacity,
		Status:   state.TableKosong,
	}
	if err := h.store.AddTable(table); err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, successResponse("Table created successfully", table))
}

func (h *FloorHandler) UpdateTable(c *gin.Context) {
	var table state.Table
	if err := c.ShouldBindJSON(&table); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	table.ID = c.Param("id")
	if err := h.store.UpdateTable(table); err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, successResponse("Table updated successfully", table))
}

func (h *FloorHandler) DeleteTable(c *gin.Context) {
	if err := h.store.DeleteTable(c.Param("id")); err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, successResponse("Table deleted successfully", nil))
}

// SelectTable sets or clears the focused table. Body may carry a table id
// or be empty to clear.
func (h *FloorHandler) SelectTable(c *gin.Context) {
	var req struct {
		TableID string `json:"table_id"`
	}
	_ = c.ShouldBindJSON(&req)

	if req.TableID == "" {
		h.store.SelectTable(nil)
		c.JSON(http.StatusOK, successResponse("Table selection cleared", nil))
		return
	}
	for _, t := range h.store.Snapshot().Tables {
		if t.ID == req.TableID {
			h.store.SelectTable(&t)
			c.JSON(http.StatusOK, successResponse("Table selected", t))
			return
		}
	}
	c.JSON(http.StatusNotFound, errorResponse("Table not found"))
}

// --- Orders ---

func (h *FloorHandler) ListOrders(c *gin.Context) {
	orders := h.store.Snapshot().Orders
	if status := c.Query("status"); status != "" {
		filtered := make([]state.Order, 0, len(orders))
		for _, o := range orders {
			if string(o.Status) == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}
	c.JSON(http.StatusOK, successResponse("Orders retrieved successfully", orders))
}

func (h *FloorHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	items := make([]state.OrderItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = state.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Notes:     it.Notes,
		}
	}

	order, err := h.store.CreateOrder(req.TableID, items, req.Notes)
	if err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	h.log.Infow("order created", "order_number", order.OrderNumber, "table_id", order.TableID, "total", order.TotalAmount)
	c.JSON(http.StatusCreated, successResponse("Order created successfully", order))
}

func (h *FloorHandler) UpdateOrder(c *gin.Context) {
	var order state.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	order.ID = c.Param("id")
	if err := h.store.UpdateOrder(order); err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, successResponse("Order updated successfully", order))
}

func (h *FloorHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	order, err := h.store.UpdateOrderStatus(c.Param("id"), state.OrderStatus(req.Status))
	if err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, successResponse("Order status updated", order))
}

func (h *FloorHandler) DeleteOrder(c *gin.Context) {
	if err := h.store.DeleteOrder(c.Param("id")); err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, successResponse("Order deleted successfully", nil))
}

func (h *FloorHandler) SelectCurrentOrder(c *gin.Context) {
	var req struct {
		OrderID string `json:"order_id"`
	}
	_ = c.ShouldBindJSON(&req)

	if req.OrderID == "" {
		h.store.SetCurrentOrder(nil)
		c.JSON(http.StatusOK, successResponse("Current order cleared", nil))
		return
	}
	for _, o := range h.store.Snapshot().Orders {
		if o.ID == req.OrderID {
			h.store.SetCurrentOrder(&o)
			c.JSON(http.StatusOK, successResponse("Current order set", o))
			return
		}
	}
	c.JSON(http.StatusNotFound, errorResponse("Order not found"))
}

// --- Payments & transactions ---

func (h *FloorHandler) ListPayments(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse("Payments retrieved successfully", h.store.Snapshot().Payments))
}

func (h *FloorHandler) SettlePayment(c *gin.Context) {
	var req SettlePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	payment, tx, err := h.store.SettlePayment(req.OrderID, req.Method, req.Received)
	if err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	h.log.Infow("payment settled",
		"order_id", req.OrderID,
		"receipt", tx.ReceiptNumber,
		"method", payment.Method,
		"change", payment.Change)
	c.JSON(http.StatusOK, successResponse("Payment processed successfully", gin.H{
		"payment":     payment,
		"transaction": tx,
	}))
}

func (h *FloorHandler) ListTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse("Transactions retrieved successfully", h.store.Snapshot().Transactions))
}

// --- Settings ---

func (h *FloorHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse("Settings retrieved successfully", h.store.Snapshot().Settings))
}

func (h *FloorHandler) UpdateSettings(c *gin.Context) {
	var patch state.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	updated := h.store.UpdateSettings(patch)
	c.JSON(http.StatusOK, successResponse("Settings updated successfully", updated))
}
