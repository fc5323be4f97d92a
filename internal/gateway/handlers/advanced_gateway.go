package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"touchpay-system/internal/database/models"
	"touchpay-system/internal/remote"
	"touchpay-system/internal/state"
)

// AdvancedHandler serves the screens backed by the relational collections:
// kitchen display, promo codes, customer profiles, daily checklist and the
// payment method registry.
type AdvancedHandler struct {
	client *remote.Client
	store  *state.Store
	log    *zap.SugaredLogger
}

func NewAdvancedHandler(client *remote.Client, store *state.Store, log *zap.SugaredLogger) *AdvancedHandler {
	return &AdvancedHandler{client: client, store: store, log: log}
}

// logActivity records a mutation in the activity log, best effort.
func (h *AdvancedHandler) logActivity(c *gin.Context, action, entityType, entityID string) {
	userID := c.GetString("user_id")
	if userID == "" {
		userID = "anonymous"
	}
	ip := c.ClientIP()
	ua := c.Request.UserAgent()
	entry := models.ActivityLog{
		ID:         h.store.NewID("log"),
		UserID:     userID,
		ActionType: action,
		EntityType: entityType,
		EntityID:   &entityID,
		IPAddress:  &ip,
		UserAgent:  &ua,
		CreatedAt:  time.Now(),
	}
	if err := h.client.Insert(c.Request.Context(), "activity_logs", &entry); err != nil {
		h.log.Warnw("activity log write failed", "action", action, "error", err)
	}
}

// --- Kitchen display ---

// ListKitchenOrders returns open tickets oldest first, so the kitchen
// works the queue in arrival order.
func (h *AdvancedHandler) ListKitchenOrders(c *gin.Context) {
	var orders []models.KitchenOrder
	err := h.client.Select(c.Request.Context(), "kitchen_orders", remote.Query{
		Filters: []remote.Filter{
			{Column: "status", Op: remote.OpIn, Value: []string{"pending", "preparing", "ready"}},
		},
		OrderBy: "created_at",
	}, &orders)
	if err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error loading kitchen orders"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Kitchen orders retrieved successfully", orders))
}

type CreateKitchenOrderRequest struct {
	OrderID       string  `json:"order_id" binding:"required"`
	TableNumber   *string `json:"table_number"`
	Priority      string  `json:"priority"`
	EstimatedTime *int    `json:"estimated_time"`
}

func (h *AdvancedHandler) CreateKitchenOrder(c *gin.Context) {
	var req CreateKitchenOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	if req.Priority == "" {
		req.Priority = "normal"
	}

	ticket := models.KitchenOrder{
		ID:            h.store.NewID("ko"),
		OrderID:       req.OrderID,
		TableNumber:   req.TableNumber,
		Status:        "pending",
		Priority:      req.Priority,
		EstimatedTime: req.EstimatedTime,
	}
	if err := h.client.Insert(c.Request.Context(), "kitchen_orders", &ticket); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error creating kitchen order"))
		return
	}
	h.logActivity(c, "create", "kitchen_order", ticket.ID)
	c.JSON(http.StatusCreated, successResponse("Kitchen order created successfully", ticket))
}

// UpdateKitchenOrderStatus stamps started_at when cooking begins and
// completed_at when the ticket is ready or served.
func (h *AdvancedHandler) UpdateKitchenOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	updates := map[string]interface{}{
		"status":     req.Status,
		"updated_at": time.Now(),
	}
	switch req.Status {
	case "preparing":
		updates["started_at"] = time.Now()
	case "ready", "served":
		updates["completed_at"] = time.Now()
	}

	id := c.Param("id")
	if err := h.client.UpdateByID(c.Request.Context(), "kitchen_orders", id, updates); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error updating kitchen order"))
		return
	}
	h.logActivity(c, "update_status", "kitchen_order", id)
	c.JSON(http.StatusOK, successResponse("Kitchen order status updated", gin.H{"id": id, "status": req.Status}))
}

// --- Promo codes ---

type PromoCodeRequest struct {
	Code              string     `json:"code" binding:"required"`
	Name              string     `json:"name" binding:"required"`
	Description       *string    `json:"description"`
	DiscountType      string     `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue     int64      `json:"discount_value" binding:"required,min=1"`
	MinOrderAmount    *int64     `json:"min_order_amount"`
	MaxDiscountAmount *int64     `json:"max_discount_amount"`
	UsageLimit        *int       `json:"usage_limit"`
	ValidFrom         *time.Time `json:"valid_from"`
	ValidUntil        *time.Time `json:"valid_until"`
	IsActive          *bool      `json:"is_active"`
}

func (h *AdvancedHandler) ListPromoCodes(c *gin.Context) {
	var promos []models.PromoCode
	err := h.client.Select(c.Request.Context(), "promo_codes", remote.Query{
		OrderBy: "created_at", Descending: true,
	}, &promos)
	if err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error loading promo codes"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Promo codes retrieved successfully", promos))
}

func (h *AdvancedHandler) CreatePromoCode(c *gin.Context) {
	var req PromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	validFrom := time.Now()
	if req.ValidFrom != nil {
		validFrom = *req.ValidFrom
	}
	promo := models.PromoCode{
		ID:                h.store.NewID("promo"),
		Code:              req.Code,
		Name:              req.Name,
		Description:       req.Description,
		DiscountType:      req.DiscountType,
		DiscountValue:     req.DiscountValue,
		MinOrderAmount:    req.MinOrderAmount,
		MaxDiscountAmount: req.MaxDiscountAmount,
		UsageLimit:        req.UsageLimit,
		ValidFrom:         validFrom,
		ValidUntil:        req.ValidUntil,
		IsActive:          req.IsActive == nil || *req.IsActive,
	}
	if err := h.client.Insert(c.Request.Context(), "promo_codes", &promo); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error creating promo code"))
		return
	}
	h.logActivity(c, "create", "promo_code", promo.ID)
	c.JSON(http.StatusCreated, successResponse("Promo code created successfully", promo))
}

func (h *AdvancedHandler) DeletePromoCode(c *gin.Context) {
	id := c.Param("id")
	if err := h.client.DeleteByID(c.Request.Context(), "promo_codes", id); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error deleting promo code"))
		return
	}
	h.logActivity(c, "delete", "promo_code", id)
	c.JSON(http.StatusOK, successResponse("Promo code deleted successfully", nil))
}

// UpdatePromoCodeRequest is a patch: only the fields present in the body
// are written. The edit dialog and the active toggle both go through it.
type UpdatePromoCodeRequest struct {
	Name              *string    `json:"name"`
	Description       *string    `json:"description"`
	DiscountType      *string    `json:"discount_type" binding:"omitempty,oneof=percentage fixed"`
	DiscountValue     *int64     `json:"discount_value" binding:"omitempty,min=1"`
	MinOrderAmount    *int64     `json:"min_order_amount"`
	MaxDiscountAmount *int64     `json:"max_discount_amount"`
	UsageLimit        *int       `json:"usage_limit"`
	ValidUntil        *time.Time `json:"valid_until"`
	IsActive          *bool      `json:"is_active"`
}

func (r UpdatePromoCodeRequest) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.DiscountType != nil {
		u["discount_type"] = *r.DiscountType
	}
	if r.DiscountValue != nil {
		u["discount_value"] = *r.DiscountValue
	}
	if r.MinOrderAmount != nil {
		u["min_order_amount"] = *r.MinOrderAmount
	}
	if r.MaxDiscountAmount != nil {
		u["max_discount_amount"] = *r.MaxDiscountAmount
	}
	if r.UsageLimit != nil {
		u["usage_limit"] = *r.UsageLimit
	}
	if r.ValidUntil != nil {
		u["valid_until"] = *r.ValidUntil
	}
	if r.IsActive != nil {
		u["is_active"] = *r.IsActive
	}
	return u
}

func (h *AdvancedHandler) UpdatePromoCode(c *gin.Context) {
	var req UpdatePromoCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	updates := req.updates()
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, errorResponse("No fields to update"))
		return
	}
	updates["updated_at"] = time.Now()

	id := c.Param("id")
	if err := h.client.UpdateByID(c.Request.Context(), "promo_codes", id, updates); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error updating promo code"))
		return
	}
	h.logActivity(c, "update", "promo_code", id)
	c.JSON(http.StatusOK, successResponse("Promo code updated successfully", gin.H{"id": id}))
}

type ValidatePromoRequest struct {
	Code        string `json:"code" binding:"required"`
	OrderAmount int64  `json:"order_amount" binding:"required,min=1"`
}

type PromoValidation struct {
	Valid    bool   `json:"valid"`
	Reason   string `json:"reason,omitempty"`
	Discount int64  `json:"discount"`
}

// ValidatePromo checks a code against its window, minimum order and usage
// limit, and computes the discount it would grant.
func (h *AdvancedHandler) ValidatePromo(c *gin.Context) {
	var req ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	var promos []models.PromoCode
	err := h.client.Select(c.Request.Context(), "promo_codes", remote.Query{
		Filters: []remote.Filter{{Column: "code", Op: remote.OpEq, Value: req.Code}},
		Limit:   1,
	}, &promos)
	if err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error loading promo code"))
		return
	}
	if len(promos) == 0 {
		c.JSON(http.StatusOK, successResponse("Promo checked", PromoValidation{Valid: false, Reason: "Kode promo tidak ditemukan"}))
		return
	}

	result := EvaluatePromo(promos[0], req.OrderAmount, time.Now())
	c.JSON(http.StatusOK, successResponse("Promo checked", result))
}

// EvaluatePromo is the pure promo rule check, split out for tests.
func EvaluatePromo(promo models.PromoCode, orderAmount int64, now time.Time) PromoValidation {
	if !promo.IsActive {
		return PromoValidation{Valid: false, Reason: "Kode promo tidak aktif"}
	}
	if now.Before(promo.ValidFrom) {
		return PromoValidation{Valid: false, Reason: "Kode promo belum berlaku"}
	}
	if promo.ValidUntil != nil && now.After(*promo.ValidUntil) {
		return PromoValidation{Valid: false, Reason: "Kode promo sudah kedaluwarsa"}
	}
	if promo.MinOrderAmount != nil && orderAmount < *promo.MinOrderAmount {
		return PromoValidation{Valid: false, Reason: "Total pesanan belum mencapai minimum"}
	}
	if promo.UsageLimit != nil && promo.UsedCount >= *promo.UsageLimit {
		return PromoValidation{Valid: false, Reason: "Kuota promo sudah habis"}
	}

	var discount int64
	switch promo.DiscountType {
	case "percentage":
		discount = decimal.NewFromInt(orderAmount).
			Mul(decimal.NewFromInt(promo.DiscountValue)).
			Div(decimal.NewFromInt(100)).
			Round(0).IntPart()
		if promo.MaxDiscountAmount != nil && discount > *promo.MaxDiscountAmount {
			discount = *promo.MaxDiscountAmount
		}
	default:
		discount = promo.DiscountValue
	}
	if discount > orderAmount {
		discount = orderAmount
	}
	return PromoValidation{Valid: true, Discount: discount}
}

// RedeemPromo bumps the usage counter after a promo is applied to a sale.
func (h *AdvancedHandler) RedeemPromo(c *gin.Context) {
	id := c.Param("id")

	var promos []models.PromoCode
	err := h.client.Select(c.Request.Context(), "promo_codes", remote.Query{
		Filters: []remote.Filter{{Column: "id", Op: remote.OpEq, Value: id}},
		Limit:   1,
	}, &promos)
	if err != nil || len(promos) == 0 {
		c.JSON(http.StatusNotFound, errorResponse("Promo code not found"))
		return
	}

	updates := map[string]interface{}{
		"used_count": promos[0].UsedCount + 1,
		"updated_at": time.Now(),
	}
	if err := h.client.UpdateByID(c.Request.Context(), "promo_codes", id, updates); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error redeeming promo code"))
		return
	}
	h.logActivity(c, "redeem", "promo_code", id)
	c.JSON(http.StatusOK, successResponse("Promo code redeemed", nil))
}

// --- Customer profiles ---

type CustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

func (h *AdvancedHandler) ListCustomers(c *gin.Context) {
	q := remote.Query{OrderBy: "name"}
	if search := c.Query("search"); search != "" {
		q.Filters = append(q.Filters, remote.Filter{Column: "name", Op: remote.OpLike, Value: search})
	}

	var customers []models.CustomerProfile
	if err := h.client.Select(c.Request.Context(), "customer_profiles", q, &customers); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error loading customers"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Customers retrieved successfully", customers))
}

func (h *AdvancedHandler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	customer := models.CustomerProfile{
		ID:      h.store.NewID("cust"),
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := h.client.Insert(c.Request.Context(), "customer_profiles", &customer); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error creating customer"))
		return
	}
	h.logActivity(c, "create", "customer_profile", customer.ID)
	c.JSON(http.StatusCreated, successResponse("Customer created successfully", customer))
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

func (r UpdateCustomerRequest) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.Phone != nil {
		u["phone"] = *r.Phone
	}
	if r.Email != nil {
		u["email"] = *r.Email
	}
	if r.Address != nil {
		u["address"] = *r.Address
	}
	return u
}

func (h *AdvancedHandler) UpdateCustomer(c *gin.Context) {
	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	updates := req.updates()
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, errorResponse("No fields to update"))
		return
	}
	updates["updated_at"] = time.Now()

	id := c.Param("id")
	if err := h.client.UpdateByID(c.Request.Context(), "customer_profiles", id, updates); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error updating customer"))
		return
	}
	h.logActivity(c, "update", "customer_profile", id)
	c.JSON(http.StatusOK, successResponse("Customer updated successfully", gin.H{"id": id}))
}

func (h *AdvancedHandler) DeleteCustomer(c *gin.Context) {
	id := c.Param("id")
	if err := h.client.DeleteByID(c.Request.Context(), "customer_profiles", id); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error deleting customer"))
		return
	}
	h.logActivity(c, "delete", "customer_profile", id)
	c.JSON(http.StatusOK, successResponse("Customer deleted successfully", nil))
}

type RecordVisitRequest struct {
	Spent int64 `json:"spent" binding:"required,min=0"`
}

// RecordVisit adds a visit to a profile: bumps the counters and stamps the
// last visit time.
func (h *AdvancedHandler) RecordVisit(c *gin.Context) {
	var req RecordVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	id := c.Param("id")
	var customers []models.CustomerProfile
	err := h.client.Select(c.Request.Context(), "customer_profiles", remote.Query{
		Filters: []remote.Filter{{Column: "id", Op: remote.OpEq, Value: id}},
		Limit:   1,
	}, &customers)
	if err != nil || len(customers) == 0 {
		c.JSON(http.StatusNotFound, errorResponse("Customer not found"))
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"total_visits": customers[0].TotalVisits + 1,
		"total_spent":  customers[0].TotalSpent + req.Spent,
		"last_visit":   now,
		"updated_at":   now,
	}
	if err := h.client.UpdateByID(c.Request.Context(), "customer_profiles", id, updates); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error recording visit"))
		return
	}
	h.logActivity(c, "record_visit", "customer_profile", id)
	c.JSON(http.StatusOK, successResponse("Visit recorded", nil))
}

// --- Daily checklist ---

type ChecklistTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Role        string  `json:"role" binding:"required,oneof=admin kasir waiter"`
	Priority    string  `json:"priority"`
}

func (h *AdvancedHandler) ListChecklistTasks(c *gin.Context) {
	var tasks []models.ChecklistTask
	err := h.client.Select(c.Request.Context(), "checklist_tasks", remote.Query{
		Filters: []remote.Filter{{Column: "is_active", Op: remote.OpEq, Value: true}},
		OrderBy: "created_at",
	}, &tasks)
	if err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error loading checklist tasks"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Checklist tasks retrieved successfully", tasks))
}

func (h *AdvancedHandler) CreateChecklistTask(c *gin.Context) {
	var req ChecklistTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	if req.Priority == "" {
		req.Priority = "normal"
	}

	task := models.ChecklistTask{
		ID:          h.store.NewID("task"),
		Title:       req.Title,
		Description: req.Description,
		Role:        req.Role,
		Priority:    req.Priority,
		IsActive:    true,
	}
	if err := h.client.Insert(c.Request.Context(), "checklist_tasks", &task); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error creating checklist task"))
		return
	}
	h.logActivity(c, "create", "checklist_task", task.ID)
	c.JSON(http.StatusCreated, successResponse("Checklist task created successfully", task))
}

// UpdateChecklistTaskRequest is a patch; deactivating a task hides it
// from the daily list without losing its completion history.
type UpdateChecklistTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Role        *string `json:"role" binding:"omitempty,oneof=admin kasir waiter"`
	Priority    *string `json:"priority"`
	IsActive    *bool   `json:"is_active"`
}

func (r UpdateChecklistTaskRequest) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Title != nil {
		u["title"] = *r.Title
	}
	if r.Description != nil {
		u["description"] = *r.Description
	}
	if r.Role != nil {
		u["role"] = *r.Role
	}
	if r.Priority != nil {
		u["priority"] = *r.Priority
	}
	if r.IsActive != nil {
		u["is_active"] = *r.IsActive
	}
	return u
}

func (h *AdvancedHandler) UpdateChecklistTask(c *gin.Context) {
	var req UpdateChecklistTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	updates := req.updates()
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, errorResponse("No fields to update"))
		return
	}
	updates["updated_at"] = time.Now()

	id := c.Param("id")
	if err := h.client.UpdateByID(c.Request.Context(), "checklist_tasks", id, updates); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error updating checklist task"))
		return
	}
	h.logActivity(c, "update", "checklist_task", id)
	c.JSON(http.StatusOK, successResponse("Checklist task updated successfully", gin.H{"id": id}))
}

// ListTodayCompletions returns completions for the current date, so the
// UI can tick off what is already done.
func (h *AdvancedHandler) ListTodayCompletions(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	var completions []models.ChecklistCompletion
	err := h.client.Select(c.Request.Context(), "checklist_completions", remote.Query{
		Filters: []remote.Filter{{Column: "date", Op: remote.OpEq, Value: today}},
		OrderBy: "completed_at",
	}, &completions)
	if err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error loading completions"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Completions retrieved successfully", completions))
}

type CompleteTaskRequest struct {
	TaskID string  `json:"task_id" binding:"required"`
	Notes  *string `json:"notes"`
}

func (h *AdvancedHandler) CompleteChecklistTask(c *gin.Context) {
	var req CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	completedBy := c.GetString("user_id")
	if completedBy == "" {
		completedBy = "anonymous"
	}
	completion := models.ChecklistCompletion{
		ID:          h.store.NewID("done"),
		TaskID:      req.TaskID,
		Date:        time.Now().Format("2006-01-02"),
		CompletedBy: completedBy,
		Notes:       req.Notes,
		CompletedAt: time.Now(),
	}
	if err := h.client.Insert(c.Request.Context(), "checklist_completions", &completion); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error completing task"))
		return
	}
	c.JSON(http.StatusCreated, successResponse("Task completed", completion))
}

// UncompleteChecklistTask removes a completion, i.e. unticks the task for
// the day it was recorded on.
func (h *AdvancedHandler) UncompleteChecklistTask(c *gin.Context) {
	id := c.Param("id")
	if err := h.client.DeleteByID(c.Request.Context(), "checklist_completions", id); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error removing completion"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Completion removed", nil))
}

// --- Payment method registry ---

type PaymentMethodRequest struct {
	Name        string         `json:"name" binding:"required"`
	DisplayName string         `json:"display_name" binding:"required"`
	Type        string         `json:"type"`
	Icon        *string        `json:"icon"`
	SortOrder   int            `json:"sort_order"`
	Settings    models.JSONMap `json:"settings"`
}

func (h *AdvancedHandler) ListPaymentMethods(c *gin.Context) {
	var methods []models.PaymentMethod
	err := h.client.Select(c.Request.Context(), "payment_methods", remote.Query{
		OrderBy: "sort_order",
	}, &methods)
	if err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error loading payment methods"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Payment methods retrieved successfully", methods))
}

func (h *AdvancedHandler) CreatePaymentMethod(c *gin.Context) {
	var req PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	if req.Type == "" {
		req.Type = "cash"
	}

	method := models.PaymentMethod{
		ID:          h.store.NewID("pm"),
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Type:        req.Type,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
		Settings:    req.Settings,
		IsActive:    true,
	}
	if err := h.client.Insert(c.Request.Context(), "payment_methods", &method); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error creating payment method"))
		return
	}
	h.logActivity(c, "create", "payment_method", method.ID)
	c.JSON(http.StatusCreated, successResponse("Payment method created successfully", method))
}

type UpdatePaymentMethodRequest struct {
	Name        *string        `json:"name"`
	DisplayName *string        `json:"display_name"`
	Type        *string        `json:"type"`
	Icon        *string        `json:"icon"`
	SortOrder   *int           `json:"sort_order"`
	Settings    models.JSONMap `json:"settings"`
	IsActive    *bool          `json:"is_active"`
}

func (r UpdatePaymentMethodRequest) updates() map[string]interface{} {
	u := map[string]interface{}{}
	if r.Name != nil {
		u["name"] = *r.Name
	}
	if r.DisplayName != nil {
		u["display_name"] = *r.DisplayName
	}
	if r.Type != nil {
		u["type"] = *r.Type
	}
	if r.Icon != nil {
		u["icon"] = *r.Icon
	}
	if r.SortOrder != nil {
		u["sort_order"] = *r.SortOrder
	}
	if r.Settings != nil {
		u["settings"] = r.Settings
	}
	if r.IsActive != nil {
		u["is_active"] = *r.IsActive
	}
	return u
}

func (h *AdvancedHandler) UpdatePaymentMethod(c *gin.Context) {
	var req UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	updates := req.updates()
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, errorResponse("No fields to update"))
		return
	}
	updates["updated_at"] = time.Now()

	id := c.Param("id")
	if err := h.client.UpdateByID(c.Request.Context(), "payment_methods", id, updates); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error updating payment method"))
		return
	}
	h.logActivity(c, "update", "payment_method", id)
	c.JSON(http.StatusOK, successResponse("Payment method updated successfully", gin.H{"id": id}))
}

func (h *AdvancedHandler) DeletePaymentMethod(c *gin.Context) {
	id := c.Param("id")
	if err := h.client.DeleteByID(c.Request.Context(), "payment_methods", id); err != nil {
		c.JSON(statusForRemoteErr(err), errorResponse("Error deleting payment method"))
		return
	}
	h.logActivity(c, "delete", "payment_method", id)
	c.JSON(http.StatusOK, successResponse("Payment method deleted successfully", nil))
}
