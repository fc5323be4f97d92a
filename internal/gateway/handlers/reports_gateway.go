package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"touchpay-system/internal/state"
)

// ReportsHandler serves the dashboard and reporting screens plus the JSON
// export/import surface.
type ReportsHandler struct {
	store *state.Store
	log   *zap.SugaredLogger
}

func NewReportsHandler(store *state.Store, log *zap.SugaredLogger) *ReportsHandler {
	return &ReportsHandler{store: store, log: log}
}

func (h *ReportsHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse("Dashboard stats computed", h.store.DashboardStats()))
}

func (h *ReportsHandler) SalesByDay(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse("days must be a positive integer"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Sales report computed", h.store.SalesByDay(days)))
}

func (h *ReportsHandler) TopProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse("limit must be a positive integer"))
		return
	}
	c.JSON(http.StatusOK, successResponse("Product ranking computed", h.store.TopProducts(limit)))
}

func (h *ReportsHandler) PaymentMethodDistribution(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse("Payment distribution computed", h.store.PaymentMethodDistribution()))
}

// Export streams the full snapshot as a downloadable JSON document with a
// date-stamped file name.
func (h *ReportsHandler) Export(c *gin.Context) {
	doc := h.store.Export()
	data, err := h.store.ExportJSON()
	if err != nil {
		h.log.Errorw("export failed", "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse("Export failed"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName()))
	c.Data(http.StatusOK, "application/json", data)
}

func (h *ReportsHandler) Import(c *gin.Context) {
	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Could not read request body"))
		return
	}
	if err := h.store.ImportJSON(data); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	h.log.Infow("snapshot imported", "bytes", len(data))
	c.JSON(http.StatusOK, successResponse("Snapshot imported successfully", nil))
}
