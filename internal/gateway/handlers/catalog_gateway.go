package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"touchpay-system/internal/state"
)

// CatalogHandler serves the category and product screens.
type CatalogHandler struct {
	store *state.Store
	log   *zap.SugaredLogger
}

func NewCatalogHandler(store *state.Store, log *zap.SugaredLogger) *CatalogHandler {
	return &CatalogHandler{store: store, log: log}
}

// Request structs
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=0"`
	CategoryID  string `json:"category_id" binding:"required"`
	ImageURL    string `json:"image_url"`
	Stock       int    `json:"stock"`
	Unit        string `json:"unit" binding:"required"`
	IsActive    *bool  `json:"is_active"`
}

// --- Categories ---

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse("Categories retrieved successfully", h.store.Snapshot().Categories))
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	category := state.Category{
		ID:          h.store.NewID("cat"),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := h.store.AddCategory(category); err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, successResponse("Category created successfully", category))
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var category state.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	category.ID = c.Param("id")
	if err := h.store.UpdateCategory(category); err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, successResponse("Category updated successfully", category))
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.store.DeleteCategory(c.Param("id")); err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, successResponse("Category deleted successfully", nil))
}

// --- Products ---

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products := h.store.Snapshot().Products

	if categoryID := c.Query("category_id"); categoryID != "" {
		filtered := make([]state.Product, 0, len(products))
		for _, p := range products {
			if p.CategoryID == categoryID {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	if search := c.Query("search"); search != "" {
		needle := strings.ToLower(search)
		filtered := make([]state.Product, 0, len(products))
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	c.JSON(http.StatusOK, successResponse("Products retrieved successfully", products))
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	product := state.Product{
		ID:          h.store.NewID("prod"),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		Unit:        req.Unit,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := h.store.AddProduct(product); err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, successResponse("Product created successfully", product))
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var product state.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	product.ID = c.Param("id")
	if err := h.store.UpdateProduct(product); err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, successResponse("Product updated successfully", product))
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.store.DeleteProduct(c.Param("id")); err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, successResponse("Product deleted successfully", nil))
}
