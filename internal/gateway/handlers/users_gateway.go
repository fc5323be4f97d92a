package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"touchpay-system/internal/state"
)

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,oneof=admin kasir waiter"`
	IsActive *bool  `json:"is_active"`
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse("Users retrieved successfully", h.store.Snapshot().Users))
}

func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	user := state.User{
		ID:       h.store.NewID("user"),
		Username: req.Username,
		Email:    req.Email,
		Role:     state.Role(req.Role),
		IsActive: req.IsActive == nil || *req.IsActive,
	}
	if err := h.store.AddUser(user); err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, successResponse("User created successfully", user))
}

func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var user state.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	user.ID = c.Param("id")
	if err := h.store.UpdateUser(user); err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, successResponse("User updated successfully", user))
}

func (h *AuthHandler) DeleteUser(c *gin.Context) {
	if err := h.store.DeleteUser(c.Param("id")); err != nil {
		c.JSON(statusForStoreErr(err), errorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, successResponse("User deleted successfully", nil))
}
