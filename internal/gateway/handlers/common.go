package handlers

import (
	"net/http"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"touchpay-system/internal/state"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func successResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func errorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}

// statusForStoreErr maps the store's sentinel errors onto HTTP codes.
// Validation failures are the caller's fault, never the store's.
func statusForStoreErr(err error) int {
	switch {
	case errors.Is(err, state.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, state.ErrCategoryInUse),
		errors.Is(err, state.ErrProductInUse):
		return http.StatusConflict
	case errors.Is(err, state.ErrDanglingReference),
		errors.Is(err, state.ErrEmptyOrder),
		errors.Is(err, state.ErrInsufficientPayment),
		errors.Is(err, state.ErrUnknownMethod):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func statusForRemoteErr(err error) int {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
