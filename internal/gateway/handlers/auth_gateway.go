package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"touchpay-system/internal/state"
	"touchpay-system/internal/utils"
)

type AuthHandler struct {
	store     *state.Store
	jwtSecret []byte
	tokenTTL  time.Duration
	log       *zap.SugaredLogger
}

func NewAuthHandler(store *state.Store, jwtSecret []byte, tokenTTL time.Duration, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		store:     store,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login is a stub: any password is accepted for an active user. Real
// credential verification belongs to an identity provider, not this core.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("username and password are required"))
		return
	}

	var user *state.User
	for _, u := range h.store.Snapshot().Users {
		if u.Username == req.Username && u.IsActive {
			user = &u
			break
		}
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, errorResponse("Invalid credentials"))
		return
	}

	token, exp, err := utils.GenerateToken(h.jwtSecret, user.ID, user.Username, string(user.Role), h.tokenTTL)
	if err != nil {
		h.log.Errorw("token generation failed", "username", user.Username, "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse("Could not issue token"))
		return
	}

	h.store.SetCurrentUser(user)
	h.log.Infow("user logged in", "username", user.Username, "role", user.Role)

	c.JSON(http.StatusOK, successResponse("Login successful", gin.H{
		"token":      token,
		"expires_at": exp,
		"user":       user,
	}))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.SetCurrentUser(nil)
	c.JSON(http.StatusOK, successResponse("Logged out", nil))
}
