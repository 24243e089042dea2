package handlers

import (
	"net/http"

	"github.com/abdulaziz1812/service-review-system-server/services/account"
	"github.com/abdulaziz1812/service-review-system-server/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// UserHandler exposes user registration and the counts summary.
type UserHandler struct {
	Accounts account.AccountService
}

func NewUserHandler(svc account.AccountService) *UserHandler {
	return &UserHandler{Accounts: svc}
}

// RegisterUserHandler handles POST /user. The payload is stored exactly as
// submitted; registering twice with the same email yields two documents.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var payload bson.M
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Error("Invalid registration payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Accounts.RegisterUser(c.Request.Context(), payload)
	if err != nil {
		logger.Error("Failed to register user", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not register user")
		return
	}
	c.JSON(http.StatusOK, res)
}

// CountsHandler handles GET /counts.
func (h *UserHandler) CountsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	counts, err := h.Accounts.Counts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute counts", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not compute counts")
		return
	}
	c.JSON(http.StatusOK, counts)
}
