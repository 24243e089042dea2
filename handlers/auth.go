package handlers

import (
	"net/http"
	"time"

	"github.com/abdulaziz1812/service-review-system-server/config"
	"github.com/abdulaziz1812/service-review-system-server/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenCookieName is the cookie carrying the signed credential.
const TokenCookieName = "token"

// TokenTTL is the credential lifetime.
const TokenTTL = time.Hour

// AuthHandler issues and clears the auth cookie.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// cookie attributes differ by deployment: cross-site and secure in
// production, permissive in development.
func setTokenCookie(c *gin.Context, value string, maxAge int) {
	if config.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie(TokenCookieName, value, maxAge, "/", "", true, true)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookieName, value, maxAge, "/", "", false, true)
}

// IssueTokenHandler handles POST /jwt. The submitted identity only needs
// an email; the signed token is placed in an HTTP-only cookie.
func (h *AuthHandler) IssueTokenHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var identity struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&identity); err != nil {
		logger.Error("Invalid identity payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := utils.GenerateToken(identity.Email, identity.Email, TokenTTL)
	if err != nil {
		logger.Error("Failed to sign token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not sign token")
		return
	}

	setTokenCookie(c, token, int(TokenTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LogoutHandler handles POST /logout, expiring the cookie with matching
// attributes.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
