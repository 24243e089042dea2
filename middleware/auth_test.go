package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abdulaziz1812/service-review-system-server/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func guardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return r
}

func TestAuthRequiredRejectsMissingCookie(t *testing.T) {
	r := guardedRouter()

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredRejectsInvalidToken(t *testing.T) {
	r := guardedRouter()

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	r := guardedRouter()

	token, err := utils.GenerateToken("a@x.com", "a@x.com", -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredAttachesIdentity(t *testing.T) {
	r := guardedRouter()

	token, err := utils.GenerateToken("a@x.com", "a@x.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "a@x.com")
}
