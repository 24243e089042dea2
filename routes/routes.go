package routes

import (
	"net/http"
	"time"

	"github.com/abdulaziz1812/service-review-system-server/config"
	"github.com/abdulaziz1812/service-review-system-server/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registers the service listing endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/services", hb.ListServicesHandler)
	r.GET("/services-featured", hb.ListFeaturedHandler)
	r.GET("/service-details/:id", hb.GetServiceHandler)
	r.POST("/services", hb.CreateServiceHandler)
	r.GET("/my-services", hb.ListMyServicesHandler)
	r.PUT("/services/:id", hb.UpdateServiceHandler)
	r.DELETE("/services/:id", hb.DeleteServiceHandler)
}

// RegisterReviewRoutes registers the review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/review", hb.CreateReviewHandler)
	r.GET("/review-details/:id", hb.ListReviewsByServiceHandler)
	r.GET("/my-reviews", hb.ListMyReviewsHandler)
	r.DELETE("/reviews/:id", hb.DeleteReviewHandler)
	r.PUT("/reviews/:id", hb.UpdateReviewHandler)
}

// RegisterUserRoutes registers registration and the counts summary.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/user", hb.RegisterUserHandler)
	r.GET("/counts", hb.CountsHandler)
}

// RegisterAuthRoutes registers credential issuance and logout.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/jwt", hb.IssueTokenHandler)
	r.POST("/logout", hb.LogoutHandler)
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Service Review System server is running")
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterServiceRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterHealthRoute(r)
}
