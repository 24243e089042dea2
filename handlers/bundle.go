package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every route handler for registration.
type HandlerBundle struct {
	// Service endpoints.
	ListServicesHandler   gin.HandlerFunc
	ListFeaturedHandler   gin.HandlerFunc
	GetServiceHandler     gin.HandlerFunc
	CreateServiceHandler  gin.HandlerFunc
	ListMyServicesHandler gin.HandlerFunc
	UpdateServiceHandler  gin.HandlerFunc
	DeleteServiceHandler  gin.HandlerFunc

	// Review endpoints.
	CreateReviewHandler         gin.HandlerFunc
	ListReviewsByServiceHandler gin.HandlerFunc
	ListMyReviewsHandler        gin.HandlerFunc
	UpdateReviewHandler         gin.HandlerFunc
	DeleteReviewHandler         gin.HandlerFunc

	// User endpoints.
	RegisterUserHandler gin.HandlerFunc
	CountsHandler       gin.HandlerFunc

	// Auth endpoints.
	IssueTokenHandler gin.HandlerFunc
	LogoutHandler     gin.HandlerFunc
}
