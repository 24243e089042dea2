package handlers

import (
	"net/http"

	"github.com/abdulaziz1812/service-review-system-server/models"
	"github.com/abdulaziz1812/service-review-system-server/services/catalog"
	"github.com/abdulaziz1812/service-review-system-server/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler exposes the service listing endpoints.
type ServiceHandler struct {
	Catalog catalog.CatalogService
}

func NewServiceHandler(svc catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{Catalog: svc}
}

// ListServicesHandler handles GET /services.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	services, err := h.Catalog.ListServices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not list services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// ListFeaturedHandler handles GET /services-featured.
func (h *ServiceHandler) ListFeaturedHandler(c *gin.Context) {
	logger := utils.GetLogger()
	services, err := h.Catalog.ListFeatured(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list featured services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not list featured services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceHandler handles GET /service-details/:id. An unknown but
// well-formed identifier yields a null body, matching the store's empty
// result.
func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := ParseObjectID(c)
	if !ok {
		return
	}
	svc, err := h.Catalog.GetServiceByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to get service", zap.String("id", id.Hex()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not get service")
		return
	}
	c.JSON(http.StatusOK, svc)
}

// CreateServiceHandler handles POST /services.
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		logger.Error("Invalid service payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Catalog.CreateService(c.Request.Context(), svc)
	if err != nil {
		logger.Error("Failed to create service", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not create service")
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListMyServicesHandler handles GET /my-services?email=. The email is
// taken at face value; the endpoint is unauthenticated.
func (h *ServiceHandler) ListMyServicesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	email := c.Query("email")
	services, err := h.Catalog.ListServicesByOwner(c.Request.Context(), email)
	if err != nil {
		logger.Error("Failed to list owned services", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not list owned services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// UpdateServiceHandler handles PUT /services/:id, replacing the fixed
// field set and creating the document when the identifier is unknown.
func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := ParseObjectID(c)
	if !ok {
		return
	}
	var fields models.ServiceFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		logger.Error("Invalid service update payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Catalog.ReplaceServiceFields(c.Request.Context(), id, fields)
	if err != nil {
		logger.Error("Failed to update service", zap.String("id", id.Hex()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not update service")
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteServiceHandler handles DELETE /services/:id. A miss is reported
// through the deleted count, not as an error.
func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id, ok := ParseObjectID(c)
	if !ok {
		return
	}
	res, err := h.Catalog.DeleteService(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to delete service", zap.String("id", id.Hex()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "could not delete service")
		return
	}
	c.JSON(http.StatusOK, res)
}
