package catalog

import (
	"context"

	serviceRepo "github.com/abdulaziz1812/service-review-system-server/database/repository/service"
	"github.com/abdulaziz1812/service-review-system-server/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CatalogService interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ListFeatured(ctx context.Context) ([]models.Service, error)
	GetServiceByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	CreateService(ctx context.Context, svc models.Service) (*models.InsertResult, error)
	ListServicesByOwner(ctx context.Context, email string) ([]models.Service, error)
	ReplaceServiceFields(ctx context.Context, id primitive.ObjectID, fields models.ServiceFields) (*models.UpdateResult, error)
	DeleteService(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}
