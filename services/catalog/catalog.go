package catalog

import (
	"context"
	"errors"

	"github.com/abdulaziz1812/service-review-system-server/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListServices returns every service, unfiltered and unpaginated.
func (s *DefaultCatalogService) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.Repo.FindAll(ctx)
}

// ListFeatured returns the first services in store-native order, capped at
// the featured limit.
func (s *DefaultCatalogService) ListFeatured(ctx context.Context) ([]models.Service, error) {
	return s.Repo.FindFeatured(ctx)
}

// GetServiceByID returns the matching service, or nil with no error when
// no document bears the identifier.
func (s *DefaultCatalogService) GetServiceByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	svc, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// CreateService inserts the submitted service as is.
func (s *DefaultCatalogService) CreateService(ctx context.Context, svc models.Service) (*models.InsertResult, error) {
	return s.Repo.Insert(ctx, svc)
}

// ListServicesByOwner returns all services owned by the given email.
func (s *DefaultCatalogService) ListServicesByOwner(ctx context.Context, email string) ([]models.Service, error) {
	return s.Repo.FindByEmail(ctx, email)
}

// ReplaceServiceFields overwrites the fixed field set, creating the
// document when the identifier is unknown.
func (s *DefaultCatalogService) ReplaceServiceFields(ctx context.Context, id primitive.ObjectID, fields models.ServiceFields) (*models.UpdateResult, error) {
	return s.Repo.ReplaceFields(ctx, id, fields)
}

// DeleteService removes the identified service. Reviews referencing it are
// left in place; there is no cascading delete.
func (s *DefaultCatalogService) DeleteService(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return s.Repo.Delete(ctx, id)
}
