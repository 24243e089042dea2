package serviceRepo

import (
	"context"

	"github.com/abdulaziz1812/service-review-system-server/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FeaturedLimit caps the featured listing at the first documents in
// store-native order.
const FeaturedLimit = 6

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]models.Service, error)
	FindFeatured(ctx context.Context) ([]models.Service, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	FindByEmail(ctx context.Context, email string) ([]models.Service, error)
	Insert(ctx context.Context, svc models.Service) (*models.InsertResult, error)
	ReplaceFields(ctx context.Context, id primitive.ObjectID, fields models.ServiceFields) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo returns a ServiceRepository backed by the services
// collection of the given database.
func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}
