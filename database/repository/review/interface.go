package reviewRepo

import (
	"context"

	"github.com/abdulaziz1812/service-review-system-server/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepository interface {
	Insert(ctx context.Context, rev models.Review) (*models.InsertResult, error)
	FindByServiceID(ctx context.Context, serviceID string) ([]models.Review, error)
	FindByEmail(ctx context.Context, email string) ([]models.Review, error)
	ReplaceFields(ctx context.Context, id primitive.ObjectID, fields models.ReviewFields) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo returns a ReviewRepository backed by the review
// collection of the given database.
func NewMongoReviewRepo(db *mongo.Database) ReviewRepository {
	return &mongoReviewRepo{
		coll: db.Collection("review"),
	}
}
