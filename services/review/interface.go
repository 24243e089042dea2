package review

import (
	"context"

	reviewRepo "github.com/abdulaziz1812/service-review-system-server/database/repository/review"
	serviceRepo "github.com/abdulaziz1812/service-review-system-server/database/repository/service"
	"github.com/abdulaziz1812/service-review-system-server/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewService interface {
	CreateReview(ctx context.Context, rev models.Review) (*models.InsertResult, error)
	ListReviewsByService(ctx context.Context, serviceID string) ([]models.Review, error)
	ListReviewsByAuthor(ctx context.Context, email string) ([]models.Review, error)
	ReplaceReviewFields(ctx context.Context, id primitive.ObjectID, fields models.ReviewFields) (*models.UpdateResult, error)
	DeleteReview(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

// DefaultReviewService is the production implementation. Services holds
// the catalog repository consulted by the read-time enrichment join.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Services serviceRepo.ServiceRepository
}
