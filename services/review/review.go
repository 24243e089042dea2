package review

import (
	"context"
	"errors"

	"github.com/abdulaziz1812/service-review-system-server/models"
	"github.com/abdulaziz1812/service-review-system-server/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CreateReview inserts the submitted review as is.
func (s *DefaultReviewService) CreateReview(ctx context.Context, rev models.Review) (*models.InsertResult, error) {
	return s.Repo.Insert(ctx, rev)
}

// ListReviewsByService returns all reviews whose service reference equals
// the given string. The reference stays textual end to end.
func (s *DefaultReviewService) ListReviewsByService(ctx context.Context, serviceID string) ([]models.Review, error) {
	return s.Repo.FindByServiceID(ctx, serviceID)
}

// ListReviewsByAuthor returns the author's reviews, each enriched with a
// snapshot of its service's title, image and company name. The lookups run
// one review at a time; a review whose service is gone is returned with its
// own fields only, and a failed lookup never fails the whole response.
func (s *DefaultReviewService) ListReviewsByAuthor(ctx context.Context, email string) ([]models.Review, error) {
	reviews, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	for i := range reviews {
		id, err := primitive.ObjectIDFromHex(reviews[i].ServiceID)
		if err != nil {
			// Dangling or malformed reference: keep the review as is.
			continue
		}
		svc, err := s.Services.FindByID(ctx, id)
		if err != nil {
			if !errors.Is(err, mongo.ErrNoDocuments) {
				logger.Warn("review enrichment lookup failed",
					zap.String("serviceId", reviews[i].ServiceID), zap.Error(err))
			}
			continue
		}
		reviews[i].ServiceTitle = svc.ServiceTitle
		reviews[i].ServiceImage = svc.ServiceImage
		reviews[i].CompanyName = svc.CompanyName
	}
	return reviews, nil
}

// ReplaceReviewFields overwrites text, date and rating, creating the
// document when the identifier is unknown.
func (s *DefaultReviewService) ReplaceReviewFields(ctx context.Context, id primitive.ObjectID, fields models.ReviewFields) (*models.UpdateResult, error) {
	return s.Repo.ReplaceFields(ctx, id, fields)
}

// DeleteReview removes the identified review.
func (s *DefaultReviewService) DeleteReview(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return s.Repo.Delete(ctx, id)
}
