package account

import (
	"context"

	"github.com/abdulaziz1812/service-review-system-server/models"

	"go.mongodb.org/mongo-driver/bson"
)

// RegisterUser inserts the registration payload exactly as submitted.
// There is no deduplication; repeated registrations create new documents.
func (s *DefaultAccountService) RegisterUser(ctx context.Context, payload bson.M) (*models.InsertResult, error) {
	return s.Users.Insert(ctx, payload)
}

// Counts returns the size of each collection. Each count is taken
// independently, so concurrent writers may observe the three at slightly
// different points in time.
func (s *DefaultAccountService) Counts(ctx context.Context) (*models.Counts, error) {
	services, err := s.Services.Count(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.Reviews.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.Users.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Counts{Services: services, Reviews: reviews, Users: users}, nil
}
