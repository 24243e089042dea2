package account

import (
	"context"

	reviewRepo "github.com/abdulaziz1812/service-review-system-server/database/repository/review"
	serviceRepo "github.com/abdulaziz1812/service-review-system-server/database/repository/service"
	userRepo "github.com/abdulaziz1812/service-review-system-server/database/repository/user"
	"github.com/abdulaziz1812/service-review-system-server/models"

	"go.mongodb.org/mongo-driver/bson"
)

type AccountService interface {
	RegisterUser(ctx context.Context, payload bson.M) (*models.InsertResult, error)
	Counts(ctx context.Context) (*models.Counts, error)
}

// DefaultAccountService is the production implementation. The counts
// summary spans all three collections, so it holds every repository.
type DefaultAccountService struct {
	Users    userRepo.UserRepository
	Services serviceRepo.ServiceRepository
	Reviews  reviewRepo.ReviewRepository
}
