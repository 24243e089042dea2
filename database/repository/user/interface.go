package userRepo

import (
	"context"

	"github.com/abdulaziz1812/service-review-system-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Insert(ctx context.Context, payload bson.M) (*models.InsertResult, error)
	Count(ctx context.Context) (int64, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a UserRepository backed by the users collection
// of the given database.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}
