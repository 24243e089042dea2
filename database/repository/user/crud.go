package userRepo

import (
	"context"

	"github.com/abdulaziz1812/service-review-system-server/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Insert stores the registration payload exactly as submitted. No schema
// is enforced and no deduplication is performed; registering the same
// email twice yields two documents.
func (r *mongoUserRepo) Insert(ctx context.Context, payload bson.M) (*models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, payload)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// Count returns the number of user documents.
func (r *mongoUserRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
