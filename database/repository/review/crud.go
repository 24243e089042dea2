package reviewRepo

import (
	"context"

	"github.com/abdulaziz1812/service-review-system-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Insert stores a new review document and reports the assigned identifier.
func (r *mongoReviewRepo) Insert(ctx context.Context, rev models.Review) (*models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, rev)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// FindByServiceID returns all reviews whose serviceId field equals the
// given string. The reference is compared as text, so callers must pass
// the store's textual form of the service identifier.
func (r *mongoReviewRepo) FindByServiceID(ctx context.Context, serviceID string) ([]models.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"serviceId": serviceID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByEmail returns all reviews written by the given author email.
func (r *mongoReviewRepo) FindByEmail(ctx context.Context, email string) ([]models.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// ReplaceFields overwrites text, date and rating on the identified review,
// creating the document on a miss (upsert). The create-on-miss behavior is
// deliberate.
func (r *mongoReviewRepo) ReplaceFields(ctx context.Context, id primitive.ObjectID, fields models.ReviewFields) (*models.UpdateResult, error) {
	opts := options.Update().SetUpsert(true)
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts)
	if err != nil {
		return nil, err
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

// Delete removes the identified review. A miss is a no-op.
func (r *mongoReviewRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// Count returns the number of review documents.
func (r *mongoReviewRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
