package serviceRepo

import (
	"context"

	"github.com/abdulaziz1812/service-review-system-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindAll returns every service document in store-native order.
func (r *mongoServiceRepo) FindAll(ctx context.Context) ([]models.Service, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// FindFeatured returns at most FeaturedLimit services. No sort key is
// applied; the order is whatever the store yields by default.
func (r *mongoServiceRepo) FindFeatured(ctx context.Context) ([]models.Service, error) {
	opts := options.Find().SetLimit(FeaturedLimit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// FindByID returns the service with the given identifier, or
// mongo.ErrNoDocuments when none matches.
func (r *mongoServiceRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	var svc models.Service
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// FindByEmail returns all services whose owner email exactly matches.
func (r *mongoServiceRepo) FindByEmail(ctx context.Context, email string) ([]models.Service, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// Insert stores a new service document and reports the assigned identifier.
func (r *mongoServiceRepo) Insert(ctx context.Context, svc models.Service) (*models.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, svc)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// ReplaceFields overwrites the fixed service field set on the identified
// document. When no document matches, a new one bearing the identifier is
// created (upsert). The create-on-miss behavior is deliberate.
func (r *mongoServiceRepo) ReplaceFields(ctx context.Context, id primitive.ObjectID, fields models.ServiceFields) (*models.UpdateResult, error) {
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

// Delete removes the identified document. A miss is a no-op, reported
// through the deleted count.
func (r *mongoServiceRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// Count returns the number of service documents.
func (r *mongoServiceRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
