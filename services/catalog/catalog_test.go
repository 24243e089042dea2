package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/abdulaziz1812/service-review-system-server/models"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeServiceRepo keeps documents in insertion order, mimicking the store's
// native ordering and its upsert and delete semantics.
type fakeServiceRepo struct {
	docs []models.Service
	err  error
}

func (f *fakeServiceRepo) FindAll(ctx context.Context) ([]models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Service{}, f.docs...), nil
}

func (f *fakeServiceRepo) FindFeatured(ctx context.Context) ([]models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	n := len(f.docs)
	if n > 6 {
		n = 6
	}
	return append([]models.Service{}, f.docs[:n]...), nil
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.docs {
		if f.docs[i].ID == id {
			svc := f.docs[i]
			return &svc, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeServiceRepo) FindByEmail(ctx context.Context, email string) ([]models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Service{}
	for _, d := range f.docs {
		if d.Email == email {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) Insert(ctx context.Context, svc models.Service) (*models.InsertResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if svc.ID.IsZero() {
		svc.ID = primitive.NewObjectID()
	}
	f.docs = append(f.docs, svc)
	return &models.InsertResult{Acknowledged: true, InsertedID: svc.ID}, nil
}

func (f *fakeServiceRepo) ReplaceFields(ctx context.Context, id primitive.ObjectID, fields models.ServiceFields) (*models.UpdateResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs[i] = models.Service{
				ID:           id,
				ServiceImage: fields.ServiceImage,
				ServiceTitle: fields.ServiceTitle,
				CompanyName:  fields.CompanyName,
				Website:      fields.Website,
				Description:  fields.Description,
				Category:     fields.Category,
				Price:        fields.Price,
				AddedDate:    fields.AddedDate,
				Email:        fields.Email,
			}
			return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	f.docs = append(f.docs, models.Service{
		ID:           id,
		ServiceImage: fields.ServiceImage,
		ServiceTitle: fields.ServiceTitle,
		CompanyName:  fields.CompanyName,
		Website:      fields.Website,
		Description:  fields.Description,
		Category:     fields.Category,
		Price:        fields.Price,
		AddedDate:    fields.AddedDate,
		Email:        fields.Email,
	})
	return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.docs {
		if f.docs[i].ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 0}, nil
}

func (f *fakeServiceRepo) Count(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.docs)), nil
}

func TestCreateThenGetReturnsSubmittedFields(t *testing.T) {
	repo := &fakeServiceRepo{}
	svc := &DefaultCatalogService{Repo: repo}

	res, err := svc.CreateService(context.Background(), models.Service{
		ServiceTitle: "Web Design",
		CompanyName:  "Acme",
		Email:        "a@x.com",
		Price:        "120",
	})
	require.NoError(t, err)
	require.True(t, res.Acknowledged)

	id, ok := res.InsertedID.(primitive.ObjectID)
	require.True(t, ok)

	got, err := svc.GetServiceByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Web Design", got.ServiceTitle)
	require.Equal(t, "Acme", got.CompanyName)
	require.Equal(t, "a@x.com", got.Email)
	require.Equal(t, id, got.ID)
}

func TestGetServiceByIDMissReturnsNil(t *testing.T) {
	svc := &DefaultCatalogService{Repo: &fakeServiceRepo{}}

	got, err := svc.GetServiceByID(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestListFeaturedCapsAtSix(t *testing.T) {
	repo := &fakeServiceRepo{}
	svc := &DefaultCatalogService{Repo: repo}
	for i := 0; i < 10; i++ {
		_, err := svc.CreateService(context.Background(), models.Service{
			ServiceTitle: fmt.Sprintf("Service %d", i),
		})
		require.NoError(t, err)
	}

	featured, err := svc.ListFeatured(context.Background())
	require.NoError(t, err)
	require.Len(t, featured, 6)
	// Store-native order: the first inserted documents come back first.
	require.Equal(t, "Service 0", featured[0].ServiceTitle)
	require.Equal(t, "Service 5", featured[5].ServiceTitle)
}

func TestReplaceFieldsUpsertsOnMiss(t *testing.T) {
	repo := &fakeServiceRepo{}
	svc := &DefaultCatalogService{Repo: repo}

	id := primitive.NewObjectID()
	fields := models.ServiceFields{ServiceTitle: "Fresh", Email: "owner@x.com"}

	res, err := svc.ReplaceServiceFields(context.Background(), id, fields)
	require.NoError(t, err)
	require.Equal(t, int64(0), res.MatchedCount)
	require.Equal(t, int64(1), res.UpsertedCount)
	require.Equal(t, id, res.UpsertedID)

	// The new document bears the requested identifier.
	got, err := svc.GetServiceByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Fresh", got.ServiceTitle)
}

func TestReplaceFieldsIsIdempotent(t *testing.T) {
	repo := &fakeServiceRepo{}
	svc := &DefaultCatalogService{Repo: repo}

	res, err := svc.CreateService(context.Background(), models.Service{ServiceTitle: "Original"})
	require.NoError(t, err)
	id := res.InsertedID.(primitive.ObjectID)

	fields := models.ServiceFields{
		ServiceTitle: "Updated",
		CompanyName:  "Acme",
		Price:        "99",
		Email:        "owner@x.com",
	}
	_, err = svc.ReplaceServiceFields(context.Background(), id, fields)
	require.NoError(t, err)
	first, err := svc.GetServiceByID(context.Background(), id)
	require.NoError(t, err)

	_, err = svc.ReplaceServiceFields(context.Background(), id, fields)
	require.NoError(t, err)
	second, err := svc.GetServiceByID(context.Background(), id)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestDeleteMissIsNoOp(t *testing.T) {
	svc := &DefaultCatalogService{Repo: &fakeServiceRepo{}}

	res, err := svc.DeleteService(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	require.True(t, res.Acknowledged)
	require.Equal(t, int64(0), res.DeletedCount)
}

func TestListServicesByOwnerFiltersExactly(t *testing.T) {
	repo := &fakeServiceRepo{}
	svc := &DefaultCatalogService{Repo: repo}

	for _, email := range []string{"a@x.com", "b@y.com", "a@x.com"} {
		_, err := svc.CreateService(context.Background(), models.Service{Email: email})
		require.NoError(t, err)
	}

	mine, err := svc.ListServicesByOwner(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, s := range mine {
		require.Equal(t, "a@x.com", s.Email)
	}
}
