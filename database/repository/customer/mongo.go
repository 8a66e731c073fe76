package customerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourdesk/database"
	"tourdesk/models"
	"tourdesk/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

func NewMongoCustomerRepo() CustomerRepository {
	repo := &mongoCustomerRepo{coll: database.DB().Collection("customers")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("customers: failed to create indexes", zap.Error(err))
	}
	return repo
}

// The (company_id, country_code, phone) index is not unique; the customer
// service enforces uniqueness among non-deleted rows.
func (r *mongoCustomerRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "country_code", Value: 1}, {Key: "phone", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *mongoCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func updateDocument(customer *models.Customer) bson.M {
	return bson.M{"$set": customer}
}

func (r *mongoCustomerRepo) Update(ctx context.Context, customer *models.Customer) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	customer.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": customer.ID}, updateDocument(customer))
	if err != nil {
		return fmt.Errorf("failed to update customer %s: %w", customer.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("Customer", customer.ID)
	}
	return nil
}

func (r *mongoCustomerRepo) findOne(ctx context.Context, filter bson.M) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter["is_deleted"] = false
	var customer models.Customer
	err := r.coll.FindOne(ctx, filter).Decode(&customer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	return &customer, nil
}

func (r *mongoCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoCustomerRepo) FindByPhone(ctx context.Context, companyID, countryCode, phone string) (*models.Customer, error) {
	return r.findOne(ctx, bson.M{"company_id": companyID, "country_code": countryCode, "phone": phone})
}

func (r *mongoCustomerRepo) ListByCompany(ctx context.Context, companyID string) ([]models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"company_id": companyID, "is_deleted": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer cursor.Close(ctx)

	customers := []models.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}
	return customers, nil
}

func (r *mongoCustomerRepo) SoftDelete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "is_deleted": false},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("Customer", id)
	}
	return nil
}
