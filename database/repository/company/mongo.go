package companyRepo

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

type mongoCompanyRepo struct {
	coll *mongo.Collection
}

// NewMongoCompanyRepo constructs a MongoDB CompanyRepository.
func NewMongoCompanyRepo() CompanyRepository {
	repo := &mongoCompanyRepo{coll: database.DB().Collection("companies")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("companies: failed to create indexes", zap.Error(err))
	}
	return repo
}

var notDeleted = bson.M{"is_deleted": false}

func (r *mongoCompanyRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *mongoCompanyRepo) Create(ctx context.Context, company *models.Company) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if company.ID == "" {
		company.ID = uuid.New().String()
	}
	now := time.Now()
	company.CreatedAt = now
	company.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, company); err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *mongoCompanyRepo) Update(ctx context.Context, company *models.Company) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	company.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": company.ID}, bson.M{"$set": company})
	if err != nil {
		return fmt.Errorf("failed to update company %s: %w", company.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("Company", company.ID)
	}
	return nil
}

func (r *mongoCompanyRepo) findOne(ctx context.Context, filter bson.M) (*models.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter["is_deleted"] = false
	var company models.Company
	if err := r.coll.FindOne(ctx, filter).Decode(&company); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch company: %w", err)
	}
	return &company, nil
}

func (r *mongoCompanyRepo) GetByID(ctx context.Context, id string) (*models.Company, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoCompanyRepo) GetByUserID(ctx context.Context, userID string) (*models.Company, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *mongoCompanyRepo) List(ctx context.Context) ([]models.Company, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, notDeleted, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer cursor.Close(ctx)

	companies := []models.Company{}
	if err := cursor.All(ctx, &companies); err != nil {
		return nil, fmt.Errorf("failed to decode companies: %w", err)
	}
	return companies, nil
}

// Count returns non-deleted companies, optionally restricted to one status.
func (r *mongoCompanyRepo) Count(ctx context.Context, status string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"is_deleted": false}
	if status != "" {
		filter["status"] = status
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count companies: %w", err)
	}
	return int(n), nil
}

func (r *mongoCompanyRepo) SoftDelete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "is_deleted": false},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to delete company %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("Company", id)
	}
	return nil
}
