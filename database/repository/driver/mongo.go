package driverRepo

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

type mongoDriverRepo struct {
	coll *mongo.Collection
}

func NewMongoDriverRepo() DriverRepository {
	repo := &mongoDriverRepo{coll: database.DB().Collection("drivers")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("drivers: failed to create indexes", zap.Error(err))
	}
	return repo
}

func (r *mongoDriverRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "company_id", Value: 1}, {Key: "is_deleted", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *mongoDriverRepo) Create(ctx context.Context, driver *models.Driver) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if driver.ID == "" {
		driver.ID = uuid.New().String()
	}
	now := time.Now()
	driver.CreatedAt = now
	driver.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, driver); err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	return nil
}

func (r *mongoDriverRepo) Update(ctx context.Context, driver *models.Driver) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	driver.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": driver.ID}, bson.M{"$set": driver})
	if err != nil {
		return fmt.Errorf("failed to update driver %s: %w", driver.ID, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("Driver", driver.ID)
	}
	return nil
}

func (r *mongoDriverRepo) GetByID(ctx context.Context, id string) (*models.Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var driver models.Driver
	err := r.coll.FindOne(ctx, bson.M{"id": id, "is_deleted": false}).Decode(&driver)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch driver %s: %w", id, err)
	}
	return &driver, nil
}

func (r *mongoDriverRepo) find(ctx context.Context, filter bson.M) ([]models.Driver, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter["is_deleted"] = false
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	defer cursor.Close(ctx)

	drivers := []models.Driver{}
	if err := cursor.All(ctx, &drivers); err != nil {
		return nil, fmt.Errorf("failed to decode drivers: %w", err)
	}
	return drivers, nil
}

func (r *mongoDriverRepo) ListByCompany(ctx context.Context, companyID string) ([]models.Driver, error) {
	return r.find(ctx, bson.M{"company_id": companyID})
}

func (r *mongoDriverRepo) ListByIDs(ctx context.Context, ids []string) ([]models.Driver, error) {
	if len(ids) == 0 {
		return []models.Driver{}, nil
	}
	return r.find(ctx, bson.M{"id": bson.M{"$in": ids}})
}

func (r *mongoDriverRepo) SoftDelete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "is_deleted": false},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to delete driver %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("Driver", id)
	}
	return nil
}
