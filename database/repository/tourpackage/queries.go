package packageRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"tourdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildFilter translates a PackageQuery into a Mongo filter.
func buildFilter(q models.PackageQuery) bson.M {
	filter := bson.M{"is_deleted": false}
	if q.CompanyID != "" {
		filter["company_id"] = q.CompanyID
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.City != "" {
		filter["city"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(q.City) + "$", Options: "i"}
	}
	if q.MaxPrice > 0 {
		filter["price"] = bson.M{"$lte": q.MaxPrice}
	}
	if len(q.ExcludeIDs) > 0 {
		filter["id"] = bson.M{"$nin": q.ExcludeIDs}
	}
	if q.Search != "" {
		rx := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": rx},
			bson.M{"city": rx},
			bson.M{"country": rx},
		}
	}
	return filter
}

func (r *mongoTourPackageRepo) List(ctx context.Context, q models.PackageQuery) ([]models.TourPackage, int, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := buildFilter(q)
	total, err := r.packages.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tour packages: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if q.PageSize > 0 {
		page := q.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * q.PageSize)).SetLimit(int64(q.PageSize))
	}

	cursor, err := r.packages.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tour packages: %w", err)
	}
	defer cursor.Close(ctx)

	pkgs := []models.TourPackage{}
	if err := cursor.All(ctx, &pkgs); err != nil {
		return nil, 0, fmt.Errorf("failed to decode tour packages: %w", err)
	}
	return pkgs, int(total), nil
}
