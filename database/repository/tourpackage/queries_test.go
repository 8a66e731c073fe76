package packageRepo

import (
	"testing"

	"tourdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildFilterOnlyLiveRows(t *testing.T) {
	assert.Equal(t, bson.M{"is_deleted": false}, buildFilter(models.PackageQuery{}))
}

func TestBuildFilterChatbotSearch(t *testing.T) {
	filter := buildFilter(models.PackageQuery{
		City:       "Dubai",
		Status:     models.PackageStatusActive,
		MaxPrice:   500,
		ExcludeIDs: []string{"p1", "p2"},
	})

	assert.Equal(t, false, filter["is_deleted"])
	assert.Equal(t, models.PackageStatusActive, filter["status"])
	assert.Equal(t, bson.M{"$lte": float64(500)}, filter["price"])
	assert.Equal(t, bson.M{"$nin": []string{"p1", "p2"}}, filter["id"])

	city, ok := filter["city"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "^Dubai$", city.Pattern)
	assert.Equal(t, "i", city.Options)
}

func TestBuildFilterCityIsMatchedLiterally(t *testing.T) {
	city := buildFilter(models.PackageQuery{City: "Ras.Al"})["city"].(primitive.Regex)
	assert.Equal(t, `^Ras\.Al$`, city.Pattern)
}

func TestBuildFilterSearchSpansTitleCityCountry(t *testing.T) {
	filter := buildFilter(models.PackageQuery{Search: "desert"})

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)
	for i, field := range []string{"title", "city", "country"} {
		clause := or[i].(bson.M)
		rx := clause[field].(primitive.Regex)
		assert.Equal(t, "desert", rx.Pattern)
		assert.Equal(t, "i", rx.Options)
	}
}
