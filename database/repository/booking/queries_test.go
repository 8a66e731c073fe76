package bookingRepo

import (
	"testing"

	"tourdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildFilterHidesCancelledByDefault(t *testing.T) {
	filter := buildFilter(models.BookingFilter{CompanyID: "c1"})
	assert.Equal(t, bson.M{"is_deleted": false, "company_id": "c1"}, filter)

	filter = buildFilter(models.BookingFilter{CompanyID: "c1", IncludeDeleted: true})
	assert.NotContains(t, filter, "is_deleted")
}

func TestBuildFilterDriverConflictExcludesEditedBooking(t *testing.T) {
	filter := buildFilter(models.BookingFilter{
		DriverID:   "d1",
		TravelDate: "2026-03-05",
		ExcludeID:  "b1",
	})

	assert.Equal(t, bson.M{
		"is_deleted":  false,
		"driver_id":   "d1",
		"travel_date": "2026-03-05",
		"id":          bson.M{"$ne": "b1"},
	}, filter)
}

func TestUpdateDocumentClearsOptionalFields(t *testing.T) {
	booking := &models.ManualBooking{
		ID:            "b1",
		CompanyID:     "c1",
		TourPackageID: "p1",
		TravelDate:    "2026-03-05",
	}

	raw, err := bson.Marshal(updateDocument(booking))
	require.NoError(t, err)

	var doc struct {
		Set bson.M `bson:"$set"`
	}
	require.NoError(t, bson.Unmarshal(raw, &doc))

	for _, key := range []string{"driver_id", "email", "travel_time", "pickup_location"} {
		value, ok := doc.Set[key]
		assert.True(t, ok, "%s must be written when empty", key)
		assert.Equal(t, "", value, key)
	}
}
