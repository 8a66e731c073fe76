package customerRepo

import (
	"testing"

	"tourdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestUpdateDocumentClearsEmail(t *testing.T) {
	raw, err := bson.Marshal(updateDocument(&models.Customer{ID: "cu1", Phone: "501112233"}))
	require.NoError(t, err)

	var doc struct {
		Set bson.M `bson:"$set"`
	}
	require.NoError(t, bson.Unmarshal(raw, &doc))

	email, ok := doc.Set["email"]
	assert.True(t, ok)
	assert.Equal(t, "", email)
}
