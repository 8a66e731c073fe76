package chatSessionRepo

import (
	"context"
	"testing"

	"tourdesk/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisChatSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisChatSessionStore(client, 0), mr
}

func TestRedisStoreMissingSessionIsNil(t *testing.T) {
	store, _ := newTestStore(t)

	session, err := store.Get(context.Background(), "971500000000")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestRedisStoreRoundTripsStateAndData(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	in := &models.ChatSession{
		Phone: "971501112233",
		State: models.StateBudget,
		Data: models.ChatData{
			TravelDate: "05/03/2026",
			People:     &models.PartyCount{Adults: 2, Kids: 1},
		},
	}
	require.NoError(t, store.Save(ctx, in))
	assert.True(t, mr.Exists(chatSessionPrefix+"971501112233"))
	assert.Zero(t, mr.TTL(chatSessionPrefix+"971501112233"))

	out, err := store.Get(ctx, "971501112233")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, models.StateBudget, out.State)
	assert.Equal(t, "05/03/2026", out.Data.TravelDate)
	require.NotNil(t, out.Data.People)
	assert.Equal(t, 2, out.Data.People.Adults)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestRedisStoreCorruptPayload(t *testing.T) {
	store, mr := newTestStore(t)
	require.NoError(t, mr.Set(chatSessionPrefix+"1", "{not json"))

	_, err := store.Get(context.Background(), "1")
	assert.Error(t, err)
}
