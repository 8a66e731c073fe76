package customer

import (
	"context"
	"testing"

	memoryRepo "tourdesk/database/repository/memory"
	"tourdesk/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *DefaultCustomerService {
	return NewDefaultCustomerService(memoryRepo.NewStore().Customers())
}

func TestCreateReusesExistingCustomer(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	first, created, err := svc.Create(ctx, "c1", CustomerInput{GuestName: "Aisha", CountryCode: "+971", Phone: "501234567"})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.Create(ctx, "c1", CustomerInput{GuestName: "Aisha K", CountryCode: " +971", Phone: "501234567 "})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	all, err := svc.List(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateKeepsTenantsApart(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	in := CustomerInput{GuestName: "Aisha", CountryCode: "+971", Phone: "501234567"}

	a, _, err := svc.Create(ctx, "c1", in)
	require.NoError(t, err)
	b, created, err := svc.Create(ctx, "c2", in)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, a.ID, b.ID)

	_, err = svc.Get(ctx, "c2", a.ID)
	assert.True(t, utils.IsNotFound(err))
}

func TestDeletedCustomerIsNotReused(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	in := CustomerInput{GuestName: "Omar", CountryCode: "+971", Phone: "509999999"}

	old, _, err := svc.Create(ctx, "c1", in)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "c1", old.ID))

	fresh, created, err := svc.Create(ctx, "c1", in)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, old.ID, fresh.ID)
}

func TestResolveRefreshesName(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	c, err := svc.Resolve(ctx, "c1", CustomerInput{GuestName: "Omar", CountryCode: "+971", Phone: "509999999"})
	require.NoError(t, err)
	again, err := svc.Resolve(ctx, "c1", CustomerInput{GuestName: "Omar Ali", CountryCode: "+971", Phone: "509999999", Email: "OMAR@example.com"})
	require.NoError(t, err)
	assert.Equal(t, c.ID, again.ID)
	assert.Equal(t, "Omar Ali", again.GuestName)
	assert.Equal(t, "omar@example.com", again.Email)
}

func TestUpdateRejectsPhoneOfAnotherCustomer(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, _, err := svc.Create(ctx, "c1", CustomerInput{GuestName: "A", CountryCode: "+971", Phone: "500000001"})
	require.NoError(t, err)
	b, _, err := svc.Create(ctx, "c1", CustomerInput{GuestName: "B", CountryCode: "+971", Phone: "500000002"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, "c1", b.ID, CustomerInput{GuestName: "B", CountryCode: "+971", Phone: "500000001"})
	assert.True(t, utils.IsConflict(err))
}

func TestCreateValidates(t *testing.T) {
	_, _, err := newService().Create(context.Background(), "c1", CustomerInput{GuestName: "A", CountryCode: "+971"})
	assert.True(t, utils.IsValidation(err))
}
