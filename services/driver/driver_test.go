package driver

import (
	"context"
	"testing"

	memoryRepo "tourdesk/database/repository/memory"
	"tourdesk/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverLifecycle(t *testing.T) {
	svc := NewDefaultDriverService(memoryRepo.NewStore().Drivers())
	ctx := context.Background()

	d, err := svc.Create(ctx, "c1", DriverInput{Name: " Rashid ", PhoneNumber: "0501", VehicleNumber: "dxb 123", Seats: 7, Image: "/uploads/drivers/a.jpg"})
	require.NoError(t, err)
	assert.Equal(t, "Rashid", d.Name)
	assert.Equal(t, "DXB 123", d.VehicleNumber)

	updated, err := svc.Update(ctx, "c1", d.ID, DriverInput{Name: "Rashid K", PhoneNumber: "0501", Seats: 4})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/drivers/a.jpg", updated.Image)
	assert.Equal(t, 4, updated.Seats)

	_, err = svc.Get(ctx, "c2", d.ID)
	assert.True(t, utils.IsNotFound(err))

	require.NoError(t, svc.Delete(ctx, "c1", d.ID))
	list, err := svc.List(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDriverValidation(t *testing.T) {
	svc := NewDefaultDriverService(memoryRepo.NewStore().Drivers())
	_, err := svc.Create(context.Background(), "c1", DriverInput{PhoneNumber: "0501"})
	assert.True(t, utils.IsValidation(err))
}
