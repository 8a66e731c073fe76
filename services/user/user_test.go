package user

import (
	"context"
	"testing"

	memoryRepo "tourdesk/database/repository/memory"
	"tourdesk/models"
	"tourdesk/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*DefaultUserService, *memoryRepo.Store) {
	t.Helper()
	store := memoryRepo.NewStore()
	return NewDefaultUserService(store.Users(), store.Companies()), store
}

func TestBootstrapAdminAndLogin(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.BootstrapAdmin(ctx, "Admin@Example.com", "s3cret-pass"))
	require.NoError(t, svc.BootstrapAdmin(ctx, "admin@example.com", "other"))

	resp, err := svc.Login(ctx, " ADMIN@example.com ", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, utils.RoleAdmin, resp.User.Role)
	assert.Nil(t, resp.Company)

	claims, err := utils.ParseSessionToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, utils.RoleAdmin, claims.Role)

	_, err = svc.Login(ctx, "admin@example.com", "other")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@example.com", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCompanyLoginNeedsActiveCompany(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	hash, err := HashPassword("12345678")
	require.NoError(t, err)
	u := &models.User{Email: "ops@rams.ae", PasswordHash: hash, Role: utils.RoleCompany}
	require.NoError(t, store.Users().Create(ctx, u))
	c := &models.Company{UserID: u.ID, CompanyName: "Rams", Status: models.CompanyStatusInactive}
	require.NoError(t, store.Companies().Create(ctx, c))

	_, err = svc.Login(ctx, "ops@rams.ae", "12345678")
	assert.ErrorIs(t, err, ErrCompanyInactive)

	c.Status = models.CompanyStatusActive
	require.NoError(t, store.Companies().Update(ctx, c))
	resp, err := svc.Login(ctx, "ops@rams.ae", "12345678")
	require.NoError(t, err)
	require.NotNil(t, resp.Company)
	assert.Equal(t, c.ID, resp.Company.ID)

	acc, err := svc.LoadAccount(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, acc.Company.ID)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	require.NoError(t, svc.BootstrapAdmin(ctx, "a@b.c", "original1"))
	resp, err := svc.Login(ctx, "a@b.c", "original1")
	require.NoError(t, err)

	assert.True(t, utils.IsValidation(svc.ChangePassword(ctx, resp.User.ID, "wrong", "newpassword")))
	assert.True(t, utils.IsValidation(svc.ChangePassword(ctx, resp.User.ID, "original1", "short")))
	require.NoError(t, svc.ChangePassword(ctx, resp.User.ID, "original1", "newpassword"))

	_, err = svc.Login(ctx, "a@b.c", "newpassword")
	assert.NoError(t, err)
}
