package admin

import (
	"context"
	"testing"

	memoryRepo "tourdesk/database/repository/memory"
	"tourdesk/models"
	"tourdesk/services/user"
	"tourdesk/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type welcomeRecorder struct {
	sent []models.CompanyWelcomePayload
}

func (w *welcomeRecorder) BookingConfirmed(context.Context, models.BookingConfirmedPayload) error {
	return nil
}

func (w *welcomeRecorder) CompanyWelcome(_ context.Context, p models.CompanyWelcomePayload) error {
	w.sent = append(w.sent, p)
	return nil
}

func (w *welcomeRecorder) ChatReply(context.Context, models.ChatReplyPayload) error { return nil }

func newService(t *testing.T) (*DefaultAdminService, *memoryRepo.Store, *welcomeRecorder) {
	t.Helper()
	store := memoryRepo.NewStore()
	rec := &welcomeRecorder{}
	return NewDefaultAdminService(store.Users(), store.Companies(), rec, "12345678", "http://localhost:8080/login"), store, rec
}

func TestCreateCompanyCreatesLoginAndWelcomes(t *testing.T) {
	svc, store, rec := newService(t)
	ctx := context.Background()

	c, err := svc.CreateCompany(ctx, CompanyInput{CompanyName: "Royal Rams", Email: "Ops@Rams.ae", Currency: "aed"})
	require.NoError(t, err)
	assert.Equal(t, models.CompanyStatusActive, c.Status)
	assert.Equal(t, "AED", c.Currency)

	require.Len(t, rec.sent, 1)
	assert.Equal(t, "ops@rams.ae", rec.sent[0].Email)
	assert.Equal(t, "12345678", rec.sent[0].TempPassword)

	login := user.NewDefaultUserService(store.Users(), store.Companies())
	resp, err := login.Login(ctx, "ops@rams.ae", "12345678")
	require.NoError(t, err)
	assert.Equal(t, c.ID, resp.Company.ID)

	_, err = svc.CreateCompany(ctx, CompanyInput{CompanyName: "Copy", Email: "ops@rams.ae"})
	assert.True(t, utils.IsConflict(err))
}

func TestUpdateCompanyDeactivatesAndMovesEmail(t *testing.T) {
	svc, store, _ := newService(t)
	ctx := context.Background()

	c, err := svc.CreateCompany(ctx, CompanyInput{CompanyName: "Rams", Email: "a@rams.ae"})
	require.NoError(t, err)
	_, err = svc.UpdateCompany(ctx, c.ID, CompanyInput{CompanyName: "Rams", Email: "b@rams.ae", Status: models.CompanyStatusInactive})
	require.NoError(t, err)

	u, err := store.Users().GetByEmail(ctx, "b@rams.ae")
	require.NoError(t, err)
	require.NotNil(t, u)

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.TotalCompanies)
	assert.Equal(t, 1, counts.InactiveCompanies)

	require.NoError(t, svc.DeleteCompany(ctx, c.ID))
	_, err = svc.GetCompany(ctx, c.ID)
	assert.True(t, utils.IsNotFound(err))
}

func TestUpdateProfileKeepsLogoUnlessReplaced(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	c, err := svc.CreateCompany(ctx, CompanyInput{CompanyName: "Rams", Email: "a@rams.ae"})
	require.NoError(t, err)
	_, err = svc.UpdateProfile(ctx, c.ID, ProfileInput{CompanyName: "Rams", Logo: "/uploads/logos/x.png"})
	require.NoError(t, err)
	updated, err := svc.UpdateProfile(ctx, c.ID, ProfileInput{CompanyName: "Royal Rams", Currency: "usd"})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/logos/x.png", updated.Logo)
	assert.Equal(t, "USD", updated.Currency)

	_, err = svc.UpdateProfile(ctx, c.ID, ProfileInput{Currency: "XYZ", CompanyName: "R"})
	assert.True(t, utils.IsValidation(err))
}
