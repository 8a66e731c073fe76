package booking

import (
	"bytes"
	"context"
	"errors"
	"testing"

	memoryRepo "tourdesk/database/repository/memory"
	"tourdesk/models"
	"tourdesk/services/availability"
	"tourdesk/services/customer"
	"tourdesk/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDispatcher struct {
	confirmed []models.BookingConfirmedPayload
	err       error
}

func (d *recordingDispatcher) BookingConfirmed(_ context.Context, p models.BookingConfirmedPayload) error {
	d.confirmed = append(d.confirmed, p)
	return d.err
}

func (d *recordingDispatcher) CompanyWelcome(context.Context, models.CompanyWelcomePayload) error {
	return nil
}

func (d *recordingDispatcher) ChatReply(context.Context, models.ChatReplyPayload) error {
	return nil
}

type fixture struct {
	store    *memoryRepo.Store
	svc      *DefaultBookingService
	dispatch *recordingDispatcher
	safari   *models.TourPackage
	cruise   *models.TourPackage
	drivers  []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memoryRepo.NewStore()
	dispatch := &recordingDispatcher{}

	company := &models.Company{CompanyName: "Royal Rams", Currency: "AED", Status: models.CompanyStatusActive}
	require.NoError(t, store.Companies().Create(ctx, company))

	f := &fixture{store: store, dispatch: dispatch}
	for i := 0; i < 2; i++ {
		d := &models.Driver{CompanyID: company.ID, Name: []string{"Rashid", "Imran"}[i], VehicleNumber: "DXB-1"}
		require.NoError(t, store.Drivers().Create(ctx, d))
		f.drivers = append(f.drivers, d.ID)
	}

	f.safari = &models.TourPackage{CompanyID: company.ID, Title: "Desert Safari", Currency: "AED", Price: 150, Status: models.PackageStatusActive}
	require.NoError(t, store.Packages().Create(ctx, f.safari))
	require.NoError(t, store.Packages().SetDrivers(ctx, f.safari.ID, f.drivers))

	f.cruise = &models.TourPackage{CompanyID: company.ID, Title: "Dhow Cruise", Price: 200, Status: models.PackageStatusActive}
	require.NoError(t, store.Packages().Create(ctx, f.cruise))
	require.NoError(t, store.Packages().SetDrivers(ctx, f.cruise.ID, f.drivers))

	avail := availability.NewDefaultAvailabilityService(store.Packages(), store.Bookings(), store.Drivers())
	f.svc = NewDefaultBookingService(
		store.Bookings(), store.Packages(), store.Drivers(), store.Companies(),
		customer.NewDefaultCustomerService(store.Customers()), avail, dispatch,
	)
	return f
}

func (f *fixture) companyID() string { return f.safari.CompanyID }

func request(packageID, driverID, phone, date string) BookingRequest {
	return BookingRequest{
		CustomerInput: customer.CustomerInput{GuestName: "Guest " + phone, CountryCode: "+971", Phone: phone},
		TourPackageID: packageID,
		DriverID:      driverID,
		Adults:        2,
		TravelDate:    date,
		TotalAmount:   300,
		AdvanceAmount: 100,
	}
}

func TestCreateDerivesAmountsAndNotifies(t *testing.T) {
	f := newFixture(t)
	req := request(f.safari.ID, "", "0501234567", "2026-03-05")
	req.PickupLocation = "Marina Hotel"

	b, err := f.svc.Create(context.Background(), f.companyID(), req)
	require.NoError(t, err)
	assert.Equal(t, 200.0, b.RemainingAmount)
	assert.Equal(t, models.PaymentPartial, b.PaymentStatus)
	assert.NotEmpty(t, b.CustomerID)

	require.Len(t, f.dispatch.confirmed, 1)
	p := f.dispatch.confirmed[0]
	assert.Equal(t, "971501234567", p.Phone)
	assert.Equal(t, "05-03-2026", p.TravelDate)
	assert.Equal(t, "AED 300.00", p.Total)
	assert.Equal(t, "AED 200.00", p.Remaining)
	assert.Equal(t, "Marina Hotel", p.Pickup)
}

func TestCreateSurvivesDispatchFailure(t *testing.T) {
	f := newFixture(t)
	f.dispatch.err = errors.New("redis down")

	b, err := f.svc.Create(context.Background(), f.companyID(), request(f.safari.ID, "", "0501234567", "2026-03-05"))
	require.NoError(t, err)
	stored, err := f.svc.Get(context.Background(), f.companyID(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, stored.ID)
}

func TestDriverConflictAcrossPackages(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.companyID(), request(f.safari.ID, f.drivers[0], "0501", "2026-03-05"))
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, f.companyID(), request(f.cruise.ID, f.drivers[0], "0502", "2026-03-05"))
	require.Error(t, err)
	assert.True(t, utils.IsConflict(err))
	assert.Contains(t, utils.UserMessage(err), "already booked")

	_, err = f.svc.Create(ctx, f.companyID(), request(f.cruise.ID, f.drivers[0], "0502", "2026-03-06"))
	assert.NoError(t, err)
}

func TestCapacityBlocksDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, phone := range []string{"0501", "0502"} {
		_, err := f.svc.Create(ctx, f.companyID(), request(f.safari.ID, "", phone, "2026-04-01"))
		require.NoError(t, err)
	}
	_, err := f.svc.Create(ctx, f.companyID(), request(f.safari.ID, "", "0503", "2026-04-01"))
	assert.True(t, utils.IsConflict(err))

	dates, err := f.svc.BookedDates(ctx, f.companyID(), f.safari.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-04-01"}, dates.BlockedDates)
	assert.Len(t, dates.Bookings, 2)
}

func TestCancelReleasesCapacity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.companyID(), request(f.safari.ID, f.drivers[0], "0501", "2026-04-01"))
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.companyID(), request(f.safari.ID, "", "0502", "2026-04-01"))
	require.NoError(t, err)

	require.NoError(t, f.svc.Cancel(ctx, f.companyID(), first.ID))
	_, err = f.svc.Create(ctx, f.companyID(), request(f.safari.ID, f.drivers[0], "0503", "2026-04-01"))
	assert.NoError(t, err)
}

func TestUpdateExcludesItself(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, f.companyID(), request(f.safari.ID, f.drivers[0], "0501", "2026-04-01"))
	require.NoError(t, err)

	req := request(f.safari.ID, f.drivers[0], "0501", "2026-04-01")
	req.AdvanceAmount = 300
	updated, err := f.svc.Update(ctx, f.companyID(), b.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.RemainingAmount)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)

	other, err := f.svc.Create(ctx, f.companyID(), request(f.safari.ID, f.drivers[1], "0502", "2026-04-02"))
	require.NoError(t, err)
	_, err = f.svc.Update(ctx, f.companyID(), other.ID, request(f.safari.ID, f.drivers[0], "0502", "2026-04-01"))
	assert.True(t, utils.IsConflict(err))
}

func TestCreateReusesCustomer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.svc.Create(ctx, f.companyID(), request(f.safari.ID, "", "0501", "2026-04-01"))
	require.NoError(t, err)
	b, err := f.svc.Create(ctx, f.companyID(), request(f.cruise.ID, "", "0501", "2026-04-02"))
	require.NoError(t, err)
	assert.Equal(t, a.CustomerID, b.CustomerID)

	customers, err := f.store.Customers().ListByCompany(ctx, f.companyID())
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	bad := request(f.safari.ID, "", "0501", "05/03/2026")
	_, err := f.svc.Create(ctx, f.companyID(), bad)
	assert.True(t, utils.IsValidation(err))

	over := request(f.safari.ID, "", "0501", "2026-03-05")
	over.AdvanceAmount = 400
	_, err = f.svc.Create(ctx, f.companyID(), over)
	assert.True(t, utils.IsValidation(err))

	_, err = f.svc.Create(ctx, "other-company", request(f.safari.ID, "", "0501", "2026-03-05"))
	assert.True(t, utils.IsNotFound(err))
	assert.Empty(t, f.dispatch.confirmed)
}

func TestDeleteIsPermanent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, f.companyID(), request(f.safari.ID, "", "0501", "2026-04-01"))
	require.NoError(t, err)
	require.NoError(t, f.svc.Delete(ctx, f.companyID(), b.ID))

	all, err := f.store.Bookings().List(ctx, models.BookingFilter{CompanyID: f.companyID(), IncludeDeleted: true})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestWriteVoucher(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.svc.Create(ctx, f.companyID(), request(f.safari.ID, f.drivers[0], "0501", "2026-04-01"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.svc.WriteVoucher(ctx, f.companyID(), b.ID, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
