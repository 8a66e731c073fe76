package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	memoryRepo "tourdesk/database/repository/memory"
	"tourdesk/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	To, Body, Template string
	Params             []string
}

type fakeMessenger struct {
	sent []sentMessage
	err  error
}

func (f *fakeMessenger) SendText(_ context.Context, to, body string) error {
	f.sent = append(f.sent, sentMessage{To: to, Body: body})
	return f.err
}

func (f *fakeMessenger) SendTemplate(_ context.Context, to, name string, params []string) error {
	f.sent = append(f.sent, sentMessage{To: to, Template: name, Params: params})
	return f.err
}

type fakeMailer struct {
	to, subject []string
}

func (f *fakeMailer) Send(_ context.Context, to, subject, _ string) error {
	f.to = append(f.to, to)
	f.subject = append(f.subject, subject)
	return nil
}

func task(t *testing.T, typ string, payload any) *asynq.Task {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return asynq.NewTask(typ, b)
}

func TestBookingTemplateParamsOrder(t *testing.T) {
	params := BookingTemplateParams(models.BookingConfirmedPayload{
		GuestName:    "Sara",
		PackageTitle: "Desert Safari",
		TravelDate:   "2026-03-05",
		Adults:       2,
		Kids:         1,
		Total:        "AED 500.00",
		Advance:      "AED 200.00",
		Remaining:    "AED 300.00",
	})
	assert.Equal(t, []string{
		"Sara", "Desert Safari", "2026-03-05", "-", "-", "2", "1",
		"AED 500.00", "AED 200.00", "AED 300.00",
	}, params)
}

func TestHandleBookingConfirmedSendsTemplateAndEmail(t *testing.T) {
	msg, mail := &fakeMessenger{}, &fakeMailer{}
	p := &Processor{Messenger: msg, Mailer: mail}

	err := p.HandleBookingConfirmed(context.Background(), task(t, TypeBookingConfirmed, models.BookingConfirmedPayload{
		BookingID: "b1", Phone: "971501234567", Email: "sara@example.com",
		GuestName: "Sara", PackageTitle: "Desert Safari",
	}))
	require.NoError(t, err)
	require.Len(t, msg.sent, 1)
	assert.Equal(t, BookingConfirmedTemplate, msg.sent[0].Template)
	assert.Equal(t, "971501234567", msg.sent[0].To)
	assert.Equal(t, []string{"sara@example.com"}, mail.to)
}

func TestHandleBookingConfirmedReportsSendFailure(t *testing.T) {
	p := &Processor{Messenger: &fakeMessenger{err: errors.New("boom")}, Mailer: &fakeMailer{}}

	err := p.HandleBookingConfirmed(context.Background(), task(t, TypeBookingConfirmed, models.BookingConfirmedPayload{Phone: "1"}))
	assert.Error(t, err)
}

func TestHandleTripRemindersTargetsTomorrow(t *testing.T) {
	ctx := context.Background()
	store := memoryRepo.NewStore()
	pkg := &models.TourPackage{Title: "Dhow Cruise"}
	require.NoError(t, store.Packages().Create(ctx, pkg))

	for _, b := range []*models.ManualBooking{
		{TourPackageID: pkg.ID, GuestName: "A", CountryCode: "+971", Phone: "050 123 4567", TravelDate: "2026-02-11"},
		{TourPackageID: pkg.ID, GuestName: "B", CountryCode: "+971", Phone: "0501112222", TravelDate: "2026-02-12"},
	} {
		require.NoError(t, store.Bookings().Create(ctx, b))
	}
	cancelled := &models.ManualBooking{TourPackageID: pkg.ID, GuestName: "C", Phone: "1", TravelDate: "2026-02-11"}
	require.NoError(t, store.Bookings().Create(ctx, cancelled))
	require.NoError(t, store.Bookings().SoftDelete(ctx, cancelled.ID))

	msg := &fakeMessenger{}
	p := &Processor{
		Messenger: msg,
		Mailer:    &fakeMailer{},
		Bookings:  store.Bookings(),
		Packages:  store.Packages(),
		Now:       func() time.Time { return time.Date(2026, 2, 10, 18, 0, 0, 0, time.UTC) },
	}
	require.NoError(t, p.HandleTripReminders(ctx, task(t, TypeTripReminders, models.TripReminderPayload{})))

	require.Len(t, msg.sent, 1)
	assert.Equal(t, "971501234567", msg.sent[0].To)
	assert.Contains(t, msg.sent[0].Body, "Dhow Cruise")
}

func TestHandleCompanyWelcomeEmailsCredentials(t *testing.T) {
	mail := &fakeMailer{}
	p := &Processor{Messenger: &fakeMessenger{}, Mailer: mail}

	err := p.HandleCompanyWelcome(context.Background(), task(t, TypeCompanyWelcome, models.CompanyWelcomePayload{
		CompanyName: "Falcon Tours", Email: "ops@falcon.test", TempPassword: "12345678",
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"ops@falcon.test"}, mail.to)
}
