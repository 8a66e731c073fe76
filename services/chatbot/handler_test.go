package chatbot

import (
	"context"
	"errors"
	"testing"

	memoryRepo "tourdesk/database/repository/memory"
	"tourdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phone = "971501234567"

type stubAnswerer struct {
	answer string
	err    error
	asked  []string
}

func (s *stubAnswerer) Answer(_ context.Context, q string) (string, error) {
	s.asked = append(s.asked, q)
	return s.answer, s.err
}

func newEngine(t *testing.T) (*Engine, *memoryRepo.Store) {
	t.Helper()
	store := memoryRepo.NewStore()
	ctx := context.Background()
	for _, p := range []models.TourPackage{
		{CompanyID: "c1", Title: "Desert Safari", City: "Dubai", Currency: "AED", Price: 150, Status: models.PackageStatusActive},
		{CompanyID: "c1", Title: "Marina Cruise", City: "Dubai", Currency: "AED", Price: 400, Status: models.PackageStatusActive},
		{CompanyID: "c1", Title: "Grand Mosque", City: "Abu Dhabi", Currency: "AED", Price: 120, Status: models.PackageStatusActive},
		{CompanyID: "c1", Title: "Old Souk Walk", City: "Dubai", Currency: "AED", Price: 90, Status: models.PackageStatusInactive},
	} {
		p := p
		require.NoError(t, store.Packages().Create(ctx, &p))
	}
	catalog := &RepoCatalog{Packages: store.Packages()}
	return NewEngine(store.ChatSessions(), catalog, "Royal Rams Tourism"), store
}

func send(t *testing.T, e *Engine, text string) string {
	t.Helper()
	reply, err := e.HandleMessage(context.Background(), phone, text)
	require.NoError(t, err)
	return reply
}

func state(t *testing.T, e *Engine) models.ChatState {
	t.Helper()
	s, err := e.State(context.Background(), phone)
	require.NoError(t, err)
	return s
}

func TestFirstMessageGreets(t *testing.T) {
	e, _ := newEngine(t)
	assert.Equal(t, models.StateGreeting, state(t, e))

	reply := send(t, e, "hi")
	assert.Contains(t, reply, "Welcome to Royal Rams Tourism")
	assert.Equal(t, models.StateChooseIntent, state(t, e))
}

func TestBookingFlowToSelection(t *testing.T) {
	e, store := newEngine(t)
	send(t, e, "hello")

	assert.Equal(t, askTravelDate(), send(t, e, "1"))
	assert.Equal(t, models.StateTravelDate, state(t, e))

	assert.Equal(t, replyDateInvalid, send(t, e, "next friday"))
	assert.Equal(t, models.StateTravelDate, state(t, e))
	assert.Equal(t, replyAskPeople, send(t, e, "5/3/2026"))

	assert.Equal(t, replyPeopleInvalid, send(t, e, "2 adults"))
	assert.Equal(t, replyAskBudget, send(t, e, "2 1 0"))

	assert.Equal(t, replyBudgetInvalid, send(t, e, "cheap"))
	assert.Equal(t, replyAskCity, send(t, e, "200"))

	list := send(t, e, "dubai")
	assert.Contains(t, list, "Desert Safari – AED 150")
	assert.NotContains(t, list, "Marina Cruise")
	assert.NotContains(t, list, "Old Souk Walk")
	assert.NotContains(t, list, "Grand Mosque")
	assert.Equal(t, models.StatePackageSelect, state(t, e))

	assert.Equal(t, fallback(), send(t, e, "7"))
	assert.Equal(t, models.StatePackageSelect, state(t, e))

	reply := send(t, e, "1")
	assert.Contains(t, reply, "You selected Desert Safari")
	assert.Equal(t, models.StateFallback, state(t, e))

	session, err := store.ChatSessions().Get(context.Background(), phone)
	require.NoError(t, err)
	require.NotNil(t, session.Data.People)
	assert.Equal(t, "05/03/2026", session.Data.TravelDate)
	assert.Equal(t, 2, session.Data.People.Adults)
	assert.Equal(t, 200, session.Data.Budget)
	require.NotNil(t, session.Data.Selected)
	assert.Equal(t, "Desert Safari", session.Data.Selected.Name)
}

func TestCityAllMatchesEveryCity(t *testing.T) {
	e, _ := newEngine(t)
	for _, msg := range []string{"hi", "1", "01/06/2026", "2 0 0", "500"} {
		send(t, e, msg)
	}
	list := send(t, e, "ALL")
	assert.Contains(t, list, "Desert Safari")
	assert.Contains(t, list, "Marina Cruise")
	assert.Contains(t, list, "Grand Mosque")
}

func TestNoPackagesFallsBack(t *testing.T) {
	e, _ := newEngine(t)
	for _, msg := range []string{"hi", "1", "01/06/2026", "2 0 0", "50"} {
		send(t, e, msg)
	}
	assert.Equal(t, replyNoPackages, send(t, e, "Dubai"))
	assert.Equal(t, models.StateFallback, state(t, e))
	assert.Equal(t, fallback(), send(t, e, "hello?"))
}

func TestMenuResetsFromAnyState(t *testing.T) {
	steps := []string{"hi", "1", "01/06/2026", "2 0 0", "200", "dubai", "1"}
	for n := 0; n <= len(steps); n++ {
		for _, cmd := range []string{"menu", "START", " Menu "} {
			e, store := newEngine(t)
			for _, msg := range steps[:n] {
				send(t, e, msg)
			}
			assert.Equal(t, greeting(e.Brand), send(t, e, cmd), "after %d steps", n)
			assert.Equal(t, models.StateGreeting, state(t, e), "after %d steps", n)

			session, err := store.ChatSessions().Get(context.Background(), phone)
			require.NoError(t, err)
			assert.Empty(t, session.Data.TravelDate)
		}
	}
}

func TestIntentRejectsOtherInput(t *testing.T) {
	e, _ := newEngine(t)
	send(t, e, "hi")
	assert.Equal(t, replyIntentInvalid, send(t, e, "3"))
	assert.Equal(t, models.StateChooseIntent, state(t, e))
}

func TestFAQBranch(t *testing.T) {
	e, _ := newEngine(t)
	send(t, e, "hi")
	assert.Equal(t, faqIntro(), send(t, e, "2"))

	assert.Equal(t, replyFAQPrice, send(t, e, "What is the PRICE?"))
	assert.Equal(t, replyFAQPickup, send(t, e, "do you do pickup"))
	assert.Equal(t, replyFAQPayment, send(t, e, "payment options"))
	assert.Equal(t, fallback(), send(t, e, "is it hot?"))
	assert.Equal(t, models.StateFAQ, state(t, e))

	assert.Equal(t, askTravelDate(), send(t, e, "I want to book"))
	assert.Equal(t, models.StateTravelDate, state(t, e))
}

func TestFAQAnswererHandlesUnmatchedQuestions(t *testing.T) {
	e, _ := newEngine(t)
	answerer := &stubAnswerer{answer: "Tours run daily from 8am."}
	e.Answerer = answerer
	send(t, e, "hi")
	send(t, e, "2")

	assert.Equal(t, "Tours run daily from 8am.", send(t, e, "when do tours start?"))
	assert.Equal(t, replyFAQPrice, send(t, e, "price?"))
	assert.Equal(t, []string{"when do tours start?"}, answerer.asked)

	answerer.err = errors.New("quota exceeded")
	assert.Equal(t, fallback(), send(t, e, "anything else?"))
}

func TestSessionsArePerPhone(t *testing.T) {
	e, _ := newEngine(t)
	send(t, e, "hi")
	send(t, e, "1")

	other, err := e.HandleMessage(context.Background(), "971509999999", "1")
	require.NoError(t, err)
	assert.Equal(t, greeting(e.Brand), other)
	assert.Equal(t, models.StateTravelDate, state(t, e))
}
