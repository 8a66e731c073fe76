package memoryRepo

import (
	"context"
	"time"

	"tourdesk/models"
	"tourdesk/utils"
)

type customerStore struct{ s *Store }

func (c customerStore) Create(_ context.Context, customer *models.Customer) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	customer.ID = newID(customer.ID)
	customer.CreatedAt = c.s.now()
	customer.UpdatedAt = customer.CreatedAt
	c.s.customers[customer.ID] = *customer
	return nil
}

func (c customerStore) Update(_ context.Context, customer *models.Customer) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.customers[customer.ID]; !ok {
		return utils.NewNotFoundError("Customer", customer.ID)
	}
	customer.UpdatedAt = c.s.now()
	c.s.customers[customer.ID] = *customer
	return nil
}

func (c customerStore) GetByID(_ context.Context, id string) (*models.Customer, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	if customer, ok := c.s.customers[id]; ok && !customer.IsDeleted {
		return &customer, nil
	}
	return nil, nil
}

func (c customerStore) ListByCompany(_ context.Context, companyID string) ([]models.Customer, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	out := []models.Customer{}
	for _, customer := range c.s.customers {
		if customer.CompanyID == companyID && !customer.IsDeleted {
			out = append(out, customer)
		}
	}
	sortNewestFirst(out, func(c models.Customer) time.Time { return c.CreatedAt })
	return out, nil
}

func (c customerStore) FindByPhone(_ context.Context, companyID, countryCode, phone string) (*models.Customer, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	for _, customer := range c.s.customers {
		if customer.CompanyID == companyID && customer.CountryCode == countryCode &&
			customer.Phone == phone && !customer.IsDeleted {
			found := customer
			return &found, nil
		}
	}
	return nil, nil
}

func (c customerStore) SoftDelete(_ context.Context, id string) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	customer, ok := c.s.customers[id]
	if !ok || customer.IsDeleted {
		return utils.NewNotFoundError("Customer", id)
	}
	customer.IsDeleted = true
	customer.UpdatedAt = c.s.now()
	c.s.customers[id] = customer
	return nil
}

type bookingStore struct{ s *Store }

func (b bookingStore) Create(_ context.Context, booking *models.ManualBooking) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	booking.ID = newID(booking.ID)
	booking.CreatedAt = b.s.now()
	booking.UpdatedAt = booking.CreatedAt
	b.s.bookings[booking.ID] = *booking
	return nil
}

func (b bookingStore) Update(_ context.Context, booking *models.ManualBooking) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	if _, ok := b.s.bookings[booking.ID]; !ok {
		return utils.NewNotFoundError("Booking", booking.ID)
	}
	booking.UpdatedAt = b.s.now()
	b.s.bookings[booking.ID] = *booking
	return nil
}

func (b bookingStore) GetByID(_ context.Context, id string) (*models.ManualBooking, error) {
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()
	if booking, ok := b.s.bookings[id]; ok && !booking.IsDeleted {
		return &booking, nil
	}
	return nil, nil
}

func matchesBooking(bk models.ManualBooking, f models.BookingFilter) bool {
	switch {
	case bk.IsDeleted && !f.IncludeDeleted:
		return false
	case f.CompanyID != "" && bk.CompanyID != f.CompanyID:
		return false
	case f.TourPackageID != "" && bk.TourPackageID != f.TourPackageID:
		return false
	case f.DriverID != "" && bk.DriverID != f.DriverID:
		return false
	case f.TravelDate != "" && bk.TravelDate != f.TravelDate:
		return false
	case f.ExcludeID != "" && bk.ID == f.ExcludeID:
		return false
	}
	return true
}

func (b bookingStore) List(_ context.Context, f models.BookingFilter) ([]models.ManualBooking, error) {
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()
	out := []models.ManualBooking{}
	for _, bk := range b.s.bookings {
		if matchesBooking(bk, f) {
			out = append(out, bk)
		}
	}
	sortNewestFirst(out, func(b models.ManualBooking) time.Time { return b.CreatedAt })
	return out, nil
}

func (b bookingStore) Count(ctx context.Context, f models.BookingFilter) (int, error) {
	list, err := b.List(ctx, f)
	return len(list), err
}

func (b bookingStore) Delete(_ context.Context, id string) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	if _, ok := b.s.bookings[id]; !ok {
		return utils.NewNotFoundError("Booking", id)
	}
	delete(b.s.bookings, id)
	return nil
}

func (b bookingStore) SoftDelete(_ context.Context, id string) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	booking, ok := b.s.bookings[id]
	if !ok || booking.IsDeleted {
		return utils.NewNotFoundError("Booking", id)
	}
	booking.IsDeleted = true
	booking.UpdatedAt = b.s.now()
	b.s.bookings[id] = booking
	return nil
}

type sessionStore struct{ s *Store }

func (c sessionStore) Get(_ context.Context, phone string) (*models.ChatSession, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	session, ok := c.s.sessions[phone]
	if !ok {
		return nil, nil
	}
	session.Data = cloneChatData(session.Data)
	return &session, nil
}

func (c sessionStore) Save(_ context.Context, session *models.ChatSession) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	session.UpdatedAt = c.s.now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = session.UpdatedAt
	}
	stored := *session
	stored.Data = cloneChatData(session.Data)
	c.s.sessions[session.Phone] = stored
	return nil
}

func cloneChatData(d models.ChatData) models.ChatData {
	out := d
	if d.People != nil {
		people := *d.People
		out.People = &people
	}
	if d.Selected != nil {
		sel := *d.Selected
		out.Selected = &sel
	}
	out.Packages = append([]models.PackageOption(nil), d.Packages...)
	return out
}
