package dashboard

import (
	"context"
	"fmt"
	"time"

	bookingRepo "tourdesk/database/repository/booking"
	companyRepo "tourdesk/database/repository/company"
	"tourdesk/models"
	"tourdesk/utils"
)

// Summary holds the headline KPIs of a company dashboard.
type Summary struct {
	TotalBookings   int     `json:"total_bookings"`
	PendingPayments int     `json:"pending_payments"`
	TotalRevenue    float64 `json:"total_revenue"`
}

// Stats are booking counts and paid revenue for the current year.
type Stats struct {
	Year                   int     `json:"year"`
	Month                  int     `json:"month"`
	Currency               string  `json:"currency"`
	YearlyBookings         int     `json:"yearly_bookings"`
	MonthlyBookings        int     `json:"monthly_bookings"`
	MonthlyBookingsPerYear []int   `json:"monthly_bookings_per_year"`
	YearlyRevenue          float64 `json:"yearly_revenue"`
	MonthlyRevenue         float64 `json:"monthly_revenue"`
}

type DashboardService interface {
	Summary(ctx context.Context, companyID string) (*Summary, error)
	Stats(ctx context.Context, companyID string) (*Stats, error)
	// Guests lists the company's non-deleted bookings for the customer table.
	Guests(ctx context.Context, companyID string) ([]models.ManualBooking, error)
}

type DefaultDashboardService struct {
	Repo      bookingRepo.BookingRepository
	Companies companyRepo.CompanyRepository
	Now       func() time.Time
}

func NewDefaultDashboardService(repo bookingRepo.BookingRepository, companies companyRepo.CompanyRepository) *DefaultDashboardService {
	return &DefaultDashboardService{Repo: repo, Companies: companies, Now: time.Now}
}

func (s *DefaultDashboardService) Guests(ctx context.Context, companyID string) ([]models.ManualBooking, error) {
	bookings, err := s.Repo.List(ctx, models.BookingFilter{CompanyID: companyID})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// Summary: revenue is the sum of booked totals; pending counts anything not fully paid.
func (s *DefaultDashboardService) Summary(ctx context.Context, companyID string) (*Summary, error) {
	bookings, err := s.Guests(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := &Summary{TotalBookings: len(bookings)}
	for _, b := range bookings {
		if b.PaymentStatus != models.PaymentPaid {
			out.PendingPayments++
		}
		out.TotalRevenue += b.TotalAmount
	}
	out.TotalRevenue = utils.RoundMoney(out.TotalRevenue)
	return out, nil
}

// Stats buckets bookings by creation month; revenue counts paid bookings only.
func (s *DefaultDashboardService) Stats(ctx context.Context, companyID string) (*Stats, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	bookings, err := s.Guests(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := &Stats{
		Year:                   now.Year(),
		Month:                  int(now.Month()),
		Currency:               "AED",
		MonthlyBookingsPerYear: make([]int, 12),
	}
	if c, err := s.Companies.GetByID(ctx, companyID); err == nil && c != nil && c.Currency != "" {
		out.Currency = c.Currency
	}

	for _, b := range bookings {
		created := b.CreatedAt.In(now.Location())
		if created.Year() != now.Year() {
			continue
		}
		month := int(created.Month())
		out.MonthlyBookingsPerYear[month-1]++
		if b.PaymentStatus != models.PaymentPaid {
			continue
		}
		out.YearlyRevenue += b.TotalAmount
		if month == out.Month {
			out.MonthlyRevenue += b.TotalAmount
		}
	}
	for _, n := range out.MonthlyBookingsPerYear {
		out.YearlyBookings += n
	}
	out.MonthlyBookings = out.MonthlyBookingsPerYear[out.Month-1]
	out.YearlyRevenue = utils.RoundMoney(out.YearlyRevenue)
	out.MonthlyRevenue = utils.RoundMoney(out.MonthlyRevenue)
	return out, nil
}
