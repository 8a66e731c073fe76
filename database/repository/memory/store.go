// Package memoryRepo is a process-local implementation of every repository,
// selected with DATABASE_URL=memory:// and used by service tests.
package memoryRepo

import (
	"sort"
	"strings"
	"sync"
	"time"

	bookingRepo "tourdesk/database/repository/booking"
	chatSessionRepo "tourdesk/database/repository/chatsession"
	companyRepo "tourdesk/database/repository/company"
	customerRepo "tourdesk/database/repository/customer"
	driverRepo "tourdesk/database/repository/driver"
	packageRepo "tourdesk/database/repository/tourpackage"
	userRepo "tourdesk/database/repository/user"
	"tourdesk/models"

	"github.com/google/uuid"
)

// Store holds every collection behind one lock.
type Store struct {
	mu             sync.RWMutex
	users          map[string]models.User
	companies      map[string]models.Company
	packages       map[string]models.TourPackage
	images         map[string]models.TourPackageImage
	packageDrivers map[string][]string
	drivers        map[string]models.Driver
	customers      map[string]models.Customer
	bookings       map[string]models.ManualBooking
	sessions       map[string]models.ChatSession
	last           time.Time
}

func NewStore() *Store {
	return &Store{
		users:          map[string]models.User{},
		companies:      map[string]models.Company{},
		packages:       map[string]models.TourPackage{},
		images:         map[string]models.TourPackageImage{},
		packageDrivers: map[string][]string{},
		drivers:        map[string]models.Driver{},
		customers:      map[string]models.Customer{},
		bookings:       map[string]models.ManualBooking{},
		sessions:       map[string]models.ChatSession{},
	}
}

// now returns strictly increasing timestamps so newest-first ordering is stable.
// Callers hold the write lock.
func (s *Store) now() time.Time {
	t := time.Now()
	if !t.After(s.last) {
		t = s.last.Add(time.Microsecond)
	}
	s.last = t
	return t
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.New().String()
}

func (s *Store) Users() userRepo.UserRepository              { return userStore{s} }
func (s *Store) Companies() companyRepo.CompanyRepository    { return companyStore{s} }
func (s *Store) Packages() packageRepo.TourPackageRepository { return packageStore{s} }
func (s *Store) Drivers() driverRepo.DriverRepository        { return driverStore{s} }
func (s *Store) Customers() customerRepo.CustomerRepository  { return customerStore{s} }
func (s *Store) Bookings() bookingRepo.BookingRepository     { return bookingStore{s} }
func (s *Store) ChatSessions() chatSessionRepo.ChatSessionStore {
	return sessionStore{s}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sortNewestFirst[T any](items []T, created func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return created(items[i]).After(created(items[j]))
	})
}
