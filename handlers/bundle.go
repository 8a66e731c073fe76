package handlers

import (
	"tourdesk/services/user"
)

// HandlerBundle groups every endpoint handler handed to the router.
type HandlerBundle struct {
	// Users backs the session middleware.
	Users user.UserService

	Auth      *AuthHandler
	Admin     *AdminHandler
	Packages  *TourPackageHandler
	Drivers   *DriverHandler
	Customers *CustomerHandler
	Bookings  *BookingHandler
	Dashboard *DashboardHandler
	Webhook   *WebhookHandler

	// RateLimit is requests per minute per client IP.
	RateLimit int
	// TestChat exposes POST /test-whatsapp.
	TestChat bool
}
