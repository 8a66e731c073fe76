package models

// BookingConfirmedPayload feeds the booking_confirmed WhatsApp template and the
// confirmation email. Amounts are preformatted with the currency code.
type BookingConfirmedPayload struct {
	BookingID    string `json:"booking_id"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	GuestName    string `json:"guest_name"`
	PackageTitle string `json:"package_title"`
	TravelDate   string `json:"travel_date"`
	TravelTime   string `json:"travel_time"`
	Pickup       string `json:"pickup"`
	Adults       int    `json:"adults"`
	Kids         int    `json:"kids"`
	Total        string `json:"total"`
	Advance      string `json:"advance"`
	Remaining    string `json:"remaining"`
}

// CompanyWelcomePayload is sent to a newly created company login.
type CompanyWelcomePayload struct {
	CompanyName  string `json:"company_name"`
	Email        string `json:"email"`
	TempPassword string `json:"temp_password"`
	LoginURL     string `json:"login_url"`
}

// ChatReplyPayload is an outbound chatbot text.
type ChatReplyPayload struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

// TripReminderPayload asks the worker to message every guest travelling on Date.
type TripReminderPayload struct {
	Date string `json:"date"`
}
