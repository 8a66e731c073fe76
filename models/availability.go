package models

// DateCapacity is the driver capacity of one package on one date.
type DateCapacity struct {
	Date         string `json:"date"`
	TotalDrivers int    `json:"total_drivers"`
	Booked       int    `json:"booked"`
	Remaining    int    `json:"remaining"`
	FullyBooked  bool   `json:"fully_booked"`
}

// PackageAvailability summarises every date that has at least one booking.
type PackageAvailability struct {
	PackageID    string         `json:"package_id"`
	TotalDrivers int            `json:"total_drivers"`
	Dates        []DateCapacity `json:"dates"`
	BookedDates  []string       `json:"booked_dates"`
	BlockedDates []string       `json:"blocked_dates"`
}
