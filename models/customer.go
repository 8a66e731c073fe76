package models

import "time"

// Customer is a guest known to a company, keyed by (company, country code, phone).
type Customer struct {
	ID          string    `bson:"id" json:"id"`
	CompanyID   string    `bson:"company_id" json:"company_id"`
	GuestName   string    `bson:"guest_name" json:"guest_name"`
	CountryCode string    `bson:"country_code" json:"country_code"`
	Phone       string    `bson:"phone" json:"phone"`
	Email       string    `bson:"email" json:"email,omitempty"`
	IsDeleted   bool      `bson:"is_deleted" json:"is_deleted"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
