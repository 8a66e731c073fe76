package models

import "time"

// Company lifecycle states.
const (
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
)

// Company is a tenant. Every package, driver, customer and booking belongs to exactly one.
type Company struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	CompanyName string    `bson:"company_name" json:"company_name"`
	Email       string    `bson:"email" json:"email"`
	Logo        string    `bson:"logo" json:"logo,omitempty"`
	CountryCode string    `bson:"country_code" json:"country_code"`
	Phone       string    `bson:"phone" json:"phone"`
	Status      string    `bson:"status" json:"status"`
	Currency    string    `bson:"currency" json:"currency"`
	Country     string    `bson:"country" json:"country"`
	IsDeleted   bool      `bson:"is_deleted" json:"is_deleted"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// IsActive reports whether the company may sign in.
func (c *Company) IsActive() bool {
	return c.Status == CompanyStatusActive && !c.IsDeleted
}
