package models

import "time"

// Driver is a company's driver and vehicle.
type Driver struct {
	ID            string    `bson:"id" json:"id"`
	CompanyID     string    `bson:"company_id" json:"company_id"`
	Name          string    `bson:"name" json:"name"`
	CountryCode   string    `bson:"country_code" json:"country_code"`
	PhoneNumber   string    `bson:"phone_number" json:"phone_number"`
	VehicleType   string    `bson:"vehicle_type" json:"vehicle_type"`
	VehicleNumber string    `bson:"vehicle_number" json:"vehicle_number"`
	Seats         int       `bson:"seats" json:"seats"`
	Image         string    `bson:"image" json:"image,omitempty"`
	IsDeleted     bool      `bson:"is_deleted" json:"is_deleted"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
