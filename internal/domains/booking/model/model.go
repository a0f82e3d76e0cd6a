package model

import "time"

const (
	SlotName   = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldCustomerName = "customer_name"
	FieldDate         = "date"
	FieldDestination  = "destination"
	FieldPassengers   = "passengers"
	FieldStatus       = "status"
	FieldTotalPrice   = "total_price"
	FieldCreatedAt    = "created_at"
)

const (
	StatusConfirmed = "Confirmed"
	StatusPending   = "Pending"
	StatusCancelled = "Cancelled"
)

type Booking struct {
	ID           string    `db:"id"            json:"id"`
	CustomerName string    `db:"customer_name" json:"customer_name"`
	Date         string    `db:"date"          json:"date"`
	Destination  string    `db:"destination"   json:"destination"`
	Passengers   int       `db:"passengers"    json:"passengers"`
	Status       string    `db:"status"        json:"status"`
	TotalPrice   float64   `db:"total_price"   json:"total_price"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
	ModifiedAt   time.Time `db:"modified_at"   json:"modified_at"`
	CreatedBy    string    `db:"created_by"    json:"created_by"`
	ModifiedBy   string    `db:"modified_by"   json:"modified_by"`
}
