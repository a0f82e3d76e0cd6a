package dto

import (
	"armada/internal/domains/booking/model"
	"armada/shared"
	"armada/shared/constant"
	gDto "armada/shared/dto"
	"armada/shared/localstore"
	"armada/shared/timezone"
)

// PriceCurrency is the label used when rendering booking totals.
const PriceCurrency = "Rp"

type CreateBookingRequest struct {
	CustomerName string  `json:"customer_name" validate:"required,max=255"`
	Date         string  `json:"date"          validate:"required"`
	Destination  string  `json:"destination"   validate:"required,max=255"`
	Passengers   int     `json:"passengers"    validate:"required,min=1"`
	Status       string  `json:"status"        validate:"omitempty,oneof=Confirmed Pending Cancelled"`
	TotalPrice   float64 `json:"total_price"   validate:"omitempty,min=0"`
}

func (c *CreateBookingRequest) ToModel(user string) model.Booking {
	status := c.Status
	if status == "" {
		status = model.StatusPending
	}

	now := timezone.Now()

	return model.Booking{
		ID:           localstore.NewID(),
		CustomerName: c.CustomerName,
		Date:         c.Date,
		Destination:  c.Destination,
		Passengers:   c.Passengers,
		Status:       status,
		TotalPrice:   c.TotalPrice,
		CreatedAt:    now,
		ModifiedAt:   now,
		CreatedBy:    user,
		ModifiedBy:   user,
	}
}

type UpdateBookingRequest struct {
	CustomerName string  `db:"customer_name" json:"customer_name" validate:"omitempty,max=255"`
	Date         string  `db:"date"          json:"date"          validate:"omitempty"`
	Destination  string  `db:"destination"   json:"destination"   validate:"omitempty,max=255"`
	Passengers   int     `db:"passengers"    json:"passengers"    validate:"omitempty,min=1"`
	Status       string  `db:"status"        json:"status"        validate:"omitempty,oneof=Confirmed Pending Cancelled"`
	TotalPrice   float64 `db:"total_price"   json:"total_price"   validate:"omitempty,min=0"`
}

type BookingResponse struct {
	ID             string  `json:"id"`
	CustomerName   string  `json:"customer_name"`
	Date           string  `json:"date"`
	Destination    string  `json:"destination"`
	Passengers     int     `json:"passengers"`
	Status         string  `json:"status"`
	TotalPrice     float64 `json:"total_price"`
	FormattedPrice string  `json:"formatted_price"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.CustomerName = mod.CustomerName
	r.Date = mod.Date
	r.Destination = mod.Destination
	r.Passengers = mod.Passengers
	r.Status = mod.Status
	r.TotalPrice = mod.TotalPrice
	r.FormattedPrice = shared.FormatCurrency(PriceCurrency, mod.TotalPrice)
	r.Metadata.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
	r.Metadata.ModifiedAt = timezone.Format(mod.ModifiedAt, constant.DateFormat)
	r.Metadata.CreatedBy = mod.CreatedBy
	r.Metadata.ModifiedBy = mod.ModifiedBy
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
