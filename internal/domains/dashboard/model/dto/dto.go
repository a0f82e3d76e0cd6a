package dto

import (
	"armada/internal/domains/dashboard/model"
	"armada/shared"
)

// BiayaCurrency is the label used when rendering the maintenance spend total.
const BiayaCurrency = "Rp"

type StatusCountResponse struct {
	Status string `json:"status"`
	Total  int    `json:"total"`
}

type MonthlyTripsResponse struct {
	Month string `json:"month"`
	Total int    `json:"total"`
}

type DestinationCountResponse struct {
	Tujuan string `json:"tujuan"`
	Total  int    `json:"total"`
}

type UpcomingTripResponse struct {
	ID            string `json:"id"`
	IDBus         string `json:"id_bus"`
	NamaPelanggan string `json:"nama_pelanggan"`
	TanggalMulai  string `json:"tanggal_mulai"`
	Tujuan        string `json:"tujuan"`
	Status        string `json:"status"`
}

type SummaryResponse struct {
	TotalTrips              int                   `json:"total_trips"`
	TripsByStatus           []StatusCountResponse `json:"trips_by_status"`
	MaintenanceSpend        float64               `json:"maintenance_spend"`
	FormattedMaintenance    string                `json:"formatted_maintenance_spend"`
	TotalMaintenanceRecords int                   `json:"total_maintenance_records"`
}

func (r *SummaryResponse) FromModels(byStatus []model.StatusCount, spend float64, maintenanceTotal int) {
	r.TripsByStatus = make([]StatusCountResponse, len(byStatus))
	for i, sc := range byStatus {
		r.TripsByStatus[i] = StatusCountResponse(sc)
		r.TotalTrips += sc.Total
	}

	r.MaintenanceSpend = spend
	r.FormattedMaintenance = shared.FormatCurrency(BiayaCurrency, spend)
	r.TotalMaintenanceRecords = maintenanceTotal
}

type MonthlyTripsReport struct {
	Year   string                 `json:"year"`
	Months []MonthlyTripsResponse `json:"months"`
}

func (r *MonthlyTripsReport) FromModels(year string, models []model.MonthlyTrips) {
	r.Year = year

	r.Months = make([]MonthlyTripsResponse, len(models))
	for i, mt := range models {
		r.Months[i] = MonthlyTripsResponse(mt)
	}
}

type TopDestinationsResponse struct {
	Destinations []DestinationCountResponse `json:"destinations"`
}

func (r *TopDestinationsResponse) FromModels(models []model.DestinationCount) {
	r.Destinations = make([]DestinationCountResponse, len(models))
	for i, dc := range models {
		r.Destinations[i] = DestinationCountResponse(dc)
	}
}

type UpcomingTripsResponse struct {
	Trips []UpcomingTripResponse `json:"trips"`
}

func (r *UpcomingTripsResponse) FromModels(models []model.UpcomingTrip) {
	r.Trips = make([]UpcomingTripResponse, len(models))
	for i, trip := range models {
		r.Trips[i] = UpcomingTripResponse(trip)
	}
}
