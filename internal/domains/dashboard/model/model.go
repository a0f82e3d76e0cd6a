package model

const EntityName = "dashboard"

// StatusCount is one slice of the trips-by-status summary.
type StatusCount struct {
	Status string `db:"status"`
	Total  int    `db:"total"`
}

// MonthlyTrips counts trips started in a given month ("YYYY-MM").
type MonthlyTrips struct {
	Month string `db:"month"`
	Total int    `db:"total"`
}

// DestinationCount ranks destinations by trip volume.
type DestinationCount struct {
	Tujuan string `db:"tujuan"`
	Total  int    `db:"total"`
}

// UpcomingTrip is a condensed schedule row for the dashboard widget.
type UpcomingTrip struct {
	ID            string `db:"id"`
	IDBus         string `db:"id_bus"`
	NamaPelanggan string `db:"nama_pelanggan"`
	TanggalMulai  string `db:"tanggal_mulai"`
	Tujuan        string `db:"tujuan"`
	Status        string `db:"status"`
}
