package model

import "armada/shared/model"

const (
	TableName  = "maintenance_records"
	EntityName = "maintenance"

	FieldID             = "id"
	FieldIDBus          = "id_bus"
	FieldTanggalServis  = "tanggal_servis"
	FieldJenisPerawatan = "jenis_perawatan"
	FieldBiaya          = "biaya"
	FieldVendor         = "vendor"
	FieldOdometer       = "odometer"
	FieldCatatan        = "catatan"
)

type Maintenance struct {
	ID             string  `db:"id"`
	IDBus          string  `db:"id_bus"`
	TanggalServis  string  `db:"tanggal_servis"`
	JenisPerawatan string  `db:"jenis_perawatan"`
	Biaya          float64 `db:"biaya"`
	Vendor         string  `db:"vendor"`
	Odometer       int     `db:"odometer"`
	Catatan        string  `db:"catatan"`
	model.Metadata
}
