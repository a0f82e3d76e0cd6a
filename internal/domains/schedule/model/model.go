package model

import "armada/shared/model"

const (
	TableName  = "schedules"
	EntityName = "schedule"

	FieldID             = "id"
	FieldIDBus          = "id_bus"
	FieldNamaPelanggan  = "nama_pelanggan"
	FieldTanggalMulai   = "tanggal_mulai"
	FieldTanggalSelesai = "tanggal_selesai"
	FieldTujuan         = "tujuan"
	FieldStatus         = "status"
	FieldCatatan        = "catatan"

	StatusDirencanakan = "Direncanakan"
	StatusBerjalan     = "Berjalan"
	StatusSelesai      = "Selesai"
	StatusDibatalkan   = "Dibatalkan"
)

type Schedule struct {
	ID             string `db:"id"`
	IDBus          string `db:"id_bus"`
	NamaPelanggan  string `db:"nama_pelanggan"`
	TanggalMulai   string `db:"tanggal_mulai"`
	TanggalSelesai string `db:"tanggal_selesai"`
	Tujuan         string `db:"tujuan"`
	Status         string `db:"status"`
	Catatan        string `db:"catatan"`
	model.Metadata
}
