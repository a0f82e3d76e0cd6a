package model

import "armada/shared/model"

const (
	TableName  = "promos"
	EntityName = "promo"

	FieldID                = "id"
	FieldKodePromo         = "kode_promo"
	FieldDeskripsi         = "deskripsi"
	FieldJenisDiskon       = "jenis_diskon"
	FieldNilaiDiskon       = "nilai_diskon"
	FieldTanggalKadaluarsa = "tanggal_kadaluarsa"
	FieldIsActive          = "is_active"

	DiskonPersen = "persen"
	DiskonTetap  = "tetap"
)

type Promo struct {
	ID                string  `db:"id"`
	KodePromo         string  `db:"kode_promo"`
	Deskripsi         string  `db:"deskripsi"`
	JenisDiskon       string  `db:"jenis_diskon"`
	NilaiDiskon       float64 `db:"nilai_diskon"`
	TanggalKadaluarsa string  `db:"tanggal_kadaluarsa"`
	IsActive          bool    `db:"is_active"`
	model.Metadata
}
