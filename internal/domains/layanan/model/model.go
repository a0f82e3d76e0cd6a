package model

import "armada/shared/model"

const (
	TableName  = "layanan"
	EntityName = "layanan"

	FieldID          = "id"
	FieldNamaLayanan = "nama_layanan"
	FieldKategori    = "kategori"
	FieldBiaya       = "biaya"
	FieldDeskripsi   = "deskripsi"
)

type Layanan struct {
	ID          string  `db:"id"`
	NamaLayanan string  `db:"nama_layanan"`
	Kategori    string  `db:"kategori"`
	Biaya       float64 `db:"biaya"`
	Deskripsi   string  `db:"deskripsi"`
	model.Metadata
}
