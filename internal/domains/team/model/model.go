package model

import "time"

const (
	SlotName   = "tim_data"
	EntityName = "team"

	FieldID        = "id"
	FieldNama      = "nama"
	FieldJabatan   = "jabatan"
	FieldFoto      = "foto"
	FieldCreatedAt = "created_at"
)

type Member struct {
	ID         string    `db:"id"      json:"id"`
	Nama       string    `db:"nama"    json:"nama"`
	Jabatan    string    `db:"jabatan" json:"jabatan"`
	Foto       string    `db:"foto"    json:"foto"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}
