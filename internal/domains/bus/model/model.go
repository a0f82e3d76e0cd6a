package model

import "time"

const (
	SlotName   = "bus_data"
	EntityName = "bus"

	FieldID             = "id"
	FieldIDLayanan      = "id_layanan"
	FieldTipeBus        = "tipe_bus"
	FieldRutePerjalanan = "rute_perjalanan"
	FieldOperatorBus    = "operator_bus"
	FieldWaktuBerangkat = "waktu_berangkat"
	FieldWaktuTiba      = "waktu_tiba"
	FieldWifi           = "wifi"
	FieldAC             = "ac"
	FieldToilet         = "toilet"
	FieldMataUang       = "mata_uang"
	FieldHargaTiket     = "harga_tiket"
	FieldCreatedAt      = "created_at"
)

type Jadwal struct {
	WaktuBerangkat string `db:"waktu_berangkat" json:"waktu_berangkat"`
	WaktuTiba      string `db:"waktu_tiba"      json:"waktu_tiba"`
}

type Fasilitas struct {
	Wifi   bool `db:"wifi"   json:"wifi"`
	AC     bool `db:"ac"     json:"ac"`
	Toilet bool `db:"toilet" json:"toilet"`
}

type Harga struct {
	MataUang   string  `db:"mata_uang"   json:"mata_uang"`
	HargaTiket float64 `db:"harga_tiket" json:"harga_tiket"`
}

type Bus struct {
	ID             string    `db:"id"              json:"id"`
	IDLayanan      string    `db:"id_layanan"      json:"id_layanan"`
	TipeBus        string    `db:"tipe_bus"        json:"tipe_bus"`
	RutePerjalanan string    `db:"rute_perjalanan" json:"rute_perjalanan"`
	OperatorBus    string    `db:"operator_bus"    json:"operator_bus"`
	Jadwal         Jadwal    `json:"jadwal"`
	Fasilitas      Fasilitas `json:"fasilitas"`
	Harga          Harga     `json:"harga"`
	CreatedAt      time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt     time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy      string    `db:"created_by"  json:"created_by"`
	ModifiedBy     string    `db:"modified_by" json:"modified_by"`
}
