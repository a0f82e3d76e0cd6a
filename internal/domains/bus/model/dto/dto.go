package dto

import (
	"armada/internal/domains/bus/model"
	"armada/shared"
	"armada/shared/constant"
	gDto "armada/shared/dto"
	"armada/shared/localstore"
	"armada/shared/timezone"
)

// DefaultCurrency is used when a bus is created without one.
const DefaultCurrency = "IDR"

type JadwalRequest struct {
	WaktuBerangkat string `json:"waktu_berangkat" validate:"omitempty"`
	WaktuTiba      string `json:"waktu_tiba"      validate:"omitempty"`
}

type FasilitasRequest struct {
	Wifi   bool `json:"wifi"`
	AC     bool `json:"ac"`
	Toilet bool `json:"toilet"`
}

type CreateBusRequest struct {
	IDLayanan      string           `json:"id_layanan"      validate:"omitempty,max=100"`
	TipeBus        string           `json:"tipe_bus"        validate:"required,max=255"`
	RutePerjalanan string           `json:"rute_perjalanan" validate:"required,max=255"`
	OperatorBus    string           `json:"operator_bus"    validate:"omitempty,max=255"`
	Jadwal         JadwalRequest    `json:"jadwal"`
	Fasilitas      FasilitasRequest `json:"fasilitas"`
	MataUang       string           `json:"mata_uang"       validate:"omitempty,max=10"`
	HargaTiket     float64          `json:"harga_tiket"     validate:"omitempty,min=0"`
}

func (c *CreateBusRequest) ToModel(user string) model.Bus {
	currency := c.MataUang
	if currency == "" {
		currency = DefaultCurrency
	}

	now := timezone.Now()

	return model.Bus{
		ID:             localstore.NewID(),
		IDLayanan:      c.IDLayanan,
		TipeBus:        c.TipeBus,
		RutePerjalanan: c.RutePerjalanan,
		OperatorBus:    c.OperatorBus,
		Jadwal: model.Jadwal{
			WaktuBerangkat: c.Jadwal.WaktuBerangkat,
			WaktuTiba:      c.Jadwal.WaktuTiba,
		},
		Fasilitas: model.Fasilitas{
			Wifi:   c.Fasilitas.Wifi,
			AC:     c.Fasilitas.AC,
			Toilet: c.Fasilitas.Toilet,
		},
		Harga: model.Harga{
			MataUang:   currency,
			HargaTiket: c.HargaTiket,
		},
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

type UpdateBusRequest struct {
	IDLayanan      string  `db:"id_layanan"      json:"id_layanan"      validate:"omitempty,max=100"`
	TipeBus        string  `db:"tipe_bus"        json:"tipe_bus"        validate:"omitempty,max=255"`
	RutePerjalanan string  `db:"rute_perjalanan" json:"rute_perjalanan" validate:"omitempty,max=255"`
	OperatorBus    string  `db:"operator_bus"    json:"operator_bus"    validate:"omitempty,max=255"`
	WaktuBerangkat string  `db:"waktu_berangkat" json:"waktu_berangkat" validate:"omitempty"`
	WaktuTiba      string  `db:"waktu_tiba"      json:"waktu_tiba"      validate:"omitempty"`
	Wifi           *bool   `db:"wifi"            json:"wifi"            validate:"omitempty"`
	AC             *bool   `db:"ac"              json:"ac"              validate:"omitempty"`
	Toilet         *bool   `db:"toilet"          json:"toilet"          validate:"omitempty"`
	MataUang       string  `db:"mata_uang"       json:"mata_uang"       validate:"omitempty,max=10"`
	HargaTiket     float64 `db:"harga_tiket"     json:"harga_tiket"     validate:"omitempty,min=0"`
}

type BusResponse struct {
	ID             string          `json:"id"`
	IDLayanan      string          `json:"id_layanan"`
	TipeBus        string          `json:"tipe_bus"`
	RutePerjalanan string          `json:"rute_perjalanan"`
	OperatorBus    string          `json:"operator_bus"`
	Jadwal         model.Jadwal    `json:"jadwal"`
	Fasilitas      model.Fasilitas `json:"fasilitas"`
	Harga          model.Harga     `json:"harga"`
	FormattedHarga string          `json:"formatted_harga"`
	gDto.Metadata
}

func (r *BusResponse) FromModel(mod model.Bus) {
	r.ID = mod.ID
	r.IDLayanan = mod.IDLayanan
	r.TipeBus = mod.TipeBus
	r.RutePerjalanan = mod.RutePerjalanan
	r.OperatorBus = mod.OperatorBus
	r.Jadwal = mod.Jadwal
	r.Fasilitas = mod.Fasilitas
	r.Harga = mod.Harga
	r.FormattedHarga = shared.FormatCurrency(mod.Harga.MataUang, mod.Harga.HargaTiket)
	r.Metadata.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
	r.Metadata.ModifiedAt = timezone.Format(mod.ModifiedAt, constant.DateFormat)
	r.Metadata.CreatedBy = mod.CreatedBy
	r.Metadata.ModifiedBy = mod.ModifiedBy
}

type GetBusesResponse struct {
	Buses     []BusResponse `json:"buses"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetBusesResponse) FromModels(models []model.Bus, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Buses = make([]BusResponse, len(models))
	for i, mod := range models {
		r.Buses[i].FromModel(mod)
	}
}
