package dto

import (
	"github.com/google/uuid"

	"armada/internal/domains/maintenance/model"
	"armada/shared"
	gDto "armada/shared/dto"
	gModel "armada/shared/model"
	"armada/shared/timezone"
)

// BiayaCurrency is the label used when rendering service costs.
const BiayaCurrency = "Rp"

type CreateMaintenanceRequest struct {
	IDBus          string  `json:"id_bus"          validate:"required,max=64"`
	TanggalServis  string  `json:"tanggal_servis"  validate:"required"`
	JenisPerawatan string  `json:"jenis_perawatan" validate:"required,max=255"`
	Biaya          float64 `json:"biaya"           validate:"omitempty,min=0"`
	Vendor         string  `json:"vendor"          validate:"omitempty,max=255"`
	Odometer       int     `json:"odometer"        validate:"omitempty,min=0"`
	Catatan        string  `json:"catatan"         validate:"omitempty"`
}

func (c *CreateMaintenanceRequest) ToModel(user string) model.Maintenance {
	return model.Maintenance{
		ID:             uuid.NewString(),
		IDBus:          c.IDBus,
		TanggalServis:  c.TanggalServis,
		JenisPerawatan: c.JenisPerawatan,
		Biaya:          c.Biaya,
		Vendor:         c.Vendor,
		Odometer:       c.Odometer,
		Catatan:        c.Catatan,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMaintenanceRequest struct {
	IDBus          string  `db:"id_bus"          json:"id_bus"          validate:"omitempty,max=64"`
	TanggalServis  string  `db:"tanggal_servis"  json:"tanggal_servis"  validate:"omitempty"`
	JenisPerawatan string  `db:"jenis_perawatan" json:"jenis_perawatan" validate:"omitempty,max=255"`
	Biaya          float64 `db:"biaya"           json:"biaya"           validate:"omitempty,min=0"`
	Vendor         string  `db:"vendor"          json:"vendor"          validate:"omitempty,max=255"`
	Odometer       int     `db:"odometer"        json:"odometer"        validate:"omitempty,min=0"`
	Catatan        string  `db:"catatan"         json:"catatan"         validate:"omitempty"`
}

type MaintenanceResponse struct {
	ID             string  `json:"id"`
	IDBus          string  `json:"id_bus"`
	TanggalServis  string  `json:"tanggal_servis"`
	JenisPerawatan string  `json:"jenis_perawatan"`
	Biaya          float64 `json:"biaya"`
	FormattedBiaya string  `json:"formatted_biaya"`
	Vendor         string  `json:"vendor"`
	Odometer       int     `json:"odometer"`
	Catatan        string  `json:"catatan"`
	gDto.Metadata
}

func (r *MaintenanceResponse) FromModel(mod model.Maintenance) {
	r.ID = mod.ID
	r.IDBus = mod.IDBus
	r.TanggalServis = mod.TanggalServis
	r.JenisPerawatan = mod.JenisPerawatan
	r.Biaya = mod.Biaya
	r.FormattedBiaya = shared.FormatCurrency(BiayaCurrency, mod.Biaya)
	r.Vendor = mod.Vendor
	r.Odometer = mod.Odometer
	r.Catatan = mod.Catatan
	r.Metadata.FromModel(mod.Metadata)
}

type GetMaintenancesResponse struct {
	Maintenances []MaintenanceResponse `json:"maintenances"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetMaintenancesResponse) FromModels(models []model.Maintenance, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Maintenances = make([]MaintenanceResponse, len(models))
	for i, mod := range models {
		r.Maintenances[i].FromModel(mod)
	}
}
