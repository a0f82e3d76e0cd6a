package dto

import (
	"github.com/google/uuid"

	"armada/internal/domains/schedule/model"
	"armada/shared"
	gDto "armada/shared/dto"
	gModel "armada/shared/model"
	"armada/shared/timezone"
)

type CreateScheduleRequest struct {
	IDBus          string `json:"id_bus"          validate:"required,max=64"`
	NamaPelanggan  string `json:"nama_pelanggan"  validate:"required,max=255"`
	TanggalMulai   string `json:"tanggal_mulai"   validate:"required"`
	TanggalSelesai string `json:"tanggal_selesai" validate:"required"`
	Tujuan         string `json:"tujuan"          validate:"omitempty,max=255"`
	Status         string `json:"status"          validate:"omitempty,oneof=Direncanakan Berjalan Selesai Dibatalkan"`
	Catatan        string `json:"catatan"         validate:"omitempty"`
}

func (c *CreateScheduleRequest) ToModel(user string) model.Schedule {
	status := c.Status
	if status == "" {
		status = model.StatusDirencanakan
	}

	return model.Schedule{
		ID:             uuid.NewString(),
		IDBus:          c.IDBus,
		NamaPelanggan:  c.NamaPelanggan,
		TanggalMulai:   c.TanggalMulai,
		TanggalSelesai: c.TanggalSelesai,
		Tujuan:         c.Tujuan,
		Status:         status,
		Catatan:        c.Catatan,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateScheduleRequest struct {
	IDBus          string `db:"id_bus"          json:"id_bus"          validate:"omitempty,max=64"`
	NamaPelanggan  string `db:"nama_pelanggan"  json:"nama_pelanggan"  validate:"omitempty,max=255"`
	TanggalMulai   string `db:"tanggal_mulai"   json:"tanggal_mulai"   validate:"omitempty"`
	TanggalSelesai string `db:"tanggal_selesai" json:"tanggal_selesai" validate:"omitempty"`
	Tujuan         string `db:"tujuan"          json:"tujuan"          validate:"omitempty,max=255"`
	Status         string `db:"status"          json:"status"          validate:"omitempty,oneof=Direncanakan Berjalan Selesai Dibatalkan"`
	Catatan        string `db:"catatan"         json:"catatan"         validate:"omitempty"`
}

type ScheduleResponse struct {
	ID             string `json:"id"`
	IDBus          string `json:"id_bus"`
	NamaPelanggan  string `json:"nama_pelanggan"`
	TanggalMulai   string `json:"tanggal_mulai"`
	TanggalSelesai string `json:"tanggal_selesai"`
	Tujuan         string `json:"tujuan"`
	Status         string `json:"status"`
	Catatan        string `json:"catatan"`
	gDto.Metadata
}

func (r *ScheduleResponse) FromModel(mod model.Schedule) {
	r.ID = mod.ID
	r.IDBus = mod.IDBus
	r.NamaPelanggan = mod.NamaPelanggan
	r.TanggalMulai = mod.TanggalMulai
	r.TanggalSelesai = mod.TanggalSelesai
	r.Tujuan = mod.Tujuan
	r.Status = mod.Status
	r.Catatan = mod.Catatan
	r.Metadata.FromModel(mod.Metadata)
}

type GetSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetSchedulesResponse) FromModels(models []model.Schedule, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Schedules = make([]ScheduleResponse, len(models))
	for i, mod := range models {
		r.Schedules[i].FromModel(mod)
	}
}
