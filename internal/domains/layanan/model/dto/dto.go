package dto

import (
	"github.com/google/uuid"

	"armada/internal/domains/layanan/model"
	"armada/shared"
	gDto "armada/shared/dto"
	gModel "armada/shared/model"
	"armada/shared/timezone"
)

// BiayaCurrency is the label used when rendering service fees.
const BiayaCurrency = "Rp"

type CreateLayananRequest struct {
	NamaLayanan string  `json:"nama_layanan" validate:"required,max=255"`
	Kategori    string  `json:"kategori"     validate:"required,max=255"`
	Biaya       float64 `json:"biaya"        validate:"omitempty,min=0"`
	Deskripsi   string  `json:"deskripsi"    validate:"omitempty"`
}

func (c *CreateLayananRequest) ToModel(user string) model.Layanan {
	return model.Layanan{
		ID:          uuid.NewString(),
		NamaLayanan: c.NamaLayanan,
		Kategori:    c.Kategori,
		Biaya:       c.Biaya,
		Deskripsi:   c.Deskripsi,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateLayananRequest struct {
	NamaLayanan string  `db:"nama_layanan" json:"nama_layanan" validate:"omitempty,max=255"`
	Kategori    string  `db:"kategori"     json:"kategori"     validate:"omitempty,max=255"`
	Biaya       float64 `db:"biaya"        json:"biaya"        validate:"omitempty,min=0"`
	Deskripsi   string  `db:"deskripsi"    json:"deskripsi"    validate:"omitempty"`
}

type LayananResponse struct {
	ID             string  `json:"id"`
	NamaLayanan    string  `json:"nama_layanan"`
	Kategori       string  `json:"kategori"`
	Biaya          float64 `json:"biaya"`
	FormattedBiaya string  `json:"formatted_biaya"`
	Deskripsi      string  `json:"deskripsi"`
	gDto.Metadata
}

func (r *LayananResponse) FromModel(mod model.Layanan) {
	r.ID = mod.ID
	r.NamaLayanan = mod.NamaLayanan
	r.Kategori = mod.Kategori
	r.Biaya = mod.Biaya
	r.FormattedBiaya = shared.FormatCurrency(BiayaCurrency, mod.Biaya)
	r.Deskripsi = mod.Deskripsi
	r.Metadata.FromModel(mod.Metadata)
}

type GetLayananResponse struct {
	Layanan   []LayananResponse `json:"layanan"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetLayananResponse) FromModels(models []model.Layanan, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Layanan = make([]LayananResponse, len(models))
	for i, mod := range models {
		r.Layanan[i].FromModel(mod)
	}
}
