package dto

import (
	"strings"

	"github.com/google/uuid"

	"armada/internal/domains/promo/model"
	"armada/shared"
	gDto "armada/shared/dto"
	gModel "armada/shared/model"
	"armada/shared/timezone"
)

// NormalizeKode canonicalizes promo codes: uppercase, no spaces.
func NormalizeKode(kode string) string {
	return strings.ToUpper(strings.ReplaceAll(kode, " ", ""))
}

type CreatePromoRequest struct {
	KodePromo         string  `json:"kode_promo"         validate:"required,max=64"`
	Deskripsi         string  `json:"deskripsi"          validate:"omitempty"`
	JenisDiskon       string  `json:"jenis_diskon"       validate:"required,oneof=persen tetap"`
	NilaiDiskon       float64 `json:"nilai_diskon"       validate:"omitempty,min=0"`
	TanggalKadaluarsa string  `json:"tanggal_kadaluarsa" validate:"omitempty"`
	IsActive          *bool   `json:"is_active"          validate:"omitempty"`
}

func (c *CreatePromoRequest) ToModel(user string) model.Promo {
	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	return model.Promo{
		ID:                uuid.NewString(),
		KodePromo:         NormalizeKode(c.KodePromo),
		Deskripsi:         c.Deskripsi,
		JenisDiskon:       c.JenisDiskon,
		NilaiDiskon:       c.NilaiDiskon,
		TanggalKadaluarsa: c.TanggalKadaluarsa,
		IsActive:          isActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePromoRequest struct {
	KodePromo         string  `db:"kode_promo"         json:"kode_promo"         validate:"omitempty,max=64"`
	Deskripsi         string  `db:"deskripsi"          json:"deskripsi"          validate:"omitempty"`
	JenisDiskon       string  `db:"jenis_diskon"       json:"jenis_diskon"       validate:"omitempty,oneof=persen tetap"`
	NilaiDiskon       float64 `db:"nilai_diskon"       json:"nilai_diskon"       validate:"omitempty,min=0"`
	TanggalKadaluarsa string  `db:"tanggal_kadaluarsa" json:"tanggal_kadaluarsa" validate:"omitempty"`
	IsActive          *bool   `db:"is_active"          json:"is_active"          validate:"omitempty"`
}

// Normalize canonicalizes the promo code in place when one was given.
func (u *UpdatePromoRequest) Normalize() {
	if u.KodePromo != "" {
		u.KodePromo = NormalizeKode(u.KodePromo)
	}
}

type PromoResponse struct {
	ID                string  `json:"id"`
	KodePromo         string  `json:"kode_promo"`
	Deskripsi         string  `json:"deskripsi"`
	JenisDiskon       string  `json:"jenis_diskon"`
	NilaiDiskon       float64 `json:"nilai_diskon"`
	TanggalKadaluarsa string  `json:"tanggal_kadaluarsa"`
	IsActive          bool    `json:"is_active"`
	gDto.Metadata
}

func (r *PromoResponse) FromModel(mod model.Promo) {
	r.ID = mod.ID
	r.KodePromo = mod.KodePromo
	r.Deskripsi = mod.Deskripsi
	r.JenisDiskon = mod.JenisDiskon
	r.NilaiDiskon = mod.NilaiDiskon
	r.TanggalKadaluarsa = mod.TanggalKadaluarsa
	r.IsActive = mod.IsActive
	r.Metadata.FromModel(mod.Metadata)
}

type GetPromosResponse struct {
	Promos    []PromoResponse `json:"promos"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetPromosResponse) FromModels(models []model.Promo, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Promos = make([]PromoResponse, len(models))
	for i, mod := range models {
		r.Promos[i].FromModel(mod)
	}
}
