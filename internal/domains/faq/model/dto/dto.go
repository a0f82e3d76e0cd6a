package dto

import (
	"github.com/google/uuid"

	"armada/internal/domains/faq/model"
	"armada/shared"
	gDto "armada/shared/dto"
	gModel "armada/shared/model"
	"armada/shared/timezone"
)

type CreateFAQRequest struct {
	Pertanyaan string `json:"pertanyaan" validate:"required,max=500"`
	Jawaban    string `json:"jawaban"    validate:"required"`
}

func (c *CreateFAQRequest) ToModel(user string) model.FAQ {
	return model.FAQ{
		ID:       uuid.NewString(),
		Question: c.Pertanyaan,
		Answer:   c.Jawaban,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFAQRequest struct {
	Pertanyaan string `db:"question" json:"pertanyaan" validate:"omitempty,max=500"`
	Jawaban    string `db:"answer"   json:"jawaban"    validate:"omitempty"`
}

type FAQResponse struct {
	ID         string `json:"id"`
	Pertanyaan string `json:"pertanyaan"`
	Jawaban    string `json:"jawaban"`
	gDto.Metadata
}

func (r *FAQResponse) FromModel(mod model.FAQ) {
	r.ID = mod.ID
	r.Pertanyaan = mod.Question
	r.Jawaban = mod.Answer
	r.Metadata.FromModel(mod.Metadata)
}

type GetFAQsResponse struct {
	FAQs      []FAQResponse `json:"faqs"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetFAQsResponse) FromModels(models []model.FAQ, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.FAQs = make([]FAQResponse, len(models))
	for i, mod := range models {
		r.FAQs[i].FromModel(mod)
	}
}
