package dto

import (
	"github.com/google/uuid"

	"armada/internal/domains/testimonial/model"
	"armada/shared"
	gDto "armada/shared/dto"
	gModel "armada/shared/model"
	"armada/shared/timezone"
)

type CreateTestimonialRequest struct {
	Name    string `json:"name"    validate:"required,max=255"`
	Company string `json:"company" validate:"omitempty,max=255"`
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
	Image   string `json:"image"   validate:"omitempty,url"`
}

func (c *CreateTestimonialRequest) ToModel(user string) model.Testimonial {
	return model.Testimonial{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Company: c.Company,
		Rating:  c.Rating,
		Comment: c.Comment,
		Image:   c.Image,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTestimonialRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=255"`
	Company string `db:"company" json:"company" validate:"omitempty,max=255"`
	Rating  int    `db:"rating"  json:"rating"  validate:"omitempty,min=1,max=5"`
	Comment string `db:"comment" json:"comment" validate:"omitempty"`
	Image   string `db:"image"   json:"image"   validate:"omitempty,url"`
}

type TestimonialResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Image   string `json:"image"`
	gDto.Metadata
}

func (r *TestimonialResponse) FromModel(mod model.Testimonial) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Company = mod.Company
	r.Rating = mod.Rating
	r.Comment = mod.Comment
	r.Image = mod.Image
	r.Metadata.FromModel(mod.Metadata)
}

type GetTestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTestimonialsResponse) FromModels(models []model.Testimonial, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Testimonials = make([]TestimonialResponse, len(models))
	for i, mod := range models {
		r.Testimonials[i].FromModel(mod)
	}
}
