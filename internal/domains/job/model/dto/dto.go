package dto

import (
	"github.com/google/uuid"

	"armada/internal/domains/job/model"
	"armada/shared"
	gDto "armada/shared/dto"
	gModel "armada/shared/model"
	"armada/shared/timezone"
)

type CreateJobRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Location    string `json:"location"    validate:"required,max=255"`
	Type        string `json:"type"        validate:"required,oneof=Full-time Part-time Contract Freelance"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image"       validate:"omitempty,url"`
}

func (c *CreateJobRequest) ToModel(user string) model.Job {
	return model.Job{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Location:    c.Location,
		Type:        c.Type,
		Description: c.Description,
		Image:       c.Image,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateJobRequest struct {
	Title       string `db:"title"       json:"title"       validate:"omitempty,max=255"`
	Location    string `db:"location"    json:"location"    validate:"omitempty,max=255"`
	Type        string `db:"type"        json:"type"        validate:"omitempty,oneof=Full-time Part-time Contract Freelance"`
	Description string `db:"description" json:"description" validate:"omitempty"`
	Image       string `db:"image"       json:"image"       validate:"omitempty,url"`
}

type JobResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Image       string `json:"image"`
	gDto.Metadata
}

func (r *JobResponse) FromModel(mod model.Job) {
	r.ID = mod.ID
	r.Title = mod.Title
	r.Location = mod.Location
	r.Type = mod.Type
	r.Description = mod.Description
	r.Image = mod.Image
	r.Metadata.FromModel(mod.Metadata)
}

type GetJobsResponse struct {
	Jobs      []JobResponse `json:"jobs"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetJobsResponse) FromModels(models []model.Job, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Jobs = make([]JobResponse, len(models))
	for i, mod := range models {
		r.Jobs[i].FromModel(mod)
	}
}
