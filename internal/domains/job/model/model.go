package model

import "armada/shared/model"

const (
	TableName  = "jobs"
	EntityName = "job"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldLocation    = "location"
	FieldType        = "type"
	FieldDescription = "description"
	FieldImage       = "image"

	TypeFullTime  = "Full-time"
	TypePartTime  = "Part-time"
	TypeContract  = "Contract"
	TypeFreelance = "Freelance"
)

type Job struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Location    string `db:"location"`
	Type        string `db:"type"`
	Description string `db:"description"`
	Image       string `db:"image"`
	model.Metadata
}
