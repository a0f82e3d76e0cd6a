package model

import "armada/shared/model"

const (
	TableName  = "testimonials"
	EntityName = "testimonial"

	FieldID      = "id"
	FieldName    = "name"
	FieldCompany = "company"
	FieldRating  = "rating"
	FieldComment = "comment"
	FieldImage   = "image"
)

type Testimonial struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Company string `db:"company"`
	Rating  int    `db:"rating"`
	Comment string `db:"comment"`
	Image   string `db:"image"`
	model.Metadata
}
