package model

import "armada/shared/model"

const (
	TableName  = "faqs"
	EntityName = "faq"

	FieldID       = "id"
	FieldQuestion = "question"
	FieldAnswer   = "answer"
)

type FAQ struct {
	ID       string `db:"id"`
	Question string `db:"question"`
	Answer   string `db:"answer"`
	model.Metadata
}
