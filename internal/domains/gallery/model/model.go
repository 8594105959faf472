package model

import "hotelsite/shared/model"

const (
	TableName  = "galleries"
	EntityName = "gallery photo"

	FieldID    = "id"
	FieldTitle = "title"
	FieldImage = "image"
)

type Gallery struct {
	ID    string `db:"id"`
	Title string `db:"title"`
	Image string `db:"image"`
	model.Metadata
}
