package model

import (
	"time"

	"hotelsite/shared/model"
)

const (
	TableName  = "blogs"
	EntityName = "blog post"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldImage       = "image"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldAuthor      = "author"
	FieldDate        = "date"
)

type Blog struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Image       string    `db:"image"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	Author      string    `db:"author"`
	Date        time.Time `db:"date"`
	model.Metadata
}
