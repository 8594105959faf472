package model

import (
	"hotelsite/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "packages"
	EntityName = "package"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldPrice       = "price"
	FieldDuration    = "duration"
	FieldImage       = "image"
	FieldDescription = "description"
	FieldFeatures    = "features"
)

type Package struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Price       float64        `db:"price"`
	Duration    string         `db:"duration"`
	Image       string         `db:"image"`
	Description string         `db:"description"`
	Features    pq.StringArray `db:"features"`
	model.Metadata
}
