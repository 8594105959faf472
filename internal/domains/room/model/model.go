package model

import (
	"hotelsite/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldImage       = "image"
	FieldSize        = "size"
	FieldBedType     = "bed_type"
	FieldMaxAdults   = "max_adults"
	FieldMaxChildren = "max_children"
	FieldAmenities   = "amenities"
)

type Room struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Slug        string         `db:"slug"`
	Price       float64        `db:"price"`
	Description string         `db:"description"`
	Category    string         `db:"category"`
	Image       string         `db:"image"`
	Size        string         `db:"size"`
	BedType     string         `db:"bed_type"`
	MaxAdults   int            `db:"max_adults"`
	MaxChildren int            `db:"max_children"`
	Amenities   pq.StringArray `db:"amenities"`
	model.Metadata
}
