package model

import "hotelsite/shared/model"

const (
	TableName  = "offers"
	EntityName = "offer"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldValidity    = "validity"
	FieldImageURL    = "image_url"
	FieldDiscount    = "discount"
)

// Price and discount are display strings ("From $199 / night", "20% OFF"),
// not amounts the backend computes with.
type Offer struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Price       string `db:"price"`
	Validity    string `db:"validity"`
	ImageURL    string `db:"image_url"`
	Discount    string `db:"discount"`
	model.Metadata
}
