package dto

import (
	"hotelsite/internal/domains/offer/model"
	gDto "hotelsite/shared/dto"
	gModel "hotelsite/shared/model"
	"hotelsite/shared/timezone"

	"github.com/google/uuid"
)

type CreateOfferRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price"       validate:"required"`
	Validity    string `json:"validity"    validate:"required"`
	ImageURL    string `json:"image_url"   validate:"required"`
	Discount    string `json:"discount"    validate:"omitempty"`
}

func (c *CreateOfferRequest) ToModel(user string) model.Offer {
	return model.Offer{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Price:       c.Price,
		Validity:    c.Validity,
		ImageURL:    c.ImageURL,
		Discount:    c.Discount,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type OfferResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Validity    string `json:"validity"`
	ImageURL    string `json:"image_url"`
	Discount    string `json:"discount"`
	gDto.Metadata
}

func (r *OfferResponse) FromModel(model model.Offer) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Price = model.Price
	r.Validity = model.Validity
	r.ImageURL = model.ImageURL
	r.Discount = model.Discount
	r.Metadata.FromModel(model.Metadata)
}

type GetOffersResponse struct {
	Offers    []OfferResponse `json:"offers"`
	TotalData int             `json:"total_data"`
}

func (r *GetOffersResponse) FromModels(models []model.Offer) {
	r.TotalData = len(models)

	r.Offers = make([]OfferResponse, len(models))
	for i, mod := range models {
		r.Offers[i].FromModel(mod)
	}
}
