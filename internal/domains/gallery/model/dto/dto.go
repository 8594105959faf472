package dto

import (
	"hotelsite/internal/domains/gallery/model"
	gDto "hotelsite/shared/dto"
	gModel "hotelsite/shared/model"
	"hotelsite/shared/timezone"

	"github.com/google/uuid"
)

type CreateGalleryRequest struct {
	Image string `json:"image" validate:"required"`
	Title string `json:"title" validate:"omitempty"`
}

func (c *CreateGalleryRequest) ToModel(user string, imageURL string) model.Gallery {
	return model.Gallery{
		ID:    uuid.NewString(),
		Title: c.Title,
		Image: imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type GalleryResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
	gDto.Metadata
}

func (r *GalleryResponse) FromModel(model model.Gallery) {
	r.ID = model.ID
	r.Title = model.Title
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetGalleriesResponse struct {
	Galleries []GalleryResponse `json:"galleries"`
	TotalData int               `json:"total_data"`
}

func (r *GetGalleriesResponse) FromModels(models []model.Gallery) {
	r.TotalData = len(models)

	r.Galleries = make([]GalleryResponse, len(models))
	for i, mod := range models {
		r.Galleries[i].FromModel(mod)
	}
}
