package dto

import (
	"hotelsite/internal/domains/packages/model"
	gDto "hotelsite/shared/dto"
	gModel "hotelsite/shared/model"
	"hotelsite/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreatePackageRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Price       *float64 `json:"price"       validate:"required"`
	Duration    string   `json:"duration"    validate:"required"`
	Image       string   `json:"image"       validate:"required"`
	Description string   `json:"description" validate:"required"`
	Features    []string `json:"features"    validate:"required,min=1"`
}

func (c *CreatePackageRequest) ToModel(user string) model.Package {
	return model.Package{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Price:       *c.Price,
		Duration:    c.Duration,
		Image:       c.Image,
		Description: c.Description,
		Features:    pq.StringArray(c.Features),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePackageRequest struct {
	Title       string   `db:"title"       json:"title"       validate:"omitempty"`
	Price       *float64 `db:"price"       json:"price"       validate:"omitempty"`
	Duration    string   `db:"duration"    json:"duration"    validate:"omitempty"`
	Image       string   `db:"image"       json:"image"       validate:"omitempty"`
	Description string   `db:"description" json:"description" validate:"omitempty"`
	Features    []string `json:"features"  validate:"omitempty"`
}

type PackageResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	gDto.Metadata
}

func (r *PackageResponse) FromModel(model model.Package) {
	r.ID = model.ID
	r.Title = model.Title
	r.Price = model.Price
	r.Duration = model.Duration
	r.Image = model.Image
	r.Description = model.Description
	r.Features = []string(model.Features)
	r.Metadata.FromModel(model.Metadata)
}

type GetPackagesResponse struct {
	Packages  []PackageResponse `json:"packages"`
	TotalData int               `json:"total_data"`
}

func (r *GetPackagesResponse) FromModels(models []model.Package) {
	r.TotalData = len(models)

	r.Packages = make([]PackageResponse, len(models))
	for i, mod := range models {
		r.Packages[i].FromModel(mod)
	}
}
