package dto

import (
	"hotelsite/internal/domains/room/model"
	"hotelsite/shared"
	"hotelsite/shared/constant"
	gDto "hotelsite/shared/dto"
	gModel "hotelsite/shared/model"
	"hotelsite/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var defaultAmenities = []string{"Free WiFi", "Air Conditioning", "Ocean View"}

type CreateRoomRequest struct {
	Title       string   `json:"title"        validate:"required,max=200"`
	Price       *float64 `json:"price"        validate:"required,min=0"`
	Description string   `json:"description"  validate:"required"`
	Category    string   `json:"category"     validate:"omitempty,max=100"`
	Image       string   `json:"image"        validate:"omitempty"`
	Size        string   `json:"size"         validate:"omitempty,max=50"`
	BedType     string   `json:"bed_type"     validate:"omitempty,max=100"`
	MaxAdults   *int     `json:"max_adults"   validate:"omitempty,min=0"`
	MaxChildren *int     `json:"max_children" validate:"omitempty,min=0"`
	Amenities   []string `json:"amenities"    validate:"omitempty"`
	Slug        string   `json:"slug"         validate:"omitempty,max=200"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	category := c.Category
	if category == constant.Empty {
		category = constant.RoomDefaultCategory
	}

	size := c.Size
	if size == constant.Empty {
		size = constant.RoomDefaultSize
	}

	bedType := c.BedType
	if bedType == constant.Empty {
		bedType = constant.RoomDefaultBedType
	}

	maxAdults := constant.RoomDefaultAdults
	if c.MaxAdults != nil {
		maxAdults = *c.MaxAdults
	}

	maxChildren := 0
	if c.MaxChildren != nil {
		maxChildren = *c.MaxChildren
	}

	amenities := c.Amenities
	if amenities == nil {
		amenities = defaultAmenities
	}

	slug := c.Slug
	if slug == constant.Empty {
		slug = shared.Slugify(c.Title)
	}

	return model.Room{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Slug:        slug,
		Price:       *c.Price,
		Description: c.Description,
		Category:    category,
		Image:       imageURL,
		Size:        size,
		BedType:     bedType,
		MaxAdults:   maxAdults,
		MaxChildren: maxChildren,
		Amenities:   pq.StringArray(amenities),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Title       string   `db:"title"        json:"title"        validate:"omitempty,max=200"`
	Price       *float64 `db:"price"        json:"price"        validate:"omitempty,min=0"`
	Description string   `db:"description"  json:"description"  validate:"omitempty"`
	Category    string   `db:"category"     json:"category"     validate:"omitempty,max=100"`
	Image       string   `json:"image"      validate:"omitempty"`
	Size        string   `db:"size"         json:"size"         validate:"omitempty,max=50"`
	BedType     string   `db:"bed_type"     json:"bed_type"     validate:"omitempty,max=100"`
	MaxAdults   *int     `db:"max_adults"   json:"max_adults"   validate:"omitempty,min=0"`
	MaxChildren *int     `db:"max_children" json:"max_children" validate:"omitempty,min=0"`
	Amenities   []string `json:"amenities"  validate:"omitempty"`
	Slug        string   `db:"slug"         json:"slug"         validate:"omitempty,max=200"`
}

type RoomResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Size        string   `json:"size"`
	BedType     string   `json:"bed_type"`
	MaxAdults   int      `json:"max_adults"`
	MaxChildren int      `json:"max_children"`
	Amenities   []string `json:"amenities"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Title = model.Title
	r.Slug = model.Slug
	r.Price = model.Price
	r.Description = model.Description
	r.Category = model.Category
	r.Image = model.Image
	r.Size = model.Size
	r.BedType = model.BedType
	r.MaxAdults = model.MaxAdults
	r.MaxChildren = model.MaxChildren
	r.Amenities = []string(model.Amenities)
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.TotalData = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
