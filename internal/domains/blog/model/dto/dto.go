package dto

import (
	"time"

	"hotelsite/internal/domains/blog/model"
	"hotelsite/shared/constant"
	gDto "hotelsite/shared/dto"
	"hotelsite/shared/failure"
	gModel "hotelsite/shared/model"
	"hotelsite/shared/timezone"

	"github.com/google/uuid"
)

type CreateBlogRequest struct {
	Title       string `json:"title"       validate:"required"`
	Image       string `json:"image"       validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category"    validate:"omitempty"`
	Author      string `json:"author"      validate:"omitempty"`
	Date        string `json:"date"        validate:"omitempty"`
}

func (c *CreateBlogRequest) ToModel(user string) model.Blog {
	category := c.Category
	if category == constant.Empty {
		category = constant.BlogDefaultCategory
	}

	author := c.Author
	if author == constant.Empty {
		author = constant.BlogDefaultAuthor
	}

	date := timezone.Now()
	if c.Date != constant.Empty {
		if parsed, err := ParseBlogDate(c.Date); err == nil {
			date = parsed
		}
	}

	return model.Blog{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Image:       c.Image,
		Description: c.Description,
		Category:    category,
		Author:      author,
		Date:        date,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// ParseBlogDate accepts a plain date first and falls back to RFC3339.
func ParseBlogDate(value string) (time.Time, error) {
	parsed, err := timezone.Parse(constant.BookingDateFormat, value)
	if err == nil {
		return parsed, nil
	}

	parsed, err = timezone.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD or RFC3339") // nolint:wrapcheck
	}

	return parsed, nil
}

type UpdateBlogRequest struct {
	Title       string `db:"title"       json:"title"       validate:"omitempty"`
	Image       string `db:"image"       json:"image"       validate:"omitempty"`
	Description string `db:"description" json:"description" validate:"omitempty"`
	Category    string `db:"category"    json:"category"    validate:"omitempty"`
	Author      string `db:"author"      json:"author"      validate:"omitempty"`
	Date        string `json:"date"      validate:"omitempty"`
}

type BlogResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	Date        string `json:"date"`
	gDto.Metadata
}

func (r *BlogResponse) FromModel(model model.Blog) {
	r.ID = model.ID
	r.Title = model.Title
	r.Image = model.Image
	r.Description = model.Description
	r.Category = model.Category
	r.Author = model.Author
	r.Date = timezone.Format(model.Date, constant.DateFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetBlogsResponse struct {
	Blogs     []BlogResponse `json:"blogs"`
	TotalData int            `json:"total_data"`
}

func (r *GetBlogsResponse) FromModels(models []model.Blog) {
	r.TotalData = len(models)

	r.Blogs = make([]BlogResponse, len(models))
	for i, mod := range models {
		r.Blogs[i].FromModel(mod)
	}
}
