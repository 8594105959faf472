package blog

import (
	"net/http"

	"hotelsite/infras/otel"
	"hotelsite/internal/domains/blog/model/dto"
	"hotelsite/internal/domains/blog/service"
	"hotelsite/shared/constant"
	"hotelsite/shared/validator"
	"hotelsite/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Blog
	otel    otel.Otel
}

func New(service service.Blog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/blogs", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBlogs)
		routerGroup.Post("/", handler.CreateBlog)
		routerGroup.Get("/{id}", handler.GetBlogByID)
		routerGroup.Put("/{id}", handler.UpdateBlog)
		routerGroup.Delete("/{id}", handler.DeleteBlog)
	})
}

// CreateBlog handles the creation of a new blog post.
// @Summary Create a new blog post
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body dto.CreateBlogRequest true "Blog post payload"
// @Success 201 {object} response.Data[dto.BlogResponse] "Created blog post"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/blogs [post]
func (handler *Handler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBlog")
	defer scope.End()

	var req dto.CreateBlogRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	post, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create blog post")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blog post created successfully")

	response.WithJSON(w, http.StatusCreated, post)
}

// GetBlogs retrieves all blog posts, newest first.
// @Summary Get all blog posts
// @Tags Blog
// @Produce json
// @Success 200 {object} response.Data[dto.GetBlogsResponse] "List of blog posts"
// @Failure 500 {object} response.Error
// @Router /api/blogs [get]
func (handler *Handler) GetBlogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlogs")
	defer scope.End()

	posts, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blog posts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blog posts retrieved successfully")

	response.WithJSON(w, http.StatusOK, posts)
}

// GetBlogByID retrieves a blog post by its ID.
// @Summary Get a blog post by ID
// @Tags Blog
// @Produce json
// @Param id path string true "Blog post ID"
// @Success 200 {object} response.Data[dto.BlogResponse] "Blog post details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/blogs/{id} [get]
func (handler *Handler) GetBlogByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlogByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	post, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blog post by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blog post retrieved successfully")

	response.WithJSON(w, http.StatusOK, post)
}

// UpdateBlog updates an existing blog post by its ID.
// @Summary Update a blog post by ID
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Blog post ID"
// @Param request body dto.UpdateBlogRequest true "Fields to update"
// @Success 200 {object} response.Data[dto.BlogResponse] "Updated blog post"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/blogs/{id} [put]
func (handler *Handler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBlog")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateBlogRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	post, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update blog post")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blog post updated successfully")

	response.WithJSON(w, http.StatusOK, post)
}

// DeleteBlog deletes a blog post by its ID.
// @Summary Delete a blog post by ID
// @Tags Blog
// @Produce json
// @Param id path string true "Blog post ID"
// @Success 200 {object} response.Message "Blog post deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/blogs/{id} [delete]
func (handler *Handler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBlog")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete blog post")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blog post deleted successfully")

	response.WithMessage(w, http.StatusOK, "Blog post deleted successfully")
}
