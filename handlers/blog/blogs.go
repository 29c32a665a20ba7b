package blog

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/globaledge/consult-api/model"
	"github.com/globaledge/consult-api/utils/cache"
	"github.com/globaledge/consult-api/utils/response"
	"github.com/globaledge/consult-api/utils/slug"
	"github.com/globaledge/consult-api/utils/validation"
)

const entityKey = "blogs"

// BlogHandler handles blog-related requests
type BlogHandler struct {
	db        *gorm.DB
	cache     *cache.RedisCache
	validator *validation.Validator
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(db *gorm.DB, redisCache *cache.RedisCache) *BlogHandler {
	return &BlogHandler{
		db:        db,
		cache:     redisCache,
		validator: validation.NewValidator(),
	}
}

// BlogRequest is the admin-form payload for an article. Category is
// free text here; the admin form constrains it to a fixed list.
type BlogRequest struct {
	Title        string   `json:"title" validate:"required,max=255"`
	Slug         string   `json:"slug"`
	Category     string   `json:"category" validate:"required,max=100"`
	Tags         []string `json:"tags"`
	Content      string   `json:"content" validate:"required"`
	Image        string   `json:"image" validate:"omitempty,url,max=512"`
	RelatedExams []string `json:"related_exams"`
	IsActive     *bool    `json:"is_active"`
}

// ListBlogs handles GET /api/blogs
func (h *BlogHandler) ListBlogs(c *fiber.Ctx) error {
	page, limit := response.ParsePageLimit(c.Query("page"), c.Query("limit"), 9)
	search := c.Query("search", "")
	category := c.Query("category", "")
	tag := c.Query("tag", "")
	isActive := c.Query("is_active", "")

	cacheKey := string(c.Request().URI().QueryString())
	if h.cache != nil {
		var cached struct {
			Items      []model.Blog            `json:"items"`
			Pagination response.PaginationMeta `json:"pagination"`
		}
		if err := h.cache.GetList(c.Context(), entityKey, cacheKey, &cached); err == nil {
			return response.Paginated(c, cached.Items, cached.Pagination)
		}
	}

	query := h.db.Model(&model.Blog{})

	if search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}
	if tag != "" && tag != "all" {
		query = query.Where("? = ANY(tags)", tag)
	}
	if isActive == "true" {
		query = query.Where("is_active = ?", true)
	} else if isActive == "false" {
		query = query.Where("is_active = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count blogs")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var blogs []model.Blog
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&blogs).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch blogs")
	}

	if h.cache != nil {
		_ = h.cache.SetList(c.Context(), entityKey, cacheKey, fiber.Map{"items": blogs, "pagination": pagination})
	}

	return response.Paginated(c, blogs, pagination)
}

// GetBlog handles GET /api/blogs/:slug
func (h *BlogHandler) GetBlog(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var blog model.Blog
	if err := h.db.Where("slug = ?", slugParam).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Blog not found")
		}
		return response.InternalServerError(c, "Failed to fetch blog")
	}

	return response.Success(c, blog)
}

// CreateBlog handles POST /api/admin/blogs
func (h *BlogHandler) CreateBlog(c *fiber.Ctx) error {
	var req BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Title = validation.SanitizeString(req.Title)
	if req.Slug == "" {
		req.Slug = slug.Slugify(req.Title)
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	var existing model.Blog
	if err := h.db.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		return response.Conflict(c, "Blog with this slug already exists")
	}

	blog := model.Blog{
		Title:        req.Title,
		Slug:         req.Slug,
		Category:     req.Category,
		Tags:         pq.StringArray(req.Tags),
		Content:      req.Content,
		Image:        req.Image,
		RelatedExams: pq.StringArray(req.RelatedExams),
		IsActive:     true,
	}
	if req.IsActive != nil {
		blog.IsActive = *req.IsActive
	}

	if err := h.db.Create(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "Blog with this slug already exists")
		}
		return response.InternalServerError(c, "Failed to create blog")
	}

	h.invalidate(c)
	return response.Created(c, blog)
}

// UpdateBlog handles PUT /api/admin/blogs/:id
func (h *BlogHandler) UpdateBlog(c *fiber.Ctx) error {
	id := c.Params("id")

	var blog model.Blog
	if err := h.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Blog not found")
		}
		return response.InternalServerError(c, "Failed to fetch blog")
	}

	var req BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Title = validation.SanitizeString(req.Title)
	if req.Slug == "" {
		req.Slug = slug.Slugify(req.Title)
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	var existing model.Blog
	if err := h.db.Where("slug = ? AND id != ?", req.Slug, blog.ID).First(&existing).Error; err == nil {
		return response.Conflict(c, "Blog with this slug already exists")
	}

	blog.Title = req.Title
	blog.Slug = req.Slug
	blog.Category = req.Category
	blog.Tags = pq.StringArray(req.Tags)
	blog.Content = req.Content
	blog.Image = req.Image
	blog.RelatedExams = pq.StringArray(req.RelatedExams)
	if req.IsActive != nil {
		blog.IsActive = *req.IsActive
	}

	if err := h.db.Save(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "Blog with this slug already exists")
		}
		return response.InternalServerError(c, "Failed to update blog")
	}

	h.invalidate(c)
	return response.SuccessWithMessage(c, "Blog updated successfully", blog)
}

// DeleteBlog handles DELETE /api/admin/blogs/:id
func (h *BlogHandler) DeleteBlog(c *fiber.Ctx) error {
	id := c.Params("id")

	var blog model.Blog
	if err := h.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Blog not found")
		}
		return response.InternalServerError(c, "Failed to fetch blog")
	}

	if err := h.db.Delete(&blog).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete blog")
	}

	h.invalidate(c)
	return response.SuccessWithMessage(c, "Blog deleted successfully", nil)
}

func (h *BlogHandler) invalidate(c *fiber.Ctx) {
	if h.cache != nil {
		_ = h.cache.InvalidateEntity(c.Context(), entityKey)
	}
}
