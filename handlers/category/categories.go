package category

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/globaledge/consult-api/model"
	"github.com/globaledge/consult-api/utils/cache"
	"github.com/globaledge/consult-api/utils/response"
	"github.com/globaledge/consult-api/utils/slug"
	"github.com/globaledge/consult-api/utils/validation"
)

const entityKey = "categories"

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	db        *gorm.DB
	cache     *cache.RedisCache
	validator *validation.Validator
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(db *gorm.DB, redisCache *cache.RedisCache) *CategoryHandler {
	return &CategoryHandler{
		db:        db,
		cache:     redisCache,
		validator: validation.NewValidator(),
	}
}

// CategoryRequest is the admin-form payload for a category
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image" validate:"omitempty,url,max=512"`
	IsActive    *bool  `json:"is_active"`
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	page, limit := response.ParsePageLimit(c.Query("page"), c.Query("limit"), 50)
	search := c.Query("search", "")
	isActive := c.Query("is_active", "")

	cacheKey := string(c.Request().URI().QueryString())
	if h.cache != nil {
		var cached struct {
			Items      []model.Category        `json:"items"`
			Pagination response.PaginationMeta `json:"pagination"`
		}
		if err := h.cache.GetList(c.Context(), entityKey, cacheKey, &cached); err == nil {
			return response.Paginated(c, cached.Items, cached.Pagination)
		}
	}

	query := h.db.Model(&model.Category{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if isActive == "true" {
		query = query.Where("is_active = ?", true)
	} else if isActive == "false" {
		query = query.Where("is_active = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count categories")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var categories []model.Category
	if err := query.Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&categories).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch categories")
	}

	if h.cache != nil {
		_ = h.cache.SetList(c.Context(), entityKey, cacheKey, fiber.Map{"items": categories, "pagination": pagination})
	}

	return response.Paginated(c, categories, pagination)
}

// GetCategory handles GET /api/categories/:slug
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var category model.Category
	if err := h.db.Where("slug = ?", slugParam).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Category not found")
		}
		return response.InternalServerError(c, "Failed to fetch category")
	}

	return response.Success(c, category)
}

// CreateCategory handles POST /api/admin/categories
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	if req.Slug == "" {
		req.Slug = slug.Slugify(req.Name)
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	var existing model.Category
	if err := h.db.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		return response.Conflict(c, "Category with this slug already exists")
	}

	category := model.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Image:       req.Image,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := h.db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "Category with this slug already exists")
		}
		return response.InternalServerError(c, "Failed to create category")
	}

	h.invalidate(c)
	return response.Created(c, category)
}

// UpdateCategory handles PUT /api/admin/categories/:id
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var category model.Category
	if err := h.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Category not found")
		}
		return response.InternalServerError(c, "Failed to fetch category")
	}

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	if req.Slug == "" {
		req.Slug = slug.Slugify(req.Name)
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	var existing model.Category
	if err := h.db.Where("slug = ? AND id != ?", req.Slug, category.ID).First(&existing).Error; err == nil {
		return response.Conflict(c, "Category with this slug already exists")
	}

	category.Name = req.Name
	category.Slug = req.Slug
	category.Description = req.Description
	category.Image = req.Image
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := h.db.Save(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "Category with this slug already exists")
		}
		return response.InternalServerError(c, "Failed to update category")
	}

	h.invalidate(c)
	return response.SuccessWithMessage(c, "Category updated successfully", category)
}

// DeleteCategory handles DELETE /api/admin/categories/:id.
// Categories are soft labels: colleges referencing this slug keep the
// now-orphaned reference, there is no cascade.
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")

	var category model.Category
	if err := h.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Category not found")
		}
		return response.InternalServerError(c, "Failed to fetch category")
	}

	if err := h.db.Delete(&category).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete category")
	}

	h.invalidate(c)
	return response.SuccessWithMessage(c, "Category deleted successfully", nil)
}

func (h *CategoryHandler) invalidate(c *fiber.Ctx) {
	if h.cache != nil {
		_ = h.cache.InvalidateEntity(c.Context(), entityKey)
	}
}
