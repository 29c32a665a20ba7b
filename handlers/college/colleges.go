package college

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/globaledge/consult-api/model"
	"github.com/globaledge/consult-api/utils/cache"
	"github.com/globaledge/consult-api/utils/response"
)

const entityKey = "colleges"

// CollegeHandler handles college-related requests
type CollegeHandler struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

// NewCollegeHandler creates a new college handler
func NewCollegeHandler(db *gorm.DB, redisCache *cache.RedisCache) *CollegeHandler {
	return &CollegeHandler{
		db:    db,
		cache: redisCache,
	}
}

type listPayload struct {
	Items      []model.College         `json:"items"`
	Pagination response.PaginationMeta `json:"pagination"`
}

// ListColleges handles GET /api/colleges
func (h *CollegeHandler) ListColleges(c *fiber.Ctx) error {
	page, limit := response.ParsePageLimit(c.Query("page"), c.Query("limit"), 9)
	search := c.Query("search", "")
	country := c.Query("country", "")
	exam := c.Query("exam", "")
	category := c.Query("category", "")
	isActive := c.Query("is_active", "")

	cacheKey := string(c.Request().URI().QueryString())
	if h.cache != nil {
		var cached listPayload
		if err := h.cache.GetList(c.Context(), entityKey, cacheKey, &cached); err == nil {
			return response.Paginated(c, cached.Items, cached.Pagination)
		}
	}

	query := h.db.Model(&model.College{})

	if search != "" {
		query = query.Where("name ILIKE ? OR city ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if country != "" && country != "all" {
		query = query.Where("country_slug = ?", country)
	}
	if exam != "" && exam != "all" {
		query = query.Where("? = ANY(exams)", exam)
	}
	if category != "" && category != "all" {
		query = query.Where("? = ANY(categories)", category)
	}
	if isActive == "true" {
		query = query.Where("is_active = ?", true)
	} else if isActive == "false" {
		query = query.Where("is_active = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count colleges")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var colleges []model.College
	if err := query.Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&colleges).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch colleges")
	}

	if h.cache != nil {
		_ = h.cache.SetList(c.Context(), entityKey, cacheKey, listPayload{Items: colleges, Pagination: pagination})
	}

	return response.Paginated(c, colleges, pagination)
}

// GetCollege handles GET /api/colleges/:slug
func (h *CollegeHandler) GetCollege(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var college model.College
	if err := h.db.Where("slug = ?", slugParam).First(&college).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "College not found")
		}
		return response.InternalServerError(c, "Failed to fetch college")
	}

	return response.Success(c, college)
}

// GetRelatedColleges handles GET /api/colleges/:slug/related.
// Related means same country or at least one shared category.
func (h *CollegeHandler) GetRelatedColleges(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var college model.College
	if err := h.db.Where("slug = ?", slugParam).First(&college).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "College not found")
		}
		return response.InternalServerError(c, "Failed to fetch college")
	}

	var related []model.College
	query := h.db.Where("id != ? AND is_active = ?", college.ID, true)
	if len(college.Categories) > 0 {
		query = query.Where("country_slug = ? OR categories && ?", college.CountrySlug, college.Categories)
	} else {
		query = query.Where("country_slug = ?", college.CountrySlug)
	}
	if err := query.Order("name ASC").Limit(6).Find(&related).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch related colleges")
	}

	return response.Success(c, related)
}

// CreateCollege handles POST /api/admin/colleges
func (h *CollegeHandler) CreateCollege(c *fiber.Ctx) error {
	var req CollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	// Check if a college with the same slug already exists
	var existing model.College
	if err := h.db.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		return response.Conflict(c, "College with this slug already exists")
	}

	college := model.College{IsActive: true}
	req.apply(&college)

	if err := h.db.Create(&college).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "College with this slug already exists")
		}
		return response.InternalServerError(c, "Failed to create college")
	}

	h.invalidate(c)
	return response.Created(c, college)
}

// UpdateCollege handles PUT /api/admin/colleges/:id
func (h *CollegeHandler) UpdateCollege(c *fiber.Ctx) error {
	id := c.Params("id")

	var college model.College
	if err := h.db.First(&college, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "College not found")
		}
		return response.InternalServerError(c, "Failed to fetch college")
	}

	var req CollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Required fields are re-validated server-side regardless of what
	// the admin form already checked.
	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	var existing model.College
	if err := h.db.Where("slug = ? AND id != ?", req.Slug, college.ID).First(&existing).Error; err == nil {
		return response.Conflict(c, "College with this slug already exists")
	}

	req.apply(&college)

	if err := h.db.Save(&college).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "College with this slug already exists")
		}
		return response.InternalServerError(c, "Failed to update college")
	}

	h.invalidate(c)
	return response.SuccessWithMessage(c, "College updated successfully", college)
}

// DeleteCollege handles DELETE /api/admin/colleges/:id.
// The delete is unconditional: no soft delete, no cascade into
// entities that reference this college.
func (h *CollegeHandler) DeleteCollege(c *fiber.Ctx) error {
	id := c.Params("id")

	var college model.College
	if err := h.db.First(&college, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "College not found")
		}
		return response.InternalServerError(c, "Failed to fetch college")
	}

	if err := h.db.Delete(&college).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete college")
	}

	h.invalidate(c)
	return response.SuccessWithMessage(c, "College deleted successfully", nil)
}

// invalidate drops this entity's cached lists only; caches of entities
// referencing colleges are left as they are.
func (h *CollegeHandler) invalidate(c *fiber.Ctx) {
	if h.cache != nil {
		_ = h.cache.InvalidateEntity(c.Context(), entityKey)
	}
}
