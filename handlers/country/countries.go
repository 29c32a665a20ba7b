package country

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

const entityKey = "countries"

// CountryHandler handles country-related requests
type CountryHandler struct {
	db        *gorm.DB
	cache     *cache.RedisCache
	validator *validation.Validator
}

// NewCountryHandler creates a new country handler
func NewCountryHandler(db *gorm.DB, redisCache *cache.RedisCache) *CountryHandler {
	return &CountryHandler{
		db:        db,
		cache:     redisCache,
		validator: validation.NewValidator(),
	}
}

// CountryRequest is the admin-form payload for a country
type CountryRequest struct {
	Name            string `json:"name" validate:"required,max=255"`
	Slug            string `json:"slug"`
	Flag            string `json:"flag" validate:"max=16"`
	Description     string `json:"description"`
	MetaTitle       string `json:"meta_title" validate:"max=255"`
	MetaDescription string `json:"meta_description" validate:"max=512"`
	IsActive        *bool  `json:"is_active"`
}

// ListCountries handles GET /api/countries
func (h *CountryHandler) ListCountries(c *fiber.Ctx) error {
	page, limit := response.ParsePageLimit(c.Query("page"), c.Query("limit"), 50)
	search := c.Query("search", "")
	isActive := c.Query("is_active", "")

	cacheKey := string(c.Request().URI().QueryString())
	if h.cache != nil {
		var cached struct {
			Items      []model.Country         `json:"items"`
			Pagination response.PaginationMeta `json:"pagination"`
		}
		if err := h.cache.GetList(c.Context(), entityKey, cacheKey, &cached); err == nil {
			return response.Paginated(c, cached.Items, cached.Pagination)
		}
	}

	query := h.db.Model(&model.Country{})

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
		return response.InternalServerError(c, "Failed to count countries")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var countries []model.Country
	if err := query.Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&countries).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch countries")
	}

	if h.cache != nil {
		_ = h.cache.SetList(c.Context(), entityKey, cacheKey, fiber.Map{"items": countries, "pagination": pagination})
	}

	return response.Paginated(c, countries, pagination)
}

// GetCountry handles GET /api/countries/:slug
func (h *CountryHandler) GetCountry(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var country model.Country
	if err := h.db.Where("slug = ?", slugParam).First(&country).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Country not found")
		}
		return response.InternalServerError(c, "Failed to fetch country")
	}

	return response.Success(c, country)
}

// CreateCountry handles POST /api/admin/countries
func (h *CountryHandler) CreateCountry(c *fiber.Ctx) error {
	var req CountryRequest
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

	var existing model.Country
	if err := h.db.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		return response.Conflict(c, "Country with this slug already exists")
	}

	country := model.Country{
		Name:            req.Name,
		Slug:            req.Slug,
		Flag:            req.Flag,
		Description:     req.Description,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		IsActive:        true,
	}
	if req.IsActive != nil {
		country.IsActive = *req.IsActive
	}

	if err := h.db.Create(&country).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "Country with this slug already exists")
		}
		return response.InternalServerError(c, "Failed to create country")
	}

	h.invalidate(c)
	return response.Created(c, country)
}

// UpdateCountry handles PUT /api/admin/countries/:id
func (h *CountryHandler) UpdateCountry(c *fiber.Ctx) error {
	id := c.Params("id")

	var country model.Country
	if err := h.db.First(&country, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Country not found")
		}
		return response.InternalServerError(c, "Failed to fetch country")
	}

	var req CountryRequest
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

	var existing model.Country
	if err := h.db.Where("slug = ? AND id != ?", req.Slug, country.ID).First(&existing).Error; err == nil {
		return response.Conflict(c, "Country with this slug already exists")
	}

	country.Name = req.Name
	country.Slug = req.Slug
	country.Flag = req.Flag
	country.Description = req.Description
	country.MetaTitle = req.MetaTitle
	country.MetaDescription = req.MetaDescription
	if req.IsActive != nil {
		country.IsActive = *req.IsActive
	}

	if err := h.db.Save(&country).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "Country with this slug already exists")
		}
		return response.InternalServerError(c, "Failed to update country")
	}

	h.invalidate(c)
	return response.SuccessWithMessage(c, "Country updated successfully", country)
}

// DeleteCountry handles DELETE /api/admin/countries/:id.
// Colleges referencing this country keep their slug reference.
func (h *CountryHandler) DeleteCountry(c *fiber.Ctx) error {
	id := c.Params("id")

	var country model.Country
	if err := h.db.First(&country, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Country not found")
		}
		return response.InternalServerError(c, "Failed to fetch country")
	}

	if err := h.db.Delete(&country).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete country")
	}

	h.invalidate(c)
	return response.SuccessWithMessage(c, "Country deleted successfully", nil)
}

func (h *CountryHandler) invalidate(c *fiber.Ctx) {
	if h.cache != nil {
		_ = h.cache.InvalidateEntity(c.Context(), entityKey)
	}
}
