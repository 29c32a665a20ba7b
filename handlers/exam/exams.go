package exam

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/globaledge/consult-api/model"
	"github.com/globaledge/consult-api/utils/cache"
	"github.com/globaledge/consult-api/utils/response"
)

const entityKey = "exams"

// ExamHandler handles exam-related requests
type ExamHandler struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

// NewExamHandler creates a new exam handler
func NewExamHandler(db *gorm.DB, redisCache *cache.RedisCache) *ExamHandler {
	return &ExamHandler{
		db:    db,
		cache: redisCache,
	}
}

type listPayload struct {
	Items      []model.Exam            `json:"items"`
	Pagination response.PaginationMeta `json:"pagination"`
}

// ListExams handles GET /api/exams
func (h *ExamHandler) ListExams(c *fiber.Ctx) error {
	page, limit := response.ParsePageLimit(c.Query("page"), c.Query("limit"), 9)
	search := c.Query("search", "")
	examType := c.Query("exam_type", "")
	mode := c.Query("exam_mode", "")
	isActive := c.Query("is_active", "")

	cacheKey := string(c.Request().URI().QueryString())
	if h.cache != nil {
		var cached listPayload
		if err := h.cache.GetList(c.Context(), entityKey, cacheKey, &cached); err == nil {
			return response.Paginated(c, cached.Items, cached.Pagination)
		}
	}

	query := h.db.Model(&model.Exam{})

	if search != "" {
		query = query.Where("name ILIKE ? OR short_name ILIKE ? OR conducting_body ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if examType != "" && examType != "all" {
		query = query.Where("exam_type = ?", examType)
	}
	if mode != "" && mode != "all" {
		query = query.Where("exam_mode = ?", mode)
	}
	if isActive == "true" {
		query = query.Where("is_active = ?", true)
	} else if isActive == "false" {
		query = query.Where("is_active = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count exams")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var exams []model.Exam
	if err := query.Order("display_order ASC, name ASC").
		Limit(limit).
		Offset(offset).
		Find(&exams).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch exams")
	}

	if h.cache != nil {
		_ = h.cache.SetList(c.Context(), entityKey, cacheKey, listPayload{Items: exams, Pagination: pagination})
	}

	return response.Paginated(c, exams, pagination)
}

// GetExam handles GET /api/exams/:slug
func (h *ExamHandler) GetExam(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var exam model.Exam
	if err := h.db.Where("slug = ?", slugParam).First(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Exam not found")
		}
		return response.InternalServerError(c, "Failed to fetch exam")
	}

	return response.Success(c, exam)
}

// CreateExam handles POST /api/admin/exams
func (h *ExamHandler) CreateExam(c *fiber.Ctx) error {
	var req ExamRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	var existing model.Exam
	if err := h.db.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		return response.Conflict(c, "Exam with this slug already exists")
	}

	exam := model.Exam{IsActive: true}
	req.apply(&exam)

	if err := h.db.Create(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "Exam with this slug already exists")
		}
		return response.InternalServerError(c, "Failed to create exam")
	}

	h.invalidate(c)
	return response.Created(c, exam)
}

// UpdateExam handles PUT /api/admin/exams/:id.
// Slug uniqueness is re-checked against every other exam before the
// write.
func (h *ExamHandler) UpdateExam(c *fiber.Ctx) error {
	id := c.Params("id")

	var exam model.Exam
	if err := h.db.First(&exam, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Exam not found")
		}
		return response.InternalServerError(c, "Failed to fetch exam")
	}

	var req ExamRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	var existing model.Exam
	if err := h.db.Where("slug = ? AND id != ?", req.Slug, exam.ID).First(&existing).Error; err == nil {
		return response.Conflict(c, "Exam with this slug already exists")
	}

	req.apply(&exam)

	if err := h.db.Save(&exam).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.Conflict(c, "Exam with this slug already exists")
		}
		return response.InternalServerError(c, "Failed to update exam")
	}

	h.invalidate(c)
	return response.SuccessWithMessage(c, "Exam updated successfully", exam)
}

// DeleteExam handles DELETE /api/admin/exams/:id
func (h *ExamHandler) DeleteExam(c *fiber.Ctx) error {
	id := c.Params("id")

	var exam model.Exam
	if err := h.db.First(&exam, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Exam not found")
		}
		return response.InternalServerError(c, "Failed to fetch exam")
	}

	if err := h.db.Delete(&exam).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete exam")
	}

	h.invalidate(c)
	return response.SuccessWithMessage(c, "Exam deleted successfully", nil)
}

func (h *ExamHandler) invalidate(c *fiber.Ctx) {
	if h.cache != nil {
		_ = h.cache.InvalidateEntity(c.Context(), entityKey)
	}
}
