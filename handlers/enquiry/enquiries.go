package enquiry

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/globaledge/consult-api/model"
	"github.com/globaledge/consult-api/utils/response"
	"github.com/globaledge/consult-api/utils/validation"
)

// EnquiryHandler handles student enquiries: public intake, admin
// triage. Admins never create enquiries.
type EnquiryHandler struct {
	db        *gorm.DB
	validator *validation.Validator
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(db *gorm.DB) *EnquiryHandler {
	return &EnquiryHandler{
		db:        db,
		validator: validation.NewValidator(),
	}
}

// CreateEnquiryRequest is the public contact-form payload
type CreateEnquiryRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"max=50"`
	Subject string `json:"subject" validate:"max=255"`
	Message string `json:"message" validate:"required"`
	Source  string `json:"source" validate:"max=100"`
}

// UpdateEnquiryRequest is the admin triage payload; only status,
// priority and assignment are mutable. Every field is optional:
// omitted fields leave the enquiry untouched. Assignment is a pointer
// so an explicit empty string still unassigns.
type UpdateEnquiryRequest struct {
	Status     string  `json:"status"`
	Priority   string  `json:"priority"`
	AssignedTo *string `json:"assignedTo"`
}

func (r *UpdateEnquiryRequest) apply(e *model.Enquiry) {
	if r.Status != "" {
		e.Status = model.EnquiryStatus(r.Status)
	}
	if r.Priority != "" {
		e.Priority = model.EnquiryPriority(r.Priority)
	}
	if r.AssignedTo != nil {
		e.AssignedTo = *r.AssignedTo
	}
}

// CreateEnquiry handles POST /api/enquiries
func (h *EnquiryHandler) CreateEnquiry(c *fiber.Ctx) error {
	var req CreateEnquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = validation.SanitizeString(req.Name)
	req.Email = validation.SanitizeString(req.Email)
	req.Message = validation.SanitizeString(req.Message)

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationFailed(c, validation.FormatValidationErrors(err))
	}

	source := req.Source
	if source == "" {
		source = "website"
	}

	enquiry := model.Enquiry{
		Reference: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Source:    source,
		Status:    model.EnquiryStatusPending,
		Priority:  model.EnquiryPriorityMedium,
	}

	if err := h.db.Create(&enquiry).Error; err != nil {
		return response.InternalServerError(c, "Failed to submit enquiry")
	}

	return response.Created(c, enquiry)
}

// ListEnquiries handles GET /api/admin/enquiries
func (h *EnquiryHandler) ListEnquiries(c *fiber.Ctx) error {
	page, limit := response.ParsePageLimit(c.Query("page"), c.Query("limit"), 10)
	search := c.Query("search", "")
	status := c.Query("status", "")
	priority := c.Query("priority", "")
	assignedTo := c.Query("assigned_to", "")

	query := h.db.Model(&model.Enquiry{})

	if search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ? OR subject ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if priority != "" && priority != "all" {
		query = query.Where("priority = ?", priority)
	}
	if assignedTo != "" {
		query = query.Where("assigned_to = ?", assignedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return response.InternalServerError(c, "Failed to count enquiries")
	}

	offset := (page - 1) * limit
	pagination := response.CalculatePagination(page, limit, total)

	var enquiries []model.Enquiry
	if err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&enquiries).Error; err != nil {
		return response.InternalServerError(c, "Failed to fetch enquiries")
	}

	return response.Paginated(c, enquiries, pagination)
}

// GetEnquiry handles GET /api/admin/enquiries/:id
func (h *EnquiryHandler) GetEnquiry(c *fiber.Ctx) error {
	id := c.Params("id")

	var enquiry model.Enquiry
	if err := h.db.First(&enquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Enquiry not found")
		}
		return response.InternalServerError(c, "Failed to fetch enquiry")
	}

	return response.Success(c, enquiry)
}

// UpdateEnquiry handles PUT /api/admin/enquiries/:id
func (h *EnquiryHandler) UpdateEnquiry(c *fiber.Ctx) error {
	id := c.Params("id")

	var enquiry model.Enquiry
	if err := h.db.First(&enquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Enquiry not found")
		}
		return response.InternalServerError(c, "Failed to fetch enquiry")
	}

	var req UpdateEnquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var errs []string
	if req.Status != "" && !model.EnquiryStatus(req.Status).Valid() {
		errs = append(errs, "status must be one of: pending, contacted, resolved, closed")
	}
	if req.Priority != "" && !model.EnquiryPriority(req.Priority).Valid() {
		errs = append(errs, "priority must be one of: low, medium, high, urgent")
	}
	if len(errs) > 0 {
		return response.ValidationFailed(c, errs)
	}

	req.apply(&enquiry)

	if err := h.db.Save(&enquiry).Error; err != nil {
		return response.InternalServerError(c, "Failed to update enquiry")
	}

	return response.SuccessWithMessage(c, "Enquiry updated successfully", enquiry)
}

// DeleteEnquiry handles DELETE /api/admin/enquiries/:id
func (h *EnquiryHandler) DeleteEnquiry(c *fiber.Ctx) error {
	id := c.Params("id")

	var enquiry model.Enquiry
	if err := h.db.First(&enquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Enquiry not found")
		}
		return response.InternalServerError(c, "Failed to fetch enquiry")
	}

	if err := h.db.Delete(&enquiry).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete enquiry")
	}

	return response.SuccessWithMessage(c, "Enquiry deleted successfully", nil)
}
