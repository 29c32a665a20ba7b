package model

import "time"

// EnquiryStatus tracks an enquiry through the admin workflow
type EnquiryStatus string

const (
	EnquiryStatusPending   EnquiryStatus = "pending"
	EnquiryStatusContacted EnquiryStatus = "contacted"
	EnquiryStatusResolved  EnquiryStatus = "resolved"
	EnquiryStatusClosed    EnquiryStatus = "closed"
)

// Valid reports whether s is a known status value.
func (s EnquiryStatus) Valid() bool {
	switch s {
	case EnquiryStatusPending, EnquiryStatusContacted, EnquiryStatusResolved, EnquiryStatusClosed:
		return true
	}
	return false
}

// EnquiryPriority orders enquiries for the admin team
type EnquiryPriority string

const (
	EnquiryPriorityLow    EnquiryPriority = "low"
	EnquiryPriorityMedium EnquiryPriority = "medium"
	EnquiryPriorityHigh   EnquiryPriority = "high"
	EnquiryPriorityUrgent EnquiryPriority = "urgent"
)

// Valid reports whether p is a known priority value.
func (p EnquiryPriority) Valid() bool {
	switch p {
	case EnquiryPriorityLow, EnquiryPriorityMedium, EnquiryPriorityHigh, EnquiryPriorityUrgent:
		return true
	}
	return false
}

// Enquiry is a student contact-form submission. It is created only by
// public forms; admins mutate status, priority and assignment but never
// create enquiries themselves.
type Enquiry struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Reference  string          `gorm:"type:uuid;uniqueIndex;not null" json:"reference"`
	Name       string          `gorm:"type:varchar(255);not null" json:"name"`
	Email      string          `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone      string          `gorm:"type:varchar(50)" json:"phone"`
	Subject    string          `gorm:"type:varchar(255)" json:"subject"`
	Message    string          `gorm:"type:text;not null" json:"message"`
	Source     string          `gorm:"type:varchar(100);default:'website'" json:"source"`
	Status     EnquiryStatus   `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	Priority   EnquiryPriority `gorm:"type:varchar(10);default:'medium';index" json:"priority"`
	AssignedTo string          `gorm:"type:varchar(255)" json:"assignedTo"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TableName specifies the table name for Enquiry
func (Enquiry) TableName() string {
	return "enquiries"
}
