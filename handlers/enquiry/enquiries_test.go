package enquiry

import (
	"testing"

	"github.com/globaledge/consult-api/model"
)

func triagedEnquiry() model.Enquiry {
	return model.Enquiry{
		Reference:  "7b4a2a9e-1d5c-4c6b-9f3e-2a8d0c1e5f77",
		Name:       "Asha Verma",
		Email:      "asha@example.com",
		Status:     model.EnquiryStatusPending,
		Priority:   model.EnquiryPriorityMedium,
		AssignedTo: "counsellor.priya",
	}
}

func TestUpdateStatusOnlyKeepsAssignment(t *testing.T) {
	e := triagedEnquiry()
	req := UpdateEnquiryRequest{Status: "contacted"}
	req.apply(&e)

	if e.Status != model.EnquiryStatusContacted {
		t.Errorf("status not updated: %s", e.Status)
	}
	if e.AssignedTo != "counsellor.priya" {
		t.Errorf("status-only update cleared assignment: %q", e.AssignedTo)
	}
	if e.Priority != model.EnquiryPriorityMedium {
		t.Errorf("status-only update changed priority: %s", e.Priority)
	}
}

func TestUpdateExplicitEmptyClearsAssignment(t *testing.T) {
	e := triagedEnquiry()
	empty := ""
	req := UpdateEnquiryRequest{AssignedTo: &empty}
	req.apply(&e)

	if e.AssignedTo != "" {
		t.Errorf("explicit empty assignment not cleared: %q", e.AssignedTo)
	}
	if e.Status != model.EnquiryStatusPending {
		t.Errorf("assignment-only update changed status: %s", e.Status)
	}
}

func TestUpdateReassigns(t *testing.T) {
	e := triagedEnquiry()
	next := "counsellor.rahul"
	req := UpdateEnquiryRequest{Priority: "high", AssignedTo: &next}
	req.apply(&e)

	if e.AssignedTo != "counsellor.rahul" {
		t.Errorf("reassignment lost: %q", e.AssignedTo)
	}
	if e.Priority != model.EnquiryPriorityHigh {
		t.Errorf("priority not updated: %s", e.Priority)
	}
}
