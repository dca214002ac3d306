package model

import "testing"

func strptr(s string) *string { return &s }

func TestProjectUpdateApply(t *testing.T) {
	p := Project{
		ID:          "p1",
		Name:        "original",
		Description: "kept",
		Status:      StatusPlanned,
		Priority:    2,
	}

	prio := 5
	ProjectUpdate{
		Name:     strptr("renamed"),
		Status:   strptr(StatusCompleted),
		Priority: &prio,
	}.Apply(&p)

	if p.Name != "renamed" || p.Status != StatusCompleted || p.Priority != 5 {
		t.Errorf("fields not applied: %+v", p)
	}
	if p.Description != "kept" || p.ID != "p1" {
		t.Errorf("unset fields changed: %+v", p)
	}
}

func TestProjectUpdateApplyEmptyStringIsExplicit(t *testing.T) {
	p := Project{Name: "x", EndDate: "2024-12-31"}

	// A present empty string clears the field; a nil pointer leaves it.
	ProjectUpdate{EndDate: strptr("")}.Apply(&p)

	if p.EndDate != "" {
		t.Errorf("explicit empty string not applied: %q", p.EndDate)
	}
	if p.Name != "x" {
		t.Errorf("nil field changed: %q", p.Name)
	}
}

func TestActivityUpdateApply(t *testing.T) {
	a := Activity{ID: "a1", ProjectID: "p1", Name: "task", Responsible: "anna"}

	ActivityUpdate{
		Name:   strptr("retitled"),
		Status: strptr(StatusInProgress),
	}.Apply(&a)

	if a.Name != "retitled" || a.Status != StatusInProgress {
		t.Errorf("fields not applied: %+v", a)
	}
	if a.ProjectID != "p1" || a.Responsible != "anna" {
		t.Errorf("unset fields changed: %+v", a)
	}
}

func TestMilestoneUpdateApply(t *testing.T) {
	m := Milestone{ID: "m1", ProjectID: "p1", Name: "BP2", Date: "2024-09-01"}

	MilestoneUpdate{Date: strptr("2024-10-15")}.Apply(&m)

	if m.Date != "2024-10-15" {
		t.Errorf("date not applied: %q", m.Date)
	}
	if m.Name != "BP2" || m.ProjectID != "p1" {
		t.Errorf("unset fields changed: %+v", m)
	}
}
