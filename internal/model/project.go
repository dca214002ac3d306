package model

// Project statuses recognized by the portfolio filters. Stored as free
// text: an unexpected value is kept as-is rather than dropped.
const (
	StatusPlanned    = "planned"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Project is a top-level portfolio entry. Dates are YYYY-MM-DD strings;
// empty means unset. Date ordering is not validated.
type Project struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	StartDate      string `json:"start_date,omitempty"`
	EndDate        string `json:"end_date,omitempty"`
	ProjectOwner   string `json:"project_owner,omitempty"`
	ProjectManager string `json:"project_manager,omitempty"`
	ImpactOwner    string `json:"impact_owner,omitempty"`
	Status         string `json:"status,omitempty"`
	Priority       int    `json:"priority,omitempty"` // intended range 1-5, not enforced
}

// ProjectUpdate is a partial update; nil fields are left untouched.
type ProjectUpdate struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	StartDate      *string `json:"start_date"`
	EndDate        *string `json:"end_date"`
	ProjectOwner   *string `json:"project_owner"`
	ProjectManager *string `json:"project_manager"`
	ImpactOwner    *string `json:"impact_owner"`
	Status         *string `json:"status"`
	Priority       *int    `json:"priority"`
}

// Apply merges the supplied fields over p.
func (u ProjectUpdate) Apply(p *Project) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.StartDate != nil {
		p.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		p.EndDate = *u.EndDate
	}
	if u.ProjectOwner != nil {
		p.ProjectOwner = *u.ProjectOwner
	}
	if u.ProjectManager != nil {
		p.ProjectManager = *u.ProjectManager
	}
	if u.ImpactOwner != nil {
		p.ImpactOwner = *u.ImpactOwner
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.Priority != nil {
		p.Priority = *u.Priority
	}
}
