package model

// Activity belongs to exactly one project. ProjectID is set at creation
// and never changes.
type Activity struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Status      string `json:"status,omitempty"`
	Responsible string `json:"responsible,omitempty"`
}

// ActivityUpdate is a partial update; nil fields are left untouched.
// ProjectID is deliberately absent: the owning project is immutable.
type ActivityUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      *string `json:"status"`
	Responsible *string `json:"responsible"`
}

func (u ActivityUpdate) Apply(a *Activity) {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Description != nil {
		a.Description = *u.Description
	}
	if u.StartDate != nil {
		a.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		a.EndDate = *u.EndDate
	}
	if u.Status != nil {
		a.Status = *u.Status
	}
	if u.Responsible != nil {
		a.Responsible = *u.Responsible
	}
}
