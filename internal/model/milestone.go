package model

// Milestone is a decision point within a project. Deleting one has no
// cascade effects.
type Milestone struct {
	ID           string `json:"id"`
	ProjectID    string `json:"project_id"`
	Name         string `json:"name"`
	DecisionType string `json:"decision_type,omitempty"`
	Date         string `json:"date,omitempty"`
	Status       string `json:"status,omitempty"`
}

// MilestoneUpdate is a partial update; nil fields are left untouched.
type MilestoneUpdate struct {
	Name         *string `json:"name"`
	DecisionType *string `json:"decision_type"`
	Date         *string `json:"date"`
	Status       *string `json:"status"`
}

func (u MilestoneUpdate) Apply(m *Milestone) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.DecisionType != nil {
		m.DecisionType = *u.DecisionType
	}
	if u.Date != nil {
		m.Date = *u.Date
	}
	if u.Status != nil {
		m.Status = *u.Status
	}
}
