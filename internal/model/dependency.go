package model

// DefaultDependencyType is applied when a dependency is created without a
// type.
const DefaultDependencyType = "finish-to-start"

// Dependency is a directed precedence edge between two activities: From
// depends on To. The store does not verify that either endpoint exists,
// and no cycle detection is performed anywhere.
type Dependency struct {
	ID             string `json:"id"`
	FromActivityID string `json:"from_activity_id"`
	ToActivityID   string `json:"to_activity_id"`
	Type           string `json:"type,omitempty"`
}

// ProjectDetails is the derived read-only aggregate for one project. It is
// recomputed on demand and never stored or mutated as a unit. Dependencies
// include every edge touching one of the project's activities, even when
// the other endpoint lies outside the project.
type ProjectDetails struct {
	Project      Project      `json:"project"`
	Activities   []Activity   `json:"activities"`
	Milestones   []Milestone  `json:"milestones"`
	Dependencies []Dependency `json:"dependencies"`
}
