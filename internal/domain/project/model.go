package project

// Status is the lifecycle stage of a project.
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusOnHold     Status = "on-hold"
)

// Statuses lists every accepted status in display order.
var Statuses = []Status{StatusPlanning, StatusInProgress, StatusCompleted, StatusOnHold}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

// Project is a portfolio entry shown on the site and managed from the admin area.
// Field names match the persisted projects.json document.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Status       Status   `json:"status"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Team         []string `json:"team,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty"`
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	out := p
	if p.Technologies != nil {
		out.Technologies = append([]string{}, p.Technologies...)
	}
	if p.Team != nil {
		out.Team = append([]string{}, p.Team...)
	}
	return out
}
