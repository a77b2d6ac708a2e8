package contributor

import "time"

// Contributor is a (project, user) membership record. At most one row
// exists per pair; membership never transitions back to non-member.
type Contributor struct {
	ID                 string     `json:"id"`
	ProjectID          string     `json:"project_id"`
	UserID             string     `json:"user_id"`
	IsProjectCreator   bool       `json:"user_is_project_creator"`
	MadeContribution   bool       `json:"user_made_contribution"`
	JoinedAt           time.Time  `json:"joined_at"`
	LastContributionAt *time.Time `json:"last_contribution_at,omitempty"`
}
