package project

import "time"

// SnippetCap is the hard upper bound on contributions per project.
// Stored max_snippets values above this are clamped on read.
const SnippetCap = 12

// MaxDescriptionLength bounds the project description field.
const MaxDescriptionLength = 280

// Project represents one collaborative writing session
type Project struct {
	ID                       string    `json:"id"`
	Title                    string    `json:"title"`
	Description              string    `json:"description,omitempty"`
	Genre                    string    `json:"project_genre"`
	IsPublic                 bool      `json:"is_public"`
	IsMatureContent          bool      `json:"is_mature_content"`
	CreatorID                string    `json:"creator_id"`
	MaxSnippets              int       `json:"max_snippets"`
	CurrentContributorsCount int       `json:"current_contributors_count"`
	IsCompleted              bool      `json:"is_completed"`
	IsLocked                 bool      `json:"is_locked"`
	LockedBy                 *string   `json:"locked_by,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// EffectiveMaxSnippets returns the contribution cap with the hard
// limit applied. A missing or non-positive stored value means the cap.
func (p *Project) EffectiveMaxSnippets() int {
	if p.MaxSnippets <= 0 || p.MaxSnippets > SnippetCap {
		return SnippetCap
	}
	return p.MaxSnippets
}

// Summary is a lightweight representation for listing
type Summary struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	Genre            string    `json:"project_genre"`
	IsMatureContent  bool      `json:"is_mature_content"`
	CreatorID        string    `json:"creator_id"`
	MaxSnippets      int       `json:"max_snippets"`
	SnippetCount     int       `json:"snippet_count"`
	ContributorCount int       `json:"contributor_count"`
	IsCompleted      bool      `json:"is_completed"`
	IsLocked         bool      `json:"is_locked"`
	UpdatedAt        time.Time `json:"updated_at"`
}
