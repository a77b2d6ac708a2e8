package writing

import (
	"github.com/Team-NekoNyan/inkprov/internal/domain/contributor"
	"github.com/Team-NekoNyan/inkprov/internal/domain/project"
	"github.com/Team-NekoNyan/inkprov/internal/domain/snippet"
)

// SessionState is the canonical editor view of one writing session,
// recomputed from the store on every refresh. It is owned by the
// synchronizer and never mutated in place by consumers.
type SessionState struct {
	Project            *project.Project          `json:"project"`
	Snippets           []snippet.Snippet         `json:"snippets"`
	Contributors       []contributor.Contributor `json:"contributors"`
	SnippetCount       int                       `json:"snippet_count"`
	MaxSnippets        int                       `json:"max_snippets"`
	IsLocked           bool                      `json:"is_locked"`
	LockedBy           *string                   `json:"locked_by,omitempty"`
	IsCurrentlyWriting bool                      `json:"is_currently_writing"`
	IsContributor      bool                      `json:"is_contributor"`
	IsProjectCreator   bool                      `json:"is_project_creator"`
}

// SubmitResult holds the post-submission snippet list and roster.
type SubmitResult struct {
	Snippet      *snippet.Snippet          `json:"snippet"`
	Snippets     []snippet.Snippet         `json:"snippets"`
	Contributors []contributor.Contributor `json:"contributors"`
	Completed    bool                      `json:"completed"`
}
