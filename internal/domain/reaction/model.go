package reaction

import "time"

// Type enumerates the reader reactions offered on finished stories.
type Type string

const (
	TypeHeart    Type = "heart"
	TypeThumbsUp Type = "thumbs_up"
	TypeLaugh    Type = "laugh"
)

// Valid reports whether t is a known reaction type.
func (t Type) Valid() bool {
	switch t {
	case TypeHeart, TypeThumbsUp, TypeLaugh:
		return true
	}
	return false
}

// Reaction is one user's reaction to a finished story. At most one
// reaction per (project, user); re-reacting replaces the previous one.
type Reaction struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	UserID    string    `json:"user_id"`
	Type      Type      `json:"reaction"`
	CreatedAt time.Time `json:"created_at"`
}
