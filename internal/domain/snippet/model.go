package snippet

import "time"

// Snippet is one ordered text contribution. Immutable once created.
type Snippet struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"project_id"`
	CreatorID      string    `json:"creator_id"`
	Content        string    `json:"content"`
	WordCount      int       `json:"word_count"`
	SequenceNumber int       `json:"sequence_number"`
	CreatedAt      time.Time `json:"created_at"`
}
