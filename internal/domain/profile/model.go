package profile

import "time"

// Profile holds a user's public-facing settings.
type Profile struct {
	UserID               string    `json:"user_id"`
	ProfileName          string    `json:"user_profile_name"`
	Bio                  string    `json:"user_profile_bio,omitempty"`
	AvatarURL            string    `json:"avatar_url,omitempty"`
	MatureContentEnabled bool      `json:"user_profile_mature_enabled"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Stats is a user's gamification row: running counters plus one-shot
// reward flags unlocked by redemption codes.
type Stats struct {
	UserID            string `json:"user_id"`
	ProjectsCreated   int    `json:"projects_created"`
	SnippetsWritten   int    `json:"snippets_written"`
	StoriesCompleted  int    `json:"stories_completed"`
	RewardWordsmith   bool   `json:"reward_wordsmith"`
	RewardTrailblazer bool   `json:"reward_trailblazer"`
	RewardNightOwl    bool   `json:"reward_night_owl"`
}

// rewardCodes maps redemption codes to the stats flag they unlock.
var rewardCodes = map[string]string{
	"WORDSMITH":   "reward_wordsmith",
	"TRAILBLAZER": "reward_trailblazer",
	"NIGHTOWL":    "reward_night_owl",
}
