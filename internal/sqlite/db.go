package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema on a fresh database.
func (db *DB) RunMigrations() error {
	migration := `
-- Accounts
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Public-facing profile settings
CREATE TABLE IF NOT EXISTS user_profiles (
    user_id TEXT PRIMARY KEY,
    profile_name TEXT NOT NULL,
    bio TEXT,
    avatar_url TEXT,
    mature_content_enabled INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (user_id) REFERENCES users(id)
);

-- Gamification counters and reward flags
CREATE TABLE IF NOT EXISTS user_gamification_stats (
    user_id TEXT PRIMARY KEY,
    projects_created INTEGER NOT NULL DEFAULT 0,
    snippets_written INTEGER NOT NULL DEFAULT 0,
    stories_completed INTEGER NOT NULL DEFAULT 0,
    reward_wordsmith INTEGER NOT NULL DEFAULT 0,
    reward_trailblazer INTEGER NOT NULL DEFAULT 0,
    reward_night_owl INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (user_id) REFERENCES users(id)
);

-- Writing sessions. is_locked/locked_by is the advisory writer lock;
-- completion implies the lock is clear.
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    project_genre TEXT NOT NULL,
    is_public INTEGER NOT NULL DEFAULT 1,
    is_mature_content INTEGER NOT NULL DEFAULT 0,
    creator_id TEXT NOT NULL,
    max_snippets INTEGER NOT NULL DEFAULT 12,
    current_contributors_count INTEGER NOT NULL DEFAULT 0,
    is_completed INTEGER NOT NULL DEFAULT 0,
    is_locked INTEGER NOT NULL DEFAULT 0,
    locked_by TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_projects_listing ON projects(is_public, is_completed);
CREATE INDEX IF NOT EXISTS idx_projects_creator ON projects(creator_id);

-- Ordered contributions. Sequence numbering is assigned by the
-- submitter under the writer lock, not enforced here.
CREATE TABLE IF NOT EXISTS project_snippets (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    creator_id TEXT NOT NULL,
    content TEXT NOT NULL,
    word_count INTEGER NOT NULL,
    sequence_number INTEGER NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_snippets_project ON project_snippets(project_id, sequence_number);

-- Membership, one row per (project, user)
CREATE TABLE IF NOT EXISTS project_contributors (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    user_is_project_creator INTEGER NOT NULL DEFAULT 0,
    user_made_contribution INTEGER NOT NULL DEFAULT 0,
    joined_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_contribution_at TIMESTAMP,
    UNIQUE (project_id, user_id),
    FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_contributors_user ON project_contributors(user_id);

-- Reader reactions, one per (project, user)
CREATE TABLE IF NOT EXISTS project_reactions (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    reaction TEXT NOT NULL CHECK(reaction IN ('heart', 'thumbs_up', 'laugh')),
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (project_id, user_id),
    FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
