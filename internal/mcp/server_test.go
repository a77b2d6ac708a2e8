package mcp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/Team-NekoNyan/inkprov/internal/auth"
	"github.com/Team-NekoNyan/inkprov/internal/domain/profile"
	"github.com/Team-NekoNyan/inkprov/internal/domain/project"
	"github.com/Team-NekoNyan/inkprov/internal/domain/reaction"
	"github.com/Team-NekoNyan/inkprov/internal/domain/snippet"
	"github.com/Team-NekoNyan/inkprov/internal/domain/writing"
	"github.com/Team-NekoNyan/inkprov/internal/sqlite"
	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// newTestSession wires a server over an in-memory database and connects
// an in-process client acting as a fixed test user.
func newTestSession(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	users := sqlite.NewUserRepository(db)
	stats := sqlite.NewStatsRepository(db)
	projects := sqlite.NewProjectRepository(db)
	snippets := sqlite.NewSnippetRepository(db)
	contributors := sqlite.NewContributorRepository(db)
	reactions := sqlite.NewReactionRepository(db)

	user := &auth.User{ID: uuid.NewString(), Email: "agent@example.com", PasswordHash: "x", CreatedAt: time.Now()}
	require.NoError(t, users.Create(context.Background(), user))
	require.NoError(t, stats.Create(context.Background(), &profile.Stats{UserID: user.ID}))

	server := NewServer(Config{
		Services: Services{
			Projects:  project.NewService(projects, snippets, contributors, stats, logger),
			Writing:   writing.NewService(projects, snippets, contributors, stats, logger),
			Stories:   snippet.NewService(snippets, logger),
			Reactions: reaction.NewService(reactions, projects, logger),
		},
		TransportMode: "stdio",
		DefaultUserID: user.ID,
		Logger:        logger,
	})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()

	ctx := context.Background()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { clientSession.Close() })

	return clientSession
}

func callTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) (string, bool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err, "CallTool %s failed", name)
	require.NotEmpty(t, result.Content, "tool %s returned no content", name)

	text, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "tool %s returned non-text content", name)
	return text.Text, result.IsError
}

func sessionContent(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func TestToolsFullCycle(t *testing.T) {
	session := newTestSession(t)

	// Create a two-snippet session.
	text, isError := callTool(t, session, "create_session", map[string]any{
		"title":           "Agent Story",
		"genre":           "scifi",
		"is_public":       true,
		"max_snippets":    2,
		"opening_content": sessionContent(50),
	})
	require.False(t, isError, "create_session: %s", text)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &created))
	require.NotEmpty(t, created.ID)

	// It shows up in the open list.
	text, isError = callTool(t, session, "list_sessions", nil)
	require.False(t, isError)
	require.Contains(t, text, created.ID)

	// Claim the slot, then give it back.
	_, isError = callTool(t, session, "start_contribution", map[string]any{"session_id": created.ID})
	require.False(t, isError)
	_, isError = callTool(t, session, "cancel_contribution", map[string]any{"session_id": created.ID})
	require.False(t, isError)

	// Too-short content fails as a tool error, not a protocol error.
	text, isError = callTool(t, session, "submit_contribution", map[string]any{
		"session_id": created.ID,
		"content":    sessionContent(5),
	})
	require.True(t, isError)
	require.Contains(t, text, "word")

	// Second snippet completes the story.
	text, isError = callTool(t, session, "submit_contribution", map[string]any{
		"session_id": created.ID,
		"content":    sessionContent(80),
	})
	require.False(t, isError, "submit_contribution: %s", text)
	require.Contains(t, text, `"completed": true`)

	// Completed story is readable and reactable.
	text, isError = callTool(t, session, "get_story", map[string]any{"session_id": created.ID})
	require.False(t, isError)
	require.Contains(t, text, "word")

	text, isError = callTool(t, session, "react_to_story", map[string]any{
		"session_id": created.ID,
		"reaction":   "heart",
	})
	require.False(t, isError, "react_to_story: %s", text)
}

func TestGetSessionStateFlags(t *testing.T) {
	session := newTestSession(t)

	text, isError := callTool(t, session, "create_session", map[string]any{
		"title":           "Flags",
		"genre":           "drama",
		"max_snippets":    12,
		"opening_content": sessionContent(60),
	})
	require.False(t, isError, "create_session: %s", text)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &created))

	_, isError = callTool(t, session, "start_contribution", map[string]any{"session_id": created.ID})
	require.False(t, isError)

	text, isError = callTool(t, session, "get_session_state", map[string]any{"session_id": created.ID})
	require.False(t, isError)
	require.Contains(t, text, `"is_currently_writing": true`)
	require.Contains(t, text, `"is_project_creator": true`)
}

func TestUnknownSessionIsToolError(t *testing.T) {
	session := newTestSession(t)

	text, isError := callTool(t, session, "get_session_state", map[string]any{"session_id": "missing"})
	require.True(t, isError)
	require.Contains(t, text, "not found")
}
