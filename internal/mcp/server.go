// Package mcp exposes the writing sessions to agent clients over the
// Model Context Protocol.
package mcp

import (
	"context"
	"log/slog"

	"github.com/Team-NekoNyan/inkprov/internal/domain/project"
	"github.com/Team-NekoNyan/inkprov/internal/domain/reaction"
	"github.com/Team-NekoNyan/inkprov/internal/domain/writing"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, userID string, req project.CreateRequest) (*project.Project, error)
	ListOpen(ctx context.Context) ([]project.Summary, error)
	ListCompleted(ctx context.Context) ([]project.Summary, error)
}

// WritingService defines turn-taking operations needed by MCP.
type WritingService interface {
	Acquire(ctx context.Context, projectID, userID string) error
	Release(ctx context.Context, projectID, userID string) error
	Submit(ctx context.Context, projectID, userID, content string) (*writing.SubmitResult, error)
	Refresh(ctx context.Context, projectID, userID string) (*writing.SessionState, error)
}

// StoryService defines story reads needed by MCP.
type StoryService interface {
	Story(ctx context.Context, projectID string) (string, error)
}

// ReactionService defines reaction operations needed by MCP.
type ReactionService interface {
	React(ctx context.Context, projectID, userID string, t reaction.Type) (*reaction.Reaction, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Projects  ProjectService
	Writing   WritingService
	Stories   StoryService
	Reactions ReactionService
}

// Config contains server configuration.
type Config struct {
	Services      Services
	Verifier      TokenVerifier
	AuthEnabled   bool
	DefaultUserID string
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

const serverInstructions = `Collaborative story-writing sessions. Stories are written in
turns: call start_contribution to claim the writer slot, submit_contribution with 50-100
words to add the next snippet (this releases the slot), or cancel_contribution to give
the slot back without writing. get_session_state shows who is writing and how many
snippets remain before the story completes.`

// NewServer creates and configures an MCP server with all tools and
// middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "inkprov",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	// Stdio is local dev only; requests act as the configured default
	// user instead of authenticating per call.
	if cfg.TransportMode == "stdio" || !cfg.AuthEnabled {
		server.AddReceivingMiddleware(noAuthMiddleware(cfg.DefaultUserID))
	} else {
		server.AddReceivingMiddleware(authMiddleware(cfg.Verifier))
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
