package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Team-NekoNyan/inkprov/internal/domain/project"
	"github.com/Team-NekoNyan/inkprov/internal/domain/reaction"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

type toolHandlers struct {
	services Services
}

func registerTools(server *sdkmcp.Server, services Services) {
	h := &toolHandlers{services: services}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_sessions",
		Description: "List writing sessions: open sessions accepting contributions, or completed stories",
	}, h.listSessions)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_session_state",
		Description: "Get the full state of one session: story so far, contributors, lock holder, and whether you may write",
	}, h.getSessionState)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_story",
		Description: "Read a session's snippets joined into the full story text",
	}, h.getStory)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "start_contribution",
		Description: "Claim the writer slot for a session. Fails if someone else is writing, the story is complete, or the snippet cap is reached",
	}, h.startContribution)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "submit_contribution",
		Description: "Submit the next snippet (50-100 words) and release the writer slot. Completes the story at the snippet cap",
	}, h.submitContribution)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "cancel_contribution",
		Description: "Give up the writer slot without submitting. Safe to call even if you do not hold it",
	}, h.cancelContribution)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_session",
		Description: "Create a new writing session with an opening snippet of 50-100 words",
	}, h.createSession)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "react_to_story",
		Description: "React to a completed story with heart, thumbs_up, or laugh",
	}, h.reactToStory)
}

type listSessionsInput struct {
	Completed bool `json:"completed,omitempty" jsonschema:"List completed stories instead of open sessions"`
}

func (h *toolHandlers) listSessions(ctx context.Context, _ *sdkmcp.CallToolRequest, input listSessionsInput) (*sdkmcp.CallToolResult, any, error) {
	var (
		summaries []project.Summary
		err       error
	)
	if input.Completed {
		summaries, err = h.services.Projects.ListCompleted(ctx)
	} else {
		summaries, err = h.services.Projects.ListOpen(ctx)
	}
	if err != nil {
		return toolError("Failed to list sessions: %v", err), nil, nil
	}
	return toolJSON(summaries)
}

type sessionInput struct {
	SessionID string `json:"session_id" jsonschema:"ID of the writing session"`
}

func (h *toolHandlers) getSessionState(ctx context.Context, _ *sdkmcp.CallToolRequest, input sessionInput) (*sdkmcp.CallToolResult, any, error) {
	state, err := h.services.Writing.Refresh(ctx, input.SessionID, getUserID(ctx))
	if err != nil {
		return toolError("Failed to get session state: %v", err), nil, nil
	}
	return toolJSON(state)
}

func (h *toolHandlers) getStory(ctx context.Context, _ *sdkmcp.CallToolRequest, input sessionInput) (*sdkmcp.CallToolResult, any, error) {
	story, err := h.services.Stories.Story(ctx, input.SessionID)
	if err != nil {
		return toolError("Failed to read story: %v", err), nil, nil
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: story}},
	}, nil, nil
}

func (h *toolHandlers) startContribution(ctx context.Context, _ *sdkmcp.CallToolRequest, input sessionInput) (*sdkmcp.CallToolResult, any, error) {
	userID := getUserID(ctx)
	if err := h.services.Writing.Acquire(ctx, input.SessionID, userID); err != nil {
		return toolError("Cannot start writing: %v", err), nil, nil
	}
	state, err := h.services.Writing.Refresh(ctx, input.SessionID, userID)
	if err != nil {
		return toolError("Failed to refresh session: %v", err), nil, nil
	}
	return toolJSON(state)
}

type submitContributionInput struct {
	SessionID string `json:"session_id" jsonschema:"ID of the writing session"`
	Content   string `json:"content" jsonschema:"The snippet text, 50 to 100 words"`
}

func (h *toolHandlers) submitContribution(ctx context.Context, _ *sdkmcp.CallToolRequest, input submitContributionInput) (*sdkmcp.CallToolResult, any, error) {
	result, err := h.services.Writing.Submit(ctx, input.SessionID, getUserID(ctx), input.Content)
	if err != nil {
		return toolError("Submission failed: %v", err), nil, nil
	}
	return toolJSON(result)
}

func (h *toolHandlers) cancelContribution(ctx context.Context, _ *sdkmcp.CallToolRequest, input sessionInput) (*sdkmcp.CallToolResult, any, error) {
	if err := h.services.Writing.Release(ctx, input.SessionID, getUserID(ctx)); err != nil {
		return toolError("Failed to cancel: %v", err), nil, nil
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: "Writer slot released."}},
	}, nil, nil
}

type createSessionInput struct {
	Title           string `json:"title" jsonschema:"Session title"`
	Description     string `json:"description,omitempty" jsonschema:"Optional description, up to 280 characters"`
	Genre           string `json:"genre" jsonschema:"Story genre"`
	IsPublic        bool   `json:"is_public,omitempty" jsonschema:"Whether the session is publicly listed"`
	IsMatureContent bool   `json:"is_mature_content,omitempty" jsonschema:"Whether the story carries a mature content flag"`
	MaxSnippets     int    `json:"max_snippets,omitempty" jsonschema:"Snippet cap, at most 12; defaults to 12"`
	OpeningContent  string `json:"opening_content" jsonschema:"The opening snippet, 50 to 100 words"`
}

func (h *toolHandlers) createSession(ctx context.Context, _ *sdkmcp.CallToolRequest, input createSessionInput) (*sdkmcp.CallToolResult, any, error) {
	proj, err := h.services.Projects.Create(ctx, getUserID(ctx), project.CreateRequest{
		Title:           input.Title,
		Description:     input.Description,
		Genre:           input.Genre,
		IsPublic:        input.IsPublic,
		IsMatureContent: input.IsMatureContent,
		MaxSnippets:     input.MaxSnippets,
		OpeningContent:  input.OpeningContent,
	})
	if err != nil {
		return toolError("Failed to create session: %v", err), nil, nil
	}
	return toolJSON(proj)
}

type reactInput struct {
	SessionID string `json:"session_id" jsonschema:"ID of the completed story"`
	Reaction  string `json:"reaction" jsonschema:"One of heart, thumbs_up, laugh"`
}

func (h *toolHandlers) reactToStory(ctx context.Context, _ *sdkmcp.CallToolRequest, input reactInput) (*sdkmcp.CallToolResult, any, error) {
	r, err := h.services.Reactions.React(ctx, input.SessionID, getUserID(ctx), reaction.Type(input.Reaction))
	if err != nil {
		return toolError("Failed to react: %v", err), nil, nil
	}
	return toolJSON(r)
}

func toolError(format string, args ...any) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func toolJSON(v any) (*sdkmcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil, nil
}
