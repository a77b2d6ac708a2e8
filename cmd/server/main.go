package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Team-NekoNyan/inkprov/internal/api"
	"github.com/Team-NekoNyan/inkprov/internal/auth"
	"github.com/Team-NekoNyan/inkprov/internal/config"
	"github.com/Team-NekoNyan/inkprov/internal/domain/contributor"
	"github.com/Team-NekoNyan/inkprov/internal/domain/profile"
	"github.com/Team-NekoNyan/inkprov/internal/domain/project"
	"github.com/Team-NekoNyan/inkprov/internal/domain/reaction"
	"github.com/Team-NekoNyan/inkprov/internal/domain/snippet"
	"github.com/Team-NekoNyan/inkprov/internal/domain/writing"
	"github.com/Team-NekoNyan/inkprov/internal/mcp"
	"github.com/Team-NekoNyan/inkprov/internal/sqlite"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.MCP.Transport == "stdio" {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	userRepo := sqlite.NewUserRepository(db)
	profileRepo := sqlite.NewProfileRepository(db)
	statsRepo := sqlite.NewStatsRepository(db)
	projectRepo := sqlite.NewProjectRepository(db)
	snippetRepo := sqlite.NewSnippetRepository(db)
	contributorRepo := sqlite.NewContributorRepository(db)
	reactionRepo := sqlite.NewReactionRepository(db)

	authSvc := auth.NewService(userRepo, profileRepo, statsRepo, cfg.Auth.Secret, logger)
	projectSvc := project.NewService(projectRepo, snippetRepo, contributorRepo, statsRepo, logger)
	writingSvc := writing.NewService(projectRepo, snippetRepo, contributorRepo, statsRepo, logger)
	snippetSvc := snippet.NewService(snippetRepo, logger)
	contributorSvc := contributor.NewService(contributorRepo, logger)
	reactionSvc := reaction.NewService(reactionRepo, projectRepo, logger)
	profileSvc := profile.NewService(profileRepo, statsRepo, logger)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Projects:  projectSvc,
			Writing:   writingSvc,
			Stories:   snippetSvc,
			Reactions: reactionSvc,
		},
		Verifier:      authSvc,
		AuthEnabled:   cfg.MCP.AuthEnabled,
		DefaultUserID: cfg.MCP.DefaultUserID,
		TransportMode: cfg.MCP.Transport,
		Logger:        logger,
	})

	if cfg.MCP.Transport == "stdio" {
		runStdioMode(logger, mcpServer)
		return
	}

	apiServer := api.NewServer(
		authSvc, projectSvc, writingSvc, snippetSvc,
		contributorSvc, reactionSvc, profileSvc, logger,
	)
	runHTTPMode(logger, apiServer, mcpServer, cfg.Server.Host, cfg.Server.Port)
}

func runStdioMode(logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport", "auth", "disabled")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-stop
		logger.Info("shutting down")
		cancel()
	}()

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(logger *slog.Logger, apiServer *api.Server, mcpServer *sdkmcp.Server, host string, port int) {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)

	router := apiServer.Router()
	router.PathPrefix("/mcp").Handler(mcpHandler)

	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
