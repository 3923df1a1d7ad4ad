// ABOUTME: MCP server setup for the balance wellness store.
// ABOUTME: Holds one store and one step counter for the whole stdio session.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/balance/internal/steps"
	"github.com/harperreed/balance/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Options tunes the server's daily goals and logging.
type Options struct {
	StepsGoal int
	WaterGoal int
	Logger    *zap.Logger
}

// Server wraps the MCP server with store access.
type Server struct {
	mcpServer *mcp.Server
	repo      store.Repository
	steps     *steps.Counter
	opts      Options
	logger    *zap.Logger
	now       func() time.Time
}

// NewServer creates a new MCP server backed by repo and starts its step
// counter. Call Close when done.
func NewServer(repo store.Repository, opts Options) (*Server, error) {
	if opts.StepsGoal <= 0 {
		opts.StepsGoal = steps.DefaultGoal
	}
	if opts.WaterGoal <= 0 {
		opts.WaterGoal = store.DefaultWaterGoal
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "balance",
			Version: "1.0.0",
		},
		nil,
	)

	// No device feed in a stdio session; record_steps applies deltas
	// straight to the counter.
	counter := steps.NewCounter(steps.NewManualSource(0), steps.WithLogger(logger.Named("steps")))
	if err := counter.Start(context.Background()); err != nil {
		return nil, fmt.Errorf("start step counter: %w", err)
	}

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		steps:     counter,
		opts:      opts,
		logger:    logger,
		now:       time.Now,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("mcp server starting")
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// Close stops the step counter.
func (s *Server) Close() {
	s.steps.Stop()
}
