package http

import (
	"os"

	_ "mathmcp/docs"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"mathmcp/internal/api/http/logger"
	"mathmcp/internal/api/http/websocket"
	"mathmcp/internal/core/mathtool"
	"mathmcp/internal/core/tool"
	"mathmcp/internal/env"
	"mathmcp/internal/mcp"
	"mathmcp/internal/store/audit"
)

// @title Math MCP Server API
// @version 1.0
// @description Math tool server speaking the Model Context Protocol
// @BasePath /
// @schemes http

func NewApiRouter(cfg env.Config) (*chi.Mux, error) {
	registry := tool.NewRegistry()
	if err := mathtool.RegisterAll(registry); err != nil {
		return nil, err
	}

	var auditHandler audit.AuditStoreHandler = audit.NopStore{}
	if cfg.Audit.Enabled {
		auditHandler = audit.NewAuditStore(cfg.Audit.Path)
	}

	mcpService := mcp.NewMcpService(registry, auditHandler)
	handler := NewRequestHandler(mcpService, registry)
	wsHandler := websocket.NewRequestHandler(mcpService)

	node, _ := os.Hostname()

	r := chi.NewRouter()

	// middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logger.LoggerMiddleware(logger.JsonLineLogger{Out: os.Stdout}, "mathmcp", node))

	// == swagger ==
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// == health ==
	r.Get("/health", handler.Health)

	// == mcp ==
	r.Post("/mcp", handler.McpMessage)    // streamable http message
	r.Delete("/mcp", handler.McpClose)    // end session
	r.Get("/mcp/ws", wsHandler.ServeHTTP) // websocket transport

	// == v1 ==
	r.Get("/v1/tools", handler.ListTools)
	r.Post("/v1/buildspecs/validate", handler.ValidateBuildSpec)

	return r, nil
}
