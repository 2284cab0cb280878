package main

import (
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/robertbarcik/mcp-helpdesk/internal/toolserver/kb"
)

func main() {
	// Stdout carries the MCP protocol, so all logging goes to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	s := kb.New(logger)
	if err := server.ServeStdio(s); err != nil {
		logger.Error("Server terminated.", slog.Any("error", err))
		os.Exit(1)
	}
}
