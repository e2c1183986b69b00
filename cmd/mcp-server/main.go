// Package main implements the Snowflake MCP server.
//
// The server exposes read-only SQL tools and catalog resources over stdio
// JSON-RPC (Model Context Protocol). Connection settings come from the
// SNOWFLAKE_* environment variables, optionally loaded from a .env file.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"

	"github.com/frostline-labs/snowflake-mcp/internal/config"
	"github.com/frostline-labs/snowflake-mcp/internal/mcpserver"
	"github.com/frostline-labs/snowflake-mcp/internal/warehouse"
)

func run() int {
	errLogger := log.New(os.Stderr, "[snowflake-mcp] ", log.LstdFlags)

	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		errLogger.Printf("Configuration error: %v", err)
		return 1
	}

	session := warehouse.NewSession(cfg)
	defer func() {
		if err := session.Close(); err != nil {
			errLogger.Printf("Failed to close Snowflake session: %v", err)
		}
	}()

	srv, err := mcpserver.NewServer(session)
	if err != nil {
		errLogger.Printf("Failed to create MCP server: %v", err)
		return 1
	}

	if err := server.ServeStdio(srv, server.WithErrorLogger(errLogger)); err != nil {
		errLogger.Printf("Server error: %v", err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run())
}
