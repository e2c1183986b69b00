package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/frostline-labs/snowflake-mcp/internal/warehouse"
)

// NewServer creates and configures a new MCP server with all Snowflake tools
// and resources registered. Every call routes through the given executor,
// which owns the single shared warehouse connection.
func NewServer(exec warehouse.Executor) (*server.MCPServer, error) {
	h := NewQueryHandler(exec)

	s := server.NewMCPServer(
		"snowflake-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
	)

	// Query tools
	s.AddTool(readQueryTool(), h.HandleReadQuery)
	s.AddTool(listDatabasesTool(), h.HandleListDatabases)
	s.AddTool(listSchemasTool(), h.HandleListSchemas)
	s.AddTool(listTablesTool(), h.HandleListTables)
	s.AddTool(describeTableTool(), h.HandleDescribeTable)

	// Static catalog resources
	s.AddResource(databasesResource(), h.HandleReadResource)
	s.AddResource(schemasResource(), h.HandleReadResource)
	s.AddResource(tablesResource(), h.HandleReadResource)

	return s, nil
}
