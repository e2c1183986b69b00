// Package mcpserver provides an MCP server implementation for read-only
// Snowflake database operations.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// readQueryTool returns a tool definition for executing a SELECT query.
func readQueryTool() mcp.Tool {
	return mcp.NewTool("read_query",
		mcp.WithDescription("Execute a SELECT query against Snowflake. Only SELECT statements are allowed; any other statement is rejected."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The SELECT query to execute")),
	)
}

// listDatabasesTool returns a tool definition for listing databases.
func listDatabasesTool() mcp.Tool {
	return mcp.NewTool("list_databases",
		mcp.WithDescription("List all databases visible to the current Snowflake role."),
	)
}

// listSchemasTool returns a tool definition for listing schemas.
func listSchemasTool() mcp.Tool {
	return mcp.NewTool("list_schemas",
		mcp.WithDescription("List schemas, optionally restricted to a single database."),
		mcp.WithString("database",
			mcp.Description("Database to list schemas from (defaults to the session database)")),
	)
}

// listTablesTool returns a tool definition for listing tables.
func listTablesTool() mcp.Tool {
	return mcp.NewTool("list_tables",
		mcp.WithDescription("List tables, optionally restricted to a database and/or schema."),
		mcp.WithString("database",
			mcp.Description("Database to list tables from")),
		mcp.WithString("schema",
			mcp.Description("Schema to list tables from")),
	)
}

// describeTableTool returns a tool definition for describing table structure.
func describeTableTool() mcp.Tool {
	return mcp.NewTool("describe_table",
		mcp.WithDescription("Describe the columns of a table, including names, types, and nullability."),
		mcp.WithString("table_name",
			mcp.Required(),
			mcp.Description("Name of the table to describe (may be fully qualified as database.schema.table)")),
	)
}
