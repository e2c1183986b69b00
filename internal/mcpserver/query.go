package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frostline-labs/snowflake-mcp/internal/warehouse"
)

// QueryHandler routes tool and resource calls to the shared warehouse
// session. It holds no state of its own; all queries serialize through
// the executor's single connection.
type QueryHandler struct {
	exec warehouse.Executor
}

// NewQueryHandler creates a QueryHandler backed by the given executor.
func NewQueryHandler(exec warehouse.Executor) *QueryHandler {
	return &QueryHandler{exec: exec}
}

// HandleReadQuery executes a caller-supplied SELECT statement.
// The query parameter is required and must begin with SELECT; anything else
// is rejected before touching the connection.
func (h *QueryHandler) HandleReadQuery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("Missing required parameter: query"), nil
	}

	sql, err := validateReadQuery(query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return h.run(ctx, sql)
}

// HandleListDatabases lists all databases visible to the session.
func (h *QueryHandler) HandleListDatabases(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.run(ctx, "SHOW DATABASES")
}

// HandleListSchemas lists schemas, scoped to the optional database argument.
func (h *QueryHandler) HandleListSchemas(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	database := request.GetString("database", "")
	return h.run(ctx, listSchemasSQL(database))
}

// HandleListTables lists tables, scoped by the optional database and schema
// arguments.
func (h *QueryHandler) HandleListTables(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	database := request.GetString("database", "")
	schema := request.GetString("schema", "")
	return h.run(ctx, listTablesSQL(database, schema))
}

// HandleDescribeTable describes the columns of a table. The table_name
// parameter is required and may be fully qualified.
func (h *QueryHandler) HandleDescribeTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tableName, err := request.RequireString("table_name")
	if err != nil {
		return mcp.NewToolResultError("Missing required parameter: table_name"), nil
	}

	return h.run(ctx, describeTableSQL(tableName))
}

// run executes the SQL on the shared session and renders the rows as text.
// Connection and execution failures are returned as errors so the protocol
// layer reports them in its error envelope with the driver message intact.
func (h *QueryHandler) run(ctx context.Context, sql string) (*mcp.CallToolResult, error) {
	result, err := h.exec.Execute(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return mcp.NewToolResultText(result.Format()), nil
}
