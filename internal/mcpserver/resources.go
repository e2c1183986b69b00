package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Resource URIs exposed by the server. Each maps 1:1 to a SHOW statement
// with no filtering arguments; the tool variants accept qualifiers instead.
const (
	databasesResourceURI = "snowflake://databases"
	schemasResourceURI   = "snowflake://schemas"
	tablesResourceURI    = "snowflake://tables"
)

// databasesResource returns the resource definition for the database list.
func databasesResource() mcp.Resource {
	return mcp.NewResource(
		databasesResourceURI,
		"Databases",
		mcp.WithResourceDescription("All databases visible to the current role"),
		mcp.WithMIMEType("text/plain"),
	)
}

// schemasResource returns the resource definition for the schema list.
func schemasResource() mcp.Resource {
	return mcp.NewResource(
		schemasResourceURI,
		"Schemas",
		mcp.WithResourceDescription("All schemas in the session database"),
		mcp.WithMIMEType("text/plain"),
	)
}

// tablesResource returns the resource definition for the table list.
func tablesResource() mcp.Resource {
	return mcp.NewResource(
		tablesResourceURI,
		"Tables",
		mcp.WithResourceDescription("All tables in the session schema"),
		mcp.WithMIMEType("text/plain"),
	)
}

// HandleReadResource serves the three static resources by running the
// corresponding SHOW statement and rendering the rows as plain text.
func (h *QueryHandler) HandleReadResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	var sql string
	switch request.Params.URI {
	case databasesResourceURI:
		sql = "SHOW DATABASES"
	case schemasResourceURI:
		sql = "SHOW SCHEMAS"
	case tablesResourceURI:
		sql = "SHOW TABLES"
	default:
		return nil, fmt.Errorf("unknown resource: %s", request.Params.URI)
	}

	result, err := h.exec.Execute(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("error reading resource %s: %w", request.Params.URI, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     result.Format(),
		},
	}, nil
}
