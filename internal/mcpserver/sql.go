package mcpserver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotSelect is returned when read_query receives a non-SELECT statement.
var ErrNotSelect = errors.New("Only SELECT queries are allowed")

// validateReadQuery checks that the statement begins with SELECT,
// case-insensitively and ignoring surrounding whitespace. The query text is
// returned trimmed; the executed SQL is otherwise the caller's verbatim text.
func validateReadQuery(query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	if !strings.HasPrefix(strings.ToUpper(trimmed), "SELECT") {
		return "", ErrNotSelect
	}
	return trimmed, nil
}

// listSchemasSQL builds the SHOW SCHEMAS statement, scoped to a database
// when one is given. The database name is interpolated verbatim.
func listSchemasSQL(database string) string {
	if database != "" {
		return fmt.Sprintf("SHOW SCHEMAS IN DATABASE %s", database)
	}
	return "SHOW SCHEMAS"
}

// listTablesSQL builds the SHOW TABLES statement scoped by the given
// qualifiers. With both a database and a schema the scope is the qualified
// schema; with only one qualifier the scope names it explicitly. Names are
// interpolated verbatim.
func listTablesSQL(database, schema string) string {
	switch {
	case database != "" && schema != "":
		return fmt.Sprintf("SHOW TABLES IN %s.%s", database, schema)
	case schema != "":
		return fmt.Sprintf("SHOW TABLES IN SCHEMA %s", schema)
	case database != "":
		return fmt.Sprintf("SHOW TABLES IN DATABASE %s", database)
	default:
		return "SHOW TABLES"
	}
}

// describeTableSQL builds the DESCRIBE TABLE statement. The table name may
// be fully qualified (database.schema.table) and is interpolated verbatim.
func describeTableSQL(tableName string) string {
	return fmt.Sprintf("DESCRIBE TABLE %s", tableName)
}
