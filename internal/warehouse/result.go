package warehouse

import (
	"fmt"
	"strings"
)

// Result is the outcome of a single query: column names in warehouse order
// plus one map per row keyed by column name. An empty Result (zero rows) is
// a valid success, never an error.
type Result struct {
	// Columns holds the column names in the order the warehouse returned them.
	Columns []string

	// Rows holds one record per row, mapping column name to value.
	Rows []map[string]any

	// Count is the number of rows.
	Count int
}

// Format renders the result as a plain-text table suitable for direct LLM
// consumption: a header row of column names, a dashed separator, one line
// per row with NULL for nil values, and a trailing row count.
func (r *Result) Format() string {
	var out strings.Builder

	out.WriteString(strings.Join(r.Columns, " | "))
	out.WriteString("\n")

	separators := make([]string, len(r.Columns))
	for i := range separators {
		separators[i] = strings.Repeat("-", len(r.Columns[i]))
	}
	out.WriteString(strings.Join(separators, "-|-"))
	out.WriteString("\n")

	for _, row := range r.Rows {
		formatted := make([]string, len(r.Columns))
		for i, col := range r.Columns {
			val := row[col]
			if val == nil {
				formatted[i] = "NULL"
			} else {
				formatted[i] = fmt.Sprintf("%v", val)
			}
		}
		out.WriteString(strings.Join(formatted, " | "))
		out.WriteString("\n")
	}

	out.WriteString(fmt.Sprintf("\n(%d row(s))", r.Count))

	return out.String()
}
