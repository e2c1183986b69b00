package warehouse

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Format: table rendering
// ---------------------------------------------------------------------------

func Test_Format_Cases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		result       *Result
		wantContains []string
	}{
		{
			name: "single row single column",
			result: &Result{
				Columns: []string{"name"},
				Rows:    []map[string]any{{"name": "ANALYTICS"}},
				Count:   1,
			},
			wantContains: []string{"name\n", "ANALYTICS", "(1 row(s))"},
		},
		{
			name: "multiple columns joined with pipes",
			result: &Result{
				Columns: []string{"name", "kind"},
				Rows:    []map[string]any{{"name": "EVENTS", "kind": "TABLE"}},
				Count:   1,
			},
			wantContains: []string{"name | kind", "EVENTS | TABLE"},
		},
		{
			name: "nil value rendered as NULL",
			result: &Result{
				Columns: []string{"comment"},
				Rows:    []map[string]any{{"comment": nil}},
				Count:   1,
			},
			wantContains: []string{"NULL"},
		},
		{
			name: "empty result still has header and count",
			result: &Result{
				Columns: []string{"name"},
				Rows:    []map[string]any{},
				Count:   0,
			},
			wantContains: []string{"name\n", "(0 row(s))"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.result.Format()
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Format() = %q, want it to contain %q", got, want)
				}
			}
		})
	}
}

func Test_Format_SeparatorMatchesColumnWidths(t *testing.T) {
	t.Parallel()

	r := &Result{
		Columns: []string{"id", "name"},
		Rows:    nil,
		Count:   0,
	}

	lines := strings.Split(r.Format(), "\n")
	if len(lines) < 2 {
		t.Fatalf("Format() produced %d lines, want at least 2", len(lines))
	}
	if lines[1] != "---|-----" {
		t.Errorf("separator line = %q, want %q", lines[1], "---|-----")
	}
}

func Test_Format_RowCountFooter(t *testing.T) {
	t.Parallel()

	r := &Result{
		Columns: []string{"n"},
		Rows: []map[string]any{
			{"n": 1}, {"n": 2}, {"n": 3},
		},
		Count: 3,
	}

	if got := r.Format(); !strings.HasSuffix(got, "(3 row(s))") {
		t.Errorf("Format() = %q, want suffix %q", got, "(3 row(s))")
	}
}
