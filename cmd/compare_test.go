package cmd

import (
	"bytes"
	"strings"
	"testing"

	"db-compare/internal/engine"
)

func TestNeedsDetail(t *testing.T) {
	cases := []struct {
		name string
		r    engine.Result
		want bool
	}{
		{"clean pass", engine.Result{OK: true, SchemaEqual: true}, false},
		{"content mismatch", engine.Result{OK: false, SchemaEqual: true}, true},
		{"schema drift with matching content", engine.Result{OK: true, SchemaEqual: false}, true},
		{"schema drift and content mismatch", engine.Result{OK: false, SchemaEqual: false}, true},
	}
	for _, c := range cases {
		if got := needsDetail(c.r); got != c.want {
			t.Errorf("%s: needsDetail = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestPrintDetail_SchemaDriftMessagesShownForMatchingContent(t *testing.T) {
	r := engine.Result{
		Table:       "COM_Company",
		OK:          true,
		SchemaEqual: false,
		Messages:    []string{"columns in NEW missing from OLD: Email"},
	}

	var buf bytes.Buffer
	printDetail(&buf, r)

	out := buf.String()
	if !strings.Contains(out, "COM_Company") {
		t.Errorf("table name missing from detail output: %q", out)
	}
	if !strings.Contains(out, "columns in NEW missing from OLD: Email") {
		t.Errorf("schema drift message missing from detail output: %q", out)
	}
	if strings.Contains(out, "❌") {
		t.Errorf("a content-equal table must not be marked failed: %q", out)
	}
}

func TestPrintDetail_FailedTableListsSampleRows(t *testing.T) {
	r := engine.Result{
		Table:       "DOC_Header",
		OK:          false,
		SchemaEqual: true,
		Messages:    []string{"checksum mismatch (old=10, new=11)"},
		ColumnsUsed: []string{"Id", "Total"},
		OnlyInOld:   []engine.Row{{"Id": "7", "Total": "99.5"}},
	}

	var buf bytes.Buffer
	printDetail(&buf, r)

	out := buf.String()
	if !strings.Contains(out, "❌ DOC_Header") {
		t.Errorf("failed table must be marked failed: %q", out)
	}
	if !strings.Contains(out, "(7, 99.5)") {
		t.Errorf("sample row missing from detail output: %q", out)
	}
}
