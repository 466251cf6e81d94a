package schema_test

import (
	"strings"
	"testing"

	"db-compare/internal/schema"
)

func TestReconcile_Identical(t *testing.T) {
	equal, msgs := schema.Reconcile([]string{"Id", "Name"}, []string{"Id", "Name"})
	if !equal {
		t.Error("identical ordered sequences should be equal")
	}
	if len(msgs) != 0 {
		t.Errorf("expected no messages, got %v", msgs)
	}
}

func TestReconcile_ReorderIsUnequal(t *testing.T) {
	// Same column set, different ordinal order: must be reported unequal.
	equal, msgs := schema.Reconcile([]string{"A", "B"}, []string{"B", "A"})
	if equal {
		t.Error("reordered columns must be schema-unequal")
	}
	// No column is missing in either direction, so no direction messages.
	if len(msgs) != 0 {
		t.Errorf("expected no missing-column messages for a pure reorder, got %v", msgs)
	}
}

func TestReconcile_MissingBothDirections(t *testing.T) {
	equal, msgs := schema.Reconcile([]string{"Id", "Name", "Phone"}, []string{"Id", "Name", "Email"})
	if equal {
		t.Error("expected unequal")
	}
	if len(msgs) != 2 {
		t.Fatalf("expected one message per direction, got %v", msgs)
	}
	if !strings.Contains(msgs[0], "Phone") {
		t.Errorf("old-side message should name Phone: %q", msgs[0])
	}
	if !strings.Contains(msgs[1], "Email") {
		t.Errorf("new-side message should name Email: %q", msgs[1])
	}
}

func TestReconcile_AddedColumnOnly(t *testing.T) {
	equal, msgs := schema.Reconcile([]string{"Id", "Name"}, []string{"Id", "Name", "Email"})
	if equal {
		t.Error("expected unequal")
	}
	if len(msgs) != 1 {
		t.Fatalf("expected a single message for the one non-empty direction, got %v", msgs)
	}
	if !strings.Contains(msgs[0], "Email") {
		t.Errorf("message should name the column missing from OLD: %q", msgs[0])
	}
}

func TestCommonColumns_PreservesOldOrder(t *testing.T) {
	common := schema.CommonColumns(
		[]string{"C", "A", "B", "D"},
		[]string{"A", "B", "C"},
	)
	want := []string{"C", "A", "B"}
	if len(common) != len(want) {
		t.Fatalf("got %v, want %v", common, want)
	}
	for i := range want {
		if common[i] != want[i] {
			t.Fatalf("got %v, want %v", common, want)
		}
	}
}

func TestCommonColumns_Disjoint(t *testing.T) {
	if common := schema.CommonColumns([]string{"A", "B"}, []string{"C", "D"}); len(common) != 0 {
		t.Errorf("expected empty intersection, got %v", common)
	}
}
