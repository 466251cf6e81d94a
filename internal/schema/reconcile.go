package schema

import (
	"fmt"
	"strings"
)

// Reconcile compares two column-name lists as ordered sequences. Equality is
// ordinal-sequence equality: a pure reordering of identical names is unequal,
// because a column-order change can indicate a structural migration mismatch
// even when content still matches. On inequality it reports one message per
// non-empty direction naming the missing columns.
func Reconcile(oldCols, newCols []string) (equal bool, messages []string) {
	if sequenceEqual(oldCols, newCols) {
		return true, nil
	}

	if miss := missingFrom(oldCols, newCols); len(miss) > 0 {
		messages = append(messages, fmt.Sprintf("columns in OLD missing from NEW: %s", strings.Join(miss, ", ")))
	}
	if miss := missingFrom(newCols, oldCols); len(miss) > 0 {
		messages = append(messages, fmt.Sprintf("columns in NEW missing from OLD: %s", strings.Join(miss, ", ")))
	}
	return false, messages
}

// CommonColumns returns the names present on both sides, preserving the old
// side's ordinal order.
func CommonColumns(oldCols, newCols []string) []string {
	inNew := make(map[string]bool, len(newCols))
	for _, c := range newCols {
		inNew[c] = true
	}
	var common []string
	for _, c := range oldCols {
		if inNew[c] {
			common = append(common, c)
		}
	}
	return common
}

func sequenceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// missingFrom returns the elements of a absent from b, in a's order.
func missingFrom(a, b []string) []string {
	present := make(map[string]bool, len(b))
	for _, c := range b {
		present[c] = true
	}
	var miss []string
	for _, c := range a {
		if !present[c] {
			miss = append(miss, c)
		}
	}
	return miss
}
