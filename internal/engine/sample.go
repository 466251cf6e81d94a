package engine

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"db-compare/internal/dialect"
	"db-compare/internal/schema"
)

// SampleSpec describes one bounded row fetch: an explicit column projection,
// optional raw filter and order fragments, and the row cap.
type SampleSpec struct {
	Columns []string
	Where   string
	OrderBy string
	Limit   int
}

// FetchSample returns up to spec.Limit rows from the table, restricted to the
// requested columns, each cell in canonical string form. The default
// projection is the full set of columns both sides share: the diff engine
// computes that set and passes it in, so two sides stay comparable after
// schema drift. Given an empty projection, a single-sided caller gets this
// connection's full catalog column set instead; a table with no columns at
// all yields an empty sample without error.
//
// spec.Where and spec.OrderBy are embedded verbatim in the executed query.
// The operator is the trust boundary here; identifiers are the only escaped
// parts of the statement.
func FetchSample(db *sql.DB, d dialect.Dialect, table string, spec SampleSpec) ([]Row, error) {
	cols := spec.Columns
	if len(cols) == 0 {
		catalog, err := schema.ReadColumns(db, d, table)
		if err != nil {
			return nil, err
		}
		cols = schema.Names(catalog)
	}
	if len(cols) == 0 {
		return nil, nil
	}

	rows, err := db.Query(d.SampleQuery(table, cols, spec.Where, spec.OrderBy, spec.Limit))
	if err != nil {
		return nil, fmt.Errorf("sample query failed: %w", err)
	}
	defer rows.Close()

	var sample []Row
	cells := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range cells {
		ptrs[i] = &cells[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("sample scan failed: %w", err)
		}
		row := make(Row, len(cols))
		for i, c := range cols {
			row[c] = Canonical(cells[i])
		}
		sample = append(sample, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sample iteration failed: %w", err)
	}
	return sample, nil
}

// NullToken is the canonical form of a SQL NULL cell. It is distinct from
// the empty string so a null and an empty text value never compare equal.
const NullToken = "∅"

// Canonical reduces one scanned cell to a stable comparable string. Values
// of differing native types compare equal exactly when their canonical forms
// coincide (so integer 1 and text "1" are equal, as are the two sides of a
// table whose column types drifted but whose content did not).
func Canonical(v any) string {
	switch x := v.(type) {
	case nil:
		return NullToken
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.UTC().Format(time.RFC3339Nano)
	default:
		return fmt.Sprintf("%v", x)
	}
}
