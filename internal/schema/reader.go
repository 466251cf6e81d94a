package schema

import (
	"database/sql"
	"fmt"

	"db-compare/internal/dialect"
)

// ReadColumns returns the ordered (name, ordinal) column list for one table
// from the database catalog. A missing table yields an empty list; callers
// that require existence check for that themselves.
func ReadColumns(db *sql.DB, d dialect.Dialect, table string) ([]Column, error) {
	rows, err := db.Query(d.ColumnsQuery(), table)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns of %s: %w", table, err)
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var c Column
		if err := rows.Scan(&c.Name, &c.Ordinal); err != nil {
			return nil, fmt.Errorf("failed to scan column of %s: %w", table, err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns of %s: %w", table, err)
	}
	return cols, nil
}
