package dialect

import "fmt"

type PostgresDialect struct{}

func (d *PostgresDialect) QuoteIdent(name string) string {
	return quoteWith(name, `"`)
}

func (d *PostgresDialect) ColumnsQuery() string {
	// Join against information_schema.tables to exclude views and foreign
	// tables; the lookup is scoped to the connection's current schema.
	return `SELECT c.column_name, c.ordinal_position
FROM information_schema.columns c
JOIN information_schema.tables t
  ON t.table_schema = c.table_schema AND t.table_name = c.table_name
WHERE t.table_type = 'BASE TABLE'
  AND c.table_schema = current_schema()
  AND c.table_name = $1
ORDER BY c.ordinal_position`
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

// ProbeSetup is empty: MVCC readers never block writers, which is the
// closest Postgres gets to the NOLOCK intent.
func (d *PostgresDialect) ProbeSetup() string {
	return ""
}

func (d *PostgresDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(1) FROM %s", d.QuoteIdent(table))
}

// ChecksumQuery hashes the whole-row text form with hashtext, so cols is
// unused. hashtext yields a signed 32-bit value per row; the cast keeps the
// sum in 64-bit range.
func (d *PostgresDialect) ChecksumQuery(table string, cols []string) string {
	return fmt.Sprintf("SELECT COALESCE(SUM(hashtext(t::text)::bigint), 0) FROM %s t", d.QuoteIdent(table))
}

func (d *PostgresDialect) SampleQuery(table string, cols []string, where, orderBy string, limit int) string {
	return fmt.Sprintf("SELECT %s FROM %s%s LIMIT %d",
		joinQuoted(cols, d.QuoteIdent), d.QuoteIdent(table), clauses(where, orderBy), limit)
}
