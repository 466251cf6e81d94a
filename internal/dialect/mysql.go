package dialect

import (
	"fmt"
	"strings"
)

type MysqlDialect struct{}

func (d *MysqlDialect) QuoteIdent(name string) string {
	return quoteWith(name, "`")
}

func (d *MysqlDialect) ColumnsQuery() string {
	return `SELECT c.COLUMN_NAME, c.ORDINAL_POSITION
FROM information_schema.COLUMNS c
JOIN information_schema.TABLES t
  ON t.TABLE_SCHEMA = c.TABLE_SCHEMA AND t.TABLE_NAME = c.TABLE_NAME
WHERE t.TABLE_TYPE = 'BASE TABLE'
  AND c.TABLE_SCHEMA = DATABASE()
  AND c.TABLE_NAME = ?
ORDER BY c.ORDINAL_POSITION`
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

// ProbeSetup switches the session to READ UNCOMMITTED, MySQL's equivalent of
// the NOLOCK dirty-read probe.
func (d *MysqlDialect) ProbeSetup() string {
	return "SET SESSION TRANSACTION ISOLATION LEVEL READ UNCOMMITTED"
}

func (d *MysqlDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(1) FROM %s", d.QuoteIdent(table))
}

// ChecksumQuery builds the row hash from the column list since MySQL has no
// whole-row hash function. CONCAT_WS skips NULL values, which gives nulls a
// zero contribution to the row hash.
func (d *MysqlDialect) ChecksumQuery(table string, cols []string) string {
	if len(cols) == 0 {
		return "SELECT 0"
	}
	return fmt.Sprintf("SELECT COALESCE(SUM(CAST(CRC32(CONCAT_WS('|', %s)) AS SIGNED)), 0) FROM %s",
		joinQuoted(cols, d.QuoteIdent), d.QuoteIdent(table))
}

func (d *MysqlDialect) SampleQuery(table string, cols []string, where, orderBy string, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", joinQuoted(cols, d.QuoteIdent), d.QuoteIdent(table))
	b.WriteString(clauses(where, orderBy))
	fmt.Fprintf(&b, " LIMIT %d", limit)
	return b.String()
}
