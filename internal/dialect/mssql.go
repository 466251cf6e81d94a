package dialect

import (
	"fmt"
	"strings"
)

type MSSQLDialect struct{}

// QuoteIdent bracket-quotes the name, doubling any closing bracket inside it.
func (d *MSSQLDialect) QuoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func (d *MSSQLDialect) ColumnsQuery() string {
	// sys.columns keeps physical column order in column_id; o.type 'U'
	// restricts the lookup to ordinary user tables.
	return `SELECT c.name, c.column_id
FROM sys.columns c
INNER JOIN sys.objects o ON c.object_id = o.object_id
WHERE o.type IN ('U') AND o.name = @p1
ORDER BY c.column_id`
}

func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

// ProbeSetup is empty: dirty reads come from the NOLOCK table hint instead.
func (d *MSSQLDialect) ProbeSetup() string {
	return ""
}

func (d *MSSQLDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT_BIG(1) FROM %s WITH (NOLOCK)", d.QuoteIdent(table))
}

// ChecksumQuery ignores cols: BINARY_CHECKSUM(*) already hashes the whole row.
// The per-row value is widened to BIGINT before summing so the aggregate
// cannot overflow the 32-bit hash range on large tables.
func (d *MSSQLDialect) ChecksumQuery(table string, cols []string) string {
	return fmt.Sprintf("SELECT ISNULL(SUM(CAST(BINARY_CHECKSUM(*) AS BIGINT)), 0) FROM %s WITH (NOLOCK)", d.QuoteIdent(table))
}

func (d *MSSQLDialect) SampleQuery(table string, cols []string, where, orderBy string, limit int) string {
	return fmt.Sprintf("SELECT TOP (%d) %s FROM %s WITH (NOLOCK)%s",
		limit, joinQuoted(cols, d.QuoteIdent), d.QuoteIdent(table), clauses(where, orderBy))
}
