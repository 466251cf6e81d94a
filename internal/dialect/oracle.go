package dialect

import (
	"fmt"
	"strings"
)

type OracleDialect struct{}

func (d *OracleDialect) QuoteIdent(name string) string {
	return quoteWith(name, `"`)
}

func (d *OracleDialect) ColumnsQuery() string {
	// USER_TAB_COLUMNS joined with USER_TABLES: views and synonyms appear in
	// USER_TAB_COLUMNS too, the join keeps only real tables of the current user.
	return `SELECT c.COLUMN_NAME, c.COLUMN_ID
FROM USER_TAB_COLUMNS c
JOIN USER_TABLES t ON t.TABLE_NAME = c.TABLE_NAME
WHERE c.TABLE_NAME = :1
ORDER BY c.COLUMN_ID`
}

func (d *OracleDialect) Placeholder(index int) string {
	return fmt.Sprintf(":%d", index+1)
}

// ProbeSetup is empty: Oracle readers are non-blocking by default.
func (d *OracleDialect) ProbeSetup() string {
	return ""
}

func (d *OracleDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(1) FROM %s", d.QuoteIdent(table))
}

// ChecksumQuery concatenates the columns into one hashed string per row.
// NULL concatenates as empty in Oracle, so null cells add nothing to the hash
// input.
func (d *OracleDialect) ChecksumQuery(table string, cols []string) string {
	if len(cols) == 0 {
		return "SELECT 0 FROM DUAL"
	}
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = d.QuoteIdent(c)
	}
	return fmt.Sprintf("SELECT NVL(SUM(ORA_HASH(%s)), 0) FROM %s",
		strings.Join(quoted, " || '|' || "), d.QuoteIdent(table))
}

func (d *OracleDialect) SampleQuery(table string, cols []string, where, orderBy string, limit int) string {
	return fmt.Sprintf("SELECT %s FROM %s%s FETCH FIRST %d ROWS ONLY",
		joinQuoted(cols, d.QuoteIdent), d.QuoteIdent(table), clauses(where, orderBy), limit)
}
