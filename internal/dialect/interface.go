package dialect

// Dialect abstracts database-specific SQL generation for the comparison
// queries. Both sides of a comparison always share one Dialect because
// cross-engine checksums are not comparable.
type Dialect interface {
	// QuoteIdent escapes a table or column identifier structurally so that
	// special characters in names cannot break the generated statement.
	QuoteIdent(name string) string

	// ColumnsQuery returns the catalog query for one table, bound as the
	// first parameter. It must yield (column name, ordinal position) rows
	// for ordinary user tables only, ordered by physical column position.
	ColumnsQuery() string

	// Placeholder returns the bind marker for a given index (?, $1, @p1, :1).
	Placeholder(index int) string

	// ProbeSetup returns a session statement executed once before the
	// aggregate probes to get dirty-read behavior, or "" when the engine
	// needs none (non-blocking readers, or a per-query hint instead).
	ProbeSetup() string

	// CountQuery returns the exact row count aggregate for a table.
	CountQuery(table string) string

	// ChecksumQuery returns an order-independent content checksum aggregate:
	// the sum over all rows of a fast per-row hash, null contributing zero.
	// Engines without a whole-row hash build one from the column list.
	ChecksumQuery(table string, cols []string) string

	// SampleQuery returns a projected select limited to at most limit rows.
	// where and orderBy are raw fragments supplied by the operator and are
	// embedded verbatim; only identifiers are escaped.
	SampleQuery(table string, cols []string, where, orderBy string, limit int) string
}
