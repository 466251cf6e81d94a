package dialect

import "strings"

// quoteWith wraps name in the given quote character, doubling any embedded
// occurrence of it. Covers backtick and double-quote style engines.
func quoteWith(name string, quote string) string {
	return quote + strings.ReplaceAll(name, quote, quote+quote) + quote
}

// joinQuoted renders a comma-separated projection list through the dialect's
// identifier escaping.
func joinQuoted(cols []string, quote func(string) string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quote(c)
	}
	return strings.Join(quoted, ", ")
}

// clauses assembles the optional WHERE/ORDER BY tail of a sample query.
// The fragments are operator-supplied and pass through verbatim.
func clauses(where, orderBy string) string {
	var b strings.Builder
	if strings.TrimSpace(where) != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	if strings.TrimSpace(orderBy) != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(orderBy)
	}
	return b.String()
}
