package schema

// Column is one catalog entry for a table: its name and the physical
// ordinal position that defines canonical column order on that connection.
type Column struct {
	Name    string
	Ordinal int
}

// Names flattens a column list to its names, preserving ordinal order.
func Names(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}
