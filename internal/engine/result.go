package engine

// Row is one sampled row with every cell reduced to its canonical string
// form (see Canonical).
type Row map[string]string

// Result is the outcome of comparing one table across the old and new sides.
// Count and checksum fields are nil until the corresponding probe succeeded,
// so a failed comparison still shows whatever was collected before the error.
type Result struct {
	Table       string
	SchemaEqual bool
	RowCountOld *int64
	RowCountNew *int64
	ChecksumOld *int64
	ChecksumNew *int64

	// OK is true iff both row counts and both checksums match. It concerns
	// data content only; schema drift is reported separately and may coexist
	// with OK = true.
	OK bool

	Messages    []string
	OnlyInOld   []Row
	OnlyInNew   []Row
	ColumnsUsed []string
}
