package engine

import "fmt"

// CatalogError reports that table or column metadata could not be read:
// missing table, permission denied, or a dead connection.
type CatalogError struct {
	Table string
	Side  string
	Err   error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog read failed for %s (%s): %v", e.Table, e.Side, e.Err)
}

func (e *CatalogError) Unwrap() error { return e.Err }

// ProbeError reports a failed row-count or checksum aggregate.
type ProbeError struct {
	Table string
	Side  string
	Err   error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("aggregate probe failed for %s (%s): %v", e.Table, e.Side, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// SampleError reports a failed row fetch, typically a bad operator-supplied
// filter or order fragment, or a column dropped since the catalog read.
type SampleError struct {
	Table string
	Side  string
	Err   error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("row sample failed for %s (%s): %v", e.Table, e.Side, e.Err)
}

func (e *SampleError) Unwrap() error { return e.Err }
