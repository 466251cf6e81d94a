package engine

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"db-compare/internal/dialect"
	"db-compare/internal/schema"
)

// DefaultSampleLimit caps the rows fetched per side during row-level diffing.
const DefaultSampleLimit = 100

// Engine compares tables between two already-open connections of the same
// database engine. It holds no state between calls and never opens or closes
// connections of its own; the caller owns both handles for the engine's
// lifetime and must close them on every exit path.
type Engine struct {
	Old *sql.DB
	New *sql.DB
	D   dialect.Dialect

	// SampleLimit bounds the rows fetched and reported per side on a data
	// mismatch. Zero means DefaultSampleLimit.
	SampleLimit int

	// Where and OrderBy are optional raw fragments applied to both sides'
	// sample fetch, passed through verbatim.
	Where   string
	OrderBy string
}

// New returns an Engine over the two connections.
func New(oldDB, newDB *sql.DB, d dialect.Dialect) *Engine {
	return &Engine{Old: oldDB, New: newDB, D: d}
}

func (e *Engine) sampleLimit() int {
	if e.SampleLimit > 0 {
		return e.SampleLimit
	}
	return DefaultSampleLimit
}

// CompareTables compares each named table sequentially, one at a time, and
// calls onProgress after each. A failure inside one table never aborts the
// batch: that table's Result carries the error message and whatever fields
// were populated before it.
func (e *Engine) CompareTables(tables []string, onProgress func()) []Result {
	results := make([]Result, 0, len(tables))
	for _, t := range tables {
		results = append(results, e.CompareTable(t))
		if onProgress != nil {
			onProgress()
		}
	}
	return results
}

// CompareTable classifies one table as identical, schema-drifted, or
// content-different. Schema reconciliation never short-circuits the probe;
// the sample diff runs only when counts or checksums disagree.
//
// The sample diff is triage, not reconciliation: it sees only the first
// SampleLimit rows per side, so divergent rows outside that window leave both
// only-in lists empty even though OK is false.
func (e *Engine) CompareTable(table string) Result {
	res := Result{Table: table, SchemaEqual: true, OK: true}

	colsOld, err := schema.ReadColumns(e.Old, e.D, table)
	if err == nil && len(colsOld) == 0 {
		err = fmt.Errorf("table not found in catalog")
	}
	if err != nil {
		return e.fail(res, &CatalogError{Table: table, Side: "old", Err: err})
	}
	colsNew, err := schema.ReadColumns(e.New, e.D, table)
	if err == nil && len(colsNew) == 0 {
		err = fmt.Errorf("table not found in catalog")
	}
	if err != nil {
		return e.fail(res, &CatalogError{Table: table, Side: "new", Err: err})
	}

	namesOld := schema.Names(colsOld)
	namesNew := schema.Names(colsNew)
	equal, msgs := schema.Reconcile(namesOld, namesNew)
	res.SchemaEqual = equal
	res.Messages = append(res.Messages, msgs...)

	cntOld, sumOld, err := Probe(e.Old, e.D, table, namesOld)
	if err != nil {
		return e.fail(res, &ProbeError{Table: table, Side: "old", Err: err})
	}
	res.RowCountOld, res.ChecksumOld = &cntOld, &sumOld

	cntNew, sumNew, err := Probe(e.New, e.D, table, namesNew)
	if err != nil {
		return e.fail(res, &ProbeError{Table: table, Side: "new", Err: err})
	}
	res.RowCountNew, res.ChecksumNew = &cntNew, &sumNew

	if cntOld != cntNew {
		res.OK = false
		res.Messages = append(res.Messages, fmt.Sprintf("row count mismatch (old=%d, new=%d)", cntOld, cntNew))
	}
	if sumOld != sumNew {
		res.OK = false
		res.Messages = append(res.Messages, fmt.Sprintf("checksum mismatch (old=%d, new=%d)", sumOld, sumNew))
	}

	if res.OK {
		return res
	}

	common := schema.CommonColumns(namesOld, namesNew)
	res.ColumnsUsed = common
	if len(common) == 0 {
		// Nothing to diff on; counts and checksums already tell the story.
		return res
	}

	spec := SampleSpec{Columns: common, Where: e.Where, OrderBy: e.OrderBy, Limit: e.sampleLimit()}
	sampleOld, err := FetchSample(e.Old, e.D, table, spec)
	if err != nil {
		return e.fail(res, &SampleError{Table: table, Side: "old", Err: err})
	}
	sampleNew, err := FetchSample(e.New, e.D, table, spec)
	if err != nil {
		return e.fail(res, &SampleError{Table: table, Side: "new", Err: err})
	}

	res.OnlyInOld, res.OnlyInNew = diffSamples(sampleOld, sampleNew, common, e.sampleLimit())
	return res
}

// fail marks the result failed with the error's description and returns it
// with whatever fields were populated so far.
func (e *Engine) fail(res Result, err error) Result {
	res.OK = false
	res.Messages = append(res.Messages, err.Error())
	return res
}

// diffSamples converts both samples to sets of row tuples over the common
// columns and returns the two set differences, each truncated to limit and
// in deterministic order so repeated comparisons of unchanged databases
// yield identical results.
func diffSamples(oldRows, newRows []Row, cols []string, limit int) (onlyOld, onlyNew []Row) {
	oldSet := rowSet(oldRows, cols)
	newSet := rowSet(newRows, cols)
	return subtract(oldSet, newSet, limit), subtract(newSet, oldSet, limit)
}

// rowKey joins the canonical cell values in column order with an unprintable
// separator, making the tuple usable as a set member.
func rowKey(r Row, cols []string) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = r[c]
	}
	return strings.Join(parts, "\x1f")
}

func rowSet(rows []Row, cols []string) map[string]Row {
	set := make(map[string]Row, len(rows))
	for _, r := range rows {
		set[rowKey(r, cols)] = r
	}
	return set
}

func subtract(a, b map[string]Row, limit int) []Row {
	keys := make([]string, 0, len(a))
	for k := range a {
		if _, ok := b[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if len(keys) > limit {
		keys = keys[:limit]
	}
	diff := make([]Row, 0, len(keys))
	for _, k := range keys {
		diff = append(diff, a[k])
	}
	return diff
}
