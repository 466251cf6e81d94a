package engine

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"db-compare/internal/dialect"
)

// sessionDriver hands out numbered connections and records which connection
// each statement ran on. Session-level settings only hold on the connection
// they were issued on, so the probe must keep all its statements together.
type sessionDriver struct {
	mu    sync.Mutex
	next  int
	stmts []sessionStmt
}

type sessionStmt struct {
	conn  int
	query string
}

func (d *sessionDriver) Open(name string) (driver.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.next++
	return &sessionConn{id: d.next, drv: d}, nil
}

func (d *sessionDriver) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stmts = nil
}

func (d *sessionDriver) recorded() []sessionStmt {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]sessionStmt(nil), d.stmts...)
}

func (d *sessionDriver) record(conn int, query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stmts = append(d.stmts, sessionStmt{conn: conn, query: query})
}

type sessionConn struct {
	id  int
	drv *sessionDriver
}

func (c *sessionConn) Prepare(query string) (driver.Stmt, error) {
	return &recordingStmt{conn: c, query: query}, nil
}

func (c *sessionConn) Close() error { return nil }

func (c *sessionConn) Begin() (driver.Tx, error) {
	return nil, errors.New("transactions not supported")
}

type recordingStmt struct {
	conn  *sessionConn
	query string
}

func (s *recordingStmt) Close() error  { return nil }
func (s *recordingStmt) NumInput() int { return 0 }

func (s *recordingStmt) Exec(args []driver.Value) (driver.Result, error) {
	s.conn.drv.record(s.conn.id, s.query)
	return driver.RowsAffected(0), nil
}

func (s *recordingStmt) Query(args []driver.Value) (driver.Rows, error) {
	s.conn.drv.record(s.conn.id, s.query)
	return &scalarRows{value: 7}, nil
}

type scalarRows struct {
	value int64
	done  bool
}

func (r *scalarRows) Columns() []string { return []string{"v"} }
func (r *scalarRows) Close() error      { return nil }

func (r *scalarRows) Next(dest []driver.Value) error {
	if r.done {
		return io.EOF
	}
	r.done = true
	dest[0] = r.value
	return nil
}

var sessions = &sessionDriver{}

func init() { sql.Register("session-recorder", sessions) }

// The MySQL dialect sets READ UNCOMMITTED per session; the setting is useless
// unless the count and checksum run on that same session. The pool here keeps
// no idle connections, so any statement issued through the pooled handle
// would land on a fresh connection.
func TestProbe_StatementsShareOneSession(t *testing.T) {
	sessions.reset()

	db, err := sql.Open("session-recorder", "")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	db.SetMaxIdleConns(0)

	count, checksum, err := Probe(db, &dialect.MysqlDialect{}, "orders", []string{"id"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 7 || checksum != 7 {
		t.Errorf("count=%d checksum=%d, want 7 and 7", count, checksum)
	}

	stmts := sessions.recorded()
	if len(stmts) != 3 {
		t.Fatalf("expected 3 statements (isolation, count, checksum), got %d: %v", len(stmts), stmts)
	}
	if !strings.Contains(stmts[0].query, "READ UNCOMMITTED") {
		t.Errorf("isolation must be set before the aggregates, got %q first", stmts[0].query)
	}
	for _, s := range stmts[1:] {
		if s.conn != stmts[0].conn {
			t.Errorf("%q ran on connection %d, but isolation was set on connection %d", s.query, s.conn, stmts[0].conn)
		}
	}
}

// Dialects without a setup statement still run both aggregates on one
// connection.
func TestProbe_NoSetupStillPinsConnection(t *testing.T) {
	sessions.reset()

	db, err := sql.Open("session-recorder", "")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	db.SetMaxIdleConns(0)

	if _, _, err := Probe(db, &dialect.MSSQLDialect{}, "orders", []string{"id"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stmts := sessions.recorded()
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements (count, checksum), got %d: %v", len(stmts), stmts)
	}
	if stmts[0].conn != stmts[1].conn {
		t.Errorf("count ran on connection %d, checksum on %d", stmts[0].conn, stmts[1].conn)
	}
}
