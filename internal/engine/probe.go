package engine

import (
	"context"
	"database/sql"
	"fmt"

	"db-compare/internal/dialect"
)

// Probe returns the exact row count and the aggregate content checksum of a
// table. Both aggregates run under dirty-read isolation by explicit choice:
// the tool favors speed and non-interference with production traffic over
// transactional consistency, so a concurrent write during the probe can
// produce a spurious mismatch on an otherwise consistent table.
//
// The whole probe is pinned to one connection from the pool: a session-level
// isolation statement (ProbeSetup) only governs queries issued on the same
// physical connection, which the pooled handle does not guarantee.
//
// The checksum is a cheap, order-independent, collision-prone equality
// pre-check, not a proof: different data can sum to the same value.
func Probe(db *sql.DB, d dialect.Dialect, table string, cols []string) (count, checksum int64, err error) {
	ctx := context.Background()
	conn, err := db.Conn(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	if setup := d.ProbeSetup(); setup != "" {
		if _, err := conn.ExecContext(ctx, setup); err != nil {
			return 0, 0, fmt.Errorf("failed to set probe isolation: %w", err)
		}
	}

	if err := conn.QueryRowContext(ctx, d.CountQuery(table)).Scan(&count); err != nil {
		return 0, 0, fmt.Errorf("row count failed: %w", err)
	}
	if err := conn.QueryRowContext(ctx, d.ChecksumQuery(table, cols)).Scan(&checksum); err != nil {
		return 0, 0, fmt.Errorf("checksum failed: %w", err)
	}
	return count, checksum, nil
}
