package cmd

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/spf13/viper"
)

// SideConfig is the connection settings of one side of the comparison.
type SideConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// GetSides returns the old and new side configurations from viper. Both
// sides must be configured and must use the same driver: checksums are not
// comparable across engines, so cross-engine pairs are rejected outright.
func GetSides() (oldSide, newSide *SideConfig, err error) {
	var o, n SideConfig
	if err := viper.UnmarshalKey("old_db", &o); err != nil {
		return nil, nil, fmt.Errorf("failed to parse old_db config: %w", err)
	}
	if err := viper.UnmarshalKey("new_db", &n); err != nil {
		return nil, nil, fmt.Errorf("failed to parse new_db config: %w", err)
	}

	// A top-level driver applies to both sides unless a side overrides it.
	if global := viper.GetString("driver"); global != "" {
		if o.Driver == "" {
			o.Driver = global
		}
		if n.Driver == "" {
			n.Driver = global
		}
	}

	if o.DSN == "" {
		return nil, nil, fmt.Errorf("old_db.dsn is required (via config or --old-dsn)")
	}
	if n.DSN == "" {
		return nil, nil, fmt.Errorf("new_db.dsn is required (via config or --new-dsn)")
	}
	if o.Driver == "" || n.Driver == "" {
		return nil, nil, fmt.Errorf("driver is required (via config or --driver)")
	}
	if o.Driver != n.Driver {
		return nil, nil, fmt.Errorf("old and new sides must use the same driver (got %q and %q)", o.Driver, n.Driver)
	}

	return &o, &n, nil
}

// TableGroups returns the registered tables grouped by category, e.g.
// "master" and "transaction". Group names come back sorted so runs are
// deterministic regardless of config map ordering.
func TableGroups() (groups map[string][]string, names []string, err error) {
	groups = make(map[string][]string)
	if err := viper.UnmarshalKey("tables", &groups); err != nil {
		return nil, nil, fmt.Errorf("failed to parse tables config: %w", err)
	}
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return groups, names, nil
}

// RegisteredTables flattens the registry to the list the engine consumes,
// group by group in sorted group order.
func RegisteredTables() ([]string, error) {
	groups, names, err := TableGroups()
	if err != nil {
		return nil, err
	}
	var tables []string
	for _, g := range names {
		tables = append(tables, groups[g]...)
	}
	return tables, nil
}

// openSide opens and pings one side. The caller owns the returned handle.
func openSide(label string, side *SideConfig) (*sql.DB, error) {
	db, err := sql.Open(side.Driver, side.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", label, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", label, err)
	}
	return db, nil
}
