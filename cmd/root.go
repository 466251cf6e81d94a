package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:   "db-compare",
	Short: "Compare two editions of the same database",
	Long: `
  ____  ____     ____ ___  __  __ ____   _    ____  _____
 |  _ \| __ )   / ___/ _ \|  \/  |  _ \ / \  |  _ \| ____|
 | | | |  _ \  | |  | | | | |\/| | |_) / _ \ | |_) |  _|
 | |_| | |_) | | |__| |_| | |  | |  __/ ___ \|  _ <| |___
 |____/|____/   \____\___/|_|  |_|_| /_/   \_\_| \_\_____|

DB COMPARE - migration fidelity checker

Validates that a migration or ETL run preserved data between an old and a
new edition of the same schema: per-table schema reconciliation, row count
and checksum probing, and sampled row diffs on mismatch. Strictly read-only.

Probes run under dirty-read isolation (NOLOCK / READ UNCOMMITTED): fast and
non-blocking, but concurrent writes during a probe can report a spurious
mismatch on an otherwise consistent table.
`,
	SilenceUsage: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./db-compare.{json,yaml})")
	RootCmd.PersistentFlags().String("old-dsn", "", "DSN of the old (source) database")
	RootCmd.PersistentFlags().String("new-dsn", "", "DSN of the new (target) database")
	RootCmd.PersistentFlags().String("driver", "", "database driver for both sides (sqlserver, postgres, mysql, oracle)")

	viper.BindPFlag("old_db.dsn", RootCmd.PersistentFlags().Lookup("old-dsn"))
	viper.BindPFlag("new_db.dsn", RootCmd.PersistentFlags().Lookup("new-dsn"))
	viper.BindPFlag("driver", RootCmd.PersistentFlags().Lookup("driver"))

	viper.SetDefault("settings.sample_limit", 100)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("db-compare")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
