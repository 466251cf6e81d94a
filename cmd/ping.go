package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test connectivity to both databases",
	RunE: func(cmd *cobra.Command, args []string) error {
		oldSide, newSide, err := GetSides()
		if err != nil {
			return err
		}

		failures := 0
		for _, side := range []struct {
			label string
			cfg   *SideConfig
		}{
			{"old", oldSide},
			{"new", newSide},
		} {
			db, err := openSide(side.label, side.cfg)
			if err != nil {
				fmt.Printf("❌ %s: %v\n", side.label, err)
				failures++
				continue
			}
			db.Close()
			fmt.Printf("✅ %s: connected (%s)\n", side.label, side.cfg.Driver)
		}

		if failures > 0 {
			return fmt.Errorf("%d side(s) unreachable", failures)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(pingCmd)
}
