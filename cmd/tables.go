package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables registered for comparison",
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, names, err := TableGroups()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No tables registered. Add them under tables in the config, e.g.:")
			fmt.Println(`  tables: { "master": ["PNM_Zone"], "transaction": ["DOC_Header"] }`)
			return nil
		}

		w := tablewriter.NewWriter(os.Stdout)
		w.SetHeader([]string{"Group", "Table"})
		total := 0
		for _, g := range names {
			for _, t := range groups[g] {
				w.Append([]string{g, t})
				total++
			}
		}
		w.Render()
		fmt.Printf("%d table(s) in %d group(s)\n", total, len(names))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(tablesCmd)
}
