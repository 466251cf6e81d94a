package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"db-compare/internal/dialect"
	"db-compare/internal/engine"

	"github.com/gosuri/uiprogress"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	compareTables []string
	sampleLimit   int
	sampleWhere   string
	sampleOrderBy string
	csvOut        string
	showSamples   bool
)

var compareCmd = &cobra.Command{
	Use:   "compare [table...]",
	Short: "Compare tables between the old and new databases",
	Long: `Compares each table on schema (column names and order), row count and
content checksum. When counts or checksums differ, a bounded sample from each
side is set-diffed over the common columns to show example divergent rows.

The sample diff is triage, not proof: only the first N rows per side are
inspected, so divergent rows outside that window will not appear in the
only-in lists even though the table is reported as different.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		oldSide, newSide, err := GetSides()
		if err != nil {
			return err
		}

		// Table selection: positional args > --tables flag > registry.
		targets := args
		if len(targets) == 0 {
			targets = compareTables
		}
		if len(targets) == 0 {
			targets, err = RegisteredTables()
			if err != nil {
				return err
			}
		}
		if len(targets) == 0 {
			return fmt.Errorf("no tables to compare (pass table names or register them under tables in the config)")
		}

		oldDB, err := openSide("old", oldSide)
		if err != nil {
			return err
		}
		defer oldDB.Close()

		newDB, err := openSide("new", newSide)
		if err != nil {
			return err
		}
		defer newDB.Close()

		d := dialect.Get(oldSide.Driver)
		log.Printf("Using dialect: %s", oldSide.Driver)

		eng := engine.New(oldDB, newDB, d)
		eng.Where = sampleWhere
		eng.OrderBy = sampleOrderBy
		if sampleLimit > 0 {
			eng.SampleLimit = sampleLimit
		} else {
			eng.SampleLimit = viper.GetInt("settings.sample_limit")
		}

		log.Printf("Comparing %d table(s)...", len(targets))

		uiprogress.Start()
		bar := uiprogress.AddBar(len(targets)).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Comparing: "
		})

		results := eng.CompareTables(targets, func() {
			bar.Incr()
		})

		uiprogress.Stop()

		printSummary(results)

		failed := 0
		for _, r := range results {
			if !r.OK {
				failed++
			}
			if needsDetail(r) {
				printDetail(os.Stdout, r)
			}
		}

		if csvOut != "" {
			if err := writeCSV(csvOut, results); err != nil {
				return err
			}
			log.Printf("Results written to %s", csvOut)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d table(s) differ", failed, len(results))
		}
		fmt.Printf("\n✅ All %d table(s) match.\n", len(results))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringSliceVarP(&compareTables, "tables", "t", nil, "tables to compare (default: registry from config)")
	compareCmd.Flags().IntVarP(&sampleLimit, "limit", "l", 0, "row cap per side for the sample diff (default from config, 100)")
	compareCmd.Flags().StringVar(&sampleWhere, "where", "", "raw filter applied to both sides' sample fetch")
	compareCmd.Flags().StringVar(&sampleOrderBy, "order-by", "", "raw ordering applied to both sides' sample fetch")
	compareCmd.Flags().StringVar(&csvOut, "csv", "", "write the per-table summary to a CSV file")
	compareCmd.Flags().BoolVar(&showSamples, "show-samples", true, "print sample rows unique to each side for differing tables")
}

func printSummary(results []engine.Result) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Table", "Schema", "Rows (old)", "Rows (new)", "Checksum", "OK"})

	for _, r := range results {
		table.Append([]string{
			r.Table,
			boolMark(r.SchemaEqual),
			countStr(r.RowCountOld),
			countStr(r.RowCountNew),
			checksumMark(r),
			boolMark(r.OK),
		})
	}
	fmt.Println()
	table.Render()
}

// needsDetail reports whether a result deserves a per-table detail block.
// Schema drift is worth showing even when the content still matches, since
// the summary table only carries a pass/fail mark for it.
func needsDetail(r engine.Result) bool {
	return !r.OK || !r.SchemaEqual
}

func printDetail(w io.Writer, r engine.Result) {
	mark := "❌"
	if r.OK {
		mark = "⚠️"
	}
	fmt.Fprintf(w, "\n%s %s\n", mark, r.Table)
	for _, m := range r.Messages {
		fmt.Fprintf(w, "   - %s\n", m)
	}
	if !showSamples {
		return
	}
	if len(r.OnlyInOld) > 0 {
		fmt.Fprintf(w, "   sample rows only in OLD (%d, columns: %s):\n", len(r.OnlyInOld), strings.Join(r.ColumnsUsed, ", "))
		printRows(w, r.OnlyInOld, r.ColumnsUsed)
	}
	if len(r.OnlyInNew) > 0 {
		fmt.Fprintf(w, "   sample rows only in NEW (%d, columns: %s):\n", len(r.OnlyInNew), strings.Join(r.ColumnsUsed, ", "))
		printRows(w, r.OnlyInNew, r.ColumnsUsed)
	}
}

func printRows(w io.Writer, rows []engine.Row, cols []string) {
	for _, row := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = row[c]
		}
		fmt.Fprintf(w, "     (%s)\n", strings.Join(cells, ", "))
	}
}

func writeCSV(path string, results []engine.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"table", "schema_equal", "rowcount_old", "rowcount_new", "checksum_old", "checksum_new", "ok", "messages"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		rec := []string{
			r.Table,
			strconv.FormatBool(r.SchemaEqual),
			countStr(r.RowCountOld),
			countStr(r.RowCountNew),
			countStr(r.ChecksumOld),
			countStr(r.ChecksumNew),
			strconv.FormatBool(r.OK),
			strings.Join(r.Messages, "; "),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

func countStr(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func boolMark(ok bool) string {
	if ok {
		return "✔"
	}
	return "✘"
}

func checksumMark(r engine.Result) string {
	if r.ChecksumOld == nil || r.ChecksumNew == nil {
		return ""
	}
	if *r.ChecksumOld == *r.ChecksumNew {
		return "match"
	}
	return "differs"
}
