package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/nlpsummarize/internal/report"
	"github.com/KaramelBytes/nlpsummarize/internal/table"
)

var columnsCmd = &cobra.Command{
	Use:   "columns <file>",
	Short: "List the columns of a file and mark the ones holding text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := resolveSettings()
		if err != nil {
			return err
		}
		t, err := table.Open(args[0], s.load)
		if err != nil {
			return err
		}
		cols := &report.Columns{Source: args[0], Rows: t.Rows(), All: t.Names(), Text: t.TextColumns()}
		var out []byte
		switch s.format {
		case report.FormatJSON, report.FormatYAML:
			if out, err = report.Encode(cols, s.format); err != nil {
				return err
			}
		default:
			out = []byte(cols.Markdown())
		}
		return emit(cmd, out, flagOutput)
	},
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}
