package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/paiphyo4f20/Subtitles/internal/service"
	"github.com/paiphyo4f20/Subtitles/internal/subtitle"
)

func newStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [input.srt]",
		Short: "Show translation statistics for a file, or just the memory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore()
			if err != nil {
				return err
			}

			var entries []subtitle.Entry
			if len(args) > 0 {
				doc, err := subtitle.NewReader(args[0]).Read()
				if err != nil {
					return service.ClassifyReadError(err, args[0])
				}
				entries = doc.Entries
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderStatistics(service.ComputeStatistics(entries, store)))
			return nil
		},
	}
}

func renderStatistics(stats service.Statistics) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"Total lines", stats.TotalLines},
		{"Translated lines", stats.TranslatedLines},
		{"Progress", fmt.Sprintf("%.1f%%", stats.Progress)},
		{"Memory entries", stats.MemoryEntries},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
