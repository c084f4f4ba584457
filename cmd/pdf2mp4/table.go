package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/kuraken88/pdf2mp4/internal/pipeline"
)

// renderSummary renders the per-page outcome table printed after a run.
func renderSummary(report *pipeline.RunReport) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Page", "State", "Detail"})

	for _, res := range report.Results {
		detail := res.ClipPath
		if res.Err != nil {
			detail = res.Err.Error()
		}
		tw.AppendRow(table.Row{res.Index + 1, res.State.String(), detail})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
