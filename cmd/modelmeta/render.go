package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"modelmeta/internal/metadata"
)

// printSummary renders the metadata summary as a table on terminals and as
// plain label: value lines when output is redirected.
func printSummary(cmd *cobra.Command, summary metadata.Summary) {
	rows := summaryRows(summary)
	if len(rows) == 0 {
		return
	}

	out := cmd.OutOrStdout()
	if isTerminal(out) {
		fmt.Fprintln(out, renderSummaryTable(rows))
		return
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s: %s\n", row[0], row[1])
	}
}

func summaryRows(summary metadata.Summary) [][2]string {
	rows := make([][2]string, 0, 8)
	add := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		rows = append(rows, [2]string{label, value})
	}

	add("Model", summary.ModelName)
	add("Version", summary.VersionName)
	add("Type", summary.Type)
	add("Base model", summary.BaseModel)
	if summary.ModelID > 0 {
		add("Model ID", strconv.FormatInt(summary.ModelID, 10))
	}
	if summary.VersionID > 0 {
		add("Version ID", strconv.FormatInt(summary.VersionID, 10))
	}
	add("Creator", summary.Creator)
	add("Tags", strings.Join(summary.Tags, ", "))
	return rows
}

func renderSummaryTable(rows [][2]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Field", "Value"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft, WidthMax: 72},
	})
	return tw.Render()
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
