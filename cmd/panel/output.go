package main

import (
	"fmt"
	"io"
	"medical-panel/domain"
	"medical-panel/domain/specialist"
	"medical-panel/sink"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func printSummary(out io.Writer, summary domain.DiagnosisSummary, artifacts sink.Artifacts) {
	findings := summary.Findings
	if summary.Consensus != nil {
		findings = append(findings[:len(findings):len(findings)], *summary.Consensus)
	}

	table := newTable(out, "Agent", "Kind", "Terms")
	for _, f := range findings {
		table.Append([]string{f.Agent, string(f.Kind), formatTerms(f)})
	}
	table.Render()

	fmt.Fprintln(out, color.New(color.FgGreen, color.OpBold).Sprintf("Panel run %s completed", summary.RunID))
	fmt.Fprintf(out, "  %s\n  %s\n", artifacts.Text, artifacts.PDF)
}

func formatTerms(f specialist.Finding) string {
	if f.IsEmpty() {
		return "-"
	}
	return strings.Join(lo.Map(f.Terms, func(t specialist.Term, _ int) string {
		return t.Text + " (" + strconv.FormatFloat(t.Score, 'f', 2, 64) + ")"
	}), ", ")
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
