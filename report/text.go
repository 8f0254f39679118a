package report

import (
	"fmt"
	"medical-panel/domain"
	"strings"
)

// Text renders the summary: metadata block, blank line, then the report body.
// Every finding gets a section, matched or not.
func Text(s domain.DiagnosisSummary) string {
	doc := newDocument(s)
	var b strings.Builder

	for _, f := range doc.Metadata {
		fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "### %s\n", Title)
	for _, f := range doc.Run {
		fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
	}

	for _, sec := range doc.Sections {
		fmt.Fprintf(&b, "\n## %s\n", sec.Heading)
		for _, line := range sec.Lines {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", ClosingLine)
	return b.String()
}
