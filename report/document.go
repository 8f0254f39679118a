// Package report renders a diagnosis summary as plain text and PDF.
// Both formats are built from the same document so they never drift apart.
package report

import (
	"fmt"
	"medical-panel/domain"
	"medical-panel/domain/specialist"
	"time"
)

const (
	Title       = "Final Diagnosis Report"
	ClosingLine = "These keywords suggest a combination of physiological and psychological components " +
		"that should be reviewed by a multidisciplinary medical team."
	NoMatch = "no matching terms"
)

type section struct {
	Heading string
	Lines   []string
}

type document struct {
	Metadata []domain.Field
	Run      []domain.Field
	Sections []section
}

func newDocument(s domain.DiagnosisSummary) document {
	doc := document{
		Metadata: s.Patient.Fields(),
		Run: []domain.Field{
			{Label: "Run ID", Value: s.RunID.String()},
			{Label: "Generated", Value: s.GeneratedAt.UTC().Format(time.RFC3339)},
			{Label: "Source", Value: orNA(s.Source)},
			{Label: "Language", Value: orNA(s.Language)},
		},
	}
	for _, f := range s.Findings {
		doc.Sections = append(doc.Sections, findingSection(f))
	}
	if s.Consensus != nil {
		doc.Sections = append(doc.Sections, findingSection(*s.Consensus))
	}
	return doc
}

func findingSection(f specialist.Finding) section {
	sec := section{Heading: fmt.Sprintf("%s (%s)", f.Agent, f.Kind)}
	if f.IsEmpty() {
		sec.Lines = []string{NoMatch}
		return sec
	}
	for _, t := range f.Terms {
		sec.Lines = append(sec.Lines, fmt.Sprintf("%s (relevance score: %.2f)", t.Text, t.Score))
	}
	return sec
}

func orNA(v string) string {
	if v == "" {
		return domain.NotAvailable
	}
	return v
}
