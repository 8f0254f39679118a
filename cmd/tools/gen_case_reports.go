package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// sample case reports for manual panel runs
var cases = map[string]string{
	"scenario.txt": `Name: Jane Doe
Patient ID: P-001
Age: 54
Gender: Female
Date of Report: 2024-03-14
Chief Complaint: chest pain

Patient reports chest pain and shortness of breath, with recent panic attacks.
`,
	"no_match.txt": `Name: John Smith
Patient ID: P-002
Age: 37
Gender: Male
Date of Report: 2024-04-02
Chief Complaint: sprained ankle

Patient twisted the left ankle while running. Mild swelling, no bruising.
`,
	"no_metadata.txt": "Chief Complaint: palpitations\n\nIntermittent palpitations at night, sometimes with trembling and sweating.\n",
	"french.txt": `Nom: Marie Curie
Chief Complaint: douleur thoracique

La patiente décrit une douleur thoracique et un essoufflement depuis trois jours,
accompagnés de crises d'angoisse répétées pendant la nuit.
`,
	"empty.txt": "",
}

func main() {
	outputDir := "./testdata/cases"
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot create %s: %v\n", outputDir, err)
		os.Exit(1)
	}

	for name, content := range cases {
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Case report written: %s\n", path)
	}

	// A PDF case report is rejected by the panel, which only reads text.
	pdfPath := filepath.Join(outputDir, "scanned_report.pdf")
	if err := genPDF(pdfPath, cases["scenario.txt"]); err != nil {
		fmt.Fprintf(os.Stderr, "Cannot write %s: %v\n", pdfPath, err)
		os.Exit(1)
	}
	fmt.Printf("PDF case report written: %s\n", pdfPath)
}

func genPDF(path, content string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 12, "Case report")
	pdf.Ln(14)
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 7, content, "", "", false)
	return pdf.OutputFileAndClose(path)
}
