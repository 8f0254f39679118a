package sink

import (
	"fmt"
	"log/slog"
	"medical-panel/domain"
	"medical-panel/errors"
	"medical-panel/report"
	"os"
	"path/filepath"
)

const (
	TextArtifact = "final_diagnosis_summary.txt"
	PDFArtifact  = "final_diagnosis_summary.pdf"
)

// Artifacts holds the paths of the files written for one summary.
type Artifacts struct {
	Text string
	PDF  string
}

// ArtifactSink writes a diagnosis summary to the results directory.
// Either both artifacts exist afterwards or neither from this write does.
type ArtifactSink struct {
	dir       string
	log       *slog.Logger
	renderPDF func(domain.DiagnosisSummary) ([]byte, error)
}

func NewArtifactSink(dir string, log *slog.Logger) *ArtifactSink {
	return &ArtifactSink{dir: dir, log: log, renderPDF: report.PDF}
}

func (s *ArtifactSink) Write(summary domain.DiagnosisSummary) (Artifacts, error) {
	text := []byte(report.Text(summary))
	pdf, err := s.renderPDF(summary)
	if err != nil {
		return Artifacts{}, fmt.Errorf("%w: %v", errors.ErrOutput, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Artifacts{}, fmt.Errorf("%w: cannot create results directory: %v", errors.ErrOutput, err)
	}

	artifacts := Artifacts{
		Text: filepath.Join(s.dir, TextArtifact),
		PDF:  filepath.Join(s.dir, PDFArtifact),
	}
	if err := writeAtomic(artifacts.Text, text); err != nil {
		return Artifacts{}, err
	}
	if err := writeAtomic(artifacts.PDF, pdf); err != nil {
		if rmErr := os.Remove(artifacts.Text); rmErr != nil {
			s.log.Error("Cannot remove text artifact", "path", artifacts.Text, "error", rmErr)
		}
		return Artifacts{}, err
	}

	s.log.Info("Artifacts written",
		"text", artifacts.Text,
		"pdf", artifacts.PDF,
		"text_bytes", len(text),
		"pdf_bytes", len(pdf))
	return artifacts, nil
}

// writeAtomic writes data next to path then renames it into place.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: cannot create %s: %v", errors.ErrOutput, path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: cannot write %s: %v", errors.ErrOutput, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: cannot write %s: %v", errors.ErrOutput, path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: cannot write %s: %v", errors.ErrOutput, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: cannot write %s: %v", errors.ErrOutput, path, err)
	}
	return nil
}
