package storage

import (
	"bytes"
	"fmt"
	"log/slog"
	"medical-panel/domain"
	"medical-panel/domain/mimetypes"
	"medical-panel/errors"
	"os"
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
	"github.com/gabriel-vasile/mimetype"
)

const (
	MB                     = 1 << 20
	DefaultMaxReportSizeMb = 10
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReportSource loads case reports from the local filesystem.
type ReportSource struct {
	log           *slog.Logger
	maxReportSize int64
}

func NewReportSource(log *slog.Logger, maxReportSizeMb int) *ReportSource {
	if maxReportSizeMb <= 0 {
		maxReportSizeMb = DefaultMaxReportSizeMb
	}
	return &ReportSource{log: log, maxReportSize: int64(maxReportSizeMb) * MB}
}

// Load reads path as UTF-8 text. A leading byte order mark is dropped, the rest is kept verbatim.
// The report language is set only when detection is reliable.
func (s *ReportSource) Load(path string) (domain.CaseReport, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.CaseReport{}, fmt.Errorf("%w: cannot open case report: %v", errors.ErrInput, err)
	}
	if !info.Mode().IsRegular() {
		return domain.CaseReport{}, fmt.Errorf("%w: case report %s is not a file", errors.ErrInput, path)
	}
	if info.Size() > s.maxReportSize {
		return domain.CaseReport{}, fmt.Errorf("%w: case report is too large: %d bytes (limit is %d)",
			errors.ErrInput, info.Size(), s.maxReportSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.CaseReport{}, fmt.Errorf("%w: cannot read case report: %v", errors.ErrInput, err)
	}

	detected := mimetype.Detect(data).String()
	if !mimetypes.IsText(detected) {
		return domain.CaseReport{}, fmt.Errorf("%w: %w: detected %s", errors.ErrInput, errors.ErrNotTextFile, detected)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return domain.CaseReport{}, fmt.Errorf("%w: %w", errors.ErrInput, errors.ErrInvalidUTF8)
	}

	report := domain.CaseReport{Source: path, Text: string(data)}
	if lang := whatlanggo.Detect(report.Text); lang.IsReliable() {
		report.Language = lang.Lang.Iso6391()
	}

	s.log.Debug("Case report loaded",
		"source", path,
		"bytes", len(data),
		"mime_type", detected,
		"language", report.Language)
	return report, nil
}
