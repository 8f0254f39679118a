package report

import (
	"fmt"
	"medical-panel/domain"
	"medical-panel/errors"
	"strings"
)

// ParseTextHeader reads back the metadata block of a text report, up to the first blank line.
// N/A values come back as missing fields.
func ParseTextHeader(text string) (domain.Patient, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	header, _, _ := strings.Cut(text, "\n\n")
	if !strings.HasPrefix(header, domain.LabelName+":") {
		return domain.Patient{}, fmt.Errorf("%w: text report has no metadata block", errors.ErrInput)
	}
	return domain.ParsePatientHeader(header), nil
}
