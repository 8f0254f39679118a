package domain

// CaseReport is the raw text of one patient case. It is read once and shared
// read-only by every agent of a panel run.
type CaseReport struct {
	Source   string
	Text     string
	Language string
}

func (r CaseReport) Patient() Patient {
	return ParsePatientHeader(r.Text)
}
