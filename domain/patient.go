package domain

import (
	"fmt"
	"medical-panel/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NotAvailable is rendered in place of a missing metadata field.
const NotAvailable = "N/A"

const (
	LabelName   = "Patient Name"
	LabelID     = "Patient ID"
	LabelAge    = "Age"
	LabelGender = "Gender"
	LabelDate   = "Date of Report"
)

// chiefComplaint ends the header block of a case report.
const chiefComplaint = "chief complaint"

var validate = newValidator()

// Patient holds the metadata attached to a case. Every field is optional.
// Values are single lines without surrounding blanks, so they read back
// unchanged from a rendered header.
type Patient struct {
	Name   string `validate:"max=128,singleline,trimmed"`
	ID     string `validate:"max=64,singleline,trimmed"`
	Age    string `validate:"max=32,singleline,trimmed"`
	Gender string `validate:"max=32,singleline,trimmed"`
	Date   string `validate:"max=64,singleline,trimmed"`
}

// Field is a labelled metadata value ready for rendering.
type Field struct {
	Label string
	Value string
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("singleline", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), "\r\n")
	})
	_ = v.RegisterValidation("trimmed", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == strings.TrimSpace(value)
	})
	return v
}

// ParsePatientHeader reads "Key: Value" lines from the top of a report until the
// "Chief Complaint:" line. Unknown keys are ignored and the first value wins.
func ParsePatientHeader(text string) Patient {
	var p Patient
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == chiefComplaint {
			break
		}
		p.set(key, strings.TrimSpace(value))
	}
	return p
}

func (p *Patient) set(key, value string) {
	if value == "" || value == NotAvailable {
		return
	}
	var target *string
	switch key {
	case "name", "patient name":
		target = &p.Name
	case "patient id", "id":
		target = &p.ID
	case "age":
		target = &p.Age
	case "gender", "sex":
		target = &p.Gender
	case "date of report", "report date", "date":
		target = &p.Date
	default:
		return
	}
	if *target == "" {
		*target = value
	}
}

// Merge returns p with every non-empty field of override applied on top.
func (p Patient) Merge(override Patient) Patient {
	pick := func(base, over string) string {
		if strings.TrimSpace(over) != "" {
			return strings.TrimSpace(over)
		}
		return strings.TrimSpace(base)
	}
	return Patient{
		Name:   pick(p.Name, override.Name),
		ID:     pick(p.ID, override.ID),
		Age:    pick(p.Age, override.Age),
		Gender: pick(p.Gender, override.Gender),
		Date:   pick(p.Date, override.Date),
	}
}

func (p Patient) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: malformed patient metadata: %v", errors.ErrInput, err)
	}
	return nil
}

// Fields lists the metadata block in rendering order, N/A for missing values.
func (p Patient) Fields() []Field {
	orNA := func(v string) string {
		if v == "" {
			return NotAvailable
		}
		return v
	}
	return []Field{
		{Label: LabelName, Value: orNA(p.Name)},
		{Label: LabelID, Value: orNA(p.ID)},
		{Label: LabelAge, Value: orNA(p.Age)},
		{Label: LabelGender, Value: orNA(p.Gender)},
		{Label: LabelDate, Value: orNA(p.Date)},
	}
}
