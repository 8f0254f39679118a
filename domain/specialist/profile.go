package specialist

type ID string

const (
	Cardiologist  ID = "cardiologist"
	Psychologist  ID = "psychologist"
	Pulmonologist ID = "pulmonologist"
)

// Profile configures a keyword specialist. Terms are matched in order.
type Profile struct {
	ID    ID       `yaml:"id" validate:"required"`
	Name  string   `yaml:"name" validate:"required"`
	Terms []string `yaml:"terms" validate:"dive,max=128"`
}
