package specialist

type Kind string

const (
	SpecialistKind        Kind = "specialist"
	GeneralExtractionKind Kind = "general-extraction"
	ConsensusKind         Kind = "consensus"
)

// Term is one extracted keyword with its relevance in [0, 1].
type Term struct {
	Text  string
	Score float64
}

// Finding is the output of a single agent for a single run.
// Terms keep the order the agent produced them in.
type Finding struct {
	Agent string
	Kind  Kind
	Terms []Term
}

func (f Finding) IsEmpty() bool {
	return len(f.Terms) == 0
}

func (f Finding) Texts() []string {
	texts := make([]string, len(f.Terms))
	for i, t := range f.Terms {
		texts[i] = t.Text
	}
	return texts
}
