package agents

import (
	"context"
	"fmt"
	"log/slog"
	"medical-panel/domain/specialist"
	"medical-panel/errors"
	"medical-panel/keyword"
)

// KeywordAgent is a specialist that applies a static keyword filter.
// Cardiologist, Psychologist and Pulmonologist only differ by their profile.
type KeywordAgent struct {
	id     specialist.ID
	name   string
	filter keyword.Filter
	log    *slog.Logger
}

func NewKeywordAgent(profile specialist.Profile, log *slog.Logger) (*KeywordAgent, error) {
	filter, err := keyword.NewFilter(profile.Terms)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot build keyword filter for %s: %v", errors.ErrConfig, profile.ID, err)
	}
	return &KeywordAgent{id: profile.ID, name: profile.Name, filter: filter, log: log}, nil
}

func (a *KeywordAgent) Name() string { return a.name }

func (a *KeywordAgent) ID() specialist.ID { return a.id }

func (a *KeywordAgent) Terms() []string { return a.filter.Terms() }

// Analyze never fails: no match is an empty finding.
func (a *KeywordAgent) Analyze(_ context.Context, text string) (specialist.Finding, error) {
	terms := a.filter.Match(text)
	a.log.Debug("Specialist analysis done", "agent", a.name, "matches", len(terms))
	return specialist.Finding{
		Agent: a.name,
		Kind:  specialist.SpecialistKind,
		Terms: terms,
	}, nil
}
