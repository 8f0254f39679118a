package agents

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"medical-panel/contract"
	"medical-panel/domain/specialist"
	"medical-panel/errors"
	"time"
)

const (
	WatsonName = "Watson"
	TeamName   = "Multidisciplinary Team"
)

// WatsonAgent delegates the analysis to the remote NLU service.
// It is the only agent whose analysis can fail.
type WatsonAgent struct {
	name      string
	kind      specialist.Kind
	extractor contract.KeywordExtractor
	log       *slog.Logger
}

func NewWatsonAgent(extractor contract.KeywordExtractor, log *slog.Logger) *WatsonAgent {
	return &WatsonAgent{
		name:      WatsonName,
		kind:      specialist.GeneralExtractionKind,
		extractor: extractor,
		log:       log,
	}
}

// NewTeamAgent returns a Watson agent that reports the multidisciplinary consensus.
func NewTeamAgent(extractor contract.KeywordExtractor, log *slog.Logger) *WatsonAgent {
	a := NewWatsonAgent(extractor, log)
	a.name = TeamName
	a.kind = specialist.ConsensusKind
	return a
}

func (a *WatsonAgent) Name() string { return a.name }

func (a *WatsonAgent) Analyze(ctx context.Context, text string) (specialist.Finding, error) {
	start := time.Now()
	terms, err := a.extractor.Extract(ctx, text)
	if err != nil {
		if !stderrors.Is(err, errors.ErrService) {
			err = fmt.Errorf("%w: %w", errors.ErrService, err)
		}
		return specialist.Finding{}, err
	}
	a.log.Debug("NLU analysis done", "agent", a.name, "keywords", len(terms), "latency", time.Since(start))
	return specialist.Finding{
		Agent: a.name,
		Kind:  a.kind,
		Terms: terms,
	}, nil
}
