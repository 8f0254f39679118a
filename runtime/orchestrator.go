// Package runtime runs the medical panel: it fans one case report out to every agent,
// joins them and merges their findings into a diagnosis summary.
// It holds no domain rules of its own.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"medical-panel/contract"
	"medical-panel/domain"
	"medical-panel/domain/specialist"
	"medical-panel/errors"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type PanelOrchestrator struct {
	log    *slog.Logger
	agents []contract.Agent
	team   contract.Agent
	now    func() time.Time
	newID  func() uuid.UUID
}

type Option func(*PanelOrchestrator)

// WithTeam enables the team synthesis pass run by agent after a successful join.
func WithTeam(agent contract.Agent) Option {
	return func(o *PanelOrchestrator) { o.team = agent }
}

func WithClock(now func() time.Time) Option {
	return func(o *PanelOrchestrator) { o.now = now }
}

func WithRunID(newID func() uuid.UUID) Option {
	return func(o *PanelOrchestrator) { o.newID = newID }
}

// NewPanelOrchestrator keeps agents in the given order. That order is the order of the findings.
func NewPanelOrchestrator(log *slog.Logger, agents []contract.Agent, opts ...Option) *PanelOrchestrator {
	o := &PanelOrchestrator{
		log:    log,
		agents: agents,
		now:    time.Now,
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *PanelOrchestrator) Agents() []string {
	return lo.Map(o.agents, func(a contract.Agent, _ int) string { return a.Name() })
}

// Run dispatches the report text to every agent concurrently and waits for all of them.
// The join is all-or-nothing: if any agent fails or panics, no summary is produced and
// the returned *errors.PanelError names the first failing agent in configured order.
// Agents already running are not cancelled when another one fails.
// Malformed patient metadata is rejected with errors.ErrInput before any agent runs.
func (o *PanelOrchestrator) Run(ctx context.Context, report domain.CaseReport, patient domain.Patient) (domain.DiagnosisSummary, error) {
	if len(o.agents) == 0 {
		return domain.DiagnosisSummary{}, fmt.Errorf("%w: %w", errors.ErrPanel, errors.ErrNoAgents)
	}
	if err := patient.Validate(); err != nil {
		return domain.DiagnosisSummary{}, err
	}

	runID := o.newID()
	start := time.Now()
	o.log.Info("Panel run started", "run_id", runID, "source", report.Source, "agents", len(o.agents))

	findings, err := o.dispatch(ctx, report.Text)
	if err != nil {
		o.log.Warn("Panel run failed", "run_id", runID, "error", err)
		return domain.DiagnosisSummary{}, err
	}

	summary := domain.DiagnosisSummary{
		RunID:    runID,
		Source:   report.Source,
		Language: report.Language,
		Patient:  patient,
		Findings: findings,
	}

	if o.team != nil {
		consensus, ok, err := o.synthesize(ctx, findings)
		if err != nil {
			o.log.Warn("Team synthesis failed", "run_id", runID, "error", err)
			return domain.DiagnosisSummary{}, err
		}
		if ok {
			summary.Consensus = &consensus
		}
	}

	summary.GeneratedAt = o.now()
	o.log.Info("Panel run completed",
		"run_id", runID,
		"findings", len(findings),
		"matched_terms", lo.SumBy(findings, func(f specialist.Finding) int { return len(f.Terms) }),
		"duration", time.Since(start))
	return summary, nil
}

// dispatch gives every agent its own result slot so the merge order never depends on timing.
func (o *PanelOrchestrator) dispatch(ctx context.Context, text string) ([]specialist.Finding, error) {
	findings := make([]specialist.Finding, len(o.agents))
	failures := make([]error, len(o.agents))

	var g errgroup.Group
	for i, agent := range o.agents {
		g.Go(func() error {
			findings[i], failures[i] = analyze(ctx, agent, text)
			return failures[i]
		})
	}
	_ = g.Wait()

	for i, err := range failures {
		if err != nil {
			return nil, errors.NewPanelError(o.agents[i].Name(), err)
		}
	}
	return findings, nil
}

func analyze(ctx context.Context, agent contract.Agent, text string) (finding specialist.Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			finding, err = specialist.Finding{}, fmt.Errorf("%w: %v", errors.ErrAgentPanic, r)
		}
	}()
	finding, err = agent.Analyze(ctx, text)
	if err == nil && finding.Agent == "" {
		finding.Agent = agent.Name()
	}
	return finding, err
}
