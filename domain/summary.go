package domain

import (
	"medical-panel/domain/specialist"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// DiagnosisSummary is the merged result of one panel run.
// It always carries one finding per dispatched agent, in configured order.
type DiagnosisSummary struct {
	RunID       uuid.UUID
	Source      string
	Language    string
	Patient     Patient
	Findings    []specialist.Finding
	Consensus   *specialist.Finding
	GeneratedAt time.Time
}

func (s DiagnosisSummary) Finding(agent string) (specialist.Finding, bool) {
	return lo.Find(s.Findings, func(f specialist.Finding) bool {
		return f.Agent == agent
	})
}

func (s DiagnosisSummary) Agents() []string {
	return lo.Map(s.Findings, func(f specialist.Finding, _ int) string {
		return f.Agent
	})
}
