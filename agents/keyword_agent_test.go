package agents

import (
	"context"
	"log/slog"
	"medical-panel/domain/specialist"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const complaint = "Patient reports chest pain and shortness of breath, with recent panic attacks."

func defaultAgents(t *testing.T) map[string]*KeywordAgent {
	t.Helper()
	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	agents, err := catalog.Agents(logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)

	byName := make(map[string]*KeywordAgent, len(agents))
	for _, a := range agents {
		byName[a.Name()] = a
	}
	return byName
}

func TestKeywordAgent_Scenario(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	agents := defaultAgents(t)

	tests := []struct {
		agent    string
		expected string
	}{
		{agent: "Cardiologist", expected: "chest pain"},
		{agent: "Pulmonologist", expected: "shortness of breath"},
		{agent: "Psychologist", expected: "panic attacks"},
	}

	for _, tt := range tests {
		t.Run(tt.agent, func(t *testing.T) {
			finding, err := agents[tt.agent].Analyze(ctx, complaint)
			req.NoError(err)
			req.Equal(tt.agent, finding.Agent)
			req.Equal(specialist.SpecialistKind, finding.Kind)
			req.Contains(finding.Texts(), tt.expected)
		})
	}
}

func TestKeywordAgent_EmptyReport(t *testing.T) {
	req := require.New(t)

	for name, agent := range defaultAgents(t) {
		// When the report is empty
		finding, err := agent.Analyze(context.Background(), "")

		// Then the finding is empty, not an error
		req.NoError(err, name)
		req.Equal(name, finding.Agent)
		req.True(finding.IsEmpty(), name)
	}
}

func TestKeywordAgent_ScoresFollowProfileOrder(t *testing.T) {
	req := require.New(t)
	agent, err := NewKeywordAgent(specialist.Profile{
		ID:    "test",
		Name:  "Tester",
		Terms: []string{"alpha", "beta"},
	}, logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)

	finding, err := agent.Analyze(context.Background(), "BETA then alpha")

	req.NoError(err)
	req.Equal([]specialist.Term{{Text: "alpha", Score: 1}, {Text: "beta", Score: 0.5}}, finding.Terms)
}
