package test

import (
	"context"
	"encoding/json"
	"log/slog"
	"medical-panel/agents"
	"medical-panel/contract"
	"medical-panel/domain"
	"medical-panel/infrastructure/nlu"
	"medical-panel/report"
	"medical-panel/runtime"
	"medical-panel/sink"
	"medical-panel/storage"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const caseReport = `Name: Jane Doe
Patient ID: P-001
Age: 54
Gender: Female
Date of Report: 2024-03-14
Chief Complaint: chest pain

Patient reports chest pain and shortness of breath, with recent panic attacks.
`

// fakeWatson answers like the NLU service: one IAM token, keywords echoed from known phrases.
func fakeWatson(t *testing.T) (*httptest.Server, *atomic.Int32) {
	var tokens atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/identity/token", func(w http.ResponseWriter, r *http.Request) {
		tokens.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "token", "expires_in": 3600})
	})
	mux.HandleFunc("/v1/analyze", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		keywords := []map[string]any{{"text": "Keywords", "relevance": 0.99}}
		for i, phrase := range []string{"chest pain", "shortness of breath", "panic attacks"} {
			if strings.Contains(body.Text, phrase) {
				keywords = append(keywords, map[string]any{"text": phrase, "relevance": 0.9 - float64(i)/10})
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"language": "en", "keywords": keywords})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &tokens
}

func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	srv, tokens := fakeWatson(t)

	// 1. Load the case report from disk
	path := filepath.Join(t.TempDir(), "case.txt")
	req.NoError(os.WriteFile(path, []byte(caseReport), 0o600))
	caseFile, err := storage.NewReportSource(log, 0).Load(path)
	req.NoError(err)

	// 2. Build the panel: default specialists, Watson and the team
	catalog, err := agents.DefaultCatalog()
	req.NoError(err)
	keywordAgents, err := catalog.Agents(log)
	req.NoError(err)
	client := nlu.NewWatsonClient(nlu.Config{
		APIKey:  "secret",
		URL:     srv.URL,
		IAMURL:  srv.URL + "/identity/token",
		Timeout: 5 * time.Second,
	}, log)
	panel := lo.Map(keywordAgents, func(a *agents.KeywordAgent, _ int) contract.Agent { return a })
	panel = append(panel, agents.NewWatsonAgent(client.ForLanguage(caseFile.Language), log))

	orchestrator := runtime.NewPanelOrchestrator(log, panel, runtime.WithTeam(agents.NewTeamAgent(client, log)))

	// 3. Run it
	patient := caseFile.Patient().Merge(domain.Patient{Age: "55"})
	summary, err := orchestrator.Run(ctx, caseFile, patient)
	req.NoError(err)

	req.Equal([]string{"Cardiologist", "Psychologist", "Pulmonologist", agents.WatsonName}, summary.Agents())
	watson, ok := summary.Finding(agents.WatsonName)
	req.True(ok)
	req.Equal([]string{"chest pain", "shortness of breath", "panic attacks"}, watson.Texts())
	req.NotNil(summary.Consensus)
	req.Equal([]string{"chest pain", "shortness of breath", "panic attacks"}, summary.Consensus.Texts())
	// One token exchange served both Watson calls
	req.Equal(int32(1), tokens.Load())

	// 4. Export and read the metadata back
	artifacts, err := sink.NewArtifactSink(filepath.Join(t.TempDir(), "results"), log).Write(summary)
	req.NoError(err)

	text, err := os.ReadFile(artifacts.Text)
	req.NoError(err)
	parsed, err := report.ParseTextHeader(string(text))
	req.NoError(err)
	req.Equal(domain.Patient{Name: "Jane Doe", ID: "P-001", Age: "55", Gender: "Female", Date: "2024-03-14"}, parsed)
	req.Contains(string(text), "## Multidisciplinary Team (consensus)\n")
	req.Contains(string(text), report.ClosingLine)

	pdf, err := os.ReadFile(artifacts.PDF)
	req.NoError(err)
	expected, err := report.PDF(summary)
	req.NoError(err)
	req.Equal(expected, pdf)
}
