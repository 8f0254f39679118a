package main

import (
	"bytes"
	"fmt"
	"medical-panel/errors"
	"medical-panel/sink"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

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

func watsonServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setupEnv(t *testing.T, watsonURL string) {
	t.Helper()
	t.Setenv("IBM_WATSON_API_KEY", "secret")
	t.Setenv("IBM_WATSON_URL", watsonURL)
	t.Setenv("IBM_WATSON_AUTH_MODE", "basic")
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("SPECIALISTS_FILE", "")
	t.Setenv("TEAM_SYNTHESIS", "false")
}

func writeReport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.txt")
	require.NoError(t, os.WriteFile(path, []byte(caseReport), 0o600))
	return path
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Success", nil, exitOK},
		{"Config", fmt.Errorf("%w: missing key", errors.ErrConfig), exitConfig},
		{"Input", fmt.Errorf("%w: no such file", errors.ErrInput), exitInput},
		{"Output", fmt.Errorf("%w: disk full", errors.ErrOutput), exitOutput},
		{"Panel", errors.NewPanelError("Watson", errors.ErrService), exitRuntime},
		{"Unclassified", fmt.Errorf("boom"), exitRuntime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestRun_WritesArtifacts(t *testing.T) {
	req := require.New(t)
	srv := watsonServer(t, http.StatusOK, `{"keywords":[{"text":"chest pain","relevance":0.95},{"text":"Keywords","relevance":0.99}]}`)
	setupEnv(t, srv.URL)
	results := filepath.Join(t.TempDir(), "results")

	var out bytes.Buffer
	code, err := run([]string{writeReport(t), "--results", results, "--age", "55"}, &out)

	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(out.String(), "completed")
	req.Contains(out.String(), "Cardiologist")

	text, err := os.ReadFile(filepath.Join(results, sink.TextArtifact))
	req.NoError(err)
	req.Contains(string(text), "Patient Name: Jane Doe\n")
	req.Contains(string(text), "Age: 55\n")
	req.Contains(string(text), "## Watson (general-extraction)\n- chest pain (relevance score: 0.95)\n")
	req.NotContains(string(text), "Keywords")

	_, err = os.Stat(filepath.Join(results, sink.PDFArtifact))
	req.NoError(err)
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, results string) []string
		want  int
	}{
		{
			name: "Missing configuration",
			setup: func(t *testing.T, results string) []string {
				setupEnv(t, "http://localhost")
				t.Setenv("IBM_WATSON_URL", "")
				return []string{writeReport(t), "--results", results}
			},
			want: exitConfig,
		},
		{
			name: "Explicit env file missing",
			setup: func(t *testing.T, results string) []string {
				setupEnv(t, "http://localhost")
				return []string{writeReport(t), "--results", results, "--env", filepath.Join(t.TempDir(), "missing.env")}
			},
			want: exitConfig,
		},
		{
			name: "Missing report",
			setup: func(t *testing.T, results string) []string {
				setupEnv(t, "http://localhost")
				return []string{filepath.Join(t.TempDir(), "missing.txt"), "--results", results}
			},
			want: exitInput,
		},
		{
			name: "No report argument",
			setup: func(t *testing.T, results string) []string {
				setupEnv(t, "http://localhost")
				return []string{"--results", results}
			},
			want: exitInput,
		},
		{
			name: "Multi-line metadata",
			setup: func(t *testing.T, results string) []string {
				setupEnv(t, "http://localhost")
				return []string{writeReport(t), "--results", results, "--name", "Jane\nDoe"}
			},
			want: exitInput,
		},
		{
			name: "Watson unavailable",
			setup: func(t *testing.T, results string) []string {
				srv := watsonServer(t, http.StatusServiceUnavailable, `{"error":"service unavailable","code":503}`)
				setupEnv(t, srv.URL)
				return []string{writeReport(t), "--results", results}
			},
			want: exitRuntime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			results := filepath.Join(t.TempDir(), "results")

			var out bytes.Buffer
			code, err := run(tt.setup(t, results), &out)

			req.Error(err)
			req.Equal(tt.want, code)
			// And nothing was written
			_, statErr := os.Stat(results)
			req.True(os.IsNotExist(statErr))
		})
	}
}

func TestRun_ResultsNotWritable(t *testing.T) {
	req := require.New(t)
	srv := watsonServer(t, http.StatusOK, `{"keywords":[]}`)
	setupEnv(t, srv.URL)
	results := filepath.Join(t.TempDir(), "results")
	req.NoError(os.WriteFile(results, []byte("a file"), 0o644))

	code, err := run([]string{writeReport(t), "--results", results}, &bytes.Buffer{})

	req.Error(err)
	req.Equal(exitOutput, code)
}

func TestRun_SpecialistsCommand(t *testing.T) {
	req := require.New(t)
	t.Setenv("SPECIALISTS_FILE", "")

	var out bytes.Buffer
	code, err := run([]string{"specialists"}, &out)

	req.NoError(err)
	req.Equal(exitOK, code)
	for _, name := range []string{"Cardiologist", "Psychologist", "Pulmonologist", "shortness of breath"} {
		req.True(strings.Contains(out.String(), name), "missing %s", name)
	}
}

func TestRun_SpecialistsCommand_CustomCatalog(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "specialists.yaml")
	req.NoError(os.WriteFile(path, []byte(`specialists:
  - id: neurologist
    name: Neurologist
    terms: [headache, seizure]
`), 0o600))

	var out bytes.Buffer
	code, err := run([]string{"specialists", "--specialists", path}, &out)

	req.NoError(err)
	req.Equal(exitOK, code)
	req.Contains(out.String(), "Neurologist")
	req.NotContains(out.String(), "Cardiologist")
}
