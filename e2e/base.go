package e2e

import (
	"fmt"
	"log/slog"
	"medical-panel/infrastructure/nlu"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BasePanelSuite struct {
	suite.Suite
	Config Config
	Log    *slog.Logger
}

// SetupSuite loads the environment configuration before running tests
func (s *BasePanelSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.WatsonURL == "" || s.Config.WatsonAPIKey == "" {
		s.T().Skip("E2E_WATSON_URL and E2E_WATSON_API_KEY are not set")
	}
	s.Log = logs.GetLoggerFromLevel(slog.LevelDebug)
}

// Client builds a client against the configured Watson instance.
func (s *BasePanelSuite) Client() *nlu.WatsonClient {
	return nlu.NewWatsonClient(nlu.Config{
		APIKey:   s.Config.WatsonAPIKey,
		URL:      s.Config.WatsonURL,
		AuthMode: nlu.AuthMode(s.Config.WatsonAuthMode),
	}, s.Log)
}

// Step runs fn as a named subtest behind a colorized header.
func (s *BasePanelSuite) Step(name string, fn func()) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.Run(name, func() {
		s.T().Log(header)
		fn()
	})
}
