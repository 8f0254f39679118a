package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

// Config points the end-to-end suite at a real Watson NLU instance.
// The suite is skipped when no instance is configured.
type Config struct {
	WatsonAPIKey   string `envconfig:"E2E_WATSON_API_KEY"`
	WatsonURL      string `envconfig:"E2E_WATSON_URL"`
	WatsonAuthMode string `envconfig:"E2E_WATSON_AUTH_MODE" default:"iam"`
	// E2E_DEBUG_TEXT dumps the full text artifact in the test logs
	DebugText bool `envconfig:"E2E_DEBUG_TEXT" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
