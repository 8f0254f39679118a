package internal

import (
	"fmt"
	"medical-panel/errors"
	"medical-panel/infrastructure/nlu"
	"os"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	WatsonAPIKey    string        `env:"IBM_WATSON_API_KEY,required=true" validate:"required"`
	WatsonURL       string        `env:"IBM_WATSON_URL,required=true" validate:"required,url"`
	WatsonVersion   string        `env:"IBM_WATSON_VERSION,default=2022-04-07" validate:"required"`
	WatsonAuthMode  string        `env:"IBM_WATSON_AUTH_MODE,default=iam" validate:"oneof=iam basic"`
	IAMURL          string        `env:"IBM_IAM_URL" validate:"omitempty,url"`
	NLUTimeout      time.Duration `env:"NLU_TIMEOUT,default=30s" validate:"gt=0"`
	NLUTopKeywords  int           `env:"NLU_TOP_KEYWORDS,default=5" validate:"min=1,max=50"`
	ResultsDir      string        `env:"RESULTS_DIR,default=results" validate:"required"`
	SpecialistsFile string        `env:"SPECIALISTS_FILE"`
	TeamSynthesis   bool          `env:"TEAM_SYNTHESIS,default=false"`
	MaxReportSizeMb int           `env:"MAX_REPORT_SIZE_MB,default=10" validate:"min=1"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrConfig, err)
	}
	return Parse(es)
}

func Parse(es env.EnvSet) (Config, error) {
	var config Config
	if err := env.Unmarshal(es, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrConfig, err)
	}
	config.WatsonAuthMode = strings.ToLower(strings.TrimSpace(config.WatsonAuthMode))
	config.LogLevel = strings.ToUpper(strings.TrimSpace(config.LogLevel))
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", errors.ErrConfig, err)
	}
	return config, nil
}

func (c Config) NLU() nlu.Config {
	return nlu.Config{
		APIKey:   c.WatsonAPIKey,
		URL:      c.WatsonURL,
		Version:  c.WatsonVersion,
		AuthMode: nlu.AuthMode(c.WatsonAuthMode),
		IAMURL:   c.IAMURL,
		Timeout:  c.NLUTimeout,
		Limit:    c.NLUTopKeywords,
	}
}
