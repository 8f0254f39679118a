package agents

import (
	_ "embed"
	"fmt"
	"log/slog"
	"medical-panel/domain/specialist"
	"medical-panel/errors"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed specialists.yaml
var defaultCatalog []byte

var validate = validator.New()

// Catalog is the ordered list of keyword specialists sitting on the panel.
type Catalog struct {
	Specialists []specialist.Profile `yaml:"specialists" validate:"required,min=1,dive"`
}

// DefaultCatalog returns the built-in cardiology, psychology and pulmonology panel.
func DefaultCatalog() (Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a YAML catalog from path, or the built-in one when path is empty.
// A custom catalog replaces the default entirely.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("%w: cannot read specialists file %s: %v", errors.ErrConfig, path, err)
	}
	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("%w: invalid specialists catalog: %v", errors.ErrConfig, err)
	}
	if err := validate.Struct(c); err != nil {
		return Catalog{}, fmt.Errorf("%w: invalid specialists catalog: %v", errors.ErrConfig, err)
	}
	duplicates := lo.FindDuplicatesBy(c.Specialists, func(p specialist.Profile) specialist.ID {
		return p.ID
	})
	if len(duplicates) > 0 {
		return Catalog{}, fmt.Errorf("%w: duplicate specialist id %q", errors.ErrConfig, duplicates[0].ID)
	}
	return c, nil
}

// Agents builds one keyword agent per profile, in catalog order.
func (c Catalog) Agents(log *slog.Logger) ([]*KeywordAgent, error) {
	agents := make([]*KeywordAgent, 0, len(c.Specialists))
	for _, profile := range c.Specialists {
		agent, err := NewKeywordAgent(profile, log)
		if err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}
	return agents, nil
}
