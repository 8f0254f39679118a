package main

import (
	"fmt"
	"io"
	"medical-panel/agents"
	"medical-panel/errors"
	"strconv"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/spf13/cobra"
)

type catalogConfig struct {
	SpecialistsFile string `env:"SPECIALISTS_FILE"`
}

func newSpecialistsCmd(out io.Writer, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "specialists",
		Short: "List the keyword specialists sitting on the panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadEnvFile(flags.envFile); err != nil {
				return err
			}
			var config catalogConfig
			if _, err := env.UnmarshalFromEnviron(&config); err != nil {
				return fmt.Errorf("%w: %v", errors.ErrConfig, err)
			}
			if flags.specialists != "" {
				config.SpecialistsFile = flags.specialists
			}

			catalog, err := agents.LoadCatalog(config.SpecialistsFile)
			if err != nil {
				return err
			}

			table := newTable(out, "ID", "Name", "Count", "Terms")
			for _, p := range catalog.Specialists {
				table.Append([]string{string(p.ID), p.Name, strconv.Itoa(len(p.Terms)), strings.Join(p.Terms, ", ")})
			}
			table.Render()
			return nil
		},
	}
}
