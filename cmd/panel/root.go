package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"medical-panel/agents"
	"medical-panel/contract"
	"medical-panel/domain"
	"medical-panel/errors"
	"medical-panel/infrastructure/nlu"
	"medical-panel/internal"
	"medical-panel/observability"
	"medical-panel/runtime"
	"medical-panel/sink"
	"medical-panel/storage"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const defaultEnvFile = ".env"

type rootFlags struct {
	envFile     string
	results     string
	specialists string
	team        bool
	patient     domain.Patient
}

func newRootCmd(out io.Writer) *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:   "panel <report-file>",
		Short: "Run a multidisciplinary keyword panel over a patient case report",
		Long: `Sends the case report to the Watson NLU agent and to every keyword specialist
concurrently, then writes final_diagnosis_summary.txt and .pdf to the results directory.

Patient metadata is read from the report header and can be overridden with flags.`,
		Args:          reportFileArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPanel(cmd.Context(), out, args[0], flags, cmd.Flags().Changed("team"))
		},
	}
	cmd.SetOut(out)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errors.ErrInput, err)
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.envFile, "env", defaultEnvFile, "Dotenv file loaded before reading the environment")
	pf.StringVar(&flags.specialists, "specialists", "", "YAML specialists catalog (default: $SPECIALISTS_FILE or built-in)")

	f := cmd.Flags()
	f.StringVar(&flags.results, "results", "", "Results directory (default: $RESULTS_DIR)")
	f.BoolVar(&flags.team, "team", false, "Run the multidisciplinary team synthesis (default: $TEAM_SYNTHESIS)")
	f.StringVar(&flags.patient.Name, "name", "", "Patient name")
	f.StringVar(&flags.patient.ID, "patient-id", "", "Patient identifier")
	f.StringVar(&flags.patient.Age, "age", "", "Patient age")
	f.StringVar(&flags.patient.Gender, "gender", "", "Patient gender")
	f.StringVar(&flags.patient.Date, "date", "", "Date of report")

	cmd.AddCommand(newSpecialistsCmd(out, &flags))
	return cmd
}

func reportFileArg(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(1)(cmd, args); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInput, err)
	}
	return nil
}

// loadEnvFile loads a dotenv file. The default file is optional, an explicit one is not.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if path == defaultEnvFile && stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("%w: cannot load %s: %v", errors.ErrConfig, path, err)
}

func runPanel(ctx context.Context, out io.Writer, reportFile string, flags rootFlags, teamChanged bool) error {
	if err := loadEnvFile(flags.envFile); err != nil {
		return err
	}
	config, err := internal.Load()
	if err != nil {
		return err
	}
	if flags.results != "" {
		config.ResultsDir = flags.results
	}
	if flags.specialists != "" {
		config.SpecialistsFile = flags.specialists
	}
	if teamChanged {
		config.TeamSynthesis = flags.team
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	catalog, err := agents.LoadCatalog(config.SpecialistsFile)
	if err != nil {
		return err
	}
	keywordAgents, err := catalog.Agents(log)
	if err != nil {
		return err
	}

	report, err := storage.NewReportSource(log, config.MaxReportSizeMb).Load(reportFile)
	if err != nil {
		return err
	}
	patient := report.Patient().Merge(flags.patient)
	if err := patient.Validate(); err != nil {
		return err
	}

	client := nlu.NewWatsonClient(config.NLU(), log)
	panel := lo.Map(keywordAgents, func(a *agents.KeywordAgent, _ int) contract.Agent { return a })
	panel = append(panel, agents.NewWatsonAgent(client.ForLanguage(report.Language), log))

	var opts []runtime.Option
	if config.TeamSynthesis {
		opts = append(opts, runtime.WithTeam(agents.NewTeamAgent(client, log)))
	}

	summary, err := runtime.NewPanelOrchestrator(log, panel, opts...).Run(ctx, report, patient)
	if err != nil {
		return err
	}

	artifacts, err := sink.NewArtifactSink(config.ResultsDir, log).Write(summary)
	if err != nil {
		return err
	}

	printSummary(out, summary, artifacts)
	observability.LogProcessUsage(ctx, log, "Panel process usage")
	log.Debug("Panel finished", slog.String("run_id", summary.RunID.String()))
	return nil
}
