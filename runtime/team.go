package runtime

import (
	"context"
	"fmt"
	"medical-panel/domain/specialist"
	"medical-panel/errors"
	"strings"

	"github.com/samber/lo"
)

// synthesize passes the combined specialist findings to the team agent.
// It reports false when no specialist finding exists to synthesize.
func (o *PanelOrchestrator) synthesize(ctx context.Context, findings []specialist.Finding) (specialist.Finding, bool, error) {
	specialists := lo.Filter(findings, func(f specialist.Finding, _ int) bool {
		return f.Kind == specialist.SpecialistKind
	})
	if len(specialists) == 0 {
		o.log.Debug("No specialist finding, team synthesis skipped")
		return specialist.Finding{}, false, nil
	}

	consensus, err := analyze(ctx, o.team, TeamReport(specialists))
	if err != nil {
		return specialist.Finding{}, false, errors.NewPanelError(o.team.Name(), err)
	}
	consensus.Kind = specialist.ConsensusKind
	return consensus, true, nil
}

// TeamReport renders findings as the plain-text report read by the multidisciplinary team.
func TeamReport(findings []specialist.Finding) string {
	var b strings.Builder
	for i, f := range findings {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s Summary:\n", f.Agent)
		if f.IsEmpty() {
			b.WriteString("- no matching terms\n")
			continue
		}
		for _, t := range f.Terms {
			fmt.Fprintf(&b, "- %s\n", t.Text)
		}
	}
	return b.String()
}
