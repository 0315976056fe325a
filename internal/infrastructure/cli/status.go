package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/radar/pkg/domain/spec"
	"github.com/spf13/cobra"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print spec progress without starting the dashboard",
	Long: `Print every spec under .kiro/specs with its checklist progress.

Examples:
  radar status
  radar status --json
  radar status -C ../other-project`,
	RunE: runStatusCmd,
}

// statusJSONOutput represents the JSON output format for status
type statusJSONOutput struct {
	Root      string           `json:"root"`
	Total     int              `json:"total_tasks"`
	Completed int              `json:"completed_tasks"`
	Percent   int              `json:"percent"`
	Specs     []specJSONOutput `json:"specs"`
}

type specJSONOutput struct {
	spec.Spec
	Percent int `json:"percent"`
}

var (
	statusTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	statusNameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	statusDoneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(statusCmd)
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	services, err := loadServicesForCurrentDir(nil)
	if err != nil {
		return err
	}
	defer func() { _ = services.Close() }()

	specs, err := services.Spec.Scan(commandContext(cmd))
	if err != nil {
		return MapError(err)
	}

	if statusJSON {
		return outputStatusJSON(cmd.OutOrStdout(), services.Repo.SpecsPath(), specs)
	}
	outputStatusText(cmd.OutOrStdout(), services.Repo.SpecsPath(), specs)
	return nil
}

func outputStatusJSON(w io.Writer, root string, specs spec.Collection) error {
	overall := specs.Progress()
	output := statusJSONOutput{
		Root:      root,
		Total:     overall.Total,
		Completed: overall.Completed,
		Percent:   overall.Percent(),
		Specs:     make([]specJSONOutput, 0, specs.Len()),
	}
	for _, s := range specs.All() {
		output.Specs = append(output.Specs, specJSONOutput{Spec: s, Percent: s.Progress().Percent()})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputStatusText(w io.Writer, root string, specs spec.Collection) {
	_, _ = fmt.Fprintln(w, statusTitleStyle.Render("Specs in "+root))

	if specs.Len() == 0 {
		_, _ = fmt.Fprintln(w, statusMutedStyle.Render("No specs found in .kiro/specs"))
		return
	}

	for _, s := range specs.All() {
		p := s.Progress()
		info := fmt.Sprintf("%3d%% (%d/%d)", p.Percent(), p.Completed, p.Total)
		style := statusMutedStyle
		if p.Total > 0 && p.Completed == p.Total {
			style = statusDoneStyle
		}
		_, _ = fmt.Fprintf(w, "  %s  %s%s\n",
			statusNameStyle.Render(fmt.Sprintf("%-20s", s.Name)),
			style.Render(info),
			statusMutedStyle.Render(missingDocs(s)))
	}

	overall := specs.Progress()
	_, _ = fmt.Fprintf(w, "\nOverall Progress: %d%% (%d/%d tasks finished)\n",
		overall.Percent(), overall.Completed, overall.Total)
}

func missingDocs(s spec.Spec) string {
	var missing []string
	for _, kind := range spec.DocumentKinds {
		if _, ok := s.Path(kind); !ok {
			missing = append(missing, kind.Filename())
		}
	}
	if len(missing) == 0 {
		return ""
	}
	return "  missing: " + strings.Join(missing, ", ")
}
