package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msto63/spiffy/internal/report"
	"github.com/msto63/spiffy/internal/validator"
	spferror "github.com/msto63/spiffy/pkg/core/error"
	"github.com/msto63/spiffy/pkg/core/logging"
)

var checkStrict bool

var checkCmd = &cobra.Command{
	Use:   "check <application|publication> <identifier>...",
	Short: "Check identifiers given on the command line",
	Long: `Validates application or publication numbers without a workbook.

Each identifier is printed with the text that would be written into the
result column. The exit code is 0 even for invalid identifiers unless
--strict is given, in which case it is 2 when any identifier is not OK.

Examples:
  spiffy check application US12345678 EP1234567
  spiffy check pub WO2020123456A1 --strict`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "exit with code 2 when any identifier is not OK")
}

func runCheck(cmd *cobra.Command, args []string) error {
	kind, err := validator.ParseKind(args[0])
	if err != nil {
		return spferror.New(err.Error()).WithCode(spferror.CodeUsage)
	}

	v, err := validator.New(appConfig.ValidatorOptions())
	if err != nil {
		return spferror.Wrap(err, "invalid validation settings").WithCode(spferror.CodeInvalidConfig)
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, id := range args[1:] {
		o := v.Validate(kind, id)
		logger.Debug("Identifier checked", logging.OutcomeFields(0, o)...)

		style := report.OKStyle
		if !o.OK() {
			failed++
			style = report.InvalidStyle
			if o.Status == validator.Unchecked {
				style = report.WarnStyle
			}
		}
		fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top,
			report.ValueStyle.Width(24).Render(id),
			style.UnsetWidth().UnsetAlign().Render(o.Text()),
		))
	}

	logger.Debug("Check finished", zap.Int("identifiers", len(args)-1), zap.Int("not_ok", failed))

	if checkStrict && failed > 0 {
		return &exitError{code: 2}
	}
	return nil
}
