package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/spiffy/internal/report"
	"github.com/msto63/spiffy/internal/validator"
	spferror "github.com/msto63/spiffy/pkg/core/error"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [application|publication]",
	Short: "List supported countries and their number formats",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	kinds := validator.Kinds
	if len(args) == 1 {
		kind, err := validator.ParseKind(args[0])
		if err != nil {
			return spferror.New(err.Error()).WithCode(spferror.CodeUsage)
		}
		kinds = []validator.Kind{kind}
	}

	v, err := validator.New(appConfig.ValidatorOptions())
	if err != nil {
		return spferror.Wrap(err, "invalid validation settings").WithCode(spferror.CodeInvalidConfig)
	}

	out := cmd.OutOrStdout()
	for i, kind := range kinds {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, report.TitleStyle.Render(strings.ToUpper(kind.String()[:1])+kind.String()[1:]+" numbers"))

		supported := make(map[validator.Jurisdiction]bool)
		for _, cc := range v.Supported(kind) {
			supported[cc] = true
		}

		for _, rule := range validator.Rules(kind) {
			label := report.KindCellStyle.Width(6).Render(string(rule.Jurisdiction))
			msg := report.MessageStyle.Render(rule.Message)
			if !supported[rule.Jurisdiction] {
				msg = report.MessageStyle.Foreground(report.ColorMuted).Render("(disabled) " + rule.Message)
			}
			fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top, label, msg))
		}

		for _, cc := range v.Supported(kind) {
			if _, ok := validator.LookupRule(kind, cc); !ok {
				fmt.Fprintln(out, lipgloss.JoinHorizontal(lipgloss.Top,
					report.KindCellStyle.Width(6).Render(string(cc)),
					report.MessageStyle.Render(validator.TextNotImplemented)))
			}
		}
	}
	return nil
}
