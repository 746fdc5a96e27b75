package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/msto63/spiffy/internal/service"
	"github.com/msto63/spiffy/internal/tui/resultviewer"
)

var browseCmd = &cobra.Command{
	Use:   "browse <inputfile.xlsx>",
	Short: "Check a workbook and browse the results interactively",
	Long: `Checks the workbook in memory and opens an interactive viewer.
No results file is written.

Keys:
  1-4         toggle OK, INVALID, SKIPPED, UNSUPPORTED
  0           show everything
  k           cycle kind filter (all, application, publication)
  g / G       jump to top / bottom
  PgUp/PgDn   scroll
  q / Ctrl+C  quit`,
	Args: inputFileArg,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	defer logger.Sync() //nolint:errcheck

	svc, err := newService(nil)
	if err != nil {
		return err
	}

	input := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return resultviewer.Run(resultviewer.Config{
		Input: input,
		Loader: func() ([]resultviewer.Entry, string, error) {
			res, err := svc.Check(ctx, &service.CheckRequest{Input: input, DryRun: true})
			if err != nil {
				return nil, "", err
			}
			return resultviewer.EntriesFrom(res.Rows), res.Summary.Sheet, nil
		},
	})
}
