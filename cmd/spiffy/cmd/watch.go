package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msto63/spiffy/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <inputfile.xlsx>",
	Short: "Re-check a workbook whenever it changes",
	Long: `Checks the workbook once and then again every time the file is saved,
until interrupted with Ctrl+C. Failed checks (for example a workbook that
is still being written) are reported and watching continues.`,
	Args: inputFileArg,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&outputFile, "output", "o", "", "results file (default: <input>-results.xlsx)")
	watchCmd.Flags().StringVar(&reportFile, "report", "", "also write a run summary (.json, .yaml or .yml)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := validateReportFlag(); err != nil {
		return err
	}

	input := args[0]
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	run := func(ctx context.Context) error {
		err := checkOnce(ctx, out, input)
		if err != nil && ctx.Err() == nil {
			printError(errOut, err)
		}
		return err
	}

	w, err := watcher.New(watcher.Config{
		Path:     input,
		Debounce: appConfig.Watch.Debounce.Duration,
		Handler:  run,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	// a failed first check is reported by run; keep watching for a fixed file
	_ = run(ctx)

	if err := w.Run(ctx); err != nil {
		return err
	}

	stats := w.Stats()
	logger.Info("Watch stopped", zap.Int("runs", stats.Runs), zap.Int("failures", stats.Failures))
	return nil
}
