// ============================================================================
// spiffy - SPIF Patent Number Checker
// ============================================================================
//
// Package:     cmd
// Description: Root command: check a SPIF master data workbook
// Author:      Mike Stoffels
// Created:     2025-12-14
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/msto63/spiffy/internal/report"
	"github.com/msto63/spiffy/internal/service"
	"github.com/msto63/spiffy/internal/validator"
	"github.com/msto63/spiffy/pkg/core/config"
	spferror "github.com/msto63/spiffy/pkg/core/error"
	"github.com/msto63/spiffy/pkg/core/logging"
)

var (
	cfgFile    string
	verbose    bool
	quiet      bool
	outputFile string
	reportFile string
)

// loaded by the persistent pre-run of every command
var (
	appConfig *config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "spiffy <inputfile.xlsx>",
	Short: "spiffy - SPIF patent number checker",
	Long: `spiffy checks the application and publication numbers of a SPIF
master data workbook and writes the results next to the input.

The sheet 'Master Data - SPIF' must contain the columns
'Application Number - SPIF' and 'Publication Number - SPIF' in its
first row. Two result columns are appended in a copy of the workbook;
the input file is never modified.

Supported countries: US, EP, JP, WO, CN, KR

Examples:
  spiffy patents.xlsx
  spiffy patents.xlsx -o checked.xlsx --report summary.json
  spiffy check application US12345678 JP2015123456
  spiffy watch patents.xlsx`,
	Args:              inputFileArg,
	PersistentPreRunE: setup,
	RunE:              runCheckWorkbook,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command and prints fatal errors to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./spiffy.toml, ./spiffy.yaml or ~/.config/spiffy/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors, no summary")

	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "results file (default: <input>-results.xlsx)")
	rootCmd.Flags().StringVar(&reportFile, "report", "", "also write a run summary (.json, .yaml or .yml)")
}

// inputFileArg enforces exactly one argument ending in .xlsx
func inputFileArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return spferror.New("Usage: spiffy inputfile.xlsx").WithCode(spferror.CodeUsage)
	}
	return service.CheckExtension(args[0])
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Resolve(cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	logCfg := logging.DefaultLoggerConfig("spiffy")
	logCfg.Level = cfg.General.LogLevel
	logCfg.Format = cfg.General.LogFormat
	logCfg.Output = cmd.ErrOrStderr()
	switch {
	case verbose:
		logCfg.Level = "debug"
	case quiet:
		logCfg.Level = "warn"
	}
	logger = logging.NewLogger(logCfg)

	if src := cfg.Source(); src != "" {
		logger.Debug("Configuration loaded", zap.String("path", src))
	}
	return nil
}

// newService builds the check service from the loaded configuration
func newService(progress io.Writer) (*service.Service, error) {
	v, err := validator.New(appConfig.ValidatorOptions())
	if err != nil {
		return nil, spferror.Wrap(err, "invalid validation settings").WithCode(spferror.CodeInvalidConfig)
	}
	return service.NewService(service.Config{
		Layout:       appConfig.Layout(),
		Validator:    v,
		OutputSuffix: appConfig.Workbook.OutputSuffix,
		Logger:       logger,
		Progress:     progress,
	})
}

func runCheckWorkbook(cmd *cobra.Command, args []string) error {
	defer logger.Sync() //nolint:errcheck

	if err := validateReportFlag(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return checkOnce(ctx, cmd.OutOrStdout(), args[0])
}

// validateReportFlag rejects an unsupported --report extension before any work is done
func validateReportFlag() error {
	if reportFile == "" {
		return nil
	}
	_, err := report.FormatFor(reportFile)
	return err
}

// checkOnce runs one check, prints the summary and writes the report file
func checkOnce(ctx context.Context, out io.Writer, input string) error {
	svc, err := newService(out)
	if err != nil {
		return err
	}

	res, err := svc.Check(ctx, &service.CheckRequest{Input: input, Output: outputFile})
	if err != nil {
		return err
	}

	if !quiet {
		if err := res.Summary.Render(out); err != nil {
			return err
		}
	}

	if reportFile != "" {
		if err := res.Summary.WriteFile(reportFile); err != nil {
			return err
		}
		logger.Info("Report written", zap.String("path", reportFile))
	}
	return nil
}

// exitError carries a specific process exit code
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return e.msg
}

// ExitCode maps an Execute error to the process exit code
func ExitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func printError(w io.Writer, err error) {
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.msg != "" {
			fmt.Fprintln(w, ee.msg)
		}
		return
	}

	var se *spferror.Error
	if errors.As(err, &se) && (se.Code().IsPrecondition() || se.Unwrap() == nil) {
		fmt.Fprintln(w, spferror.MessageOf(err))
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
