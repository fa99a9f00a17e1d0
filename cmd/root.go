// Package cmd provides the root command and CLI setup for wptdiff.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"wptdiff.dev/pkg/wptdiff/internal/adapter"
	"wptdiff.dev/pkg/wptdiff/internal/controller"
	"wptdiff.dev/pkg/wptdiff/internal/domain"
	m "wptdiff.dev/pkg/wptdiff/internal/model"
)

var loader adapter.ReportLoader

// workflow is wired lazily so flag values can shape the UI; tests swap in
// a mock before executing the command.
var workflow domain.Workflow

var detailLevelFlag string
var maxDetailsFlag int
var showSubtestsFlag bool
var showPassingFlag bool
var noColorFlag bool
var plainFlag bool
var verboseFlag bool

func init() {
	loader = adapter.NewLocalReportLoader()
}

const rootLongDescription = `wptdiff analyzes web-platform-tests (WPT) JSON report files.

With a single file it prints a summary of the run: totals and a status
tally, plus detail listings at higher detail levels.

With two files it compares run A against run B: which tests and subtests
appeared, disappeared or changed status, with every change classified as
an improvement, a regression or a lateral move.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wptdiff FILE_A [FILE_B]",
		Short: "Analyze and compare WPT report files",
		Long:  rootLongDescription,
		Args:  cobra.MaximumNArgs(2),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: runRoot,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(
		&detailLevelFlag, detailLevelFlagName, "d",
		viper.GetString(detailLevelConfigKey),
		"level of detail to show (summary, new, removed, changes, all)",
	)
	bindFlagToConfig(cmd.Flags().Lookup(detailLevelFlagName), detailLevelConfigKey)

	cmd.Flags().IntVarP(
		&maxDetailsFlag, maxDetailsFlagName, "m",
		viper.GetInt(maxDetailsConfigKey),
		"maximum number of entries per detail list",
	)
	bindFlagToConfig(cmd.Flags().Lookup(maxDetailsFlagName), maxDetailsConfigKey)

	cmd.Flags().BoolVarP(
		&showSubtestsFlag, showSubtestsFlagName, "s",
		viper.GetBool(showSubtestsConfigKey),
		"include subtest information in the output",
	)
	bindFlagToConfig(cmd.Flags().Lookup(showSubtestsFlagName), showSubtestsConfigKey)

	cmd.Flags().BoolVar(
		&showPassingFlag, showPassingFlagName,
		viper.GetBool(showPassingConfigKey),
		"include passing entries in detail listings",
	)
	bindFlagToConfig(cmd.Flags().Lookup(showPassingFlagName), showPassingConfigKey)

	cmd.Flags().BoolVar(
		&noColorFlag, noColorFlagName,
		viper.GetBool(noColorConfigKey),
		"disable colored output",
	)
	bindFlagToConfig(cmd.Flags().Lookup(noColorFlagName), noColorConfigKey)

	cmd.Flags().BoolVar(
		&plainFlag, plainFlagName,
		viper.GetBool(plainConfigKey),
		"never page output, print it directly",
	)
	bindFlagToConfig(cmd.Flags().Lookup(plainFlagName), plainConfigKey)

	cmd.PersistentFlags().BoolVarP(
		&verboseFlag, verboseFlagName, "v",
		viper.GetBool(logVerboseKey),
		"enable debug logging",
	)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	config, err := reportingConfigFromViper()
	if err != nil {
		return err
	}

	wf := workflow
	if wf == nil {
		isTTY := controller.IsTTY(os.Stdout)
		colored := isTTY && !viper.GetBool(noColorConfigKey)
		interactive := isTTY && !viper.GetBool(plainConfigKey)
		ui := controller.NewUI(cmd, interactive, controller.NewPalette(colored))
		wf = domain.NewWorkflow(loader, ui)
	}

	ctx := cmd.Context()

	if len(args) == 1 {
		return wf.Analyze(ctx, domain.AnalyzeArgs{
			Input:  m.Path(args[0]),
			Config: config,
		})
	}

	return wf.Compare(ctx, domain.CompareArgs{
		InputA: m.Path(args[0]),
		InputB: m.Path(args[1]),
		Config: config,
	})
}

func reportingConfigFromViper() (m.ReportingConfig, error) {
	level, err := m.ParseDetailLevel(viper.GetString(detailLevelConfigKey))
	if err != nil {
		return m.ReportingConfig{}, err
	}

	maxDetails := viper.GetInt(maxDetailsConfigKey)
	if maxDetails < 0 {
		return m.ReportingConfig{}, fmt.Errorf("max-details must be non-negative, got %d", maxDetails)
	}

	return m.ReportingConfig{
		DetailLevel:  level,
		MaxDetails:   maxDetails,
		ShowSubtests: viper.GetBool(showSubtestsConfigKey),
		ShowPassing:  viper.GetBool(showPassingConfigKey),
	}, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
