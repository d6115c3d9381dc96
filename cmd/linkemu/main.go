// Command linkemu sends simulated packets through an emulated
// unreliable link and reports what happened to them.
package main

import (
	"os"

	"github.com/apex/log"
	"github.com/ooni/linkemu/internal/logx"
	"github.com/spf13/cobra"
)

// Options contains the options you can set from the CLI.
type Options struct {
	Config  string
	Count   int
	Data    string
	Dest    string
	DPort   int
	Emoji   bool
	NoColor bool
	Seed    int64
	Source  string
	SPort   int
	Verbose bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the root command and its subcommands.
func newRootCommand() *cobra.Command {
	var globalOptions Options
	rootCmd := &cobra.Command{
		Use:           "linkemu",
		Short:         "linkemu emulates an unreliable network link",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(&globalOptions)
		},
	}
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(
		&globalOptions.Config,
		"config",
		"c",
		"",
		"path of the link profile (JSON or YAML; default: the demo link)",
	)

	flags.BoolVar(
		&globalOptions.Emoji,
		"emoji",
		false,
		"whether to use emojis when logging",
	)

	flags.BoolVar(
		&globalOptions.NoColor,
		"no-color",
		false,
		"disable colored output",
	)

	flags.Int64Var(
		&globalOptions.Seed,
		"seed",
		-1,
		"seed for the random source (negative: use the profile seed or the current time)",
	)

	flags.BoolVarP(
		&globalOptions.Verbose,
		"verbose",
		"v",
		false,
		"increase verbosity level",
	)

	registerSend(rootCmd, &globalOptions)
	registerBench(rootCmd, &globalOptions)
	return rootCmd
}

// setupLogging configures the apex/log default logger.
func setupLogging(options *Options) {
	logHandler := logx.NewHandlerWithDefaultSettings()
	logHandler.Emoji = options.Emoji
	log.Log = logx.NewLogger(logHandler, options.Verbose)
}
