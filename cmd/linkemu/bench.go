package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/apex/log"
	colorable "github.com/mattn/go-colorable"
	"github.com/ooni/linkemu/internal/humanize"
	"github.com/ooni/linkemu/internal/model"
	"github.com/ooni/linkemu/internal/simulate"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// registerBench registers the bench subcommand.
func registerBench(rootCmd *cobra.Command, globalOptions *Options) {
	subCmd := &cobra.Command{
		Use:   "bench",
		Short: "Sends many packets through the link and summarizes the outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()
			_, err := runBench(ctx, globalOptions, colorable.NewColorableStderr())
			return err
		},
	}
	rootCmd.AddCommand(subCmd)
	addPacketFlags(subCmd, globalOptions)
	subCmd.Flags().IntVarP(
		&globalOptions.Count,
		"count",
		"n",
		1000,
		"number of packets to send",
	)
}

// runBench sends options.Count packets showing progress on w. An
// interrupted run still logs the partial summary.
func runBench(ctx context.Context, options *Options, w io.Writer) (*simulate.Summary, error) {
	link, err := newLink(options)
	if err != nil {
		log.WithError(err).Error("linkemu: cannot create the link")
		return nil, err
	}
	runner := &simulate.Runner[string]{
		Link: link,
		Factory: func(idx int) *model.Packet[string] {
			return model.NewPacket(options.Source, options.Dest, options.SPort, options.DPort, options.Data)
		},
		Logger: log.Log,
	}
	bar := progressbar.NewOptions(
		options.Count,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("sending"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
	)
	summary, err := runner.Run(ctx, options.Count, func(sent int) {
		_ = bar.Set(sent)
	})
	_ = bar.Finish()
	logSummary(summary)
	return summary, err
}

// logSummary logs the summary of a run.
func logSummary(summary *simulate.Summary) {
	log.WithFields(log.Fields{
		"run_id":       summary.RunID,
		"sent":         summary.Sent,
		"delivered":    summary.Delivered,
		"lost":         summary.Lost,
		"loss_rate":    summary.LossRate(),
		"corrupted":    summary.Corrupted,
		"duplicated":   summary.Duplicated,
		"delay_mean":   humanize.Milliseconds(summary.DelayMean),
		"delay_median": humanize.Milliseconds(summary.DelayMedian),
		"delay_p95":    humanize.Milliseconds(summary.DelayP95),
		"delay_max":    humanize.Milliseconds(summary.DelayMax),
	}).Info("linkemu: summary")
}
