package main

import (
	"io"

	"github.com/apex/log"
	colorable "github.com/mattn/go-colorable"
	"github.com/ooni/linkemu/internal/model"
	"github.com/ooni/linkemu/internal/report"
	"github.com/spf13/cobra"
)

// registerSend registers the send subcommand.
func registerSend(rootCmd *cobra.Command, globalOptions *Options) {
	subCmd := &cobra.Command{
		Use:   "send",
		Short: "Sends a single packet through the link and prints its state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(globalOptions, colorable.NewColorableStdout())
		},
	}
	rootCmd.AddCommand(subCmd)
	addPacketFlags(subCmd, globalOptions)
}

// addPacketFlags adds the flags describing the packets to send.
func addPacketFlags(cmd *cobra.Command, options *Options) {
	flags := cmd.Flags()

	flags.StringVar(
		&options.Source,
		"src",
		"192.168.1.10",
		"source IP address",
	)

	flags.StringVar(
		&options.Dest,
		"dst",
		"8.8.8.8",
		"destination IP address",
	)

	flags.IntVar(
		&options.SPort,
		"sport",
		12345,
		"source port",
	)

	flags.IntVar(
		&options.DPort,
		"dport",
		80,
		"destination port",
	)

	flags.StringVarP(
		&options.Data,
		"data",
		"d",
		"veryLongText",
		"packet payload",
	)
}

// runSend sends a single packet and writes its report to w. A lost
// packet is a normal outcome, not an error.
func runSend(options *Options, w io.Writer) error {
	link, err := newLink(options)
	if err != nil {
		log.WithError(err).Error("linkemu: cannot create the link")
		return err
	}
	pkt := model.NewPacket(options.Source, options.Dest, options.SPort, options.DPort, options.Data)
	delivered := link.Send(pkt)
	log.Debugf("linkemu: delivered: %v", delivered)
	return report.Fprint(w, pkt, newReportStyle(options))
}
