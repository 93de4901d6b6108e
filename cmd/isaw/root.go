package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ornl-ndav/ISAW-sub008/internal/diag"
)

type rootOptions struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "isaw",
		Short: "Spectrum scales, event binning and compact spectrum persistence",
		Long: `isaw works with neutron scattering spectra: it generates and merges
scales, histograms time-of-flight events into spectra, and packs spectra into
a checksummed, compressed binary form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setupLogging(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newScaleCmd(opts),
		newBinCmd(opts),
		newPackCmd(opts),
		newUnpackCmd(opts),
	)

	return cmd
}

// setupLogging installs a text logger on stderr and routes library
// diagnostics through it.
func (o *rootOptions) setupLogging(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}

	o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	diag.SetDefault(diag.NewLogRecorder(o.logger))

	return nil
}

func (o *rootOptions) log() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.logger
}
