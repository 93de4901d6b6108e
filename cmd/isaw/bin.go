package main

import (
	"errors"

	"github.com/spf13/cobra"

	isaw "github.com/ornl-ndav/ISAW-sub008"
	"github.com/ornl-ndav/ISAW-sub008/histogram"
	"github.com/ornl-ndav/ISAW-sub008/series"
)

func newBinCmd(root *rootOptions) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "bin",
		Short: "Histogram events into a spectrum",
		Long: `Reads bin edges and detector events from a YAML document and prints the
resulting spectrum, placed on the bin centres with Poisson errors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var doc eventsDoc
			if err := readYAML(in, &doc); err != nil {
				return err
			}

			s, stats, err := binEvents(&doc)
			if err != nil {
				return err
			}
			root.log().Info("binned events",
				"accepted", stats.Accepted, "dropped", stats.Dropped,
				"accepted_count", stats.AcceptedCount, "dropped_count", stats.DroppedCount)

			out, err := newSeriesDoc(s)
			if err != nil {
				return err
			}

			return writeYAML(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&in, "events", "", "events YAML document")
	_ = cmd.MarkFlagRequired("events")

	return cmd
}

func binEvents(doc *eventsDoc) (*series.Sampled, histogram.Stats, error) {
	if len(doc.Events) == 0 {
		return nil, histogram.Stats{}, errors.New("no events")
	}

	edges, err := doc.Scale.build()
	if err != nil {
		return nil, histogram.Stats{}, err
	}

	sd := seriesDoc{Attributes: doc.Attributes}
	list, err := sd.attributes()
	if err != nil {
		return nil, histogram.Stats{}, err
	}

	return isaw.BinEvents(doc.Events, edges, series.WithGroup(doc.Group), series.WithAttributes(list))
}
