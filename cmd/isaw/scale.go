package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ornl-ndav/ISAW-sub008/scale"
)

func newScaleCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Generate or merge scales",
	}

	cmd.AddCommand(newScaleUniformCmd(), newScaleLogCmd(), newScaleMergeCmd(root))

	return cmd
}

func newScaleUniformCmd() *cobra.Command {
	var (
		start, end float64
		count      int
	)

	cmd := &cobra.Command{
		Use:   "uniform",
		Short: "Print count evenly spaced points from start to end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := scale.Uniform(start, end, count)
			if err != nil {
				return err
			}

			return printScale(cmd.OutOrStdout(), sc)
		},
	}

	cmd.Flags().Float64Var(&start, "start", 0, "first point")
	cmd.Flags().Float64Var(&end, "end", 0, "last point")
	cmd.Flags().IntVar(&count, "count", 0, "number of points")
	_ = cmd.MarkFlagRequired("count")

	return cmd
}

func newScaleLogCmd() *cobra.Command {
	var (
		start, end, step float64
		mode             string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print a constant-ratio scale from start past end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := scale.ParseLogMode(mode)
			if err != nil {
				return err
			}

			sc, err := scale.Log(start, end, step, m)
			if err != nil {
				return err
			}

			return printScale(cmd.OutOrStdout(), sc)
		},
	}

	cmd.Flags().Float64Var(&start, "start", 0, "first point, must be positive")
	cmd.Flags().Float64Var(&end, "end", 0, "point the scale must reach")
	cmd.Flags().Float64Var(&step, "first-step", 0, "width of the first interval")
	cmd.Flags().StringVar(&mode, "mode", "exact", "rounding policy (exact, roundedChain)")
	_ = cmd.MarkFlagRequired("first-step")

	return cmd
}

func newScaleMergeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <a.yaml> <b.yaml>",
		Short: "Merge the point sets of two scale documents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scales := make([]*scale.Scale, len(args))
			for i, path := range args {
				var doc scaleDoc
				if err := readYAML(path, &doc); err != nil {
					return err
				}

				sc, err := doc.build()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				scales[i] = sc
			}

			merged, err := scale.Merge(scales[0], scales[1])
			if err != nil {
				return err
			}
			root.log().Debug("merged scales",
				"a", scales[0].Len(), "b", scales[1].Len(), "merged", merged.Len())

			return printScale(cmd.OutOrStdout(), merged)
		},
	}
}

func printScale(w io.Writer, sc *scale.Scale) error {
	return writeYAML(w, scaleDoc{Points: sc.Points()})
}
