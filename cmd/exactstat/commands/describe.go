package commands

import (
	"errors"
	"fmt"

	"exactstat/numeric"
	"exactstat/order"
	"exactstat/stat"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var describeCmd = &cobra.Command{
	Use:   "describe [values...]",
	Short: "Summarize a sample: center, spread and order statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readValues(args)
		if err != nil {
			return err
		}
		if err := numeric.ValidateFinite(data); err != nil {
			return err
		}

		var (
			mean, median, min, max numeric.Value
			stdev, mad             numeric.Value
			quartiles              order.Quartiles
			haveQuartiles          bool
			modes                  []numeric.Value
		)

		// The measures are independent, each sorts or sums its own copy.
		var g errgroup.Group
		g.Go(func() error {
			var err error
			mean, err = stat.Mean(data)
			return err
		})
		g.Go(func() error {
			var err error
			stdev, err = stat.Stdev(data, nil)
			if errors.Is(err, stat.ErrInsufficientData) {
				stdev = numeric.Float(0)
				err = nil
			}
			return err
		})
		g.Go(func() error {
			var err error
			median, err = order.Median(data)
			return err
		})
		g.Go(func() error {
			var err error
			min, max, err = order.MinMax(data)
			return err
		})
		g.Go(func() error {
			var err error
			mad, err = order.MAD(data, nil)
			return err
		})
		g.Go(func() error {
			var err error
			quartiles, err = order.QuartilesOf(data, cfg.QuartileScheme)
			if errors.Is(err, order.ErrInsufficientData) {
				return nil
			}
			haveQuartiles = err == nil
			return err
		})
		g.Go(func() error {
			var err error
			modes, err = stat.Modes(data, 0)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}
		log.Debug().Int("n", len(data)).Msg("Describe complete")

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "n       %d\n", len(data))
		fmt.Fprintf(out, "min     %v\n", min)
		fmt.Fprintf(out, "max     %v\n", max)
		fmt.Fprintf(out, "mean    %v\n", mean)
		fmt.Fprintf(out, "stdev   %v\n", stdev)
		fmt.Fprintf(out, "median  %v\n", median)
		fmt.Fprintf(out, "mad     %v\n", mad)
		if haveQuartiles {
			fmt.Fprintf(out, "q1      %v\n", quartiles.Q1)
			fmt.Fprintf(out, "q3      %v\n", quartiles.Q3)
		}
		fmt.Fprintf(out, "mode    %v\n", modes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
