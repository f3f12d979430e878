package commands

import (
	"fmt"

	"exactstat/order"

	"github.com/spf13/cobra"
)

var (
	quantileSchemeName string
	quantileFractions  []float64
)

var quantileCmd = &cobra.Command{
	Use:   "quantile [values...]",
	Short: "Compute quantiles under one of the R estimator types",
	Long: `Evaluates one or more quantile fractions under an estimator type. The
nine R types are addressable as r-1 through r-9 (or bare codes 1-9), plus
the SAS aliases sas-1 through sas-5, excel, and lqd.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scheme := cfg.QuantileScheme
		if quantileSchemeName != "" {
			var err error
			scheme, err = order.ParseQuantileScheme(quantileSchemeName)
			if err != nil {
				return err
			}
		}
		data, err := readValues(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, p := range quantileFractions {
			q, err := order.Quantile(data, p, scheme)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%g  %v\n", p, q)
		}
		return nil
	},
}

func init() {
	quantileCmd.Flags().StringVarP(&quantileSchemeName, "scheme", "s", "", "quantile scheme name or code (default from config)")
	quantileCmd.Flags().Float64SliceVarP(&quantileFractions, "p", "p", []float64{0.25, 0.5, 0.75}, "quantile fractions in [0,1]")
	rootCmd.AddCommand(quantileCmd)
}
