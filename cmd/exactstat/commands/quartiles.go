package commands

import (
	"fmt"

	"exactstat/order"

	"github.com/spf13/cobra"
)

var quartileSchemeName string

var quartilesCmd = &cobra.Command{
	Use:   "quartiles [values...]",
	Short: "Compute quartiles under a named convention",
	Long: `Computes Q1, Q2 and Q3 plus the interquartile range under one of the
published quartile conventions: inclusive (Tukey's hinges), exclusive
(Moore and McCabe), m&s, minitab, excel or cdf. Numeric codes 1-6 are
also accepted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scheme := cfg.QuartileScheme
		if quartileSchemeName != "" {
			var err error
			scheme, err = order.ParseQuartileScheme(quartileSchemeName)
			if err != nil {
				return err
			}
		}
		data, err := readValues(args)
		if err != nil {
			return err
		}
		q, err := order.QuartilesOf(data, scheme)
		if err != nil {
			return err
		}
		iqr, err := q.Q3.Sub(q.Q1)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "q1   %v\n", q.Q1)
		fmt.Fprintf(out, "q2   %v\n", q.Q2)
		fmt.Fprintf(out, "q3   %v\n", q.Q3)
		fmt.Fprintf(out, "iqr  %v\n", iqr)
		return nil
	},
}

func init() {
	quartilesCmd.Flags().StringVarP(&quartileSchemeName, "scheme", "s", "", "quartile scheme name or code (default from config)")
	rootCmd.AddCommand(quartilesCmd)
}
