package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/MohammadaminAlbooyeh/diet-diary/config"
	"github.com/MohammadaminAlbooyeh/diet-diary/services"

	"github.com/spf13/cobra"
)

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Print the effective food reference table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		table, err := services.LoadFoodReferences(cfg.FoodsFile)
		if err != nil {
			return err
		}
		foods := services.NewFoodService(table)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FOOD\tCALORIES\tUNIT")
		for _, name := range foods.Names() {
			info, _ := foods.Lookup(name)
			fmt.Fprintf(w, "%s\t%g\t%s\n", name, info.Calories, info.Unit)
		}
		return w.Flush()
	},
}
