package main

import (
	"fmt"
	"os"

	"github.com/MohammadaminAlbooyeh/diet-diary/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "diary",
	Short: "Diet Diary calorie tracking service",
	Long: `Diet Diary records what you eat and how many calories it had.

Calories can be given explicitly or filled in from the built-in food
reference table (optionally extended with FOODS_FILE).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, foodsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
