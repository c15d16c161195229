package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vfg2006/instagram-insights-api/internal/config"
	"github.com/vfg2006/instagram-insights-api/pkg/log"
)

var (
	cfg        *config.Config
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "igctl",
	Short: "Operator tool for the Instagram insights API",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.Setup("info")

		loaded, err := config.NewConfig()
		if err != nil {
			return err
		}
		log.Setup(loaded.App.LogLevel)

		cfg = loaded
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
}
