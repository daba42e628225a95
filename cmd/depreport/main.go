package main

import (
	"os"

	"github.com/cryptellation/depreport/pkg/config"
	"github.com/cryptellation/depreport/pkg/intake"
	"github.com/cryptellation/depreport/pkg/logging"
	"github.com/cryptellation/depreport/pkg/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	outputPath string
	info       bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "depreport <results-file>",
		Short: "Depreport renders a dependency update report from classified resolution results",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			logging.Init(info)

			cfg := config.Default()
			if _, statErr := os.Stat(configPath); statErr == nil {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					logging.L().Fatal("Failed to load config", zap.Error(err))
				}
			}

			input, err := intake.Load(args[0], cfg.Report.Revision)
			if err != nil {
				logging.L().Fatal("Failed to load resolution results", zap.Error(err))
			}

			output := cfg.Report.Output
			if outputPath != "" {
				output = outputPath
			}

			writer := report.NewWriter(report.NewZapDiagnostics(logging.L().Logger))
			if output == "" {
				err = writer.RenderToConsole(input)
			} else {
				err = writer.RenderToFile(input, output)
			}
			if err != nil {
				logging.L().Fatal("Failed to render report", zap.Error(err))
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/depreport.yaml", "Path to the config file")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Report file path (overrides the config; empty writes to stdout)")
	rootCmd.PersistentFlags().BoolVar(&info, "info", false, "Show the failure cause of unresolved dependencies")

	if err := rootCmd.Execute(); err != nil {
		logging.L().Error("Command execution failed", zap.Error(err))
		os.Exit(1)
	}
}
