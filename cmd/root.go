package cmd

import (
	"fmt"
	"os"

	"github.com/1ns0mn1a7/seller-apis/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "seller-apis",
	Short: "Marketplace stock and price synchronizer",
	Long: `seller-apis keeps marketplace listings in step with the supplier feed.
It downloads the supplier stock sheet and pushes reconciled stock counts
and prices to Ozon and Yandex Market.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format matches user expectations for a CLI tool.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
