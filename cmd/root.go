package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"image-verifier/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "image-verifier",
	Short: "Smoke test for the image development server",
	Long: `Image Verifier checks the locally generated 1x1 pixel fixture and probes a
running development server (/image, /api/json, /download, /html-test),
printing a pass/fail report. Without a subcommand it runs every check.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return verifyCmd.RunE(cmd, args)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		// Console format with ISO8601 timestamps, matching the rest of the CLI output
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
		stop()
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Save the detailed report as JSON in the working directory")
	RootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "Exit with an error when a check fails")
}
