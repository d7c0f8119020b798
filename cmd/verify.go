package cmd

import (
	"context"
	"fmt"

	"image-verifier/core/client"
	"image-verifier/core/config"
	"image-verifier/core/logger"
	"image-verifier/feature/verify"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var jsonFlag bool
var strictFlag bool

type runFunc func(context.Context, *verify.Service) *verify.Summary

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run all checks against the local fixture and the server",
	Long: `Runs the local image check, the server image check and the endpoint scan in
that order. A failing check never stops the following ones.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(cmd, func(ctx context.Context, svc *verify.Service) *verify.Summary {
			return svc.Run(ctx)
		})
	},
}

// localCmd represents the verify local command
var localCmd = &cobra.Command{
	Use:   "local",
	Short: "Check the local 1x1 pixel fixture",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(cmd, func(ctx context.Context, svc *verify.Service) *verify.Summary {
			return svc.RunLocal(ctx)
		})
	},
}

// serverCmd represents the verify server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Fetch and check the image served by the server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(cmd, func(ctx context.Context, svc *verify.Service) *verify.Summary {
			return svc.RunServer(ctx)
		})
	},
}

// endpointsCmd represents the verify endpoints command
var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "Probe the JSON, download and HTML endpoints",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(cmd, func(ctx context.Context, svc *verify.Service) *verify.Summary {
			return svc.RunEndpoints(ctx)
		})
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)
	verifyCmd.AddCommand(localCmd, serverCmd, endpointsCmd)
}

func runVerify(cmd *cobra.Command, run runFunc) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logg.Sync() }()

	c := client.NewClient(cfg.Server.BaseURL, cfg.Client)
	svc := verify.NewService(c, cfg.Server.ImagePath, cfg.Verify, logg, cmd.OutOrStdout())

	summary := run(cmd.Context(), svc)

	if jsonFlag {
		filename, err := summary.WriteJSON(".")
		if err != nil {
			return err
		}
		logg.Info("Detailed JSON report saved", zap.String("file", filename), zap.String("run_id", summary.RunID))
	}

	if (cfg.Verify.Strict || strictFlag) && !summary.Passed() {
		return fmt.Errorf("verification failed (run %s)", summary.RunID)
	}
	return nil
}
