// Package main provides the CLI entrypoint for the Moxon rectangle calculator.
// It loads configuration, initializes logging and runs the interactive session.
package main

import (
	"context"
	"fmt"
	"moxon/internal/config"
	"moxon/pkg/logger"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newRootCommand builds the command tree. The root command itself runs the
// interactive calculation.
func newRootCommand() *cobra.Command {
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:   "moxon",
		Short: "Calculates Moxon rectangle antenna dimensions",
		Long: `Calculates the dimensions of a Moxon rectangle antenna for a design
frequency and conductor diameter by scaling a reference design.

The tool asks for the frequency, the diameter (in millimetres, inches or
as an AWG number) and the output unit, then prints dimensions A to E, the
total wire length and an impedance estimate.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			loaded, err := config.Load(path)
			if err != nil {
				return err //nolint: wrapcheck
			}
			*cfg = *loaded

			if err := logger.Setup(cfg.Environment); err != nil {
				return fmt.Errorf("could not set up logger: %w", err)
			}
			ctx, _ := logger.WithRunID(cmd.Context())
			cmd.SetContext(ctx)

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return calculate(cmd, cfg)
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		versionCommand(),
	)

	return rootCmd
}

// execute runs rootCmd and maps the outcome to a process exit code.
func execute(ctx context.Context, rootCmd *cobra.Command) int {
	err := rootCmd.ExecuteContext(ctx)
	_ = logger.Get(ctx).Sync()
	if err != nil {
		return 1
	}

	return 0
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	os.Exit(execute(ctx, newRootCommand())) //nolint: gocritic
}
