package main

import (
	"errors"
	"moxon/internal/config"
	"moxon/internal/moxon"
	"moxon/internal/prompt"
	"moxon/pkg/logger"
	"moxon/pkg/serrors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// calculate runs one interactive session on the command's stdin and stdout.
func calculate(cmd *cobra.Command, cfg *config.Config) error {
	ctx := cmd.Context()

	reference := moxon.NewReference(cfg)
	if err := reference.Validate(); err != nil {
		logger.Error(ctx, "invalid reference design", zap.Error(err))

		return err //nolint: wrapcheck
	}

	session := prompt.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), moxon.New(reference))
	if err := session.Run(ctx); err != nil {
		var serr *serrors.Error
		if errors.As(err, &serr) {
			logger.Warn(ctx, "invalid input", zap.String("kind", serr.Kind().Error()), zap.Error(err))
		} else {
			logger.Error(ctx, "could not run session", zap.Error(err))
		}

		return err //nolint: wrapcheck
	}

	return nil
}
