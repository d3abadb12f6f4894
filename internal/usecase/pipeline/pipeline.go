// Package pipeline runs declared validation rules in front of command handlers.
package pipeline

import (
	"context"
	"log/slog"

	"appointment-system/internal/pkg/result"
)

type Handler[C, R any] func(ctx context.Context, cmd C) result.Result[R]

// WithValidation short-circuits next with a failure carrying every violation of rules.
func WithValidation[C, R any](logger *slog.Logger, name string, rules RuleSet[C], next Handler[C, R]) Handler[C, R] {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, cmd C) result.Result[R] {
		if verr := rules.Validate(cmd); verr != nil {
			logger.WarnContext(ctx, "command rejected by validation",
				slog.String("command", name),
				slog.Any("fields", verr.FieldNames()),
			)
			return result.Failure[R](verr)
		}
		return next(ctx, cmd)
	}
}
