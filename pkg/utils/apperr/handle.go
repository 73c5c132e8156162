package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/demote/pkg/domain/model"
)

// Handle logs an error the caller could not map to a client response
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	args := []any{"error", err}
	if operator := model.Operator(ctx); operator != "" {
		args = append(args, "operator", operator)
	}
	ctxlog.From(ctx).Error("Unexpected error", args...)
}
