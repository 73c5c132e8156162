package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/demote/pkg/domain/interfaces"
	"github.com/secmon-lab/demote/pkg/domain/model"
)

// Dispatcher sends one credential to the demotion service and classifies the outcome
type Dispatcher struct {
	client     interfaces.DemoteClient
	aggregator *Aggregator
}

// NewDispatcher creates a Dispatcher that reports into aggregator
func NewDispatcher(client interfaces.DemoteClient, aggregator *Aggregator) *Dispatcher {
	return &Dispatcher{
		client:     client,
		aggregator: aggregator,
	}
}

// Invoke makes exactly one call for record and counts exactly one success or failure.
// It never retries.
func (d *Dispatcher) Invoke(ctx context.Context, record *model.CredentialRecord, role model.TargetRole) *model.DispatchResult {
	logger := ctxlog.From(ctx)

	resp, err := d.client.Demote(ctx, model.NewDemoteRequest(record, role))
	if err == nil && resp == nil {
		err = goerr.New("empty response from demotion service")
	}
	if err != nil {
		d.aggregator.RecordFailure()
		logger.Warn("Demotion request failed",
			"error", err,
			"token", model.MaskToken(record.AccessToken),
		)
		return &model.DispatchResult{
			Success: false,
			Email:   pickEmail(record.Email),
			Message: model.MessageRequestFailed,
			Error:   err.Error(),
			Role:    role,
		}
	}

	if resp.Success {
		d.aggregator.RecordSuccess()
	} else {
		d.aggregator.RecordFailure()
	}

	return &model.DispatchResult{
		Success: resp.Success,
		Email:   pickEmail(resp.Email, record.Email),
		Message: resp.Message,
		Error:   resp.Error,
		Role:    role,
	}
}

// pickEmail returns the first non-empty candidate or the placeholder
func pickEmail(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return model.UnknownEmail
}
