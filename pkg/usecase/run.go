package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/demote/pkg/domain/interfaces"
	"github.com/secmon-lab/demote/pkg/domain/model"
	"github.com/secmon-lab/demote/pkg/domain/types"
	"github.com/secmon-lab/demote/pkg/utils/async"
)

// RunController owns the single batch run of the process. At most one run
// is active at a time; items inside a run are dispatched one by one with a
// throttle pause between them.
type RunController struct {
	mu     sync.Mutex
	state  model.RunState
	runID  types.RunID
	role   model.TargetRole
	cancel context.CancelFunc
	done   chan struct{}

	aggregator *Aggregator
	dispatcher *Dispatcher
	waiter     interfaces.Waiter
	notifier   interfaces.Notifier
}

// RunOption configures a RunController
type RunOption func(*RunController)

// WithWaiter replaces the default throttle
func WithWaiter(waiter interfaces.Waiter) RunOption {
	return func(c *RunController) {
		c.waiter = waiter
	}
}

// WithThrottleInterval sets the pause between dispatches
func WithThrottleInterval(interval time.Duration) RunOption {
	return func(c *RunController) {
		c.waiter = NewThrottle(interval)
	}
}

// WithNotifier sets a notifier called once per finished run
func WithNotifier(notifier interfaces.Notifier) RunOption {
	return func(c *RunController) {
		c.notifier = notifier
	}
}

// NewRunController creates an idle RunController dispatching through client
func NewRunController(client interfaces.DemoteClient, opts ...RunOption) *RunController {
	aggregator := NewAggregator()
	c := &RunController{
		state:      model.RunStateIdle,
		aggregator: aggregator,
		dispatcher: NewDispatcher(client, aggregator),
		waiter:     NewThrottle(model.DefaultThrottleInterval),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// notifyTimeout bounds the completion notification, which may run after the
// run context was canceled.
const notifyTimeout = 10 * time.Second

type runPlan struct {
	runID     types.RunID
	role      model.TargetRole
	records   []*model.CredentialRecord
	startedAt time.Time
	done      chan struct{}
}

// Run parses input and processes every credential before returning the summary.
// Input and concurrency errors are returned before anything is dispatched.
func (c *RunController) Run(ctx context.Context, input string, role model.TargetRole, onResult interfaces.ResultHandler) (*model.RunSummary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	plan, err := c.begin(ctx, input, role, cancel)
	if err != nil {
		return nil, err
	}

	return c.execute(ctx, plan, onResult), nil
}

// Start validates input and moves to Running synchronously, then processes the
// credentials in the background. The returned RunID identifies the run.
func (c *RunController) Start(ctx context.Context, input string, role model.TargetRole, onResult interfaces.ResultHandler) (types.RunID, error) {
	// The run outlives the caller's request; only Cancel stops it.
	runCtx, cancel := context.WithCancel(context.Background())

	plan, err := c.begin(ctx, input, role, cancel)
	if err != nil {
		cancel()
		return "", err
	}

	async.Dispatch(ctx, func(bgCtx context.Context) error {
		execCtx, stop := context.WithCancel(bgCtx)
		defer stop()
		unregister := context.AfterFunc(runCtx, stop)
		defer unregister()

		c.execute(execCtx, plan, onResult)
		return nil
	})

	return plan.runID, nil
}

// Cancel stops the active run at its next checkpoint
func (c *RunController) Cancel(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != model.RunStateRunning || c.cancel == nil {
		return goerr.Wrap(model.ErrNoActiveRun, "cannot cancel")
	}

	ctxlog.From(ctx).Info("Run cancellation requested",
		"run_id", c.runID,
		"operator", model.Operator(ctx),
	)
	c.cancel()
	return nil
}

// Wait blocks until the latest run has finished and its notification was
// sent. It returns at once when no run was started.
func (c *RunController) Wait(ctx context.Context) error {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "run did not finish in time")
	}
}

// Clear drops the stats and results of the last run. It is rejected while running.
func (c *RunController) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == model.RunStateRunning {
		return goerr.Wrap(model.ErrClearRejected, "cannot clear results",
			goerr.V("run_id", c.runID))
	}

	c.aggregator.Reset(0)
	c.runID = ""
	c.role = ""

	ctxlog.From(ctx).Info("Run results cleared", "operator", model.Operator(ctx))
	return nil
}

// State returns the current controller state
func (c *RunController) State() model.RunState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the state, counters and results recorded so far
func (c *RunController) Snapshot() *model.RunSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return &model.RunSnapshot{
		State:   c.state,
		RunID:   c.runID,
		Role:    c.role,
		Stats:   c.aggregator.Snapshot(),
		Results: c.aggregator.Results(),
	}
}

func (c *RunController) begin(ctx context.Context, input string, role model.TargetRole, cancel context.CancelFunc) (*runPlan, error) {
	if strings.TrimSpace(input) == "" {
		return nil, goerr.Wrap(model.ErrEmptyInput, "cannot start run")
	}
	if err := role.Validate(); err != nil {
		return nil, goerr.Wrap(err, "cannot start run")
	}

	records := ParseCredentials(input)
	if len(records) == 0 {
		return nil, goerr.Wrap(model.ErrNoCredentials, "cannot start run")
	}

	runID, err := types.NewRunID()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate run ID")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == model.RunStateRunning {
		return nil, goerr.Wrap(model.ErrRunInProgress, "cannot start run",
			goerr.V("active_run_id", c.runID))
	}

	c.state = model.RunStateRunning
	c.runID = runID
	c.role = role
	c.cancel = cancel
	c.done = make(chan struct{})
	c.aggregator.Reset(len(records))

	ctxlog.From(ctx).Info("Run started",
		"run_id", runID,
		"total", len(records),
		"role", role,
		"operator", model.Operator(ctx),
	)

	return &runPlan{
		runID:     runID,
		role:      role,
		records:   records,
		startedAt: time.Now(),
		done:      c.done,
	}, nil
}

func (c *RunController) execute(ctx context.Context, plan *runPlan, onResult interfaces.ResultHandler) *model.RunSummary {
	defer close(plan.done)

	summary := c.dispatchAll(ctx, plan, onResult)
	c.notify(ctx, summary)
	return summary
}

// dispatchAll processes the records in order and returns the controller to
// Idle before the summary is handed back.
func (c *RunController) dispatchAll(ctx context.Context, plan *runPlan, onResult interfaces.ResultHandler) *model.RunSummary {
	logger := ctxlog.From(ctx)
	canceled := false

	defer c.finish()

	for i, record := range plan.records {
		if ctx.Err() != nil {
			canceled = true
			break
		}

		result := c.dispatcher.Invoke(ctx, record, plan.role)
		item := &model.IndexedResult{Index: i + 1, Result: result}
		c.aggregator.Append(item)

		logger.Info("Credential processed",
			"run_id", plan.runID,
			"index", item.Index,
			"total", len(plan.records),
			"success", result.Success,
			"email", result.Email,
		)

		if onResult != nil {
			onResult(ctx, item)
		}

		if i < len(plan.records)-1 {
			if err := c.waiter.Wait(ctx); err != nil {
				canceled = true
				break
			}
		}
	}

	summary := &model.RunSummary{
		RunID:      plan.runID,
		Role:       plan.role,
		Stats:      c.aggregator.Snapshot(),
		Results:    c.aggregator.Results(),
		Canceled:   canceled,
		StartedAt:  plan.startedAt,
		FinishedAt: time.Now(),
	}

	if summary.Succeeded() {
		logger.Info("Run finished", "run_id", plan.runID, "stats", summary.Stats)
	} else {
		logger.Warn("Run finished with failures",
			"run_id", plan.runID,
			"stats", summary.Stats,
			"canceled", canceled,
		)
	}

	return summary
}

// notify reports the summary even when the run was canceled, so it detaches
// from the run context.
func (c *RunController) notify(ctx context.Context, summary *model.RunSummary) {
	if c.notifier == nil {
		return
	}

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := c.notifier.NotifyRunCompleted(notifyCtx, summary); err != nil {
		ctxlog.From(ctx).Warn("Failed to send run notification", "error", err, "run_id", summary.RunID)
	}
}

func (c *RunController) finish() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = model.RunStateIdle
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
