package interfaces

import (
	"context"

	"github.com/secmon-lab/demote/pkg/domain/model"
	"github.com/secmon-lab/demote/pkg/domain/types"
)

// ResultHandler receives each result as soon as it is recorded
type ResultHandler func(ctx context.Context, item *model.IndexedResult)

// Runner is the batch run controller
type Runner interface {
	Run(ctx context.Context, input string, role model.TargetRole, onResult ResultHandler) (*model.RunSummary, error)
	Start(ctx context.Context, input string, role model.TargetRole, onResult ResultHandler) (types.RunID, error)
	Cancel(ctx context.Context) error
	Wait(ctx context.Context) error
	Clear(ctx context.Context) error
	State() model.RunState
	Snapshot() *model.RunSnapshot
}

// Demoter serves demotion requests against the upstream account service
type Demoter interface {
	Demote(ctx context.Context, req *model.DemoteRequest) (*model.DemoteResponse, error)
}

// Auth manages operator login sessions
type Auth interface {
	Enabled() bool
	Login(ctx context.Context, username, password string) (*model.Session, error)
	ValidateSession(ctx context.Context, sessionID, sessionSecret string) (*model.Session, error)
	Logout(ctx context.Context, sessionID string) error
}
