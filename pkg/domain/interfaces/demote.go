package interfaces

//go:generate moq -out mocks/demote_mock.go -pkg mocks . DemoteClient AccountAPI ClaimsExtractor Notifier Waiter

import (
	"context"

	"github.com/secmon-lab/demote/pkg/domain/model"
	"github.com/secmon-lab/demote/pkg/domain/types"
)

// DemoteClient performs one call to the demotion service. An error means
// the call did not complete with a usable response.
type DemoteClient interface {
	Demote(ctx context.Context, req *model.DemoteRequest) (*model.DemoteResponse, error)
}

// AccountAPI updates a member role on the upstream account service
type AccountAPI interface {
	UpdateUserRole(ctx context.Context, accessToken string, accountID types.AccountID, userID types.UserID, role model.TargetRole) (*model.UpstreamResult, error)
}

// ClaimsExtractor resolves user identity from an access token
type ClaimsExtractor interface {
	Extract(accessToken string) (*model.UserInfo, error)
}

// Notifier announces finished runs
type Notifier interface {
	NotifyRunCompleted(ctx context.Context, summary *model.RunSummary) error
}

// Waiter suspends between two dispatches
type Waiter interface {
	Wait(ctx context.Context) error
}
