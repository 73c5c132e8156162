package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/demote/pkg/domain/interfaces"
	"github.com/secmon-lab/demote/pkg/domain/model"
	"github.com/secmon-lab/demote/pkg/domain/types"
	"golang.org/x/sync/semaphore"
)

// Demote serves demotion requests by resolving the member identity and
// updating its role on the upstream account service. Only one upstream
// call runs at a time.
type Demote struct {
	api    interfaces.AccountAPI
	claims interfaces.ClaimsExtractor
	sem    *semaphore.Weighted
}

// NewDemote creates a Demote use case
func NewDemote(api interfaces.AccountAPI, claims interfaces.ClaimsExtractor) *Demote {
	return &Demote{
		api:    api,
		claims: claims,
		sem:    semaphore.NewWeighted(1),
	}
}

// Demote changes the role of the member owning req.AccessToken.
// Identity and input problems are returned as errors; an upstream refusal
// or transport failure is a response with Success=false.
func (d *Demote) Demote(ctx context.Context, req *model.DemoteRequest) (*model.DemoteResponse, error) {
	logger := ctxlog.From(ctx)

	if req == nil {
		return nil, goerr.Wrap(model.ErrMissingToken, "empty request")
	}
	if err := req.Role.Validate(); err != nil {
		return nil, err
	}

	accessToken, info, err := d.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := d.sem.Acquire(ctx, 1); err != nil {
		return nil, goerr.Wrap(err, "failed to acquire upstream slot")
	}
	defer d.sem.Release(1)

	logger.Info("Updating member role",
		"user_id", info.UserID,
		"account_id", info.AccountID,
		"role", req.Role,
		"email", info.Email,
	)

	result, err := d.api.UpdateUserRole(ctx, accessToken, info.AccountID, info.UserID, req.Role)
	if err != nil {
		logger.Error("Upstream role update failed", "error", err, "account_id", info.AccountID)
		return &model.DemoteResponse{
			Success: false,
			Message: model.MessageDemoteFailed,
			Email:   info.Email,
			Error:   err.Error(),
		}, nil
	}

	if !result.OK() {
		logger.Warn("Upstream refused role update",
			"status", result.StatusCode,
			"account_id", info.AccountID,
		)
		return &model.DemoteResponse{
			Success: false,
			Message: model.MessageDemoteFailed,
			Email:   info.Email,
			Error:   fmt.Sprintf("HTTP %d: %s", result.StatusCode, result.Body),
		}, nil
	}

	return &model.DemoteResponse{
		Success: true,
		Message: model.DemotedMessage(req.Role),
		Email:   info.Email,
		NewRole: req.Role,
	}, nil
}

// resolve extracts the bearer token and the member identity from the request
func (d *Demote) resolve(ctx context.Context, req *model.DemoteRequest) (string, *model.UserInfo, error) {
	logger := ctxlog.From(ctx)

	accessToken := strings.TrimSpace(req.AccessToken)
	if accessToken == "" {
		return "", nil, goerr.Wrap(model.ErrMissingToken, "access token is empty")
	}

	info := &model.UserInfo{}
	if strings.HasPrefix(accessToken, "{") {
		payload, err := decodeSession(accessToken)
		if err != nil {
			return "", nil, goerr.Wrap(model.ErrInvalidSession, "failed to parse session JSON",
				goerr.V("cause", err.Error()))
		}
		if payload.AccessToken == "" {
			return "", nil, goerr.Wrap(model.ErrMissingToken, "session JSON has no access token")
		}
		accessToken = payload.AccessToken
		info = &model.UserInfo{
			UserID:    types.UserID(payload.UserID()),
			AccountID: types.AccountID(payload.AccountID()),
			Email:     payload.Email(),
		}
	} else {
		logger.Debug("Plain token submitted, identity comes from token claims only")
	}

	if !info.Complete() || info.Email == "" {
		claims, err := d.claims.Extract(accessToken)
		if err != nil {
			logger.Warn("Failed to read token claims", "error", err)
		} else {
			info.Merge(claims)
		}
	}

	if req.AccountID != nil && *req.AccountID != "" {
		info.AccountID = types.AccountID(*req.AccountID)
	}

	if info.UserID == "" {
		return "", nil, goerr.Wrap(model.ErrMissingUserID, "cannot resolve member")
	}
	if info.AccountID == "" {
		return "", nil, goerr.Wrap(model.ErrMissingAccount, "cannot resolve member")
	}

	return accessToken, info, nil
}
