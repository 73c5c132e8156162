package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/demote/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/demote/pkg/domain/model"
	"github.com/secmon-lab/demote/pkg/domain/types"
	"github.com/secmon-lab/demote/pkg/usecase"
)

func okAPI() *mocks.AccountAPIMock {
	return &mocks.AccountAPIMock{
		UpdateUserRoleFunc: func(ctx context.Context, accessToken string, accountID types.AccountID, userID types.UserID, role model.TargetRole) (*model.UpstreamResult, error) {
			return &model.UpstreamResult{StatusCode: 200, Body: `{"success":true}`}, nil
		},
	}
}

func claimsFor(info *model.UserInfo, err error) *mocks.ClaimsExtractorMock {
	return &mocks.ClaimsExtractorMock{
		ExtractFunc: func(accessToken string) (*model.UserInfo, error) {
			return info, err
		},
	}
}

func strPtr(s string) *string { return &s }

func TestDemote(t *testing.T) {
	ctx := context.Background()

	t.Run("plain token identity from claims", func(t *testing.T) {
		api := okAPI()
		claims := claimsFor(&model.UserInfo{UserID: "user-1", AccountID: "acct-1", Email: "u@example.com"}, nil)
		uc := usecase.NewDemote(api, claims)

		resp, err := uc.Demote(ctx, &model.DemoteRequest{AccessToken: "eyJ.token", Role: model.RoleAccountAdmin})
		gt.NoError(t, err)
		gt.True(t, resp.Success)
		gt.Equal(t, resp.Message, "demoted to admin")
		gt.Equal(t, resp.Email, "u@example.com")
		gt.Equal(t, resp.NewRole, model.RoleAccountAdmin)

		calls := api.UpdateUserRoleCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, calls[0].AccessToken, "eyJ.token")
		gt.Equal(t, calls[0].AccountID, types.AccountID("acct-1"))
		gt.Equal(t, calls[0].UserID, types.UserID("user-1"))
		gt.Equal(t, calls[0].Role, model.RoleAccountAdmin)
	})

	t.Run("session object identity", func(t *testing.T) {
		api := okAPI()
		claims := claimsFor(nil, errors.New("should not be needed"))
		uc := usecase.NewDemote(api, claims)

		session := `{"accessToken":" inner.token ","account":{"id":"acct-2"},"user":{"id":"user-2","email":"s@example.com"}}`
		resp, err := uc.Demote(ctx, &model.DemoteRequest{AccessToken: session, Role: model.RoleStandardUser})
		gt.NoError(t, err)
		gt.True(t, resp.Success)
		gt.Equal(t, resp.Message, "demoted to standard member")
		gt.Equal(t, resp.Email, "s@example.com")

		calls := api.UpdateUserRoleCalls()
		gt.Equal(t, calls[0].AccessToken, "inner.token")
		gt.Equal(t, calls[0].AccountID, types.AccountID("acct-2"))
		gt.Equal(t, calls[0].UserID, types.UserID("user-2"))
	})

	t.Run("session fills missing fields from claims", func(t *testing.T) {
		api := okAPI()
		claims := claimsFor(&model.UserInfo{UserID: "claim-user", AccountID: "claim-acct", Email: "c@example.com"}, nil)
		uc := usecase.NewDemote(api, claims)

		resp, err := uc.Demote(ctx, &model.DemoteRequest{
			AccessToken: `{"accessToken":"tok","account":{"id":"sess-acct"}}`,
			Role:        model.RoleAccountAdmin,
		})
		gt.NoError(t, err)
		gt.Equal(t, resp.Email, "c@example.com")

		call := api.UpdateUserRoleCalls()[0]
		gt.Equal(t, call.AccountID, types.AccountID("sess-acct"))
		gt.Equal(t, call.UserID, types.UserID("claim-user"))
	})

	t.Run("request account id overrides", func(t *testing.T) {
		api := okAPI()
		claims := claimsFor(&model.UserInfo{UserID: "user-1", AccountID: "acct-1"}, nil)
		uc := usecase.NewDemote(api, claims)

		_, err := uc.Demote(ctx, &model.DemoteRequest{
			AccessToken: "eyJ.token",
			AccountID:   strPtr("acct-override"),
			Role:        model.RoleAccountAdmin,
		})
		gt.NoError(t, err)
		gt.Equal(t, api.UpdateUserRoleCalls()[0].AccountID, types.AccountID("acct-override"))
	})

	t.Run("input errors", func(t *testing.T) {
		testCases := []struct {
			name   string
			req    *model.DemoteRequest
			claims *mocks.ClaimsExtractorMock
			want   error
		}{
			{
				name:   "empty token",
				req:    &model.DemoteRequest{AccessToken: "  ", Role: model.RoleAccountAdmin},
				claims: claimsFor(nil, nil),
				want:   model.ErrMissingToken,
			},
			{
				name:   "invalid role",
				req:    &model.DemoteRequest{AccessToken: "tok", Role: "owner"},
				claims: claimsFor(nil, nil),
				want:   model.ErrInvalidRole,
			},
			{
				name:   "broken session JSON",
				req:    &model.DemoteRequest{AccessToken: `{"accessToken":`, Role: model.RoleAccountAdmin},
				claims: claimsFor(nil, nil),
				want:   model.ErrInvalidSession,
			},
			{
				name:   "session without token",
				req:    &model.DemoteRequest{AccessToken: `{"user":{"id":"u"}}`, Role: model.RoleAccountAdmin},
				claims: claimsFor(nil, nil),
				want:   model.ErrMissingToken,
			},
			{
				name:   "claims unreadable",
				req:    &model.DemoteRequest{AccessToken: "not-a-jwt", Role: model.RoleAccountAdmin},
				claims: claimsFor(nil, errors.New("bad token")),
				want:   model.ErrMissingUserID,
			},
			{
				name:   "no account",
				req:    &model.DemoteRequest{AccessToken: "tok", Role: model.RoleAccountAdmin},
				claims: claimsFor(&model.UserInfo{UserID: "u"}, nil),
				want:   model.ErrMissingAccount,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				api := okAPI()
				uc := usecase.NewDemote(api, tc.claims)

				_, err := uc.Demote(ctx, tc.req)
				gt.Error(t, err)
				gt.True(t, errors.Is(err, tc.want))
				gt.A(t, api.UpdateUserRoleCalls()).Length(0)
			})
		}
	})

	t.Run("upstream refusal", func(t *testing.T) {
		api := &mocks.AccountAPIMock{
			UpdateUserRoleFunc: func(ctx context.Context, accessToken string, accountID types.AccountID, userID types.UserID, role model.TargetRole) (*model.UpstreamResult, error) {
				return &model.UpstreamResult{StatusCode: 403, Body: "forbidden"}, nil
			},
		}
		claims := claimsFor(&model.UserInfo{UserID: "u", AccountID: "a", Email: "e@x"}, nil)

		resp, err := usecase.NewDemote(api, claims).Demote(ctx, &model.DemoteRequest{AccessToken: "tok", Role: model.RoleAccountAdmin})
		gt.NoError(t, err)
		gt.False(t, resp.Success)
		gt.Equal(t, resp.Message, model.MessageDemoteFailed)
		gt.Equal(t, resp.Error, "HTTP 403: forbidden")
		gt.Equal(t, resp.Email, "e@x")
	})

	t.Run("upstream unreachable", func(t *testing.T) {
		api := &mocks.AccountAPIMock{
			UpdateUserRoleFunc: func(ctx context.Context, accessToken string, accountID types.AccountID, userID types.UserID, role model.TargetRole) (*model.UpstreamResult, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
		}
		claims := claimsFor(&model.UserInfo{UserID: "u", AccountID: "a"}, nil)

		resp, err := usecase.NewDemote(api, claims).Demote(ctx, &model.DemoteRequest{AccessToken: "tok", Role: model.RoleAccountAdmin})
		gt.NoError(t, err)
		gt.False(t, resp.Success)
		gt.S(t, resp.Error).Contains("connection refused")
	})

	t.Run("serves a run controller", func(t *testing.T) {
		api := okAPI()
		claims := claimsFor(&model.UserInfo{UserID: "u", AccountID: "a", Email: "e@x"}, nil)
		controller := usecase.NewRunController(usecase.NewDemote(api, claims),
			usecase.WithWaiter(noWait()))

		summary, err := controller.Run(ctx, tokenInput(2), model.RoleAccountAdmin, nil)
		gt.NoError(t, err)
		gt.Equal(t, summary.Stats, model.RunStats{Total: 2, Success: 2})
		gt.Equal(t, summary.Results[0].Result.Email, "e@x")
		gt.A(t, api.UpdateUserRoleCalls()).Length(2)
	})

	t.Run("run keeps the session user id", func(t *testing.T) {
		api := okAPI()
		claims := claimsFor(nil, errors.New("token has no profile claims"))
		controller := usecase.NewRunController(usecase.NewDemote(api, claims),
			usecase.WithWaiter(noWait()))

		input := `{"accessToken":"tok2","user":{"id":"u1","email":"u1@x"},"account":{"id":"acct-9"}}`
		summary, err := controller.Run(ctx, input, model.RoleAccountAdmin, nil)
		gt.NoError(t, err)
		gt.Equal(t, summary.Stats, model.RunStats{Total: 1, Success: 1})
		gt.Equal(t, summary.Results[0].Result.Email, "u1@x")

		calls := api.UpdateUserRoleCalls()
		gt.A(t, calls).Length(1)
		gt.Equal(t, calls[0].AccessToken, "tok2")
		gt.Equal(t, calls[0].UserID, types.UserID("u1"))
		gt.Equal(t, calls[0].AccountID, types.AccountID("acct-9"))
	})
}
