package model_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/demote/pkg/domain/model"
)

func TestRunSummary(t *testing.T) {
	t.Run("all succeeded", func(t *testing.T) {
		s := &model.RunSummary{Stats: model.RunStats{Total: 2, Success: 2}}
		gt.True(t, s.Succeeded())
		gt.Equal(t, "completed: 2 succeeded, 0 failed", s.Message())
	})

	t.Run("partial failure", func(t *testing.T) {
		s := &model.RunSummary{Stats: model.RunStats{Total: 3, Success: 1, Failed: 2}}
		gt.False(t, s.Succeeded())
		gt.Equal(t, "completed: 1 succeeded, 2 failed", s.Message())
	})

	t.Run("canceled run is not a success", func(t *testing.T) {
		s := &model.RunSummary{Stats: model.RunStats{Total: 3, Success: 1}, Canceled: true}
		gt.False(t, s.Succeeded())
		gt.True(t, strings.HasPrefix(s.Message(), "canceled after 1 of 3"))
	})
}

func TestRunStateJSON(t *testing.T) {
	snap := model.RunSnapshot{State: model.RunStateRunning}
	raw, err := json.Marshal(snap)
	gt.NoError(t, err).Required()
	gt.S(t, string(raw)).Contains(`"state":"running"`)
}

func TestNewDemoteRequest(t *testing.T) {
	t.Run("account id is null when absent", func(t *testing.T) {
		req := model.NewDemoteRequest(&model.CredentialRecord{AccessToken: "tok"}, model.RoleStandardUser)
		raw, err := json.Marshal(req)
		gt.NoError(t, err).Required()
		gt.Equal(t, `{"access_token":"tok","account_id":null,"role":"standard-user"}`, string(raw))
	})

	t.Run("account id is carried when present", func(t *testing.T) {
		req := model.NewDemoteRequest(&model.CredentialRecord{AccessToken: "tok", AccountID: "A1"}, model.RoleAccountAdmin)
		gt.NotNil(t, req.AccountID)
		gt.Equal(t, "A1", *req.AccountID)
	})

	t.Run("session object is sent whole", func(t *testing.T) {
		raw := `{"accessToken":"tok","user":{"id":"u1"}}`
		req := model.NewDemoteRequest(&model.CredentialRecord{Raw: raw, AccessToken: "tok"}, model.RoleAccountAdmin)
		gt.Equal(t, raw, req.AccessToken)
	})
}

func TestMaskToken(t *testing.T) {
	gt.Equal(t, "***", model.MaskToken("short"))
	gt.Equal(t, "eyJhbGci...", model.MaskToken("eyJhbGciOiJSUzI1NiJ9.payload.sig"))
}

func TestUserInfoMerge(t *testing.T) {
	info := &model.UserInfo{UserID: "user-1"}
	info.Merge(&model.UserInfo{UserID: "user-2", AccountID: "acc-1", Email: "a@x.com"})

	gt.Equal(t, "user-1", info.UserID.String())
	gt.Equal(t, "acc-1", info.AccountID.String())
	gt.Equal(t, "a@x.com", info.Email)
	gt.True(t, info.Complete())
}
