package model

import (
	"github.com/secmon-lab/demote/pkg/domain/types"
)

// DemoteRequest is the body sent to the demotion service
type DemoteRequest struct {
	AccessToken string     `json:"access_token"`
	AccountID   *string    `json:"account_id"`
	Role        TargetRole `json:"role"`
}

// NewDemoteRequest builds a request for one credential. The raw input line is
// sent so a session object keeps its user id. An empty account id is sent as null.
func NewDemoteRequest(record *CredentialRecord, role TargetRole) *DemoteRequest {
	token := record.Raw
	if token == "" {
		token = record.AccessToken
	}

	req := &DemoteRequest{
		AccessToken: token,
		Role:        role,
	}
	if record.AccountID != "" {
		accountID := record.AccountID
		req.AccountID = &accountID
	}
	return req
}

// DemoteResponse is the body returned by the demotion service
type DemoteResponse struct {
	Success      bool       `json:"success"`
	Message      string     `json:"message"`
	Email        string     `json:"email,omitempty"`
	OriginalRole TargetRole `json:"original_role,omitempty"`
	NewRole      TargetRole `json:"new_role,omitempty"`
	Error        string     `json:"error,omitempty"`
}

// SessionPayload is the structured credential object accepted on input.
// Only the fields used for demotion are decoded.
type SessionPayload struct {
	AccessToken string          `json:"accessToken"`
	Account     *SessionAccount `json:"account,omitempty"`
	User        *SessionUser    `json:"user,omitempty"`
}

// SessionAccount is the account part of a SessionPayload
type SessionAccount struct {
	ID string `json:"id"`
}

// SessionUser is the user part of a SessionPayload
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AccountID returns the account id or empty string
func (p *SessionPayload) AccountID() string {
	if p.Account == nil {
		return ""
	}
	return p.Account.ID
}

// UserID returns the user id or empty string
func (p *SessionPayload) UserID() string {
	if p.User == nil {
		return ""
	}
	return p.User.ID
}

// Email returns the user email or empty string
func (p *SessionPayload) Email() string {
	if p.User == nil {
		return ""
	}
	return p.User.Email
}

// UserInfo is the identity resolved for a demotion request
type UserInfo struct {
	UserID    types.UserID
	AccountID types.AccountID
	Email     string
}

// Merge fills empty fields from other
func (u *UserInfo) Merge(other *UserInfo) {
	if other == nil {
		return
	}
	if u.UserID == "" {
		u.UserID = other.UserID
	}
	if u.AccountID == "" {
		u.AccountID = other.AccountID
	}
	if u.Email == "" {
		u.Email = other.Email
	}
}

// Complete reports whether both identifiers needed for the upstream call are present
func (u *UserInfo) Complete() bool {
	return u.UserID != "" && u.AccountID != ""
}

// UpstreamResult is the raw outcome of the upstream role update
type UpstreamResult struct {
	StatusCode int
	Body       string
}

// OK reports whether the upstream accepted the update
func (r *UpstreamResult) OK() bool {
	return r.StatusCode == 200
}
