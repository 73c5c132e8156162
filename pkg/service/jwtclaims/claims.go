package jwtclaims

import (
	"strings"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/demote/pkg/domain/model"
	"github.com/secmon-lab/demote/pkg/domain/types"
)

const (
	// AuthClaim holds account membership identifiers
	AuthClaim = "https://api.openai.com/auth"
	// ProfileClaim holds the user profile
	ProfileClaim = "https://api.openai.com/profile"

	accountUserSeparator = "__"
)

// Extractor reads member identity from access token claims. Signatures
// and expiry are not checked; the upstream service does that.
type Extractor struct{}

// New creates an Extractor
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the identifiers found in token. Missing claims leave fields empty.
func (x *Extractor) Extract(token string) (*model.UserInfo, error) {
	parsed, err := jwt.ParseInsecure([]byte(token))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode access token")
	}

	info := &model.UserInfo{}

	if auth := claimMap(parsed, AuthClaim); auth != nil {
		if accountUserID := claimString(auth, "chatgpt_account_user_id"); accountUserID != "" {
			userID, accountID, found := strings.Cut(accountUserID, accountUserSeparator)
			info.UserID = types.UserID(userID)
			if found {
				// only the second segment is the account id
				accountID, _, _ = strings.Cut(accountID, accountUserSeparator)
				info.AccountID = types.AccountID(accountID)
			}
		}
		if info.UserID == "" {
			info.UserID = types.UserID(firstNonEmpty(
				claimString(auth, "chatgpt_user_id"),
				claimString(auth, "user_id"),
			))
		}
		if info.AccountID == "" {
			info.AccountID = types.AccountID(claimString(auth, "chatgpt_account_id"))
		}
	}

	if profile := claimMap(parsed, ProfileClaim); profile != nil {
		info.Email = claimString(profile, "email")
	}

	return info, nil
}

func claimMap(token jwt.Token, name string) map[string]interface{} {
	v, ok := token.Get(name)
	if !ok {
		return nil
	}
	m, _ := v.(map[string]interface{})
	return m
}

func claimString(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
