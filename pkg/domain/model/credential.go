package model

// MinPlainTokenLength is the length a bare token must exceed to be accepted
const MinPlainTokenLength = 100

// CredentialRecord is one caller-supplied credential parsed from the input.
// Empty AccountID and Email mean the input did not carry them.
type CredentialRecord struct {
	Raw         string `json:"-"`
	AccessToken string `json:"-"`
	AccountID   string `json:"account_id,omitempty"`
	Email       string `json:"email,omitempty"`
}

// MaskToken returns a log-safe representation of an access token
func MaskToken(token string) string {
	const visible = 8
	if len(token) <= visible {
		return "***"
	}
	return token[:visible] + "..."
}
