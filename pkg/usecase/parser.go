package usecase

import (
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/demote/pkg/domain/model"
)

// ParseCredentials turns raw multi-line input into credential records.
//
// Each non-blank line is either a session object (starts with "{" and is
// well-formed JSON) or a bare token. A session object without an access
// token yields nothing; it is never retried as a bare token. Lines that are
// not well-formed JSON are checked against the bare token rule, which
// requires a "." and more than model.MinPlainTokenLength characters.
// Unusable lines are dropped silently, so an empty result is the only
// failure signal.
func ParseCredentials(input string) []*model.CredentialRecord {
	var records []*model.CredentialRecord

	for _, line := range strings.Split(input, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if record := parseLine(trimmed); record != nil {
			records = append(records, record)
		}
	}

	return records
}

func parseLine(line string) *model.CredentialRecord {
	if strings.HasPrefix(line, "{") && json.Valid([]byte(line)) {
		return parseSessionLine(line)
	}
	return parsePlainLine(line)
}

func parseSessionLine(line string) *model.CredentialRecord {
	payload, err := decodeSession(line)
	if err != nil || payload.AccessToken == "" {
		return nil
	}

	return &model.CredentialRecord{
		Raw:         line,
		AccessToken: payload.AccessToken,
		AccountID:   payload.AccountID(),
		Email:       payload.Email(),
	}
}

func parsePlainLine(line string) *model.CredentialRecord {
	if !isPlainToken(line) {
		return nil
	}
	return &model.CredentialRecord{
		Raw:         line,
		AccessToken: line,
	}
}

func isPlainToken(s string) bool {
	return strings.Contains(s, ".") && len(s) > model.MinPlainTokenLength
}

// decodeSession decodes a session object. Fields of the wrong type are a decode error.
func decodeSession(raw string) (*model.SessionPayload, error) {
	var payload model.SessionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, goerr.Wrap(err, "failed to decode session object")
	}
	payload.AccessToken = strings.TrimSpace(payload.AccessToken)
	return &payload, nil
}
