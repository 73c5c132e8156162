package usecase_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/demote/pkg/usecase"
)

// longToken returns a dotted token of exactly n characters
func longToken(n int) string {
	if n < 3 {
		return strings.Repeat("x", n)
	}
	head := (n - 1) / 2
	return strings.Repeat("a", head) + "." + strings.Repeat("b", n-1-head)
}

func TestParseCredentials(t *testing.T) {
	t.Run("mixed input keeps order and drops short tokens", func(t *testing.T) {
		plain := longToken(101)
		session := `{"accessToken":"T1","account":{"id":"A1"},"user":{"email":"a@x"}}`
		input := plain + "\n" + session + "\nshort.tok\n"

		records := usecase.ParseCredentials(input)
		gt.A(t, records).Length(2)

		gt.V(t, records[0].AccessToken).Equal(plain)
		gt.V(t, records[0].Raw).Equal(plain)
		gt.V(t, records[0].AccountID).Equal("")
		gt.V(t, records[0].Email).Equal("")

		gt.V(t, records[1].AccessToken).Equal("T1")
		gt.V(t, records[1].AccountID).Equal("A1")
		gt.V(t, records[1].Email).Equal("a@x")
		gt.V(t, records[1].Raw).Equal(session)
	})

	t.Run("blank and whitespace lines are ignored", func(t *testing.T) {
		plain := longToken(120)
		records := usecase.ParseCredentials("\n   \n\t" + plain + "  \r\n\n")
		gt.A(t, records).Length(1)
		gt.V(t, records[0].AccessToken).Equal(plain)
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		gt.A(t, usecase.ParseCredentials("")).Length(0)
		gt.A(t, usecase.ParseCredentials("\n\n  \n")).Length(0)
	})

	t.Run("plain token length boundary", func(t *testing.T) {
		gt.A(t, usecase.ParseCredentials(longToken(100))).Length(0)
		gt.A(t, usecase.ParseCredentials(longToken(101))).Length(1)
	})

	t.Run("plain token without dot is dropped", func(t *testing.T) {
		gt.A(t, usecase.ParseCredentials(strings.Repeat("a", 150))).Length(0)
	})

	t.Run("session object without token is dropped once", func(t *testing.T) {
		line := `{"note":"` + longToken(150) + `"}`
		gt.A(t, usecase.ParseCredentials(line)).Length(0)
	})

	t.Run("session object with blank token is dropped", func(t *testing.T) {
		gt.A(t, usecase.ParseCredentials(`{"accessToken":"   "}`)).Length(0)
	})

	t.Run("session object with wrong field type is dropped", func(t *testing.T) {
		line := `{"accessToken":12345,"pad":"` + longToken(120) + `"}`
		gt.A(t, usecase.ParseCredentials(line)).Length(0)
	})

	t.Run("session object without account or user", func(t *testing.T) {
		records := usecase.ParseCredentials(`{"accessToken":"T2"}`)
		gt.A(t, records).Length(1)
		gt.V(t, records[0].AccessToken).Equal("T2")
		gt.V(t, records[0].AccountID).Equal("")
		gt.V(t, records[0].Email).Equal("")
	})

	t.Run("malformed JSON falls back to plain rule", func(t *testing.T) {
		long := "{" + longToken(120)
		records := usecase.ParseCredentials(long)
		gt.A(t, records).Length(1)
		gt.V(t, records[0].AccessToken).Equal(long)

		gt.A(t, usecase.ParseCredentials(`{"accessToken":"T1"`)).Length(0)
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		plain := longToken(110)
		records := usecase.ParseCredentials(plain + "\n" + plain)
		gt.A(t, records).Length(2)
		gt.V(t, records[0].AccessToken).Equal(records[1].AccessToken)
	})

	t.Run("never more records than non-blank lines", func(t *testing.T) {
		inputs := []string{
			longToken(101) + "\n" + `{"accessToken":"x"}` + "\n\n",
			"a\nb\nc",
			`{"accessToken":"t"}` + "\n" + `{"accessToken":"t"}`,
			"{\n}\n" + longToken(200),
		}
		for _, input := range inputs {
			nonBlank := 0
			for _, line := range strings.Split(input, "\n") {
				if strings.TrimSpace(line) != "" {
					nonBlank++
				}
			}
			records := usecase.ParseCredentials(input)
			gt.True(t, len(records) <= nonBlank)
			for _, r := range records {
				gt.V(t, r.AccessToken).NotEqual("")
			}
		}
	})
}
