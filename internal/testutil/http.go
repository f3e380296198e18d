package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dom/dev-network/internal/domain"
	"github.com/stretchr/testify/require"
)

// AuthResponse mirrors the registration response body
type AuthResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// DoJSON performs a JSON request against the test server, attaching the
// session token when one is given.
func (ts *TestServer) DoJSON(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, ts.APIURL(path), &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// LoginAs obtains a session token for an existing user
func (ts *TestServer) LoginAs(t *testing.T, email, password string) string {
	t.Helper()

	resp := ts.DoJSON(t, http.MethodPost, "/auth", "", map[string]string{
		"email":    email,
		"password": password,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "login failed for %s", email)

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result.Token
}
