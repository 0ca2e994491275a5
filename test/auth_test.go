package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dvukovic/trainlog/internal/auth"
)

func doRequest(ctx context.Context, t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(auth.AuthTokenHeader, token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBytes
}

func doRegister(ctx context.Context, t *testing.T) {
	t.Helper()

	status, _ := doRequest(ctx, t, "POST", "/a/register", "", auth.RegisterParams{
		Email:           testEmail,
		Username:        testUsername,
		Password:        testPassword,
		ConfirmPassword: testPassword,
	})
	require.Equal(t, http.StatusCreated, status)
}

func doLogin(ctx context.Context, t *testing.T) string {
	t.Helper()

	status, respBytes := doRequest(ctx, t, "POST", "/a/login", "", map[string]string{
		"username": testUsername,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, status, fmt.Sprintf("login response: %s", respBytes))

	var loginResp struct {
		Token    string `json:"token"`
		Username string `json:"username"`
		Name     string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(respBytes, &loginResp))
	require.NotEmpty(t, loginResp.Token)

	return loginResp.Token
}
