package handler

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const relayFallbackBody = `{"error":"Failed to fetch Roblox version","fallback":{"clientVersionUpload":"version-6ced3f7b78bf439c"}}`

func TestRelayForwardsBodyVerbatim(t *testing.T) {
	const body = `{"version":"0.600.1","clientVersionUpload":"version-0123456789abcdef","bootstrapperVersion":"1, 6, 0, 6000001"}`
	server := newUpstream(t, http.StatusOK, body)

	h := NewRelayHandler(newTestConfig(server.URL), zap.NewNop())
	app := newTestApp(h.Register)

	for _, route := range []string{"/api/roblox-version", "/version-proxy"} {
		t.Run(route, func(t *testing.T) {
			resp, got := doGet(t, app, route)

			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			require.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))
			require.Equal(t, body, got)
		})
	}
}

func TestRelayFallback(t *testing.T) {
	testCases := []struct {
		Name   string
		Status int
		Body   string
	}{
		{
			Name:   "server error",
			Status: http.StatusInternalServerError,
			Body:   `{"errors":[{"code":0,"message":"InternalServerError"}]}`,
		},
		{
			Name:   "not found",
			Status: http.StatusNotFound,
			Body:   `{}`,
		},
		{
			Name:   "invalid json",
			Status: http.StatusOK,
			Body:   `<html>maintenance</html>`,
		},
		{
			Name:   "truncated json",
			Status: http.StatusOK,
			Body:   `{"clientVersionUpload":"version-`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			server := newUpstream(t, tc.Status, tc.Body)

			h := NewRelayHandler(newTestConfig(server.URL), zap.NewNop())
			resp, got := doGet(t, newTestApp(h.Register), "/version-proxy")

			require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
			require.JSONEq(t, relayFallbackBody, got)
		})
	}
}

func TestRelayUnreachableUpstream(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	h := NewRelayHandler(newTestConfig(url), zap.NewNop())
	resp, got := doGet(t, newTestApp(h.Register), "/api/roblox-version")

	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	require.JSONEq(t, relayFallbackBody, got)
}

func TestRelaySendsSingleRequest(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	h := NewRelayHandler(newTestConfig(server.URL), zap.NewNop())
	resp, _ := doGet(t, newTestApp(h.Register), "/version-proxy")

	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, int32(1), hits.Load())
}
