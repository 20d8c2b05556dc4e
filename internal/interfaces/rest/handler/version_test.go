package handler

import (
	"net/http"
	"testing"

	"github.com/MirrorChyan/macdl/internal/config"
	"github.com/MirrorChyan/macdl/internal/logic/dispense"
	"github.com/MirrorChyan/macdl/internal/logic/resolver"
	"github.com/MirrorChyan/macdl/internal/pkg/errs"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newVersionApp(t *testing.T, conf *config.Config) *fiber.App {
	t.Helper()
	res := resolver.NewVersionResolver(conf, zap.NewNop())
	t.Cleanup(res.Close)

	h := NewVersionHandler(conf, zap.NewNop(), res, dispense.NewURLBuilder(conf))
	return newTestApp(h.Register)
}

func TestGetLatest(t *testing.T) {
	testCases := []struct {
		Name     string
		Status   int
		Body     string
		Expected string
		Source   string
	}{
		{
			Name:     "resolved",
			Status:   http.StatusOK,
			Body:     `{"clientVersionUpload":"version-0123456789abcdef"}`,
			Expected: testVersion,
			Source:   "resolved",
		},
		{
			Name:     "fallback on missing field",
			Status:   http.StatusOK,
			Body:     `{"version":"0.600.1"}`,
			Expected: testFallback,
			Source:   "fallback",
		},
		{
			Name:     "fallback on client error",
			Status:   http.StatusForbidden,
			Body:     `{}`,
			Expected: testFallback,
			Source:   "fallback",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			server := newUpstream(t, tc.Status, tc.Body)
			resp, body := doGet(t, newVersionApp(t, newTestConfig(server.URL)), "/api/version")

			require.Equal(t, fiber.StatusOK, resp.StatusCode)

			var got struct {
				Code int    `json:"code"`
				Msg  string `json:"msg"`
				Data struct {
					Version     string `json:"version"`
					Source      string `json:"source"`
					DownloadURL string `json:"download_url"`
				} `json:"data"`
			}
			require.NoError(t, sonic.UnmarshalString(body, &got))
			require.Equal(t, 0, got.Code)
			require.Equal(t, "success", got.Msg)
			require.Equal(t, tc.Expected, got.Data.Version)
			require.Equal(t, tc.Source, got.Data.Source)
			require.Equal(t, "https://setup.rbxcdn.com/mac/"+tc.Expected+"-RobloxPlayer.zip", got.Data.DownloadURL)
		})
	}
}

func TestRedirectToDownload(t *testing.T) {
	testCases := []struct {
		Name     string
		Status   int
		Body     string
		Query    string
		Expected string
	}{
		{
			Name:     "resolved",
			Status:   http.StatusOK,
			Body:     `{"clientVersionUpload":"version-0123456789abcdef"}`,
			Expected: testVersion,
		},
		{
			Name:     "resolved replaces query",
			Status:   http.StatusOK,
			Body:     `{"clientVersionUpload":"version-0123456789abcdef"}`,
			Query:    "?version=version-old",
			Expected: testVersion,
		},
		{
			Name:     "fallback uses query",
			Status:   http.StatusNotFound,
			Body:     `{}`,
			Query:    "?version=version-old",
			Expected: "version-old",
		},
		{
			Name:     "fallback without query",
			Status:   http.StatusNotFound,
			Body:     `{}`,
			Expected: testFallback,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			server := newUpstream(t, tc.Status, tc.Body)
			resp, _ := doGet(t, newVersionApp(t, newTestConfig(server.URL)), "/download"+tc.Query)

			require.Equal(t, fiber.StatusFound, resp.StatusCode)
			require.Equal(t,
				"https://setup.rbxcdn.com/mac/"+tc.Expected+"-RobloxPlayer.zip",
				resp.Header.Get(fiber.HeaderLocation),
			)
		})
	}
}

func TestRedirectToDownloadRejectsInvalidVersion(t *testing.T) {
	server := newUpstream(t, http.StatusOK, `{"clientVersionUpload":"version-0123456789abcdef"}`)
	resp, body := doGet(t, newVersionApp(t, newTestConfig(server.URL)), "/download?version=..%2Fetc")

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var got struct {
		Code int `json:"code"`
	}
	require.NoError(t, sonic.UnmarshalString(body, &got))
	require.Equal(t, errs.BizCodeInvalidParams, got.Code)
}

func TestRedirectToDownloadInsecureBase(t *testing.T) {
	server := newUpstream(t, http.StatusOK, `{"clientVersionUpload":"version-0123456789abcdef"}`)
	conf := newTestConfig(server.URL)
	conf.Download.CdnBase = "http://setup.rbxcdn.com"

	resp, body := doGet(t, newVersionApp(t, conf), "/download")

	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var got struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
	}
	require.NoError(t, sonic.UnmarshalString(body, &got))
	require.Equal(t, errs.BizCodeDownloadInitiation, got.Code)
	require.Equal(t, errs.DownloadInitiationMessage, got.Msg)
}
