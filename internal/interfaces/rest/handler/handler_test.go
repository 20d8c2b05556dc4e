package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MirrorChyan/macdl/internal/config"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const (
	testFallback = "version-6ced3f7b78bf439c"
	testVersion  = "version-0123456789abcdef"
)

func newTestConfig(upstream string) *config.Config {
	conf := config.Default()
	conf.Upstream.MetadataURL = upstream
	conf.Upstream.RelayTimeout = 2 * time.Second
	conf.Resolver.FallbackVersion = testFallback
	conf.Resolver.RetryWaitMin = time.Millisecond
	conf.Resolver.RetryWaitMax = 5 * time.Millisecond
	return conf
}

func newTestApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: Error,
	})
	register(app.Group("/"))
	return app
}

func newUpstream(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func doGet(t *testing.T, app *fiber.App, target string) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}
