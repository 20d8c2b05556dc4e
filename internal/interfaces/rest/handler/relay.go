package handler

import (
	"time"

	"github.com/MirrorChyan/macdl/internal/config"
	"github.com/MirrorChyan/macdl/internal/metrics"
	"github.com/MirrorChyan/macdl/internal/model"
	"github.com/MirrorChyan/macdl/internal/pkg/errs"
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const relayFailureMessage = "Failed to fetch Roblox version"

// RelayHandler forwards one GET to the metadata endpoint so browser clients
// avoid cross-origin restrictions. It does not cache or transform the body.
type RelayHandler struct {
	logger   *zap.Logger
	client   *fasthttp.Client
	endpoint string
	fallback string
	timeout  time.Duration
}

func NewRelayHandler(conf *config.Config, logger *zap.Logger) *RelayHandler {
	return &RelayHandler{
		logger: logger,
		client: &fasthttp.Client{
			Name: "macdl-relay",
		},
		endpoint: conf.Upstream.MetadataURL,
		fallback: conf.Resolver.FallbackVersion,
		timeout:  conf.Upstream.RelayTimeout,
	}
}

func (h *RelayHandler) Register(r fiber.Router) {
	r.Get("/api/roblox-version", h.Relay)
	r.Get("/version-proxy", h.Relay)
}

func (h *RelayHandler) Relay(c *fiber.Ctx) error {
	body, err := h.forward()
	if err != nil {
		h.logger.Error("Error fetching Roblox version",
			zap.String("endpoint", h.endpoint),
			zap.Error(err),
		)
		metrics.RelayRequestsTotal.WithLabelValues("fallback").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(model.RelayFailure{
			Error: relayFailureMessage,
			Fallback: model.VersionPayload{
				ClientVersionUpload: h.fallback,
			},
		})
	}

	metrics.RelayRequestsTotal.WithLabelValues("relayed").Inc()
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}

func (h *RelayHandler) forward() ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(h.endpoint)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, fiber.MIMEApplicationJSON)

	var err error
	if h.timeout > 0 {
		err = h.client.DoTimeout(req, resp, h.timeout)
	} else {
		err = h.client.Do(req, resp)
	}
	if err != nil {
		return nil, errs.ErrUpstreamUnavailable.Wrap(err)
	}

	if code := resp.StatusCode(); code < fasthttp.StatusOK || code >= fasthttp.StatusMultipleChoices {
		return nil, errs.ErrUpstreamUnavailable.Wrap(errors.Errorf("unexpected status %d", code))
	}

	body := resp.Body()
	if !sonic.Valid(body) {
		return nil, errs.ErrMalformedPayload
	}

	// resp goes back to the pool
	return append([]byte(nil), body...), nil
}
