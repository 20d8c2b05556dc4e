package handler

import (
	"github.com/MirrorChyan/macdl/internal/config"
	"github.com/MirrorChyan/macdl/internal/logic/dispense"
	"github.com/MirrorChyan/macdl/internal/logic/resolver"
	"github.com/MirrorChyan/macdl/internal/metrics"
	"github.com/MirrorChyan/macdl/internal/model"
	"github.com/MirrorChyan/macdl/internal/pkg/errs"
	"github.com/MirrorChyan/macdl/internal/pkg/restserver/response"
	"github.com/MirrorChyan/macdl/internal/pkg/validator"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type VersionHandler struct {
	logger         *zap.Logger
	resolver       *resolver.VersionResolver
	builder        *dispense.URLBuilder
	refreshOnFetch bool
}

func NewVersionHandler(
	conf *config.Config,
	logger *zap.Logger,
	resolver *resolver.VersionResolver,
	builder *dispense.URLBuilder,
) *VersionHandler {
	return &VersionHandler{
		logger:         logger,
		resolver:       resolver,
		builder:        builder,
		refreshOnFetch: conf.Download.RefreshBeforeDownload,
	}
}

func (h *VersionHandler) Register(r fiber.Router) {
	r.Get("/api/version", h.GetLatest)
	r.Get("/download", h.RedirectToDownload)
}

func (h *VersionHandler) GetLatest(c *fiber.Ctx) error {
	o := h.resolver.Resolve(c.UserContext())

	url, err := h.builder.Build(o.Version)
	if err != nil {
		h.logger.Error("Failed to build download url",
			zap.String("version", o.Version),
			zap.Error(err),
		)
	}

	return c.JSON(response.Success(model.VersionResponseData{
		Version:     o.Version,
		Source:      string(o.Source),
		DownloadURL: url,
	}))
}

// RedirectToDownload re-resolves the version and redirects to the CDN archive.
// An optional ?version= is used when re-resolution falls back.
func (h *VersionHandler) RedirectToDownload(c *fiber.Ctx) error {
	var req model.DownloadRequest
	if err := validator.ValidateQuery(c, &req); err != nil {
		return err
	}
	version := req.Version

	var o resolver.Outcome
	if h.refreshOnFetch {
		o = h.resolver.Refresh(c.UserContext())
	} else {
		o = h.resolver.Resolve(c.UserContext())
	}
	if o.IsResolved() || version == "" {
		version = o.Version
	}

	url, err := h.builder.Build(version)
	if err != nil {
		metrics.DownloadInitiatedTotal.WithLabelValues("failed").Inc()
		return errs.ErrDownloadInitiation.Wrap(err)
	}

	h.logger.Info("Redirect to download",
		zap.String("version", version),
		zap.String("source", string(o.Source)),
		zap.String("url", url),
	)
	metrics.DownloadInitiatedTotal.WithLabelValues("redirected").Inc()
	return c.Redirect(url, fiber.StatusFound)
}
