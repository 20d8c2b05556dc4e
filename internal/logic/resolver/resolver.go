package resolver

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MirrorChyan/macdl/internal/cache"
	"github.com/MirrorChyan/macdl/internal/config"
	"github.com/MirrorChyan/macdl/internal/metrics"
	"github.com/MirrorChyan/macdl/internal/model"
	"github.com/MirrorChyan/macdl/internal/pkg/errs"
	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const cacheKey = "client-version"

type Option struct {
	Endpoint        string
	FallbackVersion string
	Attempts        int
	RetryWaitMin    time.Duration
	RetryWaitMax    time.Duration
	StaleTime       time.Duration

	// HTTPClient is the transport the retry client wraps. Nil uses a pooled default.
	HTTPClient *http.Client
}

type VersionResolver struct {
	logger   *zap.Logger
	client   *http.Client
	endpoint string
	fallback string
	cache    *cache.Cache[string, Outcome]
}

func NewVersionResolver(conf *config.Config, logger *zap.Logger) *VersionResolver {
	return New(logger, Option{
		Endpoint:        conf.Upstream.MetadataURL,
		FallbackVersion: conf.Resolver.FallbackVersion,
		Attempts:        conf.Resolver.Attempts,
		RetryWaitMin:    conf.Resolver.RetryWaitMin,
		RetryWaitMax:    conf.Resolver.RetryWaitMax,
		StaleTime:       conf.Resolver.StaleTime,
	})
}

func New(logger *zap.Logger, opt Option) *VersionResolver {
	return &VersionResolver{
		logger:   logger,
		client:   newRetryClient(logger, opt.HTTPClient, opt.Attempts, opt.RetryWaitMin, opt.RetryWaitMax),
		endpoint: opt.Endpoint,
		fallback: opt.FallbackVersion,
		cache:    cache.NewCache[string, Outcome](opt.StaleTime),
	}
}

func (r *VersionResolver) FallbackVersion() string {
	return r.fallback
}

// Resolve serves a fresh cached version when there is one and queries the
// metadata endpoint otherwise. It never fails: any error yields the fallback.
func (r *VersionResolver) Resolve(ctx context.Context) Outcome {
	v, err := r.cache.ComputeIfAbsent(cacheKey, func() (Outcome, error) {
		version, err := r.fetch(ctx)
		if err != nil {
			return Outcome{}, err
		}
		return Resolved(version), nil
	})
	if err != nil {
		return r.fallbackFor(err)
	}
	metrics.VersionResolveTotal.WithLabelValues(string(SourceResolved)).Inc()
	return *v
}

// Refresh always queries the metadata endpoint, replacing the cached value on success.
func (r *VersionResolver) Refresh(ctx context.Context) Outcome {
	version, err := r.fetch(ctx)
	if err != nil {
		return r.fallbackFor(err)
	}
	o := Resolved(version)
	r.cache.Set(cacheKey, o)
	metrics.VersionResolveTotal.WithLabelValues(string(SourceResolved)).Inc()
	return o
}

func (r *VersionResolver) Close() {
	r.cache.Close()
}

func (r *VersionResolver) fallbackFor(err error) Outcome {
	r.logger.Warn("Failed to fetch latest version, using fallback",
		zap.String("endpoint", r.endpoint),
		zap.String("fallback", r.fallback),
		zap.Error(err),
	)
	metrics.VersionResolveTotal.WithLabelValues(string(SourceFallback)).Inc()
	return Fallback(r.fallback)
}

func (r *VersionResolver) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return "", errs.ErrUpstreamUnavailable.Wrap(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", errs.ErrUpstreamUnavailable.Wrap(err)
	}
	defer func(b io.ReadCloser) {
		if err := b.Close(); err != nil {
			r.logger.Debug("Failed to close response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", errs.ErrUpstreamUnavailable.Wrap(errors.Errorf("unexpected status %s", resp.Status))
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.ErrUpstreamUnavailable.Wrap(errors.WithMessage(err, "failed to read body"))
	}

	var payload model.VersionPayload
	if err := sonic.Unmarshal(buf, &payload); err != nil {
		return "", errs.ErrMalformedPayload.Wrap(errors.WithMessage(err, "failed to decode body"))
	}

	version := strings.TrimSpace(payload.ClientVersionUpload)
	if version == "" {
		return "", errs.ErrMalformedPayload.Wrap(errors.New("clientVersionUpload is missing"))
	}

	r.logger.Debug("Fetched latest version",
		zap.String("endpoint", r.endpoint),
		zap.String("version", version),
	)
	return version, nil
}
