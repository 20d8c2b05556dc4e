package resolver

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// retryLogger routes retryablehttp diagnostics into zap.
type retryLogger struct {
	lg *zap.SugaredLogger
}

func (l retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.lg.Errorw(msg, keysAndValues...)
}

func (l retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.lg.Debugw(msg, keysAndValues...)
}

func (l retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.lg.Debugw(msg, keysAndValues...)
}

func (l retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.lg.Warnw(msg, keysAndValues...)
}

// newRetryClient wraps base with exponential backoff: waitMin, 2*waitMin, ...
// capped at waitMax, for at most attempts requests in total.
func newRetryClient(logger *zap.Logger, base *http.Client, attempts int, waitMin, waitMax time.Duration) *http.Client {
	rc := retryablehttp.NewClient()
	if base != nil {
		rc.HTTPClient = base
	}
	rc.RetryMax = max(attempts-1, 0)
	rc.RetryWaitMin = waitMin
	rc.RetryWaitMax = waitMax
	rc.Backoff = cappedBackoff
	rc.CheckRetry = retryablehttp.DefaultRetryPolicy
	rc.Logger = retryLogger{logger.Named("retry").Sugar()}
	return rc.StandardClient()
}

// cappedBackoff is retryablehttp.DefaultBackoff bounded by waitMax, including
// waits taken from a Retry-After header on 429 and 503.
func cappedBackoff(waitMin, waitMax time.Duration, attempt int, resp *http.Response) time.Duration {
	return min(retryablehttp.DefaultBackoff(waitMin, waitMax, attempt, resp), waitMax)
}
