package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorIs(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	wrapped := ErrUpstreamUnavailable.Wrap(cause)

	require.ErrorIs(t, wrapped, ErrUpstreamUnavailable)
	require.NotErrorIs(t, wrapped, ErrMalformedPayload)
	require.ErrorIs(t, wrapped, cause)
	require.Equal(t, "version metadata endpoint unavailable: dial tcp: connection refused", wrapped.Error())
	require.Equal(t, http.StatusServiceUnavailable, wrapped.HTTPCode())
}

func TestWithDetails(t *testing.T) {
	e := ErrDownloadInitiation.WithDetails(map[string]string{"version": "version-6ced3f7b78bf439c"})

	require.Equal(t, DownloadInitiationMessage, e.Message())
	require.Equal(t, BizCodeDownloadInitiation, e.BizCode())
	require.NotNil(t, e.Details())
	require.Nil(t, ErrDownloadInitiation.Details())
}
