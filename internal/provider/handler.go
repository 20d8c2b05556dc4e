package provider

import (
	"github.com/MirrorChyan/macdl/internal/interfaces/rest/handler"
	"github.com/google/wire"
)

var HandlerSet = wire.NewSet(
	handler.NewRelayHandler,
	handler.NewVersionHandler,
	handler.NewMetricsHandler,
	handler.NewHeathCheckHandler,
)
