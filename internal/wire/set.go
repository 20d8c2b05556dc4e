package wire

import (
	"github.com/MirrorChyan/macdl/internal/interfaces/rest/handler"
)

type HandlerSet struct {
	RelayHandler      *handler.RelayHandler
	VersionHandler    *handler.VersionHandler
	MetricsHandler    *handler.MetricsHandler
	HeathCheckHandler *handler.HeathCheckHandler
}
