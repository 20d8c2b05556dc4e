//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/MirrorChyan/macdl/internal/config"
	"github.com/MirrorChyan/macdl/internal/logic/download"
	"github.com/MirrorChyan/macdl/internal/logic/resolver"
	"github.com/MirrorChyan/macdl/internal/provider"
	"github.com/google/wire"
	"go.uber.org/zap"
)

func NewHandlerSet(
	conf *config.Config,
	logger *zap.Logger,
	resolver *resolver.VersionResolver,
) *HandlerSet {
	panic(wire.Build(
		provider.LogicSet,
		provider.HandlerSet,
		wire.Struct(new(HandlerSet), "*"),
	))
}

func NewInitiator(
	conf *config.Config,
	logger *zap.Logger,
	resolver *resolver.VersionResolver,
	opener download.Opener,
) *download.Initiator {
	panic(wire.Build(
		provider.DownloadSet,
	))
}
