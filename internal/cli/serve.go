package cli

import (
	"github.com/MirrorChyan/macdl/internal/application"
	"github.com/MirrorChyan/macdl/internal/banner"
	"github.com/MirrorChyan/macdl/internal/interfaces/rest"
	"github.com/MirrorChyan/macdl/internal/logic/resolver"
	"github.com/MirrorChyan/macdl/internal/pkg/restserver"
	"github.com/MirrorChyan/macdl/internal/wire"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serveCmdName = "serve"

func newServeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   serveCmdName,
		Short: "Run the version relay and download redirect service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			banner.Print(cmd.OutOrStdout())

			var (
				conf      = o.conf
				logger    = zap.L()
				res       = resolver.NewVersionResolver(conf, logger)
				refresher = resolver.NewRefresher(conf, logger, res)
				router    = rest.NewRouter()
			)
			defer res.Close()

			rest.InitRoutes(router, wire.NewHandlerSet(conf, logger, res))

			app := application.New()
			app.AddAdapter(
				restserver.NewAdapter(conf, router),
				refresher,
			)

			logger.Info("server starting",
				zap.Int("port", conf.Server.Port),
				zap.String("upstream", conf.Upstream.MetadataURL),
			)
			app.Run(cmd.Context())
			return nil
		},
	}
}
