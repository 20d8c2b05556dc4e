package restserver

import (
	"context"
	"fmt"

	"github.com/MirrorChyan/macdl/internal/application"
	"github.com/MirrorChyan/macdl/internal/config"
	"github.com/gofiber/fiber/v2"
)

func NewAdapter(conf *config.Config, restServer *fiber.App) application.Adapter {
	return &Adapter{
		restServer: restServer,
		port:       conf.Server.Port,
	}
}

type Adapter struct {
	restServer *fiber.App
	port       int
}

func (a *Adapter) Start(ctx context.Context) error {

	addr := fmt.Sprintf(":%d", a.port)
	return a.restServer.Listen(addr)
}

func (a *Adapter) Stop(ctx context.Context) error {

	return a.restServer.ShutdownWithContext(ctx)
}
