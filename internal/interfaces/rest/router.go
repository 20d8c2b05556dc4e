package rest

import (
	"github.com/MirrorChyan/macdl/internal/interfaces/rest/handler"
	"github.com/MirrorChyan/macdl/internal/wire"
	"github.com/bytedance/sonic"
	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func NewRouter() *fiber.App {

	router := fiber.New(fiber.Config{
		AppName:               "macdl",
		ProxyHeader:           fiber.HeaderXForwardedFor,
		DisableStartupMessage: true,

		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,

		ErrorHandler: handler.Error,
	})

	return router
}

func InitRoutes(router *fiber.App, handlerSet *wire.HandlerSet) {

	router.Use(fiberzap.New(fiberzap.Config{
		Logger: zap.L(),
		SkipURIs: []string{
			"/metrics",
			"/health",
		},
	}))

	r := router.Group("/")

	handlerSet.RelayHandler.Register(r)

	handlerSet.VersionHandler.Register(r)

	handlerSet.MetricsHandler.Register(r)

	handlerSet.HeathCheckHandler.Register(r)
}
