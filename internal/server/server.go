package server

import (
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"haikubot/internal/config"
	"haikubot/internal/handlers/api"
)

// Server wraps the Fiber app and configuration.
type Server struct {
	App *fiber.App
	Cfg *config.Config
}

// New creates a new server with middleware configured.
func New(cfg *config.Config) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "haikubot",
		ErrorHandler: api.ErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())

	return &Server{
		App: app,
		Cfg: cfg,
	}
}

// Start starts the server with the configured address and TLS settings.
func (s *Server) Start() error {
	if s.Cfg.IsTLSEnabled() {
		log.Printf("Starting server with TLS on %s", s.Cfg.ServerAddr)
	} else {
		log.Printf("Starting server on %s", s.Cfg.ServerAddr)
	}
	return s.App.Listen(s.Cfg.ServerAddr, s.listenConfig())
}

// listenConfig prints the route table in development and stays quiet otherwise.
func (s *Server) listenConfig() fiber.ListenConfig {
	lc := fiber.ListenConfig{
		EnablePrintRoutes:     s.Cfg.IsDev(),
		DisableStartupMessage: !s.Cfg.IsDev(),
	}
	if s.Cfg.IsTLSEnabled() {
		lc.CertFile = s.Cfg.TLSCertFile
		lc.CertKeyFile = s.Cfg.TLSKeyFile
	}
	return lc
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}
