package server

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/emrgen/portfolio/internal/blob"
	"github.com/emrgen/portfolio/internal/cache"
	"github.com/emrgen/portfolio/internal/config"
	"github.com/emrgen/portfolio/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

// Server wires the HTTP surface: the public read path, the revalidation
// endpoint, and the authenticated admin API.
type Server struct {
	app  *fiber.App
	port string
}

func NewServer(cnf *config.Config, svc *service.ContentService, contentCache cache.ContentCache, blobs blob.Store) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: maxPdfSize + 1<<20,
	})
	app.Use(cors.New())

	handler := NewHandler(svc, contentCache, blobs, cnf.RevalidateSecret)

	app.Get("/api/content", handler.GetContent)
	app.Post("/api/revalidate", handler.Revalidate)

	admin := app.Group("/api/admin")
	if cnf.AdminPassword == "" {
		logrus.Warn("ADMIN_PASSWORD is not set, admin API is disabled")
		admin.Use(func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin API disabled"})
		})
	} else {
		admin.Use(basicauth.New(basicauth.Config{
			Users: map[string]string{cnf.AdminUser: cnf.AdminPassword},
		}))
	}
	admin.Get("/content", handler.LoadContent)
	admin.Put("/content", handler.SaveContent)
	admin.Post("/upload", handler.Upload)

	return &Server{app: app, port: cnf.Port}
}

// Start runs the server until SIGINT or SIGTERM.
func (s *Server) Start() {
	go func() {
		if err := s.app.Listen(":" + s.port); err != nil {
			logrus.Fatalf("error starting server: %v", err)
		}
	}()

	logrus.Infof("portfolio server listening on :%s", s.port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("shutting down")
	if err := s.app.Shutdown(); err != nil {
		logrus.Errorf("error shutting down server: %v", err)
	}
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
