package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/service-request-portal/internal/api/http"
	"github.com/spec-kit/service-request-portal/internal/api/http/handlers"
	"github.com/spec-kit/service-request-portal/internal/config"
	"github.com/spec-kit/service-request-portal/internal/events"
	"github.com/spec-kit/service-request-portal/internal/observability"
	"github.com/spec-kit/service-request-portal/internal/repository"
	"github.com/spec-kit/service-request-portal/internal/service"
	"github.com/spec-kit/service-request-portal/internal/tools"
	"github.com/spec-kit/service-request-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	ticketRepo := repository.NewMemoryTicketRepository(repository.NewSequence(cfg.Store.SequenceBase))
	requestService := service.NewRequestService(service.RequestDependencies{
		TicketRepo: ticketRepo,
		Dispatcher: dispatcher,
	})

	auditService := service.NewAuditService(dispatcher, logger)
	worker.StartAuditWorker(auditService)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, ticketRepo)
	toolsHandler := handlers.NewToolsHandler(tools.NewDispatcher(requestService))

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: healthHandler,
		Tools:  toolsHandler,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
