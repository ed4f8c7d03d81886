package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devhub/pinche-admin-api/internal/api/handler"
	"github.com/devhub/pinche-admin-api/internal/api/handler/router"
	"github.com/devhub/pinche-admin-api/internal/config"
	"github.com/devhub/pinche-admin-api/internal/usecases/admin"
	"github.com/devhub/pinche-admin-api/internal/usecases/authenticating"
	"github.com/devhub/pinche-admin-api/internal/usecases/ordering"
	"github.com/devhub/pinche-admin-api/internal/usecases/ranking"
	"github.com/devhub/pinche-admin-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências expostas pela API
type Services struct {
	Admin         admin.AdminService
	Orders        ordering.OrderService
	Ranking       ranking.RankingService
	Authenticator authenticating.Authenticator
	CronJobs      handler.CronJobServices
}

// NewHandler monta o router com a cadeia de middlewares global; autenticação fica em cada rota
func NewHandler(services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Admin(services.Admin, services.Authenticator)...),
		router.WithRoutes(handler.OwnerRanking(services.Ranking, services.Authenticator)...),
		router.WithRoutes(handler.Orders(services.Orders, services.Authenticator)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs, services.Authenticator)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
