package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/devhub/pinche-admin-api/infrastructure/database/postgres"
	"github.com/devhub/pinche-admin-api/infrastructure/messaging/rabbit"
	"github.com/devhub/pinche-admin-api/infrastructure/repository"
	"github.com/devhub/pinche-admin-api/internal/api"
	"github.com/devhub/pinche-admin-api/internal/api/handler"
	"github.com/devhub/pinche-admin-api/internal/config"
	"github.com/devhub/pinche-admin-api/internal/scheduler"
	"github.com/devhub/pinche-admin-api/internal/usecases/admin"
	"github.com/devhub/pinche-admin-api/internal/usecases/authenticating"
	"github.com/devhub/pinche-admin-api/internal/usecases/ordering"
	"github.com/devhub/pinche-admin-api/internal/usecases/ranking"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	infoRepo := repository.NewInfoRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	ownerRankingRepo := repository.NewOwnerRankingRepository(pgConn)

	var adminOpts []admin.Option
	if cfg.Admin.RankingCollapseTies {
		logrus.Warn("Ranking de motoristas com empates colapsados (comportamento legado)")
		adminOpts = append(adminOpts, admin.WithCollapsedTies())
	}

	adminService := admin.NewService(infoRepo, orderRepo, userRepo, adminOpts...)
	orderService := ordering.NewService(orderRepo)
	rankingService := ranking.NewOwnerRankingService(ownerRankingRepo)
	authenticator := authenticating.NewService(userRepo, cfg.SecretKey)

	var publisher rabbit.EventPublisher
	if mq := rabbitmq(cfg.RabbitMQ); mq != nil {
		defer mq.Close()
		publisher = rabbit.NewPublisher(mq.Conn, cfg.RabbitMQ.Exchange)
	}

	ownerRankingSnapshotService := scheduler.NewOwnerRankingSnapshotService(
		adminService,
		ownerRankingRepo,
		publisher,
		cfg,
	)

	if err := ownerRankingSnapshotService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do ranking de motoristas")
	} else {
		logrus.Info("Agendador do ranking de motoristas iniciado com sucesso")
	}

	server := api.New(cfg, api.Services{
		Admin:         adminService,
		Orders:        orderService,
		Ranking:       rankingService,
		Authenticator: authenticator,
		CronJobs: handler.CronJobServices{
			OwnerRankingSnapshotService: ownerRankingSnapshotService,
		},
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.WithField("driver", dbConfig.Driver).Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// rabbitmq conecta ao broker quando habilitado. Sem broker o ranking continua sendo salvo, apenas sem evento
func rabbitmq(cfg config.RabbitMQ) *rabbit.Rabbit {
	if !cfg.Enabled {
		logrus.Info("Publicação de eventos no RabbitMQ desabilitada por configuração")
		return nil
	}

	mq, err := rabbit.New(cfg)
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar ao RabbitMQ, eventos não serão publicados")
		return nil
	}

	if err := mq.SetupExchange(); err != nil {
		logrus.WithError(err).Error("Erro ao declarar exchange no RabbitMQ, eventos não serão publicados")
		mq.Close()
		return nil
	}

	logrus.WithField("exchange", cfg.Exchange).Info("Conexão com RabbitMQ estabelecida com sucesso")
	return mq
}
