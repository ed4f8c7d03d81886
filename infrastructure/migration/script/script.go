// Script de criação do schema e carga de dados de demonstração do back-office
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"time"

	"github.com/devhub/pinche-admin-api/infrastructure/database/postgres"
	"github.com/devhub/pinche-admin-api/internal/config"
	"github.com/devhub/pinche-admin-api/internal/domain"
	"github.com/devhub/pinche-admin-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role_id       INTEGER NOT NULL,
		active        BOOLEAN NOT NULL DEFAULT TRUE,
		deleted       BOOLEAN NOT NULL DEFAULT FALSE,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS info (
		id             BIGSERIAL PRIMARY KEY,
		owner_id       BIGINT NOT NULL REFERENCES users(id),
		origin         TEXT NOT NULL,
		destination    TEXT NOT NULL,
		departure_time TIMESTAMPTZ NOT NULL,
		seats          INTEGER NOT NULL DEFAULT 4,
		status         TEXT NOT NULL DEFAULT 'open',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_info_departure_time ON info (departure_time)`,
	`CREATE INDEX IF NOT EXISTS idx_info_owner_id ON info (owner_id)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id           BIGSERIAL PRIMARY KEY,
		info_id      BIGINT NOT NULL REFERENCES info(id) ON DELETE CASCADE,
		passenger_id BIGINT NOT NULL REFERENCES users(id),
		code         VARCHAR(6) NOT NULL UNIQUE,
		price        NUMERIC(10, 2),
		seats        INTEGER NOT NULL DEFAULT 1,
		status       TEXT NOT NULL DEFAULT 'booked',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_info_id ON orders (info_id)`,
	`CREATE TABLE IF NOT EXISTS owner_ranking (
		id                BIGSERIAL PRIMARY KEY,
		owner_id          BIGINT NOT NULL REFERENCES users(id),
		month             VARCHAR(7) NOT NULL,
		owner_name        TEXT NOT NULL,
		revenue           NUMERIC(12, 2) NOT NULL DEFAULT 0,
		position          INTEGER NOT NULL,
		position_change   INTEGER NOT NULL DEFAULT 0,
		previous_position INTEGER NOT NULL DEFAULT 0,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (owner_id, month)
	)`,
}

type seedUser struct {
	Name   string
	Email  string
	RoleID int
}

var seedUsers = []seedUser{
	{Name: "Administrador", Email: "admin@pinche.site", RoleID: domain.RoleAdmin},
	{Name: "Ana Motorista", Email: "ana@pinche.site", RoleID: domain.RoleOwner},
	{Name: "Bruno Motorista", Email: "bruno@pinche.site", RoleID: domain.RoleOwner},
	{Name: "Carla Passageira", Email: "carla@pinche.site", RoleID: domain.RolePassenger},
}

var seedRoutes = [][2]string{
	{"Centro", "Campus"},
	{"Rodoviária", "Centro"},
	{"Campus", "Aeroporto"},
}

func main() {
	seed := flag.Bool("seed", false, "carrega usuários, caronas e pedidos de demonstração")
	password := flag.String("password", "pinche123", "senha dos usuários de demonstração")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx := context.Background()
	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(tx); err != nil {
			return err
		}
		if *seed {
			return seedData(tx, *password)
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migração revertida")
	}

	logrus.WithField("elapsed", time.Since(startTime).String()).Info("Migração concluída com sucesso")
}

func createSchema(tx *sql.Tx) error {
	for i, stmt := range schemaStatements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("erro no comando %d do schema: %w", i+1, err)
		}
	}
	logrus.Infof("Schema criado (%d comandos)", len(schemaStatements))
	return nil
}

func seedData(tx *sql.Tx, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	userIDs := make(map[string]int64, len(seedUsers))
	for _, u := range seedUsers {
		var id int64
		err := tx.QueryRow(
			`INSERT INTO users (name, email, password_hash, role_id) VALUES ($1, $2, $3, $4)
			 ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name RETURNING id`,
			u.Name, u.Email, string(hash), u.RoleID,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("erro ao inserir usuário %s: %w", u.Email, err)
		}
		userIDs[u.Email] = id
	}
	logrus.Infof("Usuários inseridos: %d", len(userIDs))

	passengerID := userIDs["carla@pinche.site"]
	owners := []int64{userIDs["ana@pinche.site"], userIDs["bruno@pinche.site"]}
	yesterday := time.Now().AddDate(0, 0, -1)

	ordersCount := 0
	for i, route := range seedRoutes {
		ownerID := owners[i%len(owners)]

		var infoID int64
		err := tx.QueryRow(
			`INSERT INTO info (owner_id, origin, destination, departure_time) VALUES ($1, $2, $3, $4) RETURNING id`,
			ownerID, route[0], route[1], yesterday.Add(time.Duration(i)*time.Hour),
		).Scan(&infoID)
		if err != nil {
			return fmt.Errorf("erro ao inserir carona %s -> %s: %w", route[0], route[1], err)
		}

		code, err := utils.GenerateID()
		if err != nil {
			return err
		}

		price := decimal.NewNullDecimal(decimal.NewFromInt(int64(10 * (i + 1))))
		_, err = tx.Exec(
			`INSERT INTO orders (info_id, passenger_id, code, price, status) VALUES ($1, $2, $3, $4, $5)`,
			infoID, passengerID, code, price, domain.OrderStatusFinished,
		)
		if err != nil {
			return fmt.Errorf("erro ao inserir pedido da carona %d: %w", infoID, err)
		}
		ordersCount++
	}

	logrus.Infof("Caronas inseridas: %d, pedidos inseridos: %d", len(seedRoutes), ordersCount)
	return nil
}
