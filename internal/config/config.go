package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                  App                  `mapstructure:",squash"`
	Server               Server               `mapstructure:",squash"`
	Database             Database             `mapstructure:",squash"`
	Admin                Admin                `mapstructure:",squash"`
	OwnerRankingSnapshot OwnerRankingSnapshot `mapstructure:",squash"`
	RabbitMQ             RabbitMQ             `mapstructure:",squash"`
	SecretKey            string               `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Admin agrupa as opções do serviço de agregação do back-office
type Admin struct {
	// Mantém o comportamento antigo do ranking: motoristas com o mesmo total colidem
	// e apenas o último permanece
	RankingCollapseTies bool `mapstructure:"admin_ranking_collapse_ties"`
}

type OwnerRankingSnapshot struct {
	CronSchedule string `mapstructure:"owner_ranking_snapshot_cron"`
	SyncEnabled  bool   `mapstructure:"owner_ranking_snapshot_enabled"`
}

type RabbitMQ struct {
	Enabled    bool   `mapstructure:"rabbitmq_enabled"`
	Host       string `mapstructure:"rabbitmq_host"`
	Port       int    `mapstructure:"rabbitmq_port"`
	User       string `mapstructure:"rabbitmq_user"`
	Password   string `mapstructure:"rabbitmq_password"`
	Exchange   string `mapstructure:"rabbitmq_exchange"`
	RoutingKey string `mapstructure:"rabbitmq_ranking_routing_key"`
}

// AMQPURL monta a URL de conexão com o RabbitMQ
func (r RabbitMQ) AMQPURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/", r.User, r.Password, r.Host, r.Port)
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres") // postgres (lib/pq) ou pgx
	viper.SetDefault("DATABASE_URL", "localhost:5432/pinche?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("ADMIN_RANKING_COLLAPSE_TIES", false)

	viper.SetDefault("OWNER_RANKING_SNAPSHOT_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("OWNER_RANKING_SNAPSHOT_ENABLED", false)

	viper.SetDefault("RABBITMQ_ENABLED", false)
	viper.SetDefault("RABBITMQ_HOST", "localhost")
	viper.SetDefault("RABBITMQ_PORT", 5672)
	viper.SetDefault("RABBITMQ_USER", "guest")
	viper.SetDefault("RABBITMQ_PASSWORD", "guest")
	viper.SetDefault("RABBITMQ_EXCHANGE", "pinche.admin")
	viper.SetDefault("RABBITMQ_RANKING_ROUTING_KEY", "owner_ranking.updated")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// BuildDSN monta a URL de conexão; tanto lib/pq quanto pgx aceitam o esquema postgres://
func BuildDSN(db Database) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s",
		db.User,
		db.Password,
		db.URL,
	)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
