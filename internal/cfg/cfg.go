package cfg

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Бэкенды хранения флага сессии
const (
	SessionBackendMemory   = "memory"
	SessionBackendRedis    = "redis"
	SessionBackendPostgres = "postgres"
)

type Config struct {
	LogLevel string
	Http     *HTTPConfig
	Catalog  *CatalogCfg
	Session  *SessionCfg
	Redis    *RedisCfg
	Db       *PGDBCfg
	Kafka    *KafkaCfg
}

type HTTPConfig struct {
	Port           string        `envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout    time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	WriteTimeout   time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"10s"`
	IdleTimeout    time.Duration `envconfig:"KEEP_ALIVE" default:"60s"`
	RequestTimeout time.Duration `envconfig:"HTTP_REQUEST_TIMEOUT" default:"15s"`
	SwaggerHost    string        `envconfig:"SWAGGER_HOST" default:"localhost:8080"`
}

type CatalogCfg struct {
	BaseURL       string        `envconfig:"CATALOG_BASE_URL" default:"https://dummyjson.com"`
	Timeout       time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
	ListLimit     int           `envconfig:"CATALOG_LIST_LIMIT" default:"0"` // 0 — весь каталог
	PageSize      int           `envconfig:"CATALOG_PAGE_SIZE" default:"6"`
	DebounceDelay time.Duration `envconfig:"CATALOG_DEBOUNCE" default:"300ms"`
	CacheEnabled  bool          `envconfig:"CATALOG_CACHE_ENABLED" default:"false"`
	ViewIdleTTL   time.Duration `envconfig:"CATALOG_VIEW_IDLE_TTL" default:"30m"`
}

type SessionCfg struct {
	Backend      string        `envconfig:"SESSION_BACKEND" default:"memory"`
	CookieName   string        `envconfig:"SESSION_COOKIE_NAME" default:"storefront_session"`
	CookieSecure bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	TTL          time.Duration `envconfig:"SESSION_TTL" default:"720h"`
}

type RedisCfg struct {
	Addr        string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password    string        `envconfig:"REDIS_PASSWORD"`
	User        string        `envconfig:"REDIS_USER"`
	DB          int           `envconfig:"REDIS_DB_ID" default:"0"`
	MaxRetries  int           `envconfig:"MAX_RETRIES" default:"3"`
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	Timeout     time.Duration `envconfig:"REDIS_TIMEOUT" default:"3s"`
	ProductTTL  time.Duration `envconfig:"PRODUCT_TTL" default:"3m"`
	CatalogTTL  time.Duration `envconfig:"CATALOG_TTL" default:"1m"`
}

type PGDBCfg struct {
	Host          string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port          string `envconfig:"POSTGRES_PORT" default:"5432"`
	User          string `envconfig:"POSTGRES_USER"`
	Password      string `envconfig:"POSTGRES_PASSWORD"`
	DBName        string `envconfig:"POSTGRES_DB"`
	SSLMode       string `envconfig:"SSL_MODE" default:"disable"`
	MigrationsURL string `envconfig:"MIGRATIONS_URL" default:"file://db/migrations"`
}

type KafkaCfg struct {
	Brokers           []string      `envconfig:"KAFKA_BROKERS"`
	Topic             string        `envconfig:"KAFKA_TOPIC" default:"storefront-events"`
	NetworkMode       string        `envconfig:"KAFKA_NETWORK" default:"tcp"`
	Partitions        int           `envconfig:"KAFKA_PARTITIONS" default:"3"`
	ReplicationFactor int           `envconfig:"KAFKA_REPLICATION_FACTOR" default:"1"`
	BatchTimeout      time.Duration `envconfig:"KAFKA_BATCH_TIMEOUT" default:"500ms"`
	WriteTimeout      time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"10s"`
	TopicTimeout      time.Duration `envconfig:"KAFKA_TOPIC_TIMEOUT" default:"10s"`
}

// Enabled сообщает, настроена ли отправка событий.
func (k *KafkaCfg) Enabled() bool {
	return len(k.Brokers) > 0
}

// DSN строит строку подключения к PostgreSQL.
func (c *PGDBCfg) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Load загружает .env (если он есть) и конфигурацию из переменных окружения.
// envFile — явный путь к .env; пустая строка означает .env в рабочей директории.
func Load(log logger.Logger, envFile string) (*Config, error) {
	if err := loadEnvFile(log, envFile); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var logCfg struct {
		Level string `envconfig:"LOG_LEVEL" default:"info"`
	}
	if err := envconfig.Process("", &logCfg); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalog, err := loadCatalogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	session, err := loadSessionCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	db, err := loadPGDBCfg(log, session.Backend == SessionBackendPostgres)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		LogLevel: logCfg.Level,
		Http:     http,
		Catalog:  catalog,
		Session:  session,
		Redis:    redis,
		Db:       db,
		Kafka:    kafka,
	}, nil
}

// NeedsRedis сообщает, требуется ли подключение к Redis.
func (c *Config) NeedsRedis() bool {
	return c.Catalog.CacheEnabled || c.Session.Backend == SessionBackendRedis
}

func loadEnvFile(log logger.Logger, envFile string) error {
	if envFile == "" {
		if err := godotenv.Load(); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debugf(".env file not found, relying on process environment")
				return nil
			}
			return err
		}
		log.Infof(".env file loaded")
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("load env file %s: %w", envFile, err)
	}
	log.Infof(".env file loaded from %s", envFile)

	return nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	var c HTTPConfig
	if err := envconfig.Process("", &c); err != nil {
		log.Errorf(err, "invalid HTTP configuration")
		return nil, err
	}

	return &c, nil
}

func loadCatalogCfg(log logger.Logger) (*CatalogCfg, error) {
	var c CatalogCfg
	if err := envconfig.Process("", &c); err != nil {
		log.Errorf(err, "invalid catalog configuration")
		return nil, err
	}

	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		log.Errorf(err, "invalid CATALOG_BASE_URL")
		return nil, e.Wrap("CATALOG_BASE_URL", e.ErrIncorrectEnvVariable)
	}

	if c.PageSize <= 0 {
		return nil, e.Wrap("CATALOG_PAGE_SIZE", e.ErrIncorrectEnvVariable)
	}

	if c.ListLimit < 0 {
		return nil, e.Wrap("CATALOG_LIST_LIMIT", e.ErrIncorrectEnvVariable)
	}

	if c.DebounceDelay < 0 {
		return nil, e.Wrap("CATALOG_DEBOUNCE", e.ErrIncorrectEnvVariable)
	}

	if c.ViewIdleTTL <= 0 {
		return nil, e.Wrap("CATALOG_VIEW_IDLE_TTL", e.ErrIncorrectEnvVariable)
	}

	return &c, nil
}

func loadSessionCfg(log logger.Logger) (*SessionCfg, error) {
	var c SessionCfg
	if err := envconfig.Process("", &c); err != nil {
		log.Errorf(err, "invalid session configuration")
		return nil, err
	}

	switch c.Backend {
	case SessionBackendMemory, SessionBackendRedis, SessionBackendPostgres:
	default:
		return nil, e.Wrap(fmt.Sprintf("SESSION_BACKEND=%q", c.Backend), e.ErrUnknownSessionStore)
	}

	if c.CookieName == "" {
		return nil, e.Wrap("SESSION_COOKIE_NAME", e.ErrIncorrectEnvVariable)
	}

	return &c, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	var c RedisCfg
	if err := envconfig.Process("", &c); err != nil {
		log.Errorf(err, "invalid redis configuration")
		return nil, err
	}

	return &c, nil
}

func loadPGDBCfg(log logger.Logger, required bool) (*PGDBCfg, error) {
	var c PGDBCfg
	if err := envconfig.Process("", &c); err != nil {
		log.Errorf(err, "invalid postgres configuration")
		return nil, err
	}

	if !required {
		return &c, nil
	}

	for key, value := range map[string]string{
		"POSTGRES_USER":     c.User,
		"POSTGRES_PASSWORD": c.Password,
		"POSTGRES_DB":       c.DBName,
	} {
		if value == "" {
			err := fmt.Errorf("%s is required", key)
			log.Errorf(err, "missing %s", key)
			return nil, err
		}
	}

	return &c, nil
}

func loadKafkaCfg(log logger.Logger) (*KafkaCfg, error) {
	var c KafkaCfg
	if err := envconfig.Process("", &c); err != nil {
		log.Errorf(err, "invalid kafka configuration")
		return nil, err
	}

	if c.Enabled() && c.Topic == "" {
		return nil, e.Wrap("KAFKA_TOPIC", e.ErrIncorrectEnvVariable)
	}

	return &c, nil
}
