package config

import (
	"fmt"
	"time"
)

const (
	StoreDriverMongo  = "mongo"
	StoreDriverSqlite = "sqlite"
	StoreDriverMysql  = "mysql"
)

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	Store       Store
	CORS        CORS
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host            string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

func (h HTTPServer) Address() string {
	return h.Host + ":" + h.Port
}

type Store struct {
	Driver      string `env:"STORE_DRIVER" envDefault:"mongo"`
	MongoURL    string `env:"MONGO_URL" envDefault:"mongodb://localhost:27017"`
	DBName      string `env:"DB_NAME" envDefault:"velocity"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"velocity.db"`
}

type CORS struct {
	AllowOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverMongo:
		if c.Store.MongoURL == "" {
			return fmt.Errorf("MONGO_URL is required for store driver %q", c.Store.Driver)
		}
		if c.Store.DBName == "" {
			return fmt.Errorf("DB_NAME is required for store driver %q", c.Store.Driver)
		}
	case StoreDriverSqlite, StoreDriverMysql:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for store driver %q", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	return nil
}
