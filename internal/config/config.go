package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config carries all runtime settings. Every field maps to a HOTPOT_*
// environment variable; defaults make a bare `go run` work locally.
type Config struct {
	Addr string

	StorageDriver string
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// AMQPURL enables the event publisher when non-empty.
	AMQPURL string

	// CatalogPath optionally overrides the built-in dish catalog.
	CatalogPath string
}

func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("hotpot")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", "0.0.0.0:8080")
	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.sqlite_path", "hotpot-server.db")
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("storage.redis_password", "")
	v.SetDefault("storage.redis_db", 0)
	v.SetDefault("amqp.url", "")
	v.SetDefault("catalog.path", "")

	return Config{
		Addr:          v.GetString("addr"),
		StorageDriver: v.GetString("storage.driver"),
		SQLitePath:    v.GetString("storage.sqlite_path"),
		RedisAddr:     v.GetString("storage.redis_addr"),
		RedisPassword: v.GetString("storage.redis_password"),
		RedisDB:       v.GetInt("storage.redis_db"),
		AMQPURL:       v.GetString("amqp.url"),
		CatalogPath:   v.GetString("catalog.path"),
	}
}
