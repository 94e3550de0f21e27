package db

import "fmt"

// Open selects a snapshot store driver by name.
func Open(driver, sqlitePath, redisAddr, redisPassword string, redisDB int) (SnapshotStore, error) {
	switch driver {
	case "sqlite":
		return OpenSQLite(sqlitePath)
	case "redis":
		return OpenRedis(redisAddr, redisPassword, redisDB)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
