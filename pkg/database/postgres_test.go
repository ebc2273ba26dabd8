package database

import (
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db",
		Port:     "5433",
		User:     "ict",
		Password: "secret",
		DBName:   "catalogdb",
		SSLMode:  "require",
	}

	check.Equal(t, "host=db port=5433 user=ict password=secret dbname=catalogdb sslmode=require", cfg.DSN())
}
