package database

import (
	"fmt"

	"github.com/zenndi/zenndi-ops/internal/config"
	"github.com/zenndi/zenndi-ops/internal/domain"
)

// New returns the dump command builder for the configured engine.
func New(cfg *config.DatabaseConfig) (domain.Database, error) {
	switch cfg.Engine {
	case "", "postgresql", "postgres":
		return NewPostgreSQL(cfg), nil
	case "mysql", "mariadb":
		return NewMySQL(cfg), nil
	case "mongodb", "mongo":
		return NewMongoDB(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported database engine: %s", cfg.Engine)
	}
}
