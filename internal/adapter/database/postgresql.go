package database

import (
	"github.com/zenndi/zenndi-ops/internal/config"
)

type PostgreSQLDatabase struct {
	config *config.DatabaseConfig
}

func NewPostgreSQL(cfg *config.DatabaseConfig) *PostgreSQLDatabase {
	return &PostgreSQLDatabase{config: cfg}
}

// DumpCommand exports every database in the cluster as plain SQL.
func (p *PostgreSQLDatabase) DumpCommand() []string {
	return []string{"pg_dumpall", "-U", p.config.User}
}

func (p *PostgreSQLDatabase) Extension() string {
	return ".sql.gz"
}

func (p *PostgreSQLDatabase) GetName() string {
	return p.config.Container
}

func (p *PostgreSQLDatabase) GetType() string {
	return "postgresql"
}
