package database

import (
	"github.com/zenndi/zenndi-ops/internal/config"
)

type MySQLDatabase struct {
	config *config.DatabaseConfig
}

func NewMySQL(cfg *config.DatabaseConfig) *MySQLDatabase {
	return &MySQLDatabase{config: cfg}
}

func (m *MySQLDatabase) DumpCommand() []string {
	args := []string{
		"mysqldump",
		"--all-databases",
		"--single-transaction",
		"-u", m.config.User,
	}
	if m.config.Password != "" {
		args = append(args, "--password="+m.config.Password)
	}
	return args
}

func (m *MySQLDatabase) Extension() string {
	return ".sql.gz"
}

func (m *MySQLDatabase) GetName() string {
	return m.config.Container
}

func (m *MySQLDatabase) GetType() string {
	return "mysql"
}
