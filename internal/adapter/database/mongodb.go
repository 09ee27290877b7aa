package database

import (
	"github.com/zenndi/zenndi-ops/internal/config"
)

type MongoDBDatabase struct {
	config *config.DatabaseConfig
}

func NewMongoDB(cfg *config.DatabaseConfig) *MongoDBDatabase {
	return &MongoDBDatabase{config: cfg}
}

// DumpCommand writes a mongodump archive of all databases to stdout.
func (m *MongoDBDatabase) DumpCommand() []string {
	args := []string{"mongodump", "--archive"}
	if m.config.Password != "" {
		args = append(args,
			"--username", m.config.User,
			"--password", m.config.Password,
			"--authenticationDatabase", "admin",
		)
	}
	return args
}

func (m *MongoDBDatabase) Extension() string {
	return ".archive.gz"
}

func (m *MongoDBDatabase) GetName() string {
	return m.config.Container
}

func (m *MongoDBDatabase) GetType() string {
	return "mongodb"
}
