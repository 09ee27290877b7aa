package domain

// Database assembles the dump command executed inside the database container.
type Database interface {
	DumpCommand() []string
	Extension() string
	GetName() string
	GetType() string
}
