package constants

// Context keys
const (
	ContextTokenData = "token_data"
	ContextRequestID = "request_id"
)

// Database settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Default server settings
const (
	DefaultServerPort = 7070
	DefaultEnvFile    = ".env"
)

// Background task queues
const (
	QueueDefault = "default"
	QueueSeating = "seating"
)
