package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers for audit event publishing
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Persistence drivers
const (
	PersistenceDriverPostgres = "postgres"
	PersistenceDriverMemory   = "memory"
)

// Paging defaults for catalog listing
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 500
)
