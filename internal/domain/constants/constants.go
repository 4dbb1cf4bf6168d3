package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers for the manager-facing event feed.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Roles carried in access tokens.
const (
	RoleVendor  = "vendor"
	RoleManager = "manager"
)
