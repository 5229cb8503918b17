// Package constants holds the string identifiers shared between config and infrastructure.
package constants

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Catalog storage drivers
const (
	CatalogDriverBlob     = "blob"
	CatalogDriverPostgres = "postgres"
)

// DefaultCatalogKey is the fixed key the catalog snapshot is stored under.
const DefaultCatalogKey = "coshare_assets"

// DefaultMemoryBucketURL keeps the snapshot in process memory.
const DefaultMemoryBucketURL = "mem://"
