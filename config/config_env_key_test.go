package config

import (
	"os"
	"path/filepath"
	"testing"

	"coshare/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"catalog": map[string]any{
			"bucketUrl": "mem://",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "CATALOG_BUCKETURL", want: "catalog.bucketUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_OverridesYAMLWithEnv(t *testing.T) {
	dir := t.TempDir()
	yamlBody := `
env:
  env: develop
  log:
    level: info
http:
  port: 8080
  timeouts:
    readTimeout: 5s
catalog:
  driver: blob
  bucketUrl: "mem://"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlBody), 0o600))
	t.Chdir(dir)
	t.Setenv("CATALOG_BUCKETURL", "file:///tmp/coshare")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "5s", cfg.HTTP.Timeouts.ReadTimeout.String())
	require.NotNil(t, cfg.Catalog)
	assert.Equal(t, "file:///tmp/coshare", cfg.Catalog.BucketURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.CatalogDriverBlob, cfg.Catalog.Driver)
	assert.Equal(t, constants.DefaultMemoryBucketURL, cfg.Catalog.BucketURL)
	assert.Equal(t, constants.DefaultCatalogKey, cfg.Catalog.Key)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, defaultQRCodeLevel, cfg.QRCode.ErrorCorrectionLevel)
	assert.Equal(t, defaultSyndicateBaseURL, cfg.Syndicate.BaseURL)

	pg := &Config{Catalog: &CatalogConfig{Driver: constants.CatalogDriverPostgres}}
	applyDefaults(pg)
	assert.Empty(t, pg.Catalog.BucketURL)
}
