package config

import "testing"

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
		"secretKey": map[string]any{
			"access": "",
		},
		"catalog": map[string]any{
			"seedOnStart": true,
			"maxLimit":    500,
		},
		"persistence": map[string]any{
			"autoMigrate": false,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "CATALOG_SEEDONSTART", want: "catalog.seedOnStart"},
		{envKey: "CATALOG_MAXLIMIT", want: "catalog.maxLimit"},
		{envKey: "PERSISTENCE_AUTOMIGRATE", want: "persistence.autoMigrate"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Persistence.Driver != defaultPersistenceDriver {
		t.Fatalf("driver = %q, want %q", cfg.Persistence.Driver, defaultPersistenceDriver)
	}
	if cfg.Catalog.DefaultLimit != defaultCatalogLimit || cfg.Catalog.MaxLimit != defaultCatalogMaxLimit {
		t.Fatalf("catalog limits = %d/%d", cfg.Catalog.DefaultLimit, cfg.Catalog.MaxLimit)
	}
	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("access ttl = %s", cfg.Auth.AccessTokenTTL)
	}
	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("body size = %q", cfg.HTTP.MaxRequestBodySize)
	}
}

func TestApplyDefaults_MaxLimitNeverBelowDefault(t *testing.T) {
	cfg := &Config{Catalog: &CatalogConfig{DefaultLimit: 800, MaxLimit: 10}}
	applyDefaults(cfg)

	if cfg.Catalog.MaxLimit != 800 {
		t.Fatalf("max limit = %d, want 800", cfg.Catalog.MaxLimit)
	}
}
