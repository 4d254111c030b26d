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
		"googleOAuth": map[string]any{
			"clientId": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"sync": map[string]any{
			"dashboardUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "GOOGLEOAUTH_CLIENTID", want: "googleOAuth.clientId"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "SYNC_DASHBOARDURL", want: "sync.dashboardUrl"},
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

func TestApplySyncDefaults(t *testing.T) {
	cfg := &Config{}
	ApplySyncDefaults(cfg)

	if cfg.Sync.PastFetchLimit != 50 {
		t.Fatalf("PastFetchLimit = %d, want 50", cfg.Sync.PastFetchLimit)
	}
	if cfg.Sync.WindowSize != 5 {
		t.Fatalf("WindowSize = %d, want 5", cfg.Sync.WindowSize)
	}
	if cfg.Sync.ProviderTimeout != defaultProviderTimeout {
		t.Fatalf("ProviderTimeout = %v, want %v", cfg.Sync.ProviderTimeout, defaultProviderTimeout)
	}
}
