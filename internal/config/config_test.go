package config

import (
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postcraft.yaml")
	cfg := Default()
	cfg.Server.Addr = ":9999"
	cfg.Quota.MaxPerHour = 7
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Server.Addr != ":9999" || got.Quota.MaxPerHour != 7 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Storage.DBPath != cfg.Storage.DBPath {
		t.Fatalf("storage path lost: %+v", got.Storage)
	}
}

func TestResolveEnvAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "from-env")
	cfg := Default()
	cfg.LLM.Provider = "openai"
	cfg.ResolveEnv()
	if cfg.LLM.APIKey != "from-env" {
		t.Fatalf("expected env key, got %q", cfg.LLM.APIKey)
	}
}

func TestSaveEmptyPath(t *testing.T) {
	if err := Save("", Default()); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
