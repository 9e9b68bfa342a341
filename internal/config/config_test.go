package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "SERVER_ADDR", "FAQ_FILE", "RELOAD_INTERVAL", "PREVIEW_LIMIT", "RECENT_LIMIT", "COPIED_TTL", "REDIS_URL", "RATE_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if !cfg.IsDev() {
		t.Errorf("IsDev() = false, want true")
	}
	if cfg.ServerAddr != ":3000" {
		t.Errorf("ServerAddr = %q, want %q", cfg.ServerAddr, ":3000")
	}
	if cfg.FAQFile != "data/faq.json" {
		t.Errorf("FAQFile = %q, want %q", cfg.FAQFile, "data/faq.json")
	}
	if cfg.ReloadInterval != 0 {
		t.Errorf("ReloadInterval = %v, want 0", cfg.ReloadInterval)
	}
	if cfg.PreviewLimit != 3 || cfg.RecentLimit != 5 {
		t.Errorf("limits = %d/%d, want 3/5", cfg.PreviewLimit, cfg.RecentLimit)
	}
	if cfg.CopiedTTL != 2*time.Second {
		t.Errorf("CopiedTTL = %v, want 2s", cfg.CopiedTTL)
	}
	if cfg.UsesRedis() {
		t.Errorf("UsesRedis() = true, want false")
	}
	if cfg.RateLimit != 100 {
		t.Errorf("RateLimit = %d, want 100", cfg.RateLimit)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("RELOAD_INTERVAL", "30s")
	t.Setenv("PREVIEW_LIMIT", "4")
	t.Setenv("RECENT_LIMIT", "not-a-number")
	t.Setenv("COPIED_TTL", "-1s")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg := Load()
	if cfg.IsDev() {
		t.Errorf("IsDev() = true, want false")
	}
	if cfg.ReloadInterval != 30*time.Second {
		t.Errorf("ReloadInterval = %v, want 30s", cfg.ReloadInterval)
	}
	if cfg.PreviewLimit != 4 {
		t.Errorf("PreviewLimit = %d, want 4", cfg.PreviewLimit)
	}
	if cfg.RecentLimit != 5 {
		t.Errorf("RecentLimit = %d, want fallback 5", cfg.RecentLimit)
	}
	if cfg.CopiedTTL != 2*time.Second {
		t.Errorf("CopiedTTL = %v, want fallback 2s", cfg.CopiedTTL)
	}
	if !cfg.UsesRedis() {
		t.Errorf("UsesRedis() = false, want true")
	}
}

func TestLoadYAMLConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadYAMLConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil || cfg != nil {
		t.Fatalf("missing file: got (%v, %v), want (nil, nil)", cfg, err)
	}

	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
buckets:
  - name: 移行計画
    description: 新基準への移行スケジュール
    style:
      border: border-teal-200
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadYAMLConfig(path)
	if err != nil {
		t.Fatalf("LoadYAMLConfig() error = %v", err)
	}
	b := cfg.GetBucket("移行計画")
	if b == nil {
		t.Fatal("GetBucket() = nil")
	}
	if b.Style.Border != "border-teal-200" || b.Style.Chip != "" {
		t.Errorf("Style = %+v", b.Style)
	}
	if cfg.GetBucket("費用・契約") != nil {
		t.Errorf("GetBucket() for unconfigured bucket should be nil")
	}

	var nilCfg *YAMLConfig
	if nilCfg.GetBucket("移行計画") != nil {
		t.Errorf("nil config GetBucket() should be nil")
	}

	if err := os.WriteFile(path, []byte("buckets: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadYAMLConfig(path); err == nil {
		t.Errorf("expected parse error")
	}
}
