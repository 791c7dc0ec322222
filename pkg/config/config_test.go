package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ADMIMIC_FONTS_DIR", "")
	t.Setenv("ADMIMIC_ASSETS_DIR", "")
	t.Setenv("ADMIMIC_MAX_CANVAS", "")

	cfg := Load()
	if cfg.AppEnv != "development" {
		t.Errorf("AppEnv = %q, want development", cfg.AppEnv)
	}
	if cfg.FontsDir != "./fonts" {
		t.Errorf("FontsDir = %q, want ./fonts", cfg.FontsDir)
	}
	if cfg.MaxCanvas != 2048 {
		t.Errorf("MaxCanvas = %d, want 2048", cfg.MaxCanvas)
	}
}

func TestLoadHonorsEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ADMIMIC_FONTS_DIR", "/srv/fonts")
	t.Setenv("ADMIMIC_MAX_CANVAS", "1024")

	cfg := Load()
	if cfg.AppEnv != "production" {
		t.Errorf("AppEnv = %q, want production", cfg.AppEnv)
	}
	if cfg.FontsDir != "/srv/fonts" {
		t.Errorf("FontsDir = %q, want /srv/fonts", cfg.FontsDir)
	}
	if cfg.MaxCanvas != 1024 {
		t.Errorf("MaxCanvas = %d, want 1024", cfg.MaxCanvas)
	}
}

func TestLoadIgnoresBadInt(t *testing.T) {
	t.Setenv("ADMIMIC_MAX_CANVAS", "not-a-number")

	cfg := Load()
	if cfg.MaxCanvas != 2048 {
		t.Errorf("MaxCanvas = %d, want fallback 2048", cfg.MaxCanvas)
	}
}
