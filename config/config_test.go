package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Group != "US Banks" {
		t.Errorf("group default = %s, want US Banks", cfg.Group)
	}

	if cfg.Range != "max" {
		t.Errorf("range default = %s, want max", cfg.Range)
	}

	if cfg.Output.Mode != "local" {
		t.Errorf("output mode default = %s, want local", cfg.Output.Mode)
	}

	if cfg.Journal.Enabled {
		t.Error("journal enabled by default")
	}
}

func TestLoad_File(t *testing.T) {
	content := `
group = "Energy"
range = "5y"

[output]
mode = "s3"
bucket = "reports"
key = "energy.html"

[[groups]]
name = "Energy"
tickers = ["XOM", "CVX"]
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Group != "Energy" || cfg.Range != "5y" {
		t.Errorf("file values not applied, got %s %s", cfg.Group, cfg.Range)
	}

	if cfg.Output.Mode != "s3" || cfg.Output.Bucket != "reports" {
		t.Errorf("output not applied, got %+v", cfg.Output)
	}

	if len(cfg.Groups) != 1 || cfg.Groups[0].Name != "Energy" {
		t.Errorf("groups not applied, got %+v", cfg.Groups)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TICKER_GROUP", "US Banks in India")
	t.Setenv("DATE_RANGE", "1y")
	t.Setenv("OUTPUT_MODE", "cloud")
	t.Setenv("AWS_BUCKET_NAME", "bucket-from-env")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Group != "US Banks in India" {
		t.Errorf("TICKER_GROUP not applied, got %s", cfg.Group)
	}

	if cfg.Range != "1y" {
		t.Errorf("DATE_RANGE not applied, got %s", cfg.Range)
	}

	// cloud folds into s3
	if cfg.Output.Mode != "s3" {
		t.Errorf("OUTPUT_MODE alias not folded, got %s", cfg.Output.Mode)
	}

	if cfg.Output.Bucket != "bucket-from-env" {
		t.Errorf("AWS_BUCKET_NAME alias not applied, got %s", cfg.Output.Bucket)
	}
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("OUTPUT_MODE", "ftp")

	_, err := Load("")
	if err == nil {
		t.Error("Load() accepted invalid output mode")
	}
}

func TestLoad_InvalidRange(t *testing.T) {
	t.Setenv("DATE_RANGE", "42y")

	_, err := Load("")
	if err == nil {
		t.Error("Load() accepted invalid range")
	}
}
