package command

import (
	"path/filepath"
	"testing"

	"github.com/tickerboard/tickerboard/config"
	"github.com/tickerboard/tickerboard/destinations"
	"github.com/tickerboard/tickerboard/groups"
)

func TestLocalPath(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name     string
		path     string
		artifact string
		want     string
	}{
		{"empty path uses artifact", "", "us_banks_dashboard_5y.html", "us_banks_dashboard_5y.html"},
		{"existing dir joins artifact", dir, "us_banks_dashboard_5y.html", filepath.Join(dir, "us_banks_dashboard_5y.html")},
		{"file path kept", filepath.Join(dir, "out.html"), "us_banks_dashboard_5y.html", filepath.Join(dir, "out.html")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := localPath(tc.path, tc.artifact); got != tc.want {
				t.Errorf("localPath(%q, %q) = %q, want %q", tc.path, tc.artifact, got, tc.want)
			}
		})
	}
}

func TestDestination(t *testing.T) {
	group := groups.Group{Name: "US Banks", Tickers: []string{"JPM"}}

	cfg := new(config.Config)
	cfg.Output.Mode = "s3"
	cfg.Output.Bucket = "reports"
	cfg.AWS.Region = "us-east-1"

	dest := destination(cfg, group, "5y")
	s3, ok := dest.(destinations.S3Object)
	if !ok {
		t.Fatalf("destination type = %T, want S3Object", dest)
	}

	if s3.Key != "us_banks_dashboard_5y.html" {
		t.Errorf("key = %s, want us_banks_dashboard_5y.html", s3.Key)
	}

	cfg.Output.Mode = "local"
	if _, ok = destination(cfg, group, "5y").(destinations.LocalPath); !ok {
		t.Errorf("local mode destination type = %T, want LocalPath", destination(cfg, group, "5y"))
	}

	cfg.Output.Mode = "redis"
	cfg.Output.Key = "dashboards:us_banks"
	redis, ok := destination(cfg, group, "5y").(destinations.RedisKey)
	if !ok {
		t.Fatalf("redis mode destination type mismatch")
	}

	if redis.Key != "dashboards:us_banks" {
		t.Errorf("configured key not kept, got %s", redis.Key)
	}
}
