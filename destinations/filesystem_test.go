package destinations

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tickerboard/tickerboard/constants"
)

func TestFileSystem_Publish(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dashboard.html")
	publisher := NewFileSystem(LocalPath{Path: path})

	document := []byte("<html>first</html>")
	if err := publisher.Publish(document); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact failed: %v", err)
	}

	if string(written) != string(document) {
		t.Errorf("artifact content mismatch, got %s", written)
	}

	// the next run overwrites the artifact
	second := []byte("<html>second</html>")
	if err := publisher.Publish(second); err != nil {
		t.Fatalf("Publish() overwrite error = %v", err)
	}

	written, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact failed: %v", err)
	}

	if string(written) != string(second) {
		t.Errorf("artifact not overwritten, got %s", written)
	}
}

func TestFileSystem_Publish_NoPartialOutput(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory write permissions")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0500); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}
	defer os.Chmod(dir, 0700)

	path := filepath.Join(dir, "dashboard.html")
	publisher := NewFileSystem(LocalPath{Path: path})

	err := publisher.Publish([]byte("<html></html>"))
	if !errors.Is(err, constants.ErrWrite) {
		t.Fatalf("Publish() error = %v, want %v", err, constants.ErrWrite)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("failed publish left an artifact behind")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir failed: %v", err)
	}

	if len(entries) != 0 {
		t.Errorf("failed publish left %d temp files behind", len(entries))
	}
}

func TestNewPublisher(t *testing.T) {
	publisher, err := NewPublisher(LocalPath{Path: filepath.Join(t.TempDir(), "dashboard.html")})
	if err != nil {
		t.Fatalf("NewPublisher() error = %v", err)
	}
	defer publisher.Close()

	if _, ok := publisher.(*FileSystem); !ok {
		t.Errorf("NewPublisher() type = %T, want *FileSystem", publisher)
	}
}

func TestDestination_String(t *testing.T) {
	tests := []struct {
		name        string
		destination Destination
		want        string
	}{
		{"local", LocalPath{Path: "/data/dashboard.html"}, "fs:/data/dashboard.html"},
		{"s3", S3Object{Bucket: "reports", Key: "us_banks.html"}, "s3://reports/us_banks.html"},
		{"redis", RedisKey{Address: "localhost:6379", Key: "dashboard"}, "redis://localhost:6379/dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.destination.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}
