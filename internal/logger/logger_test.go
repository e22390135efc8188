package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	t.Setenv("LOG_FILE", path)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	closer, err := Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	Log.WithFields(logrus.Fields{"tile": "0,0"}).Debug("explored")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(content), `"tile":"0,0"`) {
		t.Errorf("log file missing structured field: %s", content)
	}
}

func TestInitInvalidLevelFallsBack(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "test.log"))
	t.Setenv("LOG_LEVEL", "loud")

	closer, err := Init()
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer closer.Close()

	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", Log.GetLevel())
	}
}

func TestInitUnwritablePath(t *testing.T) {
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "missing", "dir", "test.log"))

	closer, err := Init()
	if err == nil {
		t.Error("Init should report an unopenable log file")
	}
	if closer == nil {
		t.Fatal("Init should always return a closer")
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
