package config_test

import (
	"testing"
	"time"

	"github.com/adbstack/agent-tools/internal/config"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Name = "agent_tools"
	cfg.Database.User = "agent_tools"

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.ShutdownTimeout != "30s" {
		t.Errorf("ShutdownTimeout = %q, want 30s", cfg.ShutdownTimeout)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "localhost:8080" {
		t.Errorf("Server.Addr() = %q, want localhost:8080", cfg.Server.Addr())
	}
	if cfg.Pagination.DefaultPageSize != 20 {
		t.Errorf("Pagination.DefaultPageSize = %d, want 20", cfg.Pagination.DefaultPageSize)
	}
	if cfg.Cloud.Profile != "DEFAULT" {
		t.Errorf("Cloud.Profile = %q, want DEFAULT", cfg.Cloud.Profile)
	}
	if cfg.Cloud.CallTimeoutDuration() != 30*time.Second {
		t.Errorf("Cloud.CallTimeoutDuration() = %v, want 30s", cfg.Cloud.CallTimeoutDuration())
	}
}

func TestConfig_Finalize_InvalidShutdownTimeout(t *testing.T) {
	cfg := &config.Config{ShutdownTimeout: "forever"}
	cfg.Database.Name = "agent_tools"
	cfg.Database.User = "agent_tools"

	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() succeeded, want error for invalid shutdown_timeout")
	}
}

func TestConfig_Finalize_MissingDatabase(t *testing.T) {
	cfg := &config.Config{}

	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() succeeded, want error for missing database name")
	}
}

func TestConfig_Merge(t *testing.T) {
	base := &config.Config{ShutdownTimeout: "30s"}
	base.Server.Host = "localhost"
	base.Server.Port = 8080
	base.Cloud.Region = "us-ashburn-1"

	overlay := &config.Config{}
	overlay.Server.Port = 9090
	overlay.Cloud.Region = "us-phoenix-1"

	base.Merge(overlay)

	if base.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want overlay value 9090", base.Server.Port)
	}
	if base.Server.Host != "localhost" {
		t.Errorf("Server.Host = %q, want base value preserved", base.Server.Host)
	}
	if base.Cloud.Region != "us-phoenix-1" {
		t.Errorf("Cloud.Region = %q, want overlay value", base.Cloud.Region)
	}
	if base.ShutdownTimeout != "30s" {
		t.Errorf("ShutdownTimeout = %q, want base value preserved", base.ShutdownTimeout)
	}
}

func TestServerConfig_MaxBodyBytes(t *testing.T) {
	cfg := config.ServerConfig{MaxBodySize: "1MB"}
	if got := cfg.MaxBodyBytes(); got != 1024*1024 {
		t.Errorf("MaxBodyBytes() = %d, want %d", got, 1024*1024)
	}
}
