package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// EnvCloudUseResourcePrincipal overrides the resource principal flag.
	EnvCloudUseResourcePrincipal = "CLOUD_USE_RESOURCE_PRINCIPAL"

	// EnvCloudConfigPath overrides the cloud SDK configuration file path.
	EnvCloudConfigPath = "CLOUD_CONFIG_PATH"

	// EnvCloudProfile overrides the cloud SDK configuration profile.
	EnvCloudProfile = "CLOUD_PROFILE"

	// EnvCloudRegion overrides the cloud region.
	EnvCloudRegion = "CLOUD_REGION"

	// EnvCloudCallTimeout overrides the per-call timeout for cloud requests.
	EnvCloudCallTimeout = "CLOUD_CALL_TIMEOUT"
)

// CloudConfig contains OCI client configuration. Authentication uses either
// an API-key configuration file or the resource principal identity mode.
type CloudConfig struct {
	UseResourcePrincipal bool   `toml:"use_resource_principal"`
	ConfigPath           string `toml:"config_path"`
	Profile              string `toml:"profile"`
	Region               string `toml:"region"`
	CallTimeout          string `toml:"call_timeout"`
}

// CallTimeoutDuration parses and returns the per-call timeout as a time.Duration.
func (c *CloudConfig) CallTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.CallTimeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the cloud configuration.
func (c *CloudConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *CloudConfig) Merge(overlay *CloudConfig) {
	c.UseResourcePrincipal = overlay.UseResourcePrincipal

	if overlay.ConfigPath != "" {
		c.ConfigPath = overlay.ConfigPath
	}
	if overlay.Profile != "" {
		c.Profile = overlay.Profile
	}
	if overlay.Region != "" {
		c.Region = overlay.Region
	}
	if overlay.CallTimeout != "" {
		c.CallTimeout = overlay.CallTimeout
	}
}

func (c *CloudConfig) loadDefaults() {
	if c.Profile == "" {
		c.Profile = "DEFAULT"
	}
	if c.CallTimeout == "" {
		c.CallTimeout = "30s"
	}
}

func (c *CloudConfig) loadEnv() {
	if v := os.Getenv(EnvCloudUseResourcePrincipal); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.UseResourcePrincipal = b
		}
	}
	if v := os.Getenv(EnvCloudConfigPath); v != "" {
		c.ConfigPath = v
	}
	if v := os.Getenv(EnvCloudProfile); v != "" {
		c.Profile = v
	}
	if v := os.Getenv(EnvCloudRegion); v != "" {
		c.Region = v
	}
	if v := os.Getenv(EnvCloudCallTimeout); v != "" {
		c.CallTimeout = v
	}
}

func (c *CloudConfig) validate() error {
	if _, err := time.ParseDuration(c.CallTimeout); err != nil {
		return fmt.Errorf("invalid call_timeout: %w", err)
	}
	return nil
}
