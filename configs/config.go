package configs

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/robertbarcik/mcp-helpdesk/internal/adapter/outbound/mcppool"
)

// FileConfig defines the structure loaded from the YAML configuration file.
type FileConfig struct {
	Servers []mcppool.ServerConfig `yaml:"servers"`
}

// Config holds the final application configuration, merged from file and
// environment variables. Fields are loaded from environment variables with the
// prefix "HELPDESK_", potentially overriding file settings.
//
// OpenAIAPIKey is read from the environment only. It is handed to the OpenAI
// client at startup and never written to disk or logged.
type Config struct {
	// Config File Path (Loaded first from env)
	ConfigFilePath string `envconfig:"CONFIG_FILE" default:"configs/helpdesk.yaml"`

	// File-loaded fields (merged)
	Servers []mcppool.ServerConfig

	// Environment-overridable fields
	OpenAIAPIKey             string        `envconfig:"OPENAI_API_KEY"`
	OpenAIModel              string        `envconfig:"OPENAI_MODEL" default:"gpt-5-nano"`
	MaxIterations            int           `envconfig:"MAX_ITERATIONS" default:"10"`
	ToolCallTimeout          time.Duration `envconfig:"TOOL_CALL_TIMEOUT" default:"30s"`
	OtelExporterOtlpEndpoint string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OtelExporterOtlpInsecure bool          `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
	LogLevel                 string        `envconfig:"LOG_LEVEL" default:"info"`
}

// ParsedLogLevel returns the slog.Level based on the configured LogLevel string.
func (c *Config) ParsedLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		fallthrough
	default:
		return slog.LevelInfo
	}
}

// DefaultServers returns the built-in helpdesk fleet. It is used when the
// config file is absent or does not list any servers.
func DefaultServers() []mcppool.ServerConfig {
	return []mcppool.ServerConfig{
		{Name: "ticket", Command: "helpdesk-ticket-server", Description: "Ticket search, metrics and similarity"},
		{Name: "customer", Command: "helpdesk-customer-server", Description: "Customer lookup, status, SLA and contacts"},
		{Name: "billing", Command: "helpdesk-billing-server", Description: "Invoices, payment status and balances"},
		{Name: "kb", Command: "helpdesk-kb-server", Description: "Knowledge base search and related articles"},
		{Name: "asset", Command: "helpdesk-asset-server", Description: "Asset lookup, warranty and license tracking"},
	}
}

// Load loads configuration first from environment variables (to get the file
// path), then from the specified YAML file, and finally merges/overrides with
// environment variables again.
func Load() (*Config, error) {
	// 1. Load initial config from Env (primarily to get ConfigFilePath)
	var initialCfg Config
	if err := envconfig.Process("helpdesk", &initialCfg); err != nil {
		return nil, fmt.Errorf("failed to process initial environment variables: %w", err)
	}

	// 2. Load config from YAML file if path is specified and present.
	fileCfg := FileConfig{}
	if initialCfg.ConfigFilePath != "" {
		yamlFile, err := os.ReadFile(initialCfg.ConfigFilePath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config file '%s': %w", initialCfg.ConfigFilePath, err)
			}
			slog.Info("Loaded configuration from file.", "path", initialCfg.ConfigFilePath)
		case os.IsNotExist(err):
			slog.Info("Config file not found, using built-in server fleet.", "path", initialCfg.ConfigFilePath)
		default:
			return nil, fmt.Errorf("failed to read config file '%s': %w", initialCfg.ConfigFilePath, err)
		}
	} else {
		slog.Info("No config file path specified (HELPDESK_CONFIG_FILE), using defaults/env vars only.")
	}

	// 3. Create final config, starting with file values, then process Env
	// vars again for overrides.
	finalCfg := initialCfg
	finalCfg.Servers = fileCfg.Servers
	if len(finalCfg.Servers) == 0 {
		finalCfg.Servers = DefaultServers()
	}
	for i, srv := range finalCfg.Servers {
		if srv.Name == "" || srv.Command == "" {
			return nil, fmt.Errorf("server entry %d is missing a name or command", i)
		}
	}

	if err := envconfig.Process("helpdesk", &finalCfg); err != nil {
		return nil, fmt.Errorf("failed to process overriding environment variables: %w", err)
	}

	return &finalCfg, nil
}
