package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != "batch" {
		t.Errorf("Expected default mode to be 'batch', got '%s'", cfg.Mode)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected default host to be '127.0.0.1', got '%s'", cfg.Host)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected default port to be 8080, got %d", cfg.Port)
	}

	if cfg.ServerName != "irdai-parser" {
		t.Errorf("Expected default server name to be 'irdai-parser', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("Expected default max file size to be 100MB, got %d", cfg.MaxFileSize)
	}

	if cfg.OutputFormat != "json" {
		t.Errorf("Expected default output format to be 'json', got '%s'", cfg.OutputFormat)
	}

	if !cfg.ValidatePDF {
		t.Error("Expected structural validation to be enabled by default")
	}

	if cfg.CacheTTL != 10*time.Minute {
		t.Errorf("Expected default cache TTL to be 10m, got %s", cfg.CacheTTL)
	}

	currentDir, _ := os.Getwd()
	if cfg.PDFDirectory != currentDir {
		t.Errorf("Expected default PDF directory to be '%s', got '%s'", currentDir, cfg.PDFDirectory)
	}
}

// validConfig returns a batch configuration rooted at dir
func validConfig(dir string) *Config {
	return &Config{
		Mode:         "batch",
		Host:         "127.0.0.1",
		Port:         8080,
		PDFDirectory: dir,
		LogLevel:     "info",
		MaxFileSize:  1024,
		OutputFormat: "json",
		ValidatePDF:  true,
		CacheTTL:     time.Minute,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid batch config",
			modify: func(c *Config) {},
		},
		{
			name:   "valid stdio config",
			modify: func(c *Config) { c.Mode = "stdio" },
		},
		{
			name:   "valid server config",
			modify: func(c *Config) { c.Mode = "server" },
		},
		{
			name:    "invalid mode",
			modify:  func(c *Config) { c.Mode = "invalid" },
			wantErr: "mode must be one of",
		},
		{
			name: "invalid port - too low (server mode)",
			modify: func(c *Config) {
				c.Mode = "server"
				c.Port = 0
			},
			wantErr: "port must be between 1 and 65535",
		},
		{
			name: "invalid port - too high (server mode)",
			modify: func(c *Config) {
				c.Mode = "server"
				c.Port = 70000
			},
			wantErr: "port must be between 1 and 65535",
		},
		{
			name: "invalid port ignored in stdio mode",
			modify: func(c *Config) {
				c.Mode = "stdio"
				c.Port = 0
			},
		},
		{
			name:    "empty PDF directory",
			modify:  func(c *Config) { c.PDFDirectory = "" },
			wantErr: "PDF directory cannot be empty",
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.LogLevel = "invalid" },
			wantErr: "invalid log level",
		},
		{
			name:    "invalid max file size",
			modify:  func(c *Config) { c.MaxFileSize = 0 },
			wantErr: "maximum file size must be positive",
		},
		{
			name:    "invalid output format",
			modify:  func(c *Config) { c.OutputFormat = "xml" },
			wantErr: "invalid output format",
		},
		{
			name:   "both output formats",
			modify: func(c *Config) { c.OutputFormat = "both" },
		},
		{
			name:    "negative cache TTL",
			modify:  func(c *Config) { c.CacheTTL = -time.Second },
			wantErr: "cache TTL cannot be negative",
		},
		{
			name:   "zero cache TTL disables cache",
			modify: func(c *Config) { c.CacheTTL = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t.TempDir())
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Config.Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Config.Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Config.Validate() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateDirectory(t *testing.T) {
	t.Run("batch mode requires an existing directory", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing")
		cfg := validConfig(missing)

		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "does not exist") {
			t.Errorf("Config.Validate() error = %v, want missing directory error", err)
		}
		if _, statErr := os.Stat(missing); !os.IsNotExist(statErr) {
			t.Errorf("batch mode should not create %s", missing)
		}
	})

	t.Run("server modes create the directory", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "filings", "q1")
		cfg := validConfig(missing)
		cfg.Mode = "stdio"

		if err := cfg.Validate(); err != nil {
			t.Fatalf("Config.Validate() unexpected error = %v", err)
		}
		info, err := os.Stat(missing)
		if err != nil {
			t.Fatalf("directory was not created: %v", err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", missing)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "filing.pdf")
		if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
		cfg := validConfig(file)

		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "not a directory") {
			t.Errorf("Config.Validate() error = %v, want not a directory error", err)
		}
	})
}

func TestConfigValidateLogLevels(t *testing.T) {
	validLevels := []string{"debug", "info", "warn", "error"}
	invalidLevels := []string{"DEBUG", "INFO", "trace", "fatal", ""}
	tempDir := t.TempDir()

	for _, level := range validLevels {
		t.Run("valid_"+level, func(t *testing.T) {
			cfg := validConfig(tempDir)
			cfg.LogLevel = level

			if err := cfg.Validate(); err != nil {
				t.Errorf("Config.Validate() should accept log level '%s', got error: %v", level, err)
			}
		})
	}

	for _, level := range invalidLevels {
		t.Run("invalid_"+level, func(t *testing.T) {
			cfg := validConfig(tempDir)
			cfg.LogLevel = level

			if err := cfg.Validate(); err == nil {
				t.Errorf("Config.Validate() should reject log level '%s'", level)
			}
		})
	}
}

func TestConfigExportFormats(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{format: "json", want: []string{"json"}},
		{format: "yaml", want: []string{"yaml"}},
		{format: "both", want: []string{"json", "yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cfg := &Config{OutputFormat: tt.format}
			got := cfg.ExportFormats()
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Config.ExportFormats() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigAddress(t *testing.T) {
	cfg := &Config{
		Host: "192.168.1.1",
		Port: 9090,
	}

	expected := "192.168.1.1:9090"
	if got := cfg.Address(); got != expected {
		t.Errorf("Config.Address() = %v, want %v", got, expected)
	}
}

func TestConfigIsDebug(t *testing.T) {
	tests := []struct {
		logLevel string
		want     bool
	}{
		{logLevel: "debug", want: true},
		{logLevel: "info", want: false},
		{logLevel: "warn", want: false},
		{logLevel: "error", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			if got := cfg.IsDebug(); got != tt.want {
				t.Errorf("Config.IsDebug() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigString(t *testing.T) {
	cfg := &Config{
		Mode:         "server",
		Host:         "localhost",
		Port:         8080,
		PDFDirectory: "/home/user/filings",
		LogLevel:     "debug",
		MaxFileSize:  1024,
		OutputFormat: "both",
		ValidatePDF:  false,
		CacheTTL:     90 * time.Second,
	}

	result := cfg.String()

	expectedSubstrings := []string{
		"Mode: server",
		"Host: localhost",
		"Port: 8080",
		"PDFDirectory: /home/user/filings",
		"LogLevel: debug",
		"MaxFileSize: 1024",
		"OutputFormat: both",
		"ValidatePDF: false",
		"CacheTTL: 1m30s",
	}

	for _, substr := range expectedSubstrings {
		if !strings.Contains(result, substr) {
			t.Errorf("Config.String() result doesn't contain expected substring: %s\nGot: %s", substr, result)
		}
	}
}

func TestConfigModes(t *testing.T) {
	tests := []struct {
		mode       string
		wantBatch  bool
		wantStdio  bool
		wantServer bool
	}{
		{mode: "batch", wantBatch: true},
		{mode: "stdio", wantStdio: true},
		{mode: "server", wantServer: true},
		{mode: "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cfg := &Config{Mode: tt.mode}
			if got := cfg.IsBatchMode(); got != tt.wantBatch {
				t.Errorf("Config.IsBatchMode() = %v, want %v", got, tt.wantBatch)
			}
			if got := cfg.IsStdioMode(); got != tt.wantStdio {
				t.Errorf("Config.IsStdioMode() = %v, want %v", got, tt.wantStdio)
			}
			if got := cfg.IsServerMode(); got != tt.wantServer {
				t.Errorf("Config.IsServerMode() = %v, want %v", got, tt.wantServer)
			}
		})
	}
}
