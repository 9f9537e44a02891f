package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeBatch  = "batch"
	ModeStdio  = "stdio"
	ModeServer = "server"

	// Export formats written next to each parsed filing
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatBoth = "both"

	// Default values
	DefaultPort         = 8080
	DefaultHost         = "127.0.0.1"
	DefaultLogLevel     = "info"
	DefaultMaxFileSize  = 100 * 1024 * 1024 // 100MB
	DefaultOutputFormat = FormatJSON
	DefaultCacheTTL     = 10 * time.Minute

	// Directory permissions
	DefaultDirPerm = 0o750
)

// ErrVersionRequested is returned by LoadFromFlags when --version was given
var ErrVersionRequested = errors.New("version requested")

// Config holds all configuration for the IRDAI filing parser
type Config struct {
	// Run mode: batch report, MCP over stdio, or MCP over HTTP
	Mode string
	Host string
	Port int

	// Filing configuration
	PDFDirectory string
	MaxFileSize  int64 // Maximum PDF file size in bytes
	OutputFormat string
	ValidatePDF  bool
	CacheTTL     time.Duration

	// Application configuration
	Version    string
	ServerName string
	LogLevel   string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		Mode:         ModeBatch,
		Host:         DefaultHost,
		Port:         DefaultPort,
		PDFDirectory: currentDir,
		MaxFileSize:  DefaultMaxFileSize,
		OutputFormat: DefaultOutputFormat,
		ValidatePDF:  true,
		CacheTTL:     DefaultCacheTTL,
		Version:      "1.0.0",
		ServerName:   "irdai-parser",
		LogLevel:     DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	// Check for version flag before parsing
	if err := checkVersionFlag(); err != nil {
		return nil, err
	}

	pflag.Parse()

	populateConfigFromViper(cfg)

	if cfg.PDFDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.PDFDirectory); err == nil {
			cfg.PDFDirectory = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("IRDAI")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("dir", cfg.PDFDirectory)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("format", cfg.OutputFormat)
	viper.SetDefault("validate", cfg.ValidatePDF)
	viper.SetDefault("cachettl", cfg.CacheTTL)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode,
		"Run mode: 'batch' parses every filing in --dir, 'stdio' serves MCP on standard I/O, 'server' serves MCP over HTTP")
	pflag.String("host", cfg.Host, "Server host address (server mode only)")
	pflag.Int("port", cfg.Port, "Server port (server mode only)")
	pflag.String("dir", cfg.PDFDirectory, "Directory containing IRDAI filing PDFs")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
	pflag.String("format", cfg.OutputFormat, "Export format written next to each filing (json, yaml, both)")
	pflag.Bool("validate", cfg.ValidatePDF, "Validate PDF structure before extracting text")
	pflag.Duration("cachettl", cfg.CacheTTL, "How long parsed filings stay cached (0 disables the cache)")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	for _, name := range []string{
		"mode", "host", "port", "dir", "loglevel", "maxfilesize", "format", "validate", "cachettl",
	} {
		_ = viper.BindPFlag(name, pflag.Lookup(name))
	}
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nIRDAI Parser - extracts financial data from IRDAI public disclosure filings\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                         "+
			"# batch mode, current directory (default)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dir=/path/to/filings --format=both    "+
			"# write JSON and YAML exports\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=stdio --dir=/path/to/filings     # MCP over stdio\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=server --host=0.0.0.0 --port=8081 # MCP over HTTP\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables (also read from .env):\n")
		fmt.Fprintf(os.Stderr, "  IRDAI_MODE        Run mode\n")
		fmt.Fprintf(os.Stderr, "  IRDAI_HOST        Server host\n")
		fmt.Fprintf(os.Stderr, "  IRDAI_PORT        Server port\n")
		fmt.Fprintf(os.Stderr, "  IRDAI_DIR         Filing directory\n")
		fmt.Fprintf(os.Stderr, "  IRDAI_LOGLEVEL    Log level\n")
		fmt.Fprintf(os.Stderr, "  IRDAI_MAXFILESIZE Maximum file size\n")
		fmt.Fprintf(os.Stderr, "  IRDAI_FORMAT      Export format\n")
		fmt.Fprintf(os.Stderr, "  IRDAI_VALIDATE    Structural validation\n")
		fmt.Fprintf(os.Stderr, "  IRDAI_CACHETTL    Parse cache lifetime\n")
	}
}

// checkVersionFlag checks if version flag was requested
func checkVersionFlag() error {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			return ErrVersionRequested
		}
	}
	return nil
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.PDFDirectory = viper.GetString("dir")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.OutputFormat = viper.GetString("format")
	cfg.ValidatePDF = viper.GetBool("validate")
	cfg.CacheTTL = viper.GetDuration("cachettl")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeBatch, ModeStdio, ModeServer:
	default:
		return errors.New("mode must be one of 'batch', 'stdio' or 'server'")
	}

	if c.Mode == ModeServer && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	if c.PDFDirectory == "" {
		return errors.New("PDF directory cannot be empty")
	}

	// Batch mode reads an existing directory; the server modes may start empty
	info, err := os.Stat(c.PDFDirectory)
	switch {
	case os.IsNotExist(err) && c.Mode == ModeBatch:
		return fmt.Errorf("PDF directory does not exist: %s", c.PDFDirectory)
	case os.IsNotExist(err):
		if err := os.MkdirAll(c.PDFDirectory, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create PDF directory %s: %w", c.PDFDirectory, err)
		}
	case err != nil:
		return fmt.Errorf("cannot access PDF directory %s: %w", c.PDFDirectory, err)
	case !info.IsDir():
		return fmt.Errorf("PDF directory is not a directory: %s", c.PDFDirectory)
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	switch c.OutputFormat {
	case FormatJSON, FormatYAML, FormatBoth:
	default:
		return fmt.Errorf("invalid output format: %s (must be one of: json, yaml, both)", c.OutputFormat)
	}

	if c.CacheTTL < 0 {
		return errors.New("cache TTL cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// ExportFormats expands OutputFormat into the individual formats to write
func (c *Config) ExportFormats() []string {
	if c.OutputFormat == FormatBoth {
		return []string{FormatJSON, FormatYAML}
	}
	return []string{c.OutputFormat}
}

// Address returns the server address as host:port
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Host: %s, Port: %d, PDFDirectory: %s, LogLevel: %s, MaxFileSize: %d, "+
		"OutputFormat: %s, ValidatePDF: %t, CacheTTL: %s}",
		c.Mode, c.Host, c.Port, c.PDFDirectory, c.LogLevel, c.MaxFileSize, c.OutputFormat, c.ValidatePDF, c.CacheTTL)
}

// IsBatchMode returns true if filings are parsed once and reported on stdout
func (c *Config) IsBatchMode() bool {
	return c.Mode == ModeBatch
}

// IsServerMode returns true if the MCP server listens over HTTP
func (c *Config) IsServerMode() bool {
	return c.Mode == ModeServer
}

// IsStdioMode returns true if the MCP server speaks over standard I/O
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}
