package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	fileName  = ".bbadmin"
	envPrefix = "BBADMIN"
)

// Config represents the application configuration
type Config struct {
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Auth   AuthConfig   `yaml:"auth" mapstructure:"auth"`
	Format FormatConfig `yaml:"format" mapstructure:"format"`
	List   ListConfig   `yaml:"list" mapstructure:"list"`
}

// ServerConfig contains backend connection settings
type ServerConfig struct {
	URL     string `yaml:"url" mapstructure:"url"`
	Timeout string `yaml:"timeout" mapstructure:"timeout"`
	Retries int    `yaml:"retries" mapstructure:"retries"`
}

// AuthConfig contains the persisted session
type AuthConfig struct {
	Email  string `yaml:"email" mapstructure:"email"`
	Cookie string `yaml:"cookie" mapstructure:"cookie"`
}

// FormatConfig contains output formatting settings
type FormatConfig struct {
	Default    string `yaml:"default" mapstructure:"default"`
	Colors     bool   `yaml:"colors" mapstructure:"colors"`
	Timestamps bool   `yaml:"timestamps" mapstructure:"timestamps"`
}

// ListConfig contains defaults for paginated listings
type ListConfig struct {
	PageSize   int    `yaml:"page_size" mapstructure:"page_size"`
	ToastDelay string `yaml:"toast_delay" mapstructure:"toast_delay"`
}

var (
	globalConfig *Config
	configPath   string
	debug        bool
	outputFormat string
)

// Initialize loads the configuration from file, .env and environment
func Initialize(configFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		configPath = configFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get home directory: %w", err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(fileName)
		configPath = filepath.Join(home, fileName+".yaml")
	}

	// server.url is read from BBADMIN_SERVER_URL
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			if err := createDefaultConfig(); err != nil {
				return fmt.Errorf("could not create default config: %w", err)
			}
		} else {
			return fmt.Errorf("could not read config file: %w", err)
		}
	}

	globalConfig = &Config{}
	if err := viper.Unmarshal(globalConfig); err != nil {
		return fmt.Errorf("could not unmarshal config: %w", err)
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	d := Default()
	viper.SetDefault("server.url", d.Server.URL)
	viper.SetDefault("server.timeout", d.Server.Timeout)
	viper.SetDefault("server.retries", d.Server.Retries)
	viper.SetDefault("auth.email", "")
	viper.SetDefault("auth.cookie", "")
	viper.SetDefault("format.default", d.Format.Default)
	viper.SetDefault("format.colors", d.Format.Colors)
	viper.SetDefault("format.timestamps", d.Format.Timestamps)
	viper.SetDefault("list.page_size", d.List.PageSize)
	viper.SetDefault("list.toast_delay", d.List.ToastDelay)
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Server: ServerConfig{
			URL:     "http://localhost:3000/api",
			Timeout: "30s",
			Retries: 2,
		},
		Format: FormatConfig{
			Default:    "table",
			Colors:     true,
			Timestamps: true,
		},
		List: ListConfig{
			PageSize:   10,
			ToastDelay: "2.5s",
		},
	}
}

// createDefaultConfig writes the default configuration file
func createDefaultConfig() error {
	data, err := yaml.Marshal(Default())
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return err
	}
	viper.SetConfigFile(configPath)
	return nil
}

// Get returns the global configuration
func Get() *Config {
	if globalConfig == nil {
		d := Default()
		globalConfig = &d
	}
	return globalConfig
}

// Path returns the file backing the configuration
func Path() string {
	return configPath
}

// Timeout parses server.timeout, falling back to 30s
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.Server.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// ToastDelay parses list.toast_delay, falling back to 2.5s
func (c *Config) ToastDelay() time.Duration {
	d, err := time.ParseDuration(c.List.ToastDelay)
	if err != nil || d <= 0 {
		return 2500 * time.Millisecond
	}
	return d
}

// Set updates a single key and persists it
func Set(key string, value interface{}) error {
	if globalConfig == nil {
		return fmt.Errorf("configuration not initialized")
	}

	viper.Set(key, value)
	if err := viper.Unmarshal(globalConfig); err != nil {
		return fmt.Errorf("could not unmarshal config: %w", err)
	}

	return viper.WriteConfig()
}

// Value returns the raw value stored for key
func Value(key string) interface{} {
	return viper.Get(key)
}

// All returns every setting known to viper
func All() map[string]interface{} {
	return viper.AllSettings()
}

// SetDebug sets the debug mode
func SetDebug(enabled bool) {
	debug = enabled
}

// IsDebug returns whether debug mode is enabled
func IsDebug() bool {
	return debug
}

// SetOutputFormat sets the output format
func SetOutputFormat(format string) {
	outputFormat = format
}

// GetOutputFormat returns the current output format
func GetOutputFormat() string {
	if outputFormat != "" {
		return outputFormat
	}
	if globalConfig != nil && globalConfig.Format.Default != "" {
		return globalConfig.Format.Default
	}
	return "table"
}

// UpdateAuth stores the session cookie for email
func UpdateAuth(email, cookie string) error {
	if globalConfig == nil {
		return fmt.Errorf("configuration not initialized")
	}

	viper.Set("auth.email", email)
	viper.Set("auth.cookie", cookie)

	globalConfig.Auth.Email = email
	globalConfig.Auth.Cookie = cookie

	return viper.WriteConfig()
}

// ClearAuth clears the authentication configuration
func ClearAuth() error {
	return UpdateAuth("", "")
}

// AuthStore persists sessions into the configuration file
type AuthStore struct{}

// UpdateAuth implements session.Store
func (AuthStore) UpdateAuth(identifier, cookie string) error {
	return UpdateAuth(identifier, cookie)
}

// ClearAuth implements session.Store
func (AuthStore) ClearAuth() error {
	return ClearAuth()
}
