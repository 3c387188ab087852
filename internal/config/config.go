package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultModel         = "gpt-4o-mini"
	DefaultAssistantName = "Niveshak"
	DefaultProfile       = "default"
)

type Profile struct {
	APIKey  string `json:"api_key" mapstructure:"api_key"`
	BaseURL string `json:"base_url,omitempty" mapstructure:"base_url"`
	Model   string `json:"model" mapstructure:"model"`
}

type Config struct {
	Profiles      map[string]Profile `json:"profiles" mapstructure:"profiles"`
	ActiveProfile string             `json:"active_profile" mapstructure:"active_profile"`
	AssistantName string             `json:"assistant_name" mapstructure:"assistant_name"`
	Greeting      string             `json:"greeting,omitempty" mapstructure:"greeting"`
	LogLevel      string             `json:"log_level" mapstructure:"log_level"`
	LogFile       string             `json:"log_file,omitempty" mapstructure:"log_file"`

	path           string
	currentProfile *Profile
}

// LoadConfig reads the config file under the niveshak home directory,
// creating a default one on first run.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom reads the config file at configPath. NIVESHAK_* environment
// variables override the scalar settings.
func LoadFrom(configPath string) (*Config, error) {
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := saveConfig(defaultConfig(), configPath); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("json")
	v.SetEnvPrefix("NIVESHAK")
	v.AutomaticEnv()

	v.SetDefault("active_profile", DefaultProfile)
	v.SetDefault("assistant_name", DefaultAssistantName)
	v.SetDefault("greeting", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", filepath.Join(filepath.Dir(configPath), "niveshak.log"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	config.path = configPath

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return &config, nil
}

func (c *Config) IsValid() bool {
	return c.currentProfile != nil && c.currentProfile.APIKey != ""
}

func (c *Config) GetAPIKey() string {
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.APIKey
}

func (c *Config) GetModel() string {
	if c.currentProfile == nil || c.currentProfile.Model == "" {
		return DefaultModel
	}
	return c.currentProfile.Model
}

func (c *Config) GetBaseURL() string {
	if c.currentProfile == nil {
		return ""
	}
	return c.currentProfile.BaseURL
}

// GetAssistantName returns the display name of the assistant.
func (c *Config) GetAssistantName() string {
	if c.AssistantName == "" {
		return DefaultAssistantName
	}
	return c.AssistantName
}

// GetGreeting returns the first transcript message of every chat session.
func (c *Config) GetGreeting() string {
	if c.Greeting != "" {
		return c.Greeting
	}
	return fmt.Sprintf("Hi there! I'm %s, an AI assistant. How can I help you today?", c.GetAssistantName())
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

// SwitchProfile makes name the active profile.
func (c *Config) SwitchProfile(name string) error {
	name = NormalizeProfileName(name)
	if _, exists := c.Profiles[name]; !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	return c.setCurrentProfile()
}

// RemoveProfile deletes a profile. Removing the active profile activates
// another one, or recreates the default profile when none is left.
func (c *Config) RemoveProfile(name string) error {
	name = NormalizeProfileName(name)
	if _, exists := c.Profiles[name]; !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	delete(c.Profiles, name)

	if c.ActiveProfile == name {
		c.ActiveProfile = ""
		for other := range c.Profiles {
			c.ActiveProfile = other
			break
		}
		if c.ActiveProfile == "" {
			c.ActiveProfile = DefaultProfile
			c.Profiles[DefaultProfile] = Profile{Model: DefaultModel}
		}
	}
	return c.setCurrentProfile()
}

// NormalizeProfileName lowercases a profile name. Config keys are case
// insensitive, so profile names are stored lowercased.
func NormalizeProfileName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func getConfigPath() (string, error) {
	var configDir string

	// Use NIVESHAK_HOME if set, otherwise use user's home directory
	if home := os.Getenv("NIVESHAK_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".niveshak", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func defaultConfig() *Config {
	return &Config{
		Profiles: map[string]Profile{
			DefaultProfile: {Model: DefaultModel},
		},
		ActiveProfile: DefaultProfile,
		AssistantName: DefaultAssistantName,
		LogLevel:      "info",
	}
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	if c.path == "" {
		configPath, err := getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		c.path = configPath
	}

	return saveConfig(c, c.path)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// Fall back to any available profile
		for name, p := range c.Profiles {
			c.ActiveProfile = name
			profile = p
			exists = true
			break
		}
	}

	if !exists {
		return fmt.Errorf("no valid profiles found")
	}

	c.currentProfile = &profile
	return nil
}
