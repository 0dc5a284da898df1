package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

// Config represents the front end configuration shared by the browser
// client, the terminal client and the dev server.
type Config struct {
	APIBaseURL      string        `yaml:"api_base_url"`
	LoginPath       string        `yaml:"login_path"`
	DefaultRedirect string        `yaml:"default_redirect"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	LogLevel        string        `yaml:"log_level"`

	Storage   StorageConfig    `yaml:"storage"`
	Federated []FederatedLogin `yaml:"federated"`
	DevServer DevServerConfig  `yaml:"devserver"`
}

// StorageConfig names the keys the login form owns.
type StorageConfig struct {
	RememberKey     string `yaml:"remember_key"`
	TokenKey        string `yaml:"token_key"`
	CredentialsFile string `yaml:"credentials_file"` // terminal client only
}

// FederatedLogin is one social login button rendered by the SNS region
type FederatedLogin struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// DevServerConfig contains settings for cmd/devserver
type DevServerConfig struct {
	Addr      string `yaml:"addr"`
	StaticDir string `yaml:"static_dir"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		APIBaseURL:      "http://localhost:8080",
		LoginPath:       "/user/login",
		DefaultRedirect: "/",
		RequestTimeout:  10 * time.Second,
		LogLevel:        "info",
		Storage: StorageConfig{
			RememberKey: "rememberUserId",
			TokenKey:    "ACCESS_TOKEN",
		},
		DevServer: DevServerConfig{
			Addr:      ":3000",
			StaticDir: "web",
		},
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, serr.Wrap(err, "failed to read config file")
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default, expanding ${ENV} references first.
// Keys missing from the document keep their default value.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, serr.Wrap(err, "failed to parse config")
	}

	if baseURL := os.Getenv("API_BASE_URL"); baseURL != "" {
		cfg.APIBaseURL = baseURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, serr.Wrap(err, "config validation failed")
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are set
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return serr.New("api_base_url is required")
	}
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return serr.New("api_base_url must be an http or https URL")
	}
	if !strings.HasPrefix(c.LoginPath, "/") {
		return serr.New("login_path must start with /")
	}
	if c.DefaultRedirect == "" {
		return serr.New("default_redirect is required")
	}
	if c.RequestTimeout <= 0 {
		return serr.New("request_timeout must be positive")
	}
	if c.Storage.RememberKey == "" || c.Storage.TokenKey == "" {
		return serr.New("storage.remember_key and storage.token_key are required")
	}
	for _, f := range c.Federated {
		if f.Name == "" || f.URL == "" {
			return serr.New("federated entries need a name and a url")
		}
	}
	return nil
}

// LoginURL returns the full URL of the login endpoint.
func (c *Config) LoginURL() string {
	return strings.TrimRight(c.APIBaseURL, "/") + c.LoginPath
}

// FederatedURL resolves a provider link. Paths starting with "/" are
// served by the API.
func (c *Config) FederatedURL(f FederatedLogin) string {
	if strings.HasPrefix(f.URL, "/") {
		return strings.TrimRight(c.APIBaseURL, "/") + f.URL
	}
	return f.URL
}

// CredentialsPath returns where the terminal client keeps the remembered
// identifier. Falls back to the user config dir.
func (c *Config) CredentialsPath() (string, error) {
	if c.Storage.CredentialsFile != "" {
		return c.Storage.CredentialsFile, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", serr.Wrap(err, "failed to locate user config dir")
	}
	return filepath.Join(dir, "specfarm", "credentials.json"), nil
}
