package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the default market data api base url.
	DefaultBaseURL = "https://api.coingecko.com/api/v3"
	// DefaultLogLevel is the default application log level.
	DefaultLogLevel = "info"
	// DefaultWidth is the default window width.
	DefaultWidth = 1280
	// DefaultHeight is the default window height.
	DefaultHeight = 800
)

// Config is the configuration struct for the dashboard.
type Config struct {
	// APIKey is the CoinGecko demo api key.
	APIKey string
	// BaseURL is the market data api base url.
	BaseURL string
	// LogLevel is the application log level.
	LogLevel string
	// FetchTimeout is the market data request timeout in seconds, zero disables it.
	FetchTimeout int
	// Width is the initial window width.
	Width int
	// Height is the initial window height.
	Height int

	registeredFlags map[string]bool
}

// Validate asserts the config sane inputs.
func (cfg *Config) Validate() error {
	var errs error

	u, err := url.Parse(cfg.BaseURL)
	switch {
	case cfg.BaseURL == "":
		errs = errors.Join(errs, fmt.Errorf("base url cannot be an empty string"))
	case err != nil:
		errs = errors.Join(errs, fmt.Errorf("parsing base url: %w", err))
	case (u.Scheme != "http" && u.Scheme != "https") || u.Host == "":
		errs = errors.Join(errs, fmt.Errorf("base url must be an absolute http(s) url, got %q", cfg.BaseURL))
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		errs = errors.Join(errs, fmt.Errorf("invalid log level %q", cfg.LogLevel))
	}
	if cfg.FetchTimeout < 0 {
		errs = errors.Join(errs, fmt.Errorf("fetch timeout cannot be negative"))
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = errors.Join(errs, fmt.Errorf("window size must be positive, got %dx%d", cfg.Width, cfg.Height))
	}

	return errs
}

// Timeout returns the market data request timeout.
func (cfg *Config) Timeout() time.Duration {
	return time.Duration(cfg.FetchTimeout) * time.Second
}

// Level returns the parsed log level, falling back to info.
func (cfg *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

// registerFlag registers command line arguments of any type and tracks them to avoid reregistration.
func (cfg *Config) registerFlag(name string, value interface{}, fallback string, usage string) error {
	if cfg.registeredFlags == nil {
		cfg.registeredFlags = make(map[string]bool)
	}

	if cfg.registeredFlags[name] {
		return nil
	}

	cfg.registeredFlags[name] = true

	defValue := os.Getenv(name)
	if defValue == "" {
		defValue = fallback
	}

	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return fmt.Errorf("%s: value must be a non-nil pointer", name)
	}

	switch val.Elem().Kind() {
	case reflect.String:
		flag.StringVar(value.(*string), name, defValue, usage)
	case reflect.Int:
		var def int
		if defValue != "" {
			var err error
			def, err = strconv.Atoi(defValue)
			if err != nil {
				return fmt.Errorf("%s: parsing default %q: %w", name, defValue, err)
			}
		}
		flag.IntVar(value.(*int), name, def, usage)
	default:
		return fmt.Errorf("%s: unsupported type", name)
	}

	return nil
}

// Load loads the configuration from environment variables and command line flags. Values from
// the .env file at the provided path, when present, are used as environment defaults.
func Load(cfg *Config, path string) error {
	if path == "" {
		path = ".env"
	}

	// Check if the expected .env file exists before loading it.
	_, err := os.Stat(path)
	if err == nil {
		err := godotenv.Load(path)
		if err != nil {
			return fmt.Errorf("loading .env file: %w", err)
		}
	}

	// Register command line arguments using loaded environment variables as defaults.
	err = cfg.registerFlag("apikey", &cfg.APIKey, "", "the CoinGecko demo api key")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("baseurl", &cfg.BaseURL, DefaultBaseURL, "the market data api base url")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("loglevel", &cfg.LogLevel, DefaultLogLevel, "the log level")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("fetchtimeout", &cfg.FetchTimeout, "0", "the market data request timeout in seconds, 0 disables it")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("width", &cfg.Width, strconv.Itoa(DefaultWidth), "the initial window width")
	if err != nil {
		return err
	}
	err = cfg.registerFlag("height", &cfg.Height, strconv.Itoa(DefaultHeight), "the initial window height")
	if err != nil {
		return err
	}

	// Parse command-line flags.
	flag.Parse()

	return cfg.Validate()
}
