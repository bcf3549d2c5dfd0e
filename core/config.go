package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config carries all environment configuration for the client toolkit.
type Config struct {
	Env     string // DEV (local; default), TEST, QA, PROD
	Debug   bool
	AppName string

	// APIBaseURL is the root of the Blue Jays backend, e.g. "https://api.bluejays.example".
	// There is no production fallback; an empty value is a configuration error.
	APIBaseURL string

	// RequestTimeout bounds every HTTP call; 0 disables the bound.
	RequestTimeout time.Duration

	// SessionFile overrides the default session-store location (under os.UserConfigDir).
	SessionFile string

	RollbarToken string
	Build        string
}

func (c *Config) IsProd() bool { return c.Env == "PROD" }
func (c *Config) IsTest() bool { return c.Env == "TEST" }

// LoadConfig reads configuration from the environment (optionally seeded from
// config/.env.<env>) into a Config.
func LoadConfig() (*Config, error) {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Blue Jays School System")
	conf.SetDefault("apiBaseUrl", "")
	conf.SetDefault("requestTimeout", time.Duration(0))
	conf.SetDefault("sessionFile", "")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("build", "")

	env := strings.ToUpper(os.Getenv("ENV"))
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "config.godotenv(%s)", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "config.os.Stat(%s)", dotEnvPath)
	}
	conf.AutomaticEnv()

	c := &Config{
		Env:            env,
		Debug:          conf.GetBool("debug"),
		AppName:        conf.GetString("appName"),
		APIBaseURL:     strings.TrimRight(conf.GetString("apiBaseUrl"), "/"),
		RequestTimeout: conf.GetDuration("requestTimeout"),
		SessionFile:    conf.GetString("sessionFile"),
		RollbarToken:   conf.GetString("rollbarToken"),
		Build:          conf.GetString("build"),
	}
	if c.APIBaseURL == "" {
		return nil, errors.New("config: API base URL is not set")
	}
	if c.IsProd() {
		c.Debug = false
	}
	return c, nil
}
