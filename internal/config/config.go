// Package config loads settings for the server and the command-line client.
//
// Sources, highest precedence first: bound flags, COCON_* environment
// variables, the config file (COCON_CONFIG or cocon.yaml in the working
// directory, ~/.config/cocon or /etc/cocon), defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "COCON"

// Config is the full set of settings.
type Config struct {
	Addr       string `mapstructure:"addr"`
	StaticPath string `mapstructure:"static_path"`

	DB        DBConfig        `mapstructure:"db"`
	Blob      BlobConfig      `mapstructure:"blob"`
	S3        S3Config        `mapstructure:"s3"`
	Auth      AuthConfig      `mapstructure:"auth"`
	AI        AIConfig        `mapstructure:"ai"`
	Bootstrap BootstrapConfig `mapstructure:"bootstrap"`
	Log       LogConfig       `mapstructure:"log"`
	Client    ClientConfig    `mapstructure:"client"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver"` // sqlite or postgres
	Path   string `mapstructure:"path"`
	DSN    string `mapstructure:"dsn"`
}

type BlobConfig struct {
	Driver string `mapstructure:"driver"` // local or s3
	Dir    string `mapstructure:"dir"`
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

type AuthConfig struct {
	Secret   string        `mapstructure:"secret"`
	TokenTTL time.Duration `mapstructure:"token_ttl"`
}

type AIConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	Model        string `mapstructure:"model"`
	OEmbedURL    string `mapstructure:"oembed_url"`
}

// BootstrapConfig holds access codes hashed into the settings at startup.
type BootstrapConfig struct {
	EditorCode  string `mapstructure:"editor_code"`
	PartnerCode string `mapstructure:"partner_code"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

// ClientConfig is used by coconctl.
type ClientConfig struct {
	Server      string `mapstructure:"server"`
	SessionFile string `mapstructure:"session_file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("static_path", "./frontend/static")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "./data/cocon.db")
	v.SetDefault("db.dsn", "")
	v.SetDefault("blob.driver", "local")
	v.SetDefault("blob.dir", "./data/blobs")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access_key", "")
	v.SetDefault("s3.secret_key", "")
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.token_ttl", 90*24*time.Hour)
	v.SetDefault("ai.gemini_api_key", "")
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.oembed_url", "")
	v.SetDefault("bootstrap.editor_code", "")
	v.SetDefault("bootstrap.partner_code", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("client.server", "http://localhost:8080")
	v.SetDefault("client.session_file", "")
}

// New returns a viper instance with defaults, environment binding and the
// config file search paths set up. The file is not read yet.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	if file := os.Getenv(envPrefix + "_CONFIG"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("cocon")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/cocon")
		v.AddConfigPath("/etc/cocon")
	}

	v.SetEnvPrefix(envPrefix)
	// db.path -> COCON_DB_PATH, static-path -> COCON_STATIC_PATH
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds flags to config keys. Flag names use dashes in place of
// dots and underscores, so --db-path sets db.path.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys ...string) error {
	for _, key := range keys {
		name := strings.NewReplacer(".", "-", "_", "-").Replace(key)
		f := flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("no flag %q for key %q", name, key)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file, if any, and decodes the merged settings.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// ValidateServer checks the settings the server cannot start without.
func (c *Config) ValidateServer() error {
	var errs []error
	switch c.DB.Driver {
	case "sqlite":
		if c.DB.Path == "" {
			errs = append(errs, errors.New("db.path is required for sqlite"))
		}
	case "postgres":
		if c.DB.DSN == "" {
			errs = append(errs, errors.New("db.dsn is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown db.driver %q", c.DB.Driver))
	}

	switch c.Blob.Driver {
	case "local":
		if c.Blob.Dir == "" {
			errs = append(errs, errors.New("blob.dir is required for local blobs"))
		}
	case "s3":
		if c.S3.Bucket == "" {
			errs = append(errs, errors.New("s3.bucket is required for s3 blobs"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown blob.driver %q", c.Blob.Driver))
	}

	if c.Auth.Secret == "" {
		errs = append(errs, errors.New("auth.secret is required"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if (c.Bootstrap.EditorCode == "") != (c.Bootstrap.PartnerCode == "") {
		errs = append(errs, errors.New("bootstrap.editor_code and bootstrap.partner_code must be set together"))
	}
	return errors.Join(errs...)
}
