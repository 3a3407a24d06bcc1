package config

import (
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config holds all runtime settings. Values come from an optional config
// file, overridden by environment variables (dots become underscores, e.g.
// mailer.base.url -> MAILER_BASE_URL).
type Config struct {
	HTTPPort      string        `mapstructure:"http_port"`
	RedisAddr     string        `mapstructure:"redis_addr"` // empty disables the report cache
	RedisPassword string        `mapstructure:"redis_password"`
	PublicBaseURL string        `mapstructure:"public_base_url"`
	MailerBaseURL string        `mapstructure:"mailer_base_url"` // empty disables report email
	MailerToken   string        `mapstructure:"mailer_token"`
	ReportTTL     time.Duration `mapstructure:"report_ttl"`
	CORSOrigin    string        `mapstructure:"cors_origin"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"http_port":       "8080",
		"redis_addr":      "",
		"redis_password":  "",
		"public_base_url": "http://localhost:8080",
		"mailer_base_url": "",
		"mailer_token":    "",
		"report_ttl":      10 * time.Minute,
		"cors_origin":     "*",
	}
}

// Load reads configuration from the given file (optional) and the process
// environment.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	if err := v.MergeConfigMap(defaults()); err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.MergeInConfig(); err != nil {
			return nil, err
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := new(Config)
	if err := v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.StringToTimeDurationHookFunc()
	}); err != nil {
		return nil, err
	}
	return cfg, nil
}
