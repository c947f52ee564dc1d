// Package config loads server configuration from yaml with
// MATCHBOOK_-prefixed environment overrides.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Feed struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"feed"`
	Kafka struct {
		Enabled bool     `mapstructure:"enabled"`
		Brokers []string `mapstructure:"brokers"`
		Topic   string   `mapstructure:"topic"`
	} `mapstructure:"kafka"`
	Metrics struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"metrics"`
	Log struct {
		Dev bool `mapstructure:"dev"`
	} `mapstructure:"log"`
}

// Load reads path if given, otherwise ./config.yaml when present.
// A missing file is fine; defaults and environment still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("feed.path", "big_market_data.csv")
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "matchbook.trades")
	v.SetDefault("metrics.addr", "")
	v.SetDefault("log.dev", false)

	v.SetEnvPrefix("MATCHBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		var nf viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &nf) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
