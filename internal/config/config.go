package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the API binary needs to run.
type Config struct {
	ServerAddress string         `mapstructure:"server_address"`
	GinMode       string         `mapstructure:"gin_mode"`
	WebPath       string         `mapstructure:"web_path"`
	Geocoder      GeocoderConfig `mapstructure:"geocoder"`
	Sun           SunConfig      `mapstructure:"sun"`
}

// GeocoderConfig configures the location resolver and its lookup cache.
type GeocoderConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	CacheSize int           `mapstructure:"cache_size"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

// SunConfig bounds series requests and paces the live stream.
type SunConfig struct {
	MaxRangeDays int           `mapstructure:"max_range_days"`
	LiveInterval time.Duration `mapstructure:"live_interval"`
}

// LoadConfig reads config.yaml from path, with defaults for every key and
// environment variables taking precedence. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server_address", ":8080")
	viper.SetDefault("gin_mode", "release")
	viper.SetDefault("web_path", "./web")
	viper.SetDefault("geocoder.base_url", "")
	viper.SetDefault("geocoder.timeout", "5s")
	viper.SetDefault("geocoder.cache_size", 128)
	viper.SetDefault("geocoder.cache_ttl", "1h")
	viper.SetDefault("sun.max_range_days", 366)
	viper.SetDefault("sun.live_interval", "1s")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
