package config

import (
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/viper"
)

var (
	GConfig *Config
)

// New loads config.yaml from the working directory or ./config and overlays
// MACDL_* environment variables. A missing file leaves the defaults in place.
func New(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, pkgerrors.WithMessage(err, "failed to read config file")
		}
	}

	var c = new(Config)
	if err := v.Unmarshal(c); err != nil {
		return nil, pkgerrors.WithMessage(err, "failed to unmarshal config file")
	}

	GConfig = c
	return c, nil
}

// Default returns the configuration with every key at its default value.
func Default() *Config {
	var c = new(Config)
	_ = newViper().Unmarshal(c)
	return c
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(DefaultConfigName)
	v.SetConfigType(DefaultConfigType)
	v.AddConfigPath(".")
	v.AddConfigPath("config")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)

	v.SetDefault("upstream.metadata_url", DefaultMetadataURL)
	v.SetDefault("upstream.relay_timeout", DefaultRelayTimeout)

	v.SetDefault("resolver.fallback_version", DefaultFallbackVersion)
	v.SetDefault("resolver.attempts", DefaultAttempts)
	v.SetDefault("resolver.retry_wait_min", DefaultRetryWaitMin)
	v.SetDefault("resolver.retry_wait_max", DefaultRetryWaitMax)
	v.SetDefault("resolver.stale_time", DefaultStaleTime)
	v.SetDefault("resolver.refresh_interval", DefaultRefreshInterval)

	v.SetDefault("download.cdn_base", DefaultCdnBase)
	v.SetDefault("download.platform", DefaultPlatform)
	v.SetDefault("download.artifact", DefaultArtifact)
	v.SetDefault("download.tick_interval", DefaultTickInterval)
	v.SetDefault("download.progress_step", DefaultProgressStep)
	v.SetDefault("download.reset_delay", DefaultResetDelay)
	v.SetDefault("download.refresh_before_download", true)
}
