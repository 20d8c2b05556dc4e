package config

import "time"

type (
	Config struct {
		Server   ServerConfig   `mapstructure:"server"`
		Log      LogConfig      `mapstructure:"log"`
		Upstream UpstreamConfig `mapstructure:"upstream"`
		Resolver ResolverConfig `mapstructure:"resolver"`
		Download DownloadConfig `mapstructure:"download"`
	}
	ServerConfig struct {
		Port int `mapstructure:"port"`
	}

	LogConfig struct {
		Level      string `mapstructure:"level"`
		File       string `mapstructure:"file"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAge     int    `mapstructure:"max_age"`
		Compress   bool   `mapstructure:"compress"`
	}

	UpstreamConfig struct {
		MetadataURL  string        `mapstructure:"metadata_url"`
		RelayTimeout time.Duration `mapstructure:"relay_timeout"`
	}

	ResolverConfig struct {
		FallbackVersion string        `mapstructure:"fallback_version"`
		Attempts        int           `mapstructure:"attempts"`
		RetryWaitMin    time.Duration `mapstructure:"retry_wait_min"`
		RetryWaitMax    time.Duration `mapstructure:"retry_wait_max"`
		StaleTime       time.Duration `mapstructure:"stale_time"`
		RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	}

	DownloadConfig struct {
		CdnBase               string        `mapstructure:"cdn_base"`
		Platform              string        `mapstructure:"platform"`
		Artifact              string        `mapstructure:"artifact"`
		TickInterval          time.Duration `mapstructure:"tick_interval"`
		ProgressStep          float64       `mapstructure:"progress_step"`
		ResetDelay            time.Duration `mapstructure:"reset_delay"`
		RefreshBeforeDownload bool          `mapstructure:"refresh_before_download"`
	}
)
