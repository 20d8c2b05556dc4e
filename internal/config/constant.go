package config

import "time"

const (
	DefaultPort       = 8000
	DefaultConfigName = "config"
	DefaultConfigType = "yaml"
	EnvPrefix         = "MACDL"
)

const (
	DefaultMetadataURL     = "https://clientsettingscdn.roblox.com/v2/client-version/MacPlayer"
	DefaultFallbackVersion = "version-6ced3f7b78bf439c"
	DefaultCdnBase         = "https://setup.rbxcdn.com"
	DefaultPlatform        = "mac"
	DefaultArtifact        = "RobloxPlayer"
)

const (
	DefaultRelayTimeout    = 10 * time.Second
	DefaultAttempts        = 3
	DefaultRetryWaitMin    = time.Second
	DefaultRetryWaitMax    = 30 * time.Second
	DefaultStaleTime       = 5 * time.Minute
	DefaultRefreshInterval = 10 * time.Minute
	DefaultTickInterval    = 200 * time.Millisecond
	DefaultProgressStep    = 15.0
	DefaultResetDelay      = 3 * time.Second
)
