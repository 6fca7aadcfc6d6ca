package devlog

import "github.com/goliatone/go-devlog/internal/runtimeconfig"

var (
	ErrStorageDriverUnknown   = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired     = runtimeconfig.ErrStorageDSNRequired
	ErrFeedBaseURLRequired    = runtimeconfig.ErrFeedBaseURLRequired
	ErrFeedLimitInvalid       = runtimeconfig.ErrFeedLimitInvalid
	ErrServerAddrRequired     = runtimeconfig.ErrServerAddrRequired
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	ServerConfig   = runtimeconfig.ServerConfig
	StorageConfig  = runtimeconfig.StorageConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	FeedConfig     = runtimeconfig.FeedConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
