package richtext

import "github.com/goliatone/go-richtext/internal/runtimeconfig"

var (
	ErrPlaceholderTokenEmpty      = runtimeconfig.ErrPlaceholderTokenEmpty
	ErrPlaceholderTokenDuplicate  = runtimeconfig.ErrPlaceholderTokenDuplicate
	ErrPlaceholderFeatureRequired = runtimeconfig.ErrPlaceholderFeatureRequired
	ErrDirectionLabelRequired     = runtimeconfig.ErrDirectionLabelRequired
	ErrHeadingOptionInvalid       = runtimeconfig.ErrHeadingOptionInvalid
	ErrMarkdownFeatureRequired    = runtimeconfig.ErrMarkdownFeatureRequired
	ErrLoggingProviderRequired    = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
	ErrCommandTimeoutInvalid      = runtimeconfig.ErrCommandTimeoutInvalid
)

// Separator splits toolbar groups in ToolbarConfig.Items.
const Separator = runtimeconfig.Separator

type (
	Config                  = runtimeconfig.Config
	ToolbarConfig           = runtimeconfig.ToolbarConfig
	HeadingConfig           = runtimeconfig.HeadingConfig
	HeadingOption           = runtimeconfig.HeadingOption
	PlaceholderConfig       = runtimeconfig.PlaceholderConfig
	DirectionOverrideConfig = runtimeconfig.DirectionOverrideConfig
	SanitizeConfig          = runtimeconfig.SanitizeConfig
	MarkdownConfig          = runtimeconfig.MarkdownConfig
	MarkdownParserConfig    = runtimeconfig.MarkdownParserConfig
	CommandsConfig          = runtimeconfig.CommandsConfig
	Features                = runtimeconfig.Features
	LoggingConfig           = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
