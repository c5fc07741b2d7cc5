package header

import "strings"

const (
	// DefaultLicenseIdentifierConstant is the license phrase required within the search bound.
	DefaultLicenseIdentifierConstant = "SPDX-License-Identifier: MIT"
	// DefaultMaxSearchLinesConstant bounds header scanning to lines 0 through this index inclusive.
	DefaultMaxSearchLinesConstant = 20

	configurationKeySeparatorConstant      = "."
	configurationLicenseKeyConstant        = "license"
	configurationMaxSearchLinesKeyConstant = "max_search_lines"
	configurationFixKeyConstant            = "fix"
)

// CommandConfiguration captures configuration values for the check command.
type CommandConfiguration struct {
	LicenseIdentifier string `mapstructure:"license"`
	MaxSearchLines    int    `mapstructure:"max_search_lines"`
	Fix               bool   `mapstructure:"fix"`
}

// DefaultCommandConfiguration provides baseline configuration values for the check command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		LicenseIdentifier: DefaultLicenseIdentifierConstant,
		MaxSearchLines:    DefaultMaxSearchLinesConstant,
		Fix:               true,
	}
}

// DefaultConfigurationValues exposes configuration defaults keyed beneath the provided root key.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationLicenseKeyConstant:        defaults.LicenseIdentifier,
		rootKey + configurationKeySeparatorConstant + configurationMaxSearchLinesKeyConstant: defaults.MaxSearchLines,
		rootKey + configurationKeySeparatorConstant + configurationFixKeyConstant:            defaults.Fix,
	}
}

// sanitize trims configuration values and restores defaults for values that cannot be used.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.LicenseIdentifier = strings.TrimSpace(configuration.LicenseIdentifier)
	if len(sanitized.LicenseIdentifier) == 0 {
		sanitized.LicenseIdentifier = DefaultLicenseIdentifierConstant
	}

	if sanitized.MaxSearchLines < 0 {
		sanitized.MaxSearchLines = DefaultMaxSearchLinesConstant
	}

	return sanitized
}
