package header

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/copycheck/internal/utils"
	flagutils "github.com/temirov/copycheck/internal/utils/flags"
)

const (
	commandUseConstant              = "check [file ...]"
	commandShortDescriptionConstant = "Validate and repair copyright headers in the given files"
	commandLongDescriptionConstant  = "check scans the leading lines of each file for a copyright notice covering " +
		"the current year and for the configured license identifier. Files whose year list is stale are " +
		"rewritten in place with a compacted year list. Files with no copyright notice at all are reported " +
		"but never gain one, and files missing the license identifier are reported without modification."
	flagLicenseNameConstant            = "license"
	flagLicenseDescriptionConstant     = "License identifier phrase required within the search bound"
	flagSearchLinesNameConstant        = "search-lines"
	flagSearchLinesDescriptionConstant = "Number of lines past the first within which headers must appear"
	flagFixNameConstant                = "fix"
	flagFixDescriptionConstant         = "Rewrite stale or missing copyright year lists in place"

	configurationFileResolvedMessageConstant = "configuration file resolved"
	logFieldConfigurationFileConstant        = "config_file"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the Cobra command for copyright header checking.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	FileSystem            FileSystem
	Reporter              Reporter
	Clock                 Clock

	fixFlagValue bool
}

// Build constructs the check command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	defaults := DefaultCommandConfiguration()

	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ArbitraryArgs,
		RunE:  builder.run,
	}

	command.Flags().String(flagLicenseNameConstant, defaults.LicenseIdentifier, flagLicenseDescriptionConstant)
	command.Flags().Int(flagSearchLinesNameConstant, defaults.MaxSearchLines, flagSearchLinesDescriptionConstant)
	flagutils.AddToggleFlag(command.Flags(), &builder.fixFlagValue, flagFixNameConstant, "", defaults.Fix, flagFixDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options := builder.parseOptions(command, arguments)
	logger := builder.resolveLogger()

	configurationFilePath, configurationFilePathFound := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context())
	if configurationFilePathFound && len(configurationFilePath) > 0 {
		logger.Debug(
			configurationFileResolvedMessageConstant,
			zap.String(logFieldConfigurationFileConstant, configurationFilePath),
		)
	}

	service, serviceError := NewService(logger, builder.resolveFileSystem(), builder.resolveReporter(command))
	if serviceError != nil {
		return serviceError
	}

	return service.Check(command.Context(), options)
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) CheckOptions {
	configuration := builder.resolveConfiguration()

	licenseIdentifier := configuration.LicenseIdentifier
	if command.Flags().Changed(flagLicenseNameConstant) {
		flagValue, _ := command.Flags().GetString(flagLicenseNameConstant)
		trimmedFlagValue := strings.TrimSpace(flagValue)
		if len(trimmedFlagValue) > 0 {
			licenseIdentifier = trimmedFlagValue
		}
	}

	maxSearchLines := configuration.MaxSearchLines
	if command.Flags().Changed(flagSearchLinesNameConstant) {
		flagValue, _ := command.Flags().GetInt(flagSearchLinesNameConstant)
		if flagValue >= 0 {
			maxSearchLines = flagValue
		}
	}

	fixEnabled := configuration.Fix
	if command.Flags().Changed(flagFixNameConstant) {
		fixEnabled = builder.fixFlagValue
	}

	return CheckOptions{
		Paths:             arguments,
		LicenseIdentifier: licenseIdentifier,
		MaxSearchLines:    maxSearchLines,
		CurrentYear:       builder.resolveClock().Now().Year(),
		Fix:               fixEnabled,
	}
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}

	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func (builder *CommandBuilder) resolveFileSystem() FileSystem {
	if builder.FileSystem == nil {
		return OSFileSystem{}
	}
	return builder.FileSystem
}

func (builder *CommandBuilder) resolveReporter(command *cobra.Command) Reporter {
	if builder.Reporter != nil {
		return builder.Reporter
	}
	return NewWriterReporter(command.ErrOrStderr())
}

func (builder *CommandBuilder) resolveClock() Clock {
	if builder.Clock == nil {
		return SystemClock{}
	}
	return builder.Clock
}
