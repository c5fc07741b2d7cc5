package utils_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/copycheck/internal/utils"
)

const (
	testEnvironmentPrefixConstant                  = "TESTCOPYCHECK"
	testCommonSectionKeyConstant                   = "common"
	testLogLevelKeyConstant                        = testCommonSectionKeyConstant + ".log_level"
	testLogLevelEnvironmentVariableConstant        = testEnvironmentPrefixConstant + "_COMMON_LOG_LEVEL"
	testDefaultLogLevelConstant                    = "info"
	testFileLogLevelConstant                       = "warn"
	testEnvironmentLogLevelConstant                = "error"
	testConfigFileNameConstant                     = "config.yaml"
	testConfigContentTemplateConstant              = "common:\n  log_level: %s\n"
	testConfigurationNameConstant                  = "config"
	testConfigurationTypeConstant                  = "yaml"
	configurationLoaderSubtestNameTemplateConstant = "%d_%s"
	testCaseDefaultsNameConstant                   = "defaults_are_applied"
	testCaseFileNameConstant                       = "config_file_overrides_defaults"
	testCaseEnvironmentNameConstant                = "environment_overrides_file"
)

type configurationFixture struct {
	Common configurationCommonFixture `mapstructure:"common"`
}

type configurationCommonFixture struct {
	LogLevel string `mapstructure:"log_level"`
}

func TestConfigurationLoaderLoadConfiguration(testInstance *testing.T) {
	testCases := []struct {
		name                string
		fileLogLevel        string
		environmentLogLevel string
		expectedLogLevel    string
	}{
		{
			name:                testCaseDefaultsNameConstant,
			fileLogLevel:        "",
			environmentLogLevel: "",
			expectedLogLevel:    testDefaultLogLevelConstant,
		},
		{
			name:                testCaseFileNameConstant,
			fileLogLevel:        testFileLogLevelConstant,
			environmentLogLevel: "",
			expectedLogLevel:    testFileLogLevelConstant,
		},
		{
			name:                testCaseEnvironmentNameConstant,
			fileLogLevel:        testFileLogLevelConstant,
			environmentLogLevel: testEnvironmentLogLevelConstant,
			expectedLogLevel:    testEnvironmentLogLevelConstant,
		},
	}

	for testCaseIndex, testCase := range testCases {
		subtestName := fmt.Sprintf(configurationLoaderSubtestNameTemplateConstant, testCaseIndex, testCase.name)
		testInstance.Run(subtestName, func(subtest *testing.T) {
			temporaryDirectory := subtest.TempDir()

			configurationFilePath := ""
			if len(testCase.fileLogLevel) > 0 {
				configurationFilePath = filepath.Join(temporaryDirectory, testConfigFileNameConstant)
				configurationContent := fmt.Sprintf(testConfigContentTemplateConstant, testCase.fileLogLevel)
				require.NoError(subtest, os.WriteFile(configurationFilePath, []byte(configurationContent), 0o600))
			}

			if len(testCase.environmentLogLevel) > 0 {
				subtest.Setenv(testLogLevelEnvironmentVariableConstant, testCase.environmentLogLevel)
			}

			configurationLoader := utils.NewConfigurationLoader(
				testConfigurationNameConstant,
				testConfigurationTypeConstant,
				testEnvironmentPrefixConstant,
				[]string{temporaryDirectory},
			)

			defaultValues := map[string]any{
				testLogLevelKeyConstant: testDefaultLogLevelConstant,
			}

			var loadedFixture configurationFixture
			loadedMetadata, loadError := configurationLoader.LoadConfiguration(configurationFilePath, defaultValues, &loadedFixture)
			require.NoError(subtest, loadError)
			require.Equal(subtest, testCase.expectedLogLevel, loadedFixture.Common.LogLevel)

			if len(configurationFilePath) > 0 {
				require.Equal(subtest, configurationFilePath, loadedMetadata.ConfigFileUsed)
			}
		})
	}
}
