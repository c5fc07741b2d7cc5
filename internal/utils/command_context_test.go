package utils_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/copycheck/internal/utils"
)

const (
	testConfigurationFilePathConstant = "/etc/copycheck/config.yaml"
)

func TestCommandContextAccessorConfigurationFilePath(testInstance *testing.T) {
	testCases := []struct {
		name          string
		buildContext  func(accessor utils.CommandContextAccessor) context.Context
		expectedPath  string
		expectedFound bool
	}{
		{
			name: "stored_path_round_trips",
			buildContext: func(accessor utils.CommandContextAccessor) context.Context {
				return accessor.WithConfigurationFilePath(context.Background(), testConfigurationFilePathConstant)
			},
			expectedPath:  testConfigurationFilePathConstant,
			expectedFound: true,
		},
		{
			name: "nil_parent_context_is_tolerated",
			buildContext: func(accessor utils.CommandContextAccessor) context.Context {
				return accessor.WithConfigurationFilePath(nil, testConfigurationFilePathConstant)
			},
			expectedPath:  testConfigurationFilePathConstant,
			expectedFound: true,
		},
		{
			name: "missing_value_reports_absence",
			buildContext: func(accessor utils.CommandContextAccessor) context.Context {
				return context.Background()
			},
			expectedPath:  "",
			expectedFound: false,
		},
		{
			name: "nil_context_reports_absence",
			buildContext: func(accessor utils.CommandContextAccessor) context.Context {
				return nil
			},
			expectedPath:  "",
			expectedFound: false,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			accessor := utils.NewCommandContextAccessor()

			resolvedPath, resolvedFound := accessor.ConfigurationFilePath(testCase.buildContext(accessor))

			require.Equal(subtest, testCase.expectedFound, resolvedFound)
			require.Equal(subtest, testCase.expectedPath, resolvedPath)
		})
	}
}
