package tests

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

const (
	goCommandNameConstant          = "go"
	goRunSubcommandConstant        = "run"
	currentModuleReferenceConstant = "."
	parentDirectoryConstant        = ".."
	integrationTimeoutConstant     = 2 * time.Minute
)

// runCopycheck executes the CLI via "go run ." from the repository root and
// returns the combined output together with the process exit code.
func runCopycheck(testInstance *testing.T, arguments []string) (string, int) {
	testInstance.Helper()

	repositoryRoot, rootError := filepath.Abs(parentDirectoryConstant)
	if rootError != nil {
		testInstance.Fatalf("unable to resolve repository root: %v", rootError)
	}

	executionContext, cancel := context.WithTimeout(context.Background(), integrationTimeoutConstant)
	defer cancel()

	commandArguments := append([]string{goRunSubcommandConstant, currentModuleReferenceConstant}, arguments...)
	command := exec.CommandContext(executionContext, goCommandNameConstant, commandArguments...)
	command.Dir = repositoryRoot
	command.Env = append([]string{}, os.Environ()...)

	outputBytes, runError := command.CombinedOutput()
	outputText := string(outputBytes)

	if runError == nil {
		return outputText, 0
	}

	var exitError *exec.ExitError
	if errors.As(runError, &exitError) {
		return outputText, exitError.ExitCode()
	}

	testInstance.Fatalf("command failed to run: %v\n%s", runError, outputText)
	return outputText, 0
}
