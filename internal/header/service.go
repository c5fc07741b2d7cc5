package header

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	checksFailedMessageConstant           = "copyright checks failed"
	fileSystemRequiredMessageConstant     = "file system is required"
	fileReadErrorTemplateConstant         = "unable to read %s: %w"
	fileScanErrorTemplateConstant         = "unable to scan %s: %w"
	fileWriteErrorTemplateConstant        = "unable to write %s: %w"
	badCopyrightDiagnosticTemplate        = "The following files did not have a valid copyright header: %s\nAn attempted fix may have been made please check the files and re-commit\n"
	badLicenseDiagnosticTemplate          = "The following files do not have a valid SPDX licence identifier: %s\nPlease add the identifier as follows '%s'\n"
	diagnosticFileListSeparatorConstant   = ", "
	fileScannedDebugMessageConstant       = "file scanned"
	noticeAbsentDebugMessageConstant      = "no copyright notice found to rewrite"
	checkSummaryInfoMessageConstant       = "copyright check completed"
	logFieldPathConstant                  = "path"
	logFieldCopyrightFoundConstant        = "copyright_found"
	logFieldLicenseFoundConstant          = "license_found"
	logFieldCheckedFileCountConstant      = "checked_files"
	logFieldBadCopyrightFileCountConstant = "copyright_failures"
	logFieldBadLicenseFileCountConstant   = "license_failures"
	rewrittenFilePermissionsConstant      = 0o644
)

// ErrChecksFailed reports that at least one file failed the copyright or
// license identifier check.
var ErrChecksFailed = errors.New(checksFailedMessageConstant)

// CheckOptions describes a single check run.
type CheckOptions struct {
	Paths             []string
	LicenseIdentifier string
	MaxSearchLines    int
	CurrentYear       int
	Fix               bool
}

// Service validates copyright headers across files and repairs stale notices.
type Service struct {
	logger     *zap.Logger
	fileSystem FileSystem
	reporter   Reporter
}

// NewService constructs a Service with the provided collaborators.
func NewService(logger *zap.Logger, fileSystem FileSystem, reporter Reporter) (*Service, error) {
	if fileSystem == nil {
		return nil, errors.New(fileSystemRequiredMessageConstant)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if reporter == nil {
		reporter = NewWriterReporter(nil)
	}

	return &Service{logger: logger, fileSystem: fileSystem, reporter: reporter}, nil
}

// Check processes the target paths strictly in order. Files whose leading
// lines lack a copyright notice mentioning the current year are rewritten in
// place when fixing is enabled; files lacking the license identifier are only
// reported. Any file I/O failure aborts the run immediately. ErrChecksFailed
// is returned when at least one file was deficient.
func (service *Service) Check(executionContext context.Context, options CheckOptions) error {
	scanner := NewScanner(options.CurrentYear, options.LicenseIdentifier, options.MaxSearchLines)
	rewriter := NewRewriter(options.CurrentYear)

	var badCopyrightFiles []string
	var badLicenseFiles []string

	for _, targetPath := range options.Paths {
		if contextError := executionContext.Err(); contextError != nil {
			return contextError
		}

		fileContents, readError := service.fileSystem.ReadFile(targetPath)
		if readError != nil {
			return fmt.Errorf(fileReadErrorTemplateConstant, targetPath, readError)
		}

		scanResult, scanError := scanner.Scan(bytes.NewReader(fileContents))
		if scanError != nil {
			return fmt.Errorf(fileScanErrorTemplateConstant, targetPath, scanError)
		}

		service.logger.Debug(
			fileScannedDebugMessageConstant,
			zap.String(logFieldPathConstant, targetPath),
			zap.Bool(logFieldCopyrightFoundConstant, scanResult.CopyrightFound),
			zap.Bool(logFieldLicenseFoundConstant, scanResult.LicenseFound),
		)

		if !scanResult.CopyrightFound {
			badCopyrightFiles = append(badCopyrightFiles, targetPath)

			if options.Fix {
				if rewriteError := service.rewriteFile(rewriter, targetPath, fileContents); rewriteError != nil {
					return rewriteError
				}
			}
		}

		if !scanResult.LicenseFound {
			badLicenseFiles = append(badLicenseFiles, targetPath)
		}
	}

	if len(badCopyrightFiles) > 0 {
		service.reporter.Printf(badCopyrightDiagnosticTemplate, strings.Join(badCopyrightFiles, diagnosticFileListSeparatorConstant))
	}

	if len(badLicenseFiles) > 0 {
		service.reporter.Printf(badLicenseDiagnosticTemplate, strings.Join(badLicenseFiles, diagnosticFileListSeparatorConstant), options.LicenseIdentifier)
	}

	service.logger.Info(
		checkSummaryInfoMessageConstant,
		zap.Int(logFieldCheckedFileCountConstant, len(options.Paths)),
		zap.Int(logFieldBadCopyrightFileCountConstant, len(badCopyrightFiles)),
		zap.Int(logFieldBadLicenseFileCountConstant, len(badLicenseFiles)),
	)

	if len(badCopyrightFiles) > 0 || len(badLicenseFiles) > 0 {
		return ErrChecksFailed
	}

	return nil
}

// rewriteFile replaces the first copyright notice with the corrected year
// list and overwrites the file, even when the result is byte-identical. A
// file with no notice at all is left untouched.
func (service *Service) rewriteFile(rewriter *Rewriter, targetPath string, fileContents []byte) error {
	rewrittenContents, noticeFound := rewriter.Rewrite(string(fileContents))
	if !noticeFound {
		service.logger.Debug(noticeAbsentDebugMessageConstant, zap.String(logFieldPathConstant, targetPath))
		return nil
	}

	writeError := service.fileSystem.WriteFile(targetPath, []byte(rewrittenContents), rewrittenFilePermissionsConstant)
	if writeError != nil {
		return fmt.Errorf(fileWriteErrorTemplateConstant, targetPath, writeError)
	}

	return nil
}
