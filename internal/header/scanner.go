package header

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strconv"
)

const (
	copyrightLinePatternPrefixConstant = `(?i)\bcopyright.*`
	licenseLinePatternPrefixConstant   = `(?i)`
)

// Scanner detects copyright and license identifier lines within the bounded
// leading portion of a file.
type Scanner struct {
	copyrightLinePattern *regexp.Regexp
	licenseLinePattern   *regexp.Regexp
	maxSearchLines       int
}

// NewScanner builds a Scanner matching the provided current year and license
// identifier phrase, inspecting only lines 0 through maxSearchLines inclusive.
func NewScanner(currentYear int, licenseIdentifier string, maxSearchLines int) *Scanner {
	return &Scanner{
		copyrightLinePattern: regexp.MustCompile(copyrightLinePatternPrefixConstant + strconv.Itoa(currentYear)),
		licenseLinePattern:   regexp.MustCompile(licenseLinePatternPrefixConstant + regexp.QuoteMeta(licenseIdentifier)),
		maxSearchLines:       maxSearchLines,
	}
}

// Scan reads lines from the provided reader and reports whether a copyright
// line mentioning the current year and a license identifier line appear
// within the search bound. Lines beyond the bound are never inspected, even
// when they would match. Individual lines may be arbitrarily long; generated
// or minified files must not abort the scan.
func (scanner *Scanner) Scan(reader io.Reader) (ScanResult, error) {
	scanResult := ScanResult{}
	lineReader := bufio.NewReader(reader)

	for lineIndex := 0; lineIndex <= scanner.maxSearchLines; lineIndex++ {
		lineText, readError := lineReader.ReadString('\n')

		if scanner.copyrightLinePattern.MatchString(lineText) {
			scanResult.CopyrightFound = true
		}
		if scanner.licenseLinePattern.MatchString(lineText) {
			scanResult.LicenseFound = true
		}

		if readError != nil {
			if errors.Is(readError, io.EOF) {
				break
			}
			return ScanResult{}, readError
		}
	}

	return scanResult, nil
}
