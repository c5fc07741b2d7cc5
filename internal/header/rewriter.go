package header

import (
	"regexp"

	"github.com/temirov/copycheck/internal/years"
)

const (
	// looseCopyrightPatternConstant matches notices such as "Copyright (C) 2014-2021".
	looseCopyrightPatternConstant = `(?i)\bcopyright\b.*[0-9,)]`
	rewrittenNoticePrefixConstant = "Copyright (c) "
)

var looseCopyrightPattern = regexp.MustCompile(looseCopyrightPatternConstant)

// Rewriter corrects the year list of the first copyright notice found
// anywhere in a file's contents. Unlike the Scanner, its search is not
// bounded to the leading lines.
type Rewriter struct {
	currentYear int
}

// NewRewriter builds a Rewriter that brings year lists up to the provided
// current year.
func NewRewriter(currentYear int) *Rewriter {
	return &Rewriter{currentYear: currentYear}
}

// Rewrite returns the contents with the first copyright notice replaced by
// "Copyright (c) <compacted years>", where the year set is the parsed notice
// years extended with the current year when absent. The second return value
// reports whether a notice was found; when it is false the contents are
// returned unchanged and the file never gains a header.
func (rewriter *Rewriter) Rewrite(contents string) (string, bool) {
	matchLocation := looseCopyrightPattern.FindStringIndex(contents)
	if matchLocation == nil {
		return contents, false
	}

	noticeText := contents[matchLocation[0]:matchLocation[1]]
	noticeYears := years.Parse(noticeText, rewriter.currentYear)
	if len(noticeYears) == 0 || noticeYears[len(noticeYears)-1] != rewriter.currentYear {
		noticeYears = append(noticeYears, rewriter.currentYear)
	}

	rewrittenNotice := rewrittenNoticePrefixConstant + years.Render(noticeYears)

	return contents[:matchLocation[0]] + rewrittenNotice + contents[matchLocation[1]:], true
}
