package years

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	minimumYearExclusiveConstant = 1900
	tokenSeparatorConstant       = ", "
	rangeSeparatorConstant       = "-"
	rangeLimitCountConstant      = 2
)

var (
	digitRunPattern  = regexp.MustCompile(`\d+`)
	yearRangePattern = regexp.MustCompile(`\d+-\d+`)
)

// Parse extracts every year mentioned in the provided text, expands inclusive
// ranges such as "2001-2005", discards values outside (1900, currentYear],
// and returns the remaining years deduplicated in ascending order. Malformed
// input is never an error; it simply yields fewer or no years.
func Parse(text string, currentYear int) []int {
	collectedYears := make(map[int]struct{})

	for _, matchIndexes := range digitRunPattern.FindAllStringIndex(text, -1) {
		if digitRunTouchesRange(text, matchIndexes[0], matchIndexes[1]) {
			continue
		}
		parsedYear, conversionError := strconv.Atoi(text[matchIndexes[0]:matchIndexes[1]])
		if conversionError != nil {
			continue
		}
		collectedYears[parsedYear] = struct{}{}
	}

	for _, rangeText := range yearRangePattern.FindAllString(text, -1) {
		rangeLimits := strings.SplitN(rangeText, rangeSeparatorConstant, rangeLimitCountConstant)
		rangeStart, startError := strconv.Atoi(rangeLimits[0])
		if startError != nil {
			continue
		}
		rangeEnd, endError := strconv.Atoi(rangeLimits[1])
		if endError != nil {
			continue
		}
		for expandedYear := rangeStart; expandedYear <= rangeEnd; expandedYear++ {
			collectedYears[expandedYear] = struct{}{}
		}
	}

	validYears := make([]int, 0, len(collectedYears))
	for candidateYear := range collectedYears {
		if candidateYear > minimumYearExclusiveConstant && candidateYear <= currentYear {
			validYears = append(validYears, candidateYear)
		}
	}
	sort.Ints(validYears)

	return validYears
}

// Render compacts an ascending deduplicated year list into its canonical
// string form. Runs of two or more consecutive years collapse to
// "start-end"; remaining years appear alone; tokens join with ", ". An empty
// input renders as the empty string.
func Render(sortedYears []int) string {
	if len(sortedYears) == 0 {
		return ""
	}

	var renderedBuilder strings.Builder
	runStartYear := sortedYears[0]
	runEndYear := sortedYears[0]

	for _, candidateYear := range sortedYears[1:] {
		if candidateYear == runEndYear+1 {
			runEndYear = candidateYear
			continue
		}

		writeRunToken(&renderedBuilder, runStartYear, runEndYear)
		renderedBuilder.WriteString(tokenSeparatorConstant)
		runStartYear = candidateYear
		runEndYear = candidateYear
	}

	writeRunToken(&renderedBuilder, runStartYear, runEndYear)

	return renderedBuilder.String()
}

// digitRunTouchesRange reports whether the digit run at [startIndex, endIndex)
// is adjacent to a hyphen and therefore part of a range expression rather
// than a standalone year.
func digitRunTouchesRange(text string, startIndex int, endIndex int) bool {
	if startIndex > 0 && text[startIndex-1] == rangeSeparatorConstant[0] {
		return true
	}
	if endIndex < len(text) && text[endIndex] == rangeSeparatorConstant[0] {
		return true
	}
	return false
}

func writeRunToken(renderedBuilder *strings.Builder, runStartYear int, runEndYear int) {
	renderedBuilder.WriteString(strconv.Itoa(runStartYear))
	if runEndYear > runStartYear {
		renderedBuilder.WriteString(rangeSeparatorConstant)
		renderedBuilder.WriteString(strconv.Itoa(runEndYear))
	}
}
