package parser

import (
	"regexp"
	"strings"
	"time"
)

// Date tokens as they appear on statements. Day-first ordering throughout:
// numeric dates are read as DD/MM, never MM/DD.
var (
	// 15/01/2024 or 15/01/24
	datePatternSlash = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{2,4})\b`)
	// 2024-01-15
	datePatternISO = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	// 15 Jan 2024, 15 January 2024
	datePatternText = regexp.MustCompile(`(?i)\b(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{2,4})\b`)
	// 15-Jan-2024
	datePatternDash = regexp.MustCompile(`(?i)\b(\d{1,2}-(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*-\d{2,4})\b`)
)

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02/01/06",
	"2 January 2006",
	"2 Jan 2006",
	"2-Jan-2006",
	"2-Jan-06",
}

var alphaPattern = regexp.MustCompile(`[A-Za-z]+`)

// ParseDate parses a single date token. The result is a bare calendar date
// in UTC. Month names are re-cased first because statements print them in
// every capitalization.
func ParseDate(raw string) (time.Time, bool) {
	s := alphaPattern.ReplaceAllStringFunc(strings.TrimSpace(raw), func(word string) string {
		lower := strings.ToLower(word)
		return strings.ToUpper(lower[:1]) + lower[1:]
	})

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// FindDate locates the first date token anywhere on the line and returns
// the parsed date together with the matched text, so callers can strip it
// from the narrative.
func FindDate(line string) (time.Time, string, bool) {
	for _, pattern := range []*regexp.Regexp{datePatternISO, datePatternSlash, datePatternText, datePatternDash} {
		if match := pattern.FindString(line); match != "" {
			if parsed, ok := ParseDate(match); ok {
				return parsed, match, true
			}
		}
	}
	return time.Time{}, "", false
}

func hasDateToken(line string) bool {
	_, _, ok := FindDate(line)
	return ok
}
